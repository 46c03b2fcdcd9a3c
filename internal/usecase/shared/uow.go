package shared

import (
	"context"
	"time"

	"roomfinder/internal/domain/grant"
	"roomfinder/internal/domain/listing"
	"roomfinder/internal/domain/user"
	sqlc "roomfinder/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Grants() GrantRepository
	Listings() ListingRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	CandidatesByArea(ctx context.Context, area grant.Area, filter listing.Filter) ([]listing.Candidate, error)
	GrantByID(ctx context.Context, id uuid.UUID) (*GrantSnapshot, error)
	UserByEmail(ctx context.Context, email user.Email) (*UserSnapshot, error)
}

type GrantRepository interface {
	// Create persists the grant row and every pinned entry. Callers run it inside Within.
	Create(ctx context.Context, tx sqlc.DBTX, g *grant.Grant) error
	IsPinned(ctx context.Context, tx sqlc.DBTX, grantID, listingID uuid.UUID) (bool, error)
	// RecordView reports whether this was the first view of the listing under the grant.
	RecordView(ctx context.Context, tx sqlc.DBTX, grantID, listingID uuid.UUID, now time.Time) (bool, error)
	// IncrementConsumed reports false when the counter is already at quantity.
	IncrementConsumed(ctx context.Context, tx sqlc.DBTX, grantID uuid.UUID) (bool, error)
	DeactivateExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, now time.Time) error
}
