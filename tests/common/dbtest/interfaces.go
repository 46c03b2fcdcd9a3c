//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GrantRow is the stored counter and flag of a grant, read behind the API's back.
type GrantRow struct {
	Consumed int
	Active   bool
}

func LoadGrant(t *testing.T, db DBLike, grantID uuid.UUID) GrantRow {
	t.Helper()

	var g GrantRow
	err := db.QueryRow(context.Background(),
		"SELECT consumed, active FROM grants WHERE id = $1", grantID).Scan(&g.Consumed, &g.Active)
	require.NoError(t, err)
	return g
}

// ExpireGrant moves a grant's window into the past without touching its active flag,
// leaving the deactivation to the sweeper.
func ExpireGrant(t *testing.T, db DBLike, grantID uuid.UUID, ago time.Duration) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE grants SET created_at = $2, expires_at = $3 WHERE id = $1",
		grantID, time.Now().Add(-ago-72*time.Hour), time.Now().Add(-ago))
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected())
}
