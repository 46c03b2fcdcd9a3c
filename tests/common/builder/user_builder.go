//go:build unit || e2e

package builder

import (
	"time"

	"roomfinder/internal/domain/user"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		FullName:     "Test Taker",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         string(user.RoleTaker),
		Phone:        "+91 98765 43210",
		IsActive:     true,
		CreatedAt:    time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	fullName, err := user.NewFullName(u.FullName)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	return user.NewUser(fullName, email, u.PasswordHash, role, phone, u.CreatedAt), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Phone:        pgtype.Text{String: u.Phone, Valid: u.Phone != ""},
		IsActive:     u.IsActive,
		LastLogin:    pgtype.Timestamptz{},
		CreatedAt:    pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
	}
}

func (u *UserBuilder) BuildInfraRow() sqlc.FindUserByIDRow {
	return sqlc.FindUserByIDRow{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     pgtype.Text{String: u.Phone, Valid: u.Phone != ""},
		IsActive:  u.IsActive,
		CreatedAt: pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	var phone *string
	if u.Phone != "" {
		p := u.Phone
		phone = &p
	}
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     phone,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = string(role)
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithoutPhone() *UserBuilder {
	u.Phone = ""
	return u
}

func (u *UserBuilder) AsSeller() *UserBuilder {
	u.Role = string(user.RoleSeller)
	u.FullName = "Test Seller"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
