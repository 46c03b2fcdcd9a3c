package converter

import (
	"roomfinder/internal/domain/user"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	phone := pgtype.Text{}
	if !u.Phone().IsZero() {
		phone = pgtype.Text{String: u.Phone().Value(), Valid: true}
	}
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		FullName:     u.FullName().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Phone:        phone,
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}
