package readstore

import (
	"context"

	"github.com/google/uuid"

	"roomfinder/internal/infra"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/pkg/pgconv"
	"roomfinder/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	readModel := toAuthorizedUserViewFromFindByIDRow(row)
	return readModel, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	readModel := toAuthorizedUserViewFromFindByIDRow(sqlc.FindUserByIDRow{
		ID:        row.ID,
		FullName:  row.FullName,
		Email:     row.Email,
		Role:      row.Role,
		Phone:     row.Phone,
		Points:    row.Points,
		IsActive:  row.IsActive,
		LastLogin: row.LastLogin,
		CreatedAt: row.CreatedAt,
	})
	return readModel, row.PasswordHash, nil
}

func toAuthorizedUserViewFromFindByIDRow(row sqlc.FindUserByIDRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        row.ID,
		FullName:  row.FullName,
		Email:     row.Email,
		Role:      row.Role,
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Points:    int(row.Points),
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
