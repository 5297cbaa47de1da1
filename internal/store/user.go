package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"leaseline.app/server/core/db/sqlc"
	"leaseline.app/server/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Phone: user.Phone,
	})
	if err != nil {
		return err
	}
	*user = *toUserModel(row)
	return nil
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Phone:     row.Phone,
		CreatedAt: row.CreatedAt.Time,
	}
}
