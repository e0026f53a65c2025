package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"booking-api/internal/model"
	"booking-api/internal/store"
)

func (s *UserTokenStore) Generate(ctx context.Context, userID string) (*model.UserToken, error) {
	t := &model.UserToken{
		ID:     uuid.New().String(),
		UserID: userID,
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO user_tokens (id, user_id) VALUES ($1,$2) RETURNING created_at`,
		t.ID, t.UserID,
	).Scan(&t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *UserTokenStore) FindByID(ctx context.Context, id string) (*model.UserToken, error) {
	t := &model.UserToken{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, created_at FROM user_tokens WHERE id = $1`, id,
	).Scan(&t.ID, &t.UserID, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
