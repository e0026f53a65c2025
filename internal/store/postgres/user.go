package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"booking-api/internal/model"
	"booking-api/internal/store"
)

func (s *UserStore) Create(ctx context.Context, u *model.User) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash, avatar)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING created_at, updated_at`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Avatar,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if isUniqueViolation(err) {
		return store.ErrConflict
	}
	return err
}

func (s *UserStore) Save(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET name=$1, email=$2, password_hash=$3, avatar=$4, updated_at=NOW()
		 WHERE id=$5`,
		u.Name, u.Email, u.PasswordHash, u.Avatar, u.ID,
	)
	if isUniqueViolation(err) {
		return store.ErrConflict
	}
	return err
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	return s.scanUser(s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, avatar, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	))
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.scanUser(s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, avatar, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	))
}

func (s *UserStore) ListProviders(ctx context.Context, exceptID string) ([]model.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, password_hash, avatar, created_at, updated_at
		 FROM users WHERE id != $1 ORDER BY name`, exceptID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Avatar,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *UserStore) scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Avatar,
		&u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

