package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/snapfest/snapfest/internal/errs"
	"github.com/snapfest/snapfest/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// GetByEmail selects a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT email, name, mobile, role, created_events
FROM users WHERE email=$1`
	row := r.db.Pool.QueryRow(ctx, q, email)
	var u model.User
	if err := row.Scan(&u.Email, &u.Name, &u.Mobile, &u.Role, &u.CreatedEvents); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Upsert writes the full user record. Role and created_events are
// replaced wholesale; concurrent writers race with last write winning.
func (r *UserRepo) Upsert(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (email, name, mobile, role, created_events)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO UPDATE
SET name=$2, mobile=$3, role=$4, created_events=$5`
	_, err := r.db.Pool.Exec(ctx, q, u.Email, u.Name, u.Mobile, string(u.Role), u.CreatedEvents)
	return err
}
