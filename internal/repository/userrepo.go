// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/snapfest/snapfest/internal/model"
)

// UserRepository provides access to user records keyed by email.
type UserRepository interface {
	// GetByEmail loads a user by email. Returns errs.ErrNotFound when no
	// record exists for the identifier.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Upsert writes the full user record, replacing role and
	// createdEvents wholesale (last write wins, no read-modify lock).
	Upsert(ctx context.Context, u *model.User) error
}
