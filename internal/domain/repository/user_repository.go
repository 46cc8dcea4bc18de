package repository

import (
	"context"

	"salesapi/internal/domain/entity"
	"salesapi/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user account persistence.
type UserRepository interface {
	// FindByLogin retrieves a single user by their unique login name.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// Create persists a new user. Implementations must reject a duplicate
	// login with the domain duplicate-login error.
	Create(ctx context.Context, user *entity.User) error
}
