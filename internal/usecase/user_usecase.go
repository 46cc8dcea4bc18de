package usecase

import (
	"context"

	"salesapi/internal/domain/entity"
)

// CreateUserInput defines the data required to create a salesperson account.
type CreateUserInput struct {
	Login    string `json:"login" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// LoginInput defines the data required to authenticate.
type LoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the bearer token issued after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// UserUsecase defines the contract for account management and authentication.
type UserUsecase interface {
	// Register creates a new account, rejecting duplicate logins. The stored
	// credential is always a hash, never the supplied plaintext.
	Register(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// Login verifies the credential and issues a time-limited bearer token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentUser resolves the identity attached to the execution context.
	// It returns (nil, nil) when the request is anonymous or the identity no
	// longer matches a stored account.
	CurrentUser(ctx context.Context) (*entity.User, error)
}
