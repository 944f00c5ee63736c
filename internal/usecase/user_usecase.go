// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gamevault/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the tokens established for a session together with the
// authenticated user.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and opens a session for it.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and opens a session.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Logout ends the session identified by the refresh token. An invalid
	// or already-revoked token is not an error; logout never fails the user.
	Logout(ctx context.Context, refreshToken string) error

	// Refresh rotates a valid refresh token into a fresh session.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// LogoutAll revokes every session of the current user.
	LogoutAll(ctx context.Context) error

	// CurrentUser resolves the logged-in user from the request context.
	// Anonymous requests return (nil, nil), never an error.
	CurrentUser(ctx context.Context) (*entity.User, error)

	// CleanupExpiredSessions removes all expired sessions from the store.
	CleanupExpiredSessions(ctx context.Context) error
}
