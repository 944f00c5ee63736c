package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims carries the validated identity extracted from a token.
type TokenClaims struct {
	UserID uuid.UUID // Subject of the token.
	Type   string    // "access" or "refresh".
}

// TokenService abstracts the issuing and validation of session tokens.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*TokenClaims, error)

	// HashToken returns the hash under which a refresh token is persisted.
	HashToken(tokenString string) string

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
