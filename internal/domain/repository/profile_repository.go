package repository

import (
	"context"
	"errors"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile row exists for a user.
// Callers treat it as "use defaults", not as a failure.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the persistence operations for user profiles.
// Exactly one row exists per user once saved.
type ProfileRepository interface {
	// FindByUserID retrieves the profile row for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Upsert creates the profile row on first save and fully overwrites it
	// on subsequent saves.
	Upsert(ctx context.Context, profile *entity.Profile) error
}
