package usecase

import (
	"context"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SaveProfileInput carries the editable profile fields as submitted. Free
// text arrives untrimmed; normalization happens in the use case.
type SaveProfileInput struct {
	Nickname string
	Username string
	Bio      string
	IsPublic bool
}

// --- Output DTOs ---

// ProfileView is the fully defaulted, display-ready projection of a profile.
type ProfileView struct {
	UserID          uuid.UUID
	Nickname        string // Defaults to the email local part.
	Username        string // Empty when never set.
	Bio             string // Defaults to a placeholder.
	IsPublic        bool
	IsOwner         bool // Whether the viewer is the profile owner.
	MemberSinceYear int  // 0 when the profile row was never saved.
	WishlistCount   int
	ShowWishlist    bool // Visibility of the wishlist section to this viewer.
	Wishlist        []*entity.Game
}

// ProfileForm carries the raw stored values for the edit form, without any
// display defaulting. An absent row yields a zero-valued form.
type ProfileForm struct {
	Nickname string
	Username string
	Bio      string
	IsPublic bool
}

// ProfileUsecase defines the profile operations. The viewer is resolved from
// the request context.
type ProfileUsecase interface {
	// Load builds the display view of a user's profile, applying fallbacks
	// for unset fields and the wishlist visibility rule. A user without a
	// profile row still gets a complete defaulted view.
	Load(ctx context.Context, userID uuid.UUID) (*ProfileView, error)

	// LoadForEdit returns the current user's stored profile values verbatim.
	LoadForEdit(ctx context.Context) (*ProfileForm, error)

	// Save normalizes and persists the current user's profile, then returns
	// the refreshed display view.
	Save(ctx context.Context, input SaveProfileInput) (*ProfileView, error)
}
