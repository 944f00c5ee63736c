package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/repository"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// defaultBio is shown when a user never wrote one.
	defaultBio = "No bio yet."

	// publicWishlistLimit caps the wishlist section on a profile page.
	publicWishlistLimit = 12
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo     repository.ProfileRepository
	userRepo        repository.UserRepository
	wishlistUsecase usecase.WishlistUsecase
	logger          *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo     repository.ProfileRepository
	UserRepo        repository.UserRepository
	WishlistUsecase usecase.WishlistUsecase
	Logger          *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo:     params.ProfileRepo,
		userRepo:        params.UserRepo,
		wishlistUsecase: params.WishlistUsecase,
		logger:          params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load builds the display view of a user's profile. A user who never saved a
// profile still gets a complete view built from fallbacks.
func (srv *profileService) Load(ctx context.Context, userID uuid.UUID) (*usecase.ProfileView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to load user for profile view")
	}

	viewerID, _ := deliverycontext.GetUserID(ctx)
	view := &usecase.ProfileView{
		UserID:        userID,
		Nickname:      user.EmailLocalPart(),
		Bio:           defaultBio,
		IsPublic:      true,
		IsOwner:       viewerID == userID,
		WishlistCount: srv.wishlistUsecase.Count(ctx, userID),
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		// A broken profile store degrades to the defaulted view.
		srv.log(ctx).Error("Failed to load profile", slog.Any("userID", userID), slog.Any("error", err))
		err = repository.ErrProfileNotFound
	}
	if err == nil {
		applyProfile(view, profile)
	}

	view.ShowWishlist = view.IsPublic || view.IsOwner
	if view.ShowWishlist {
		view.Wishlist = srv.wishlistUsecase.ListPublic(ctx, userID, publicWishlistLimit)
	}

	return view, nil
}

// LoadForEdit returns the current user's stored profile values verbatim.
func (srv *profileService) LoadForEdit(ctx context.Context) (*usecase.ProfileForm, error) {
	userID, ok := deliverycontext.GetUserID(ctx)
	if !ok {
		return nil, domainerrors.ErrAuthRequired
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			// Never saved; the form starts blank with the default visibility.
			return &usecase.ProfileForm{IsPublic: true}, nil
		}

		return nil, errors.Wrap(err, "failed to load profile for editing")
	}

	return &usecase.ProfileForm{
		Nickname: derefString(profile.Nickname),
		Username: derefString(profile.Username),
		Bio:      derefString(profile.Bio),
		IsPublic: profile.IsPublic,
	}, nil
}

// Save normalizes and persists the current user's profile, then returns the
// refreshed display view.
func (srv *profileService) Save(ctx context.Context, input usecase.SaveProfileInput) (*usecase.ProfileView, error) {
	userID, ok := deliverycontext.GetUserID(ctx)
	if !ok {
		return nil, domainerrors.ErrAuthRequired
	}

	profile := &entity.Profile{
		UserID:   userID,
		Nickname: normalizeOptional(input.Nickname, false),
		Username: normalizeOptional(input.Username, true),
		Bio:      normalizeOptional(input.Bio, false),
		IsPublic: input.IsPublic,
	}

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to save profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile saved", slog.Any("userID", userID))

	return srv.Load(ctx, userID)
}

// applyProfile overlays stored profile values onto the defaulted view.
func applyProfile(view *usecase.ProfileView, profile *entity.Profile) {
	if profile.Nickname != nil && *profile.Nickname != "" {
		view.Nickname = *profile.Nickname
	}
	if profile.Username != nil {
		view.Username = *profile.Username
	}
	if profile.Bio != nil && *profile.Bio != "" {
		view.Bio = *profile.Bio
	}
	view.IsPublic = profile.IsPublic
	view.MemberSinceYear = profile.CreatedAt.Year()
}

// normalizeOptional trims free text and stores blanks as NULL. Usernames are
// additionally lower-cased so handles compare case-insensitively.
func normalizeOptional(value string, lower bool) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if lower {
		trimmed = strings.ToLower(trimmed)
	}

	return &trimmed
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
