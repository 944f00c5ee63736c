package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/repository"
	mockRepo "gamevault/internal/mocks/repository"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service      usecase.ProfileUsecase
	profileRepo  *mockRepo.MockProfileRepository
	userRepo     *mockRepo.MockUserRepository
	wishlistRepo *mockRepo.MockWishlistRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	t.Helper()

	profileRepo := new(mockRepo.MockProfileRepository)
	userRepo := new(mockRepo.MockUserRepository)
	wishlistRepo := new(mockRepo.MockWishlistRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	wishlistUsecase := NewWishlistService(WishlistServiceParams{
		WishlistRepo: wishlistRepo,
		Logger:       logger,
	})
	service := NewProfileService(ProfileServiceParams{
		ProfileRepo:     profileRepo,
		UserRepo:        userRepo,
		WishlistUsecase: wishlistUsecase,
		Logger:          logger,
	})

	return profileServiceFixtures{
		service:      service,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		wishlistRepo: wishlistRepo,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestProfileService_Load_NoRowUsesDefaults(t *testing.T) {
	fx := createTestProfileService(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	fx.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "gamer42@example.com"}, nil)
	fx.profileRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.wishlistRepo.On("CountByUserID", ctx, userID).Return(0, nil)
	fx.wishlistRepo.On("FindByUserIDLimit", ctx, userID, 12).Return([]*entity.WishlistEntry{}, nil)

	view, err := fx.service.Load(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "gamer42", view.Nickname)
	assert.Equal(t, "No bio yet.", view.Bio)
	assert.Empty(t, view.Username)
	assert.Zero(t, view.MemberSinceYear)
	assert.Zero(t, view.WishlistCount)
	assert.True(t, view.IsOwner)
	assert.True(t, view.ShowWishlist)
}

func TestProfileService_Load_StoredValuesOverrideDefaults(t *testing.T) {
	fx := createTestProfileService(t)
	userID := uuid.New()
	ctx := authedContext(userID)
	created := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	fx.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "gamer42@example.com"}, nil)
	fx.profileRepo.On("FindByUserID", ctx, userID).Return(&entity.Profile{
		UserID:    userID,
		Nickname:  strPtr("The Collector"),
		Username:  strPtr("collector"),
		Bio:       strPtr("I hoard roguelikes."),
		IsPublic:  true,
		CreatedAt: created,
	}, nil)
	fx.wishlistRepo.On("CountByUserID", ctx, userID).Return(3, nil)
	fx.wishlistRepo.On("FindByUserIDLimit", ctx, userID, 12).Return([]*entity.WishlistEntry{}, nil)

	view, err := fx.service.Load(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "The Collector", view.Nickname)
	assert.Equal(t, "collector", view.Username)
	assert.Equal(t, "I hoard roguelikes.", view.Bio)
	assert.Equal(t, 2023, view.MemberSinceYear)
	assert.Equal(t, 3, view.WishlistCount)
}

func TestProfileService_Load_PrivateProfileHidesWishlistFromOthers(t *testing.T) {
	fx := createTestProfileService(t)
	ownerID := uuid.New()
	viewerID := uuid.New()
	ctx := authedContext(viewerID)

	fx.userRepo.On("FindByID", ctx, ownerID).
		Return(&entity.User{ID: ownerID, Email: "owner@example.com"}, nil)
	fx.profileRepo.On("FindByUserID", ctx, ownerID).Return(&entity.Profile{
		UserID:   ownerID,
		IsPublic: false,
	}, nil)
	fx.wishlistRepo.On("CountByUserID", ctx, ownerID).Return(2, nil)

	view, err := fx.service.Load(ctx, ownerID)

	require.NoError(t, err)
	assert.False(t, view.IsOwner)
	assert.False(t, view.ShowWishlist)
	assert.Empty(t, view.Wishlist)
	fx.wishlistRepo.AssertNotCalled(t, "FindByUserIDLimit")
}

func TestProfileService_Load_OwnerAlwaysSeesWishlist(t *testing.T) {
	fx := createTestProfileService(t)
	ownerID := uuid.New()
	ctx := authedContext(ownerID)

	fx.userRepo.On("FindByID", ctx, ownerID).
		Return(&entity.User{ID: ownerID, Email: "owner@example.com"}, nil)
	fx.profileRepo.On("FindByUserID", ctx, ownerID).Return(&entity.Profile{
		UserID:   ownerID,
		IsPublic: false,
	}, nil)
	fx.wishlistRepo.On("CountByUserID", ctx, ownerID).Return(1, nil)
	fx.wishlistRepo.On("FindByUserIDLimit", ctx, ownerID, 12).Return([]*entity.WishlistEntry{
		{UserID: ownerID, GameID: 42, Game: &entity.Game{ID: 42}},
	}, nil)

	view, err := fx.service.Load(ctx, ownerID)

	require.NoError(t, err)
	assert.True(t, view.ShowWishlist)
	assert.Len(t, view.Wishlist, 1)
}

func TestProfileService_Load_UnknownUser(t *testing.T) {
	fx := createTestProfileService(t)
	userID := uuid.New()
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Load(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_Load_ProfileStoreFailureDegradesToDefaults(t *testing.T) {
	fx := createTestProfileService(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	fx.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "gamer42@example.com"}, nil)
	fx.profileRepo.On("FindByUserID", ctx, userID).Return(nil, errors.New("connection reset"))
	fx.wishlistRepo.On("CountByUserID", ctx, userID).Return(0, nil)
	fx.wishlistRepo.On("FindByUserIDLimit", ctx, userID, 12).Return([]*entity.WishlistEntry{}, nil)

	view, err := fx.service.Load(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "gamer42", view.Nickname)
	assert.Equal(t, "No bio yet.", view.Bio)
}

func TestProfileService_LoadForEdit_NoRowYieldsBlankForm(t *testing.T) {
	fx := createTestProfileService(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	fx.profileRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrProfileNotFound)

	form, err := fx.service.LoadForEdit(ctx)

	require.NoError(t, err)
	assert.Empty(t, form.Nickname)
	assert.Empty(t, form.Username)
	assert.Empty(t, form.Bio)
	assert.True(t, form.IsPublic)
}

func TestProfileService_LoadForEdit_RawValuesNoDefaulting(t *testing.T) {
	fx := createTestProfileService(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	fx.profileRepo.On("FindByUserID", ctx, userID).Return(&entity.Profile{
		UserID:   userID,
		Username: strPtr("collector"),
		IsPublic: false,
	}, nil)

	form, err := fx.service.LoadForEdit(ctx)

	require.NoError(t, err)
	// No nickname fallback here; the form shows exactly what is stored.
	assert.Empty(t, form.Nickname)
	assert.Equal(t, "collector", form.Username)
	assert.Empty(t, form.Bio)
	assert.False(t, form.IsPublic)
}

func TestProfileService_LoadForEdit_Anonymous(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.LoadForEdit(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestProfileService_Save_NormalizesFields(t *testing.T) {
	fx := createTestProfileService(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	fx.profileRepo.On("Upsert", ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.UserID == userID &&
			p.Nickname != nil && *p.Nickname == "The Collector" &&
			p.Username != nil && *p.Username == "collector" &&
			p.Bio == nil &&
			p.IsPublic
	})).Return(nil)
	fx.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "gamer42@example.com"}, nil)
	fx.profileRepo.On("FindByUserID", ctx, userID).Return(&entity.Profile{
		UserID:    userID,
		Nickname:  strPtr("The Collector"),
		Username:  strPtr("collector"),
		IsPublic:  true,
		CreatedAt: time.Now(),
	}, nil)
	fx.wishlistRepo.On("CountByUserID", ctx, userID).Return(0, nil)
	fx.wishlistRepo.On("FindByUserIDLimit", ctx, userID, 12).Return([]*entity.WishlistEntry{}, nil)

	view, err := fx.service.Save(ctx, usecase.SaveProfileInput{
		Nickname: "  The Collector  ",
		Username: "  Collector ",
		Bio:      "   ",
		IsPublic: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "The Collector", view.Nickname)
	assert.Equal(t, "collector", view.Username)
	fx.profileRepo.AssertExpectations(t)
}

func TestProfileService_Save_Anonymous(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.Save(context.Background(), usecase.SaveProfileInput{Nickname: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
	fx.profileRepo.AssertNotCalled(t, "Upsert")
}
