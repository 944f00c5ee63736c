package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/repository"
	"gamevault/internal/domain/service"
	mockRepo "gamevault/internal/mocks/repository"
	mockService "gamevault/internal/mocks/service"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	txManager := new(mockRepo.MockTransactionManager)
	userRepo := new(mockRepo.MockUserRepository)
	refreshTokenRepo := new(mockRepo.MockRefreshTokenRepository)
	hasher := new(mockService.MockPasswordHasher)
	tokenService := new(mockService.MockTokenService)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           logger,
	})

	return userServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func expectSession(fx userServiceFixtures, userID uuid.UUID) {
	fx.tokenService.On("GenerateTokens", userID).Return("access-token", "refresh-token", nil)
	fx.tokenService.On("HashToken", "refresh-token").Return("hashed-refresh")
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.On("CreateRefreshToken", mock.Anything, mock.MatchedBy(func(tok *entity.RefreshToken) bool {
		return tok.UserID == userID && tok.TokenHash == "hashed-refresh" && tok.ExpiresAt.After(time.Now())
	})).Return(nil)
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.On("Hash", "sup3rsecret").Return("bcrypt-hash", nil)
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := new(mockRepo.MockRepositoryFactory)
			txUserRepo := new(mockRepo.MockUserRepository)
			factory.On("UserRepo").Return(txUserRepo)
			txUserRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
			txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User"), "bcrypt-hash").
				Run(func(args mock.Arguments) {
					args.Get(1).(*entity.User).ID = userID
				}).
				Return(nil)

			_ = fn(factory)
		}).
		Return(nil)
	expectSession(fx, userID)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "new@example.com", Password: "sup3rsecret"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, "new@example.com", out.User.Email)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "sup3rsecret").Return("bcrypt-hash", nil)
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "taken@example.com", Password: "sup3rsecret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	fx.tokenService.AssertNotCalled(t, "GenerateTokens")
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "gamer@example.com"}

	fx.userRepo.On("FindCredentialsByEmail", ctx, "gamer@example.com").Return(user, "stored-hash", nil)
	fx.hasher.On("Check", "sup3rsecret", "stored-hash").Return(true)
	expectSession(fx, userID)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "gamer@example.com", Password: "sup3rsecret"})

	require.NoError(t, err)
	assert.Equal(t, user, out.User)
	assert.Equal(t, "access-token", out.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "gamer@example.com"}

	fx.userRepo.On("FindCredentialsByEmail", ctx, "gamer@example.com").Return(user, "stored-hash", nil)
	fx.hasher.On("Check", "wrong", "stored-hash").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "gamer@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindCredentialsByEmail", ctx, "ghost@example.com").
		Return(nil, "", repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Logout_NeverFails(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.On("HashToken", "refresh-token").Return("hashed-refresh")
	fx.refreshTokenRepo.On("DeleteRefreshTokenByHash", ctx, "hashed-refresh").
		Return(repository.ErrRefreshTokenNotFound)

	require.NoError(t, fx.service.Logout(ctx, "refresh-token"))
	require.NoError(t, fx.service.Logout(ctx, ""))
}

func TestUserService_Refresh_RotatesSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "gamer@example.com"}

	fx.tokenService.On("ValidateRefreshToken", "old-refresh").
		Return(&service.TokenClaims{UserID: userID, Type: "refresh"}, nil)

	fx.tokenService.On("HashToken", "old-refresh").Return("old-hash")
	fx.refreshTokenRepo.On("FindRefreshTokenByHash", ctx, "old-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-hash", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.refreshTokenRepo.On("DeleteRefreshTokenByHash", ctx, "old-hash").Return(nil)
	expectSession(fx, userID)

	out, err := fx.service.Refresh(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	fx.refreshTokenRepo.AssertExpectations(t)
}

func TestUserService_Refresh_UnknownToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.On("ValidateRefreshToken", "old-refresh").
		Return(&service.TokenClaims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.On("HashToken", "old-refresh").Return("old-hash")
	fx.refreshTokenRepo.On("FindRefreshTokenByHash", ctx, "old-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.Refresh(ctx, "old-refresh")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_CurrentUser(t *testing.T) {
	fx := createTestUserService(t)
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "gamer@example.com"}
	ctx := deliverycontext.WithUserID(context.Background(), userID)

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	got, err := fx.service.CurrentUser(ctx)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_CurrentUser_AnonymousAndStale(t *testing.T) {
	fx := createTestUserService(t)

	// Anonymous context.
	got, err := fx.service.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)

	// Stale session pointing at a deleted account degrades to anonymous.
	userID := uuid.New()
	ctx := deliverycontext.WithUserID(context.Background(), userID)
	fx.userRepo.On("FindByID", ctx, userID).Return(nil, errors.New("gone"))

	got, err = fx.service.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserService_LogoutAll(t *testing.T) {
	fx := createTestUserService(t)
	userID := uuid.New()
	ctx := deliverycontext.WithUserID(context.Background(), userID)

	fx.refreshTokenRepo.On("DeleteRefreshTokensByUserID", ctx, userID).Return(nil)

	require.NoError(t, fx.service.LogoutAll(ctx))
	fx.refreshTokenRepo.AssertExpectations(t)

	// Anonymous callers have no sessions to revoke.
	err := fx.service.LogoutAll(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestUserService_CleanupExpiredSessions(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.refreshTokenRepo.On("DeleteExpiredRefreshTokens", ctx).Return(nil).Once()

	require.NoError(t, fx.service.CleanupExpiredSessions(ctx))

	fx.refreshTokenRepo.On("DeleteExpiredRefreshTokens", ctx).Return(errors.New("db down"))

	assert.Error(t, fx.service.CleanupExpiredSessions(ctx))
}
