package impl

import (
	"context"
	"testing"
	"time"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/domain/service"
	"aurelise/internal/errors"
	mockRepo "aurelise/internal/mocks/repository"
	mockSvc "aurelise/internal/mocks/service"
	mockUC "aurelise/internal/mocks/usecase"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service           usecase.AuthUsecase
	txManager         *mockRepo.MockTransactionManager
	userRepo          *mockRepo.MockUserRepository
	authRepo          *mockRepo.MockAuthRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
	cartUC            *mockUC.MockCartUsecase
	now               time.Time
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fixtures := authServiceFixtures{
		txManager:         mockRepo.NewMockTransactionManager(t),
		userRepo:          mockRepo.NewMockUserRepository(t),
		authRepo:          mockRepo.NewMockAuthRepository(t),
		hasher:            mockSvc.NewMockPasswordHasher(t),
		tokenService:      mockSvc.NewMockTokenService(t),
		googleAuthService: mockSvc.NewMockOAuthAuthService(t),
		cartUC:            mockUC.NewMockCartUsecase(t),
		now:               time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	srv := NewAuthService(AuthServiceParams{
		TxManager:         fixtures.txManager,
		UserRepo:          fixtures.userRepo,
		AuthRepo:          fixtures.authRepo,
		Hasher:            fixtures.hasher,
		TokenService:      fixtures.tokenService,
		GoogleAuthService: fixtures.googleAuthService,
		CartUC:            fixtures.cartUC,
		Logger:            newDiscardLogger(),
	})
	srv.(*authService).now = func() time.Time { return fixtures.now }
	fixtures.service = srv

	return fixtures
}

// expectSignIn sets up token issuance and refresh token storage for userID.
func (fx authServiceFixtures) expectSignIn(userID uuid.UUID, roles []string) {
	fx.tokenService.EXPECT().
		GenerateTokens(userID, roles).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(7 * 24 * time.Hour)
	fx.authRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID &&
				token.TokenHash == hashToken("refresh-token") &&
				token.ExpiresAt.Equal(fx.now.Add(7*24*time.Hour))
		})).
		Return(nil)
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.RegisterInput{
		Email:     "  Claire@Example.com ",
		Password:  "Password123!",
		FirstName: "Claire",
		LastName:  "Dubois",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "claire@example.com").
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Email == "claire@example.com" && user.Profile.Role == entity.RoleCustomer
				})).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = userID
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
					return auth.UserID == userID &&
						auth.Provider == entity.ProviderTypeEmail &&
						auth.PasswordHash == "hashed_password"
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.expectSignIn(userID, []string{"CUSTOMER"})

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{Email: "claire@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewAuthRepository().Return(authRepo)

		authRepo.EXPECT().
			FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "claire@example.com").
			Return(&entity.Authentication{UserID: uuid.New()}, nil)
	})

	output, err := fx.service.Register(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_MergesGuestCart(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.RegisterInput{
		Email:         "claire@example.com",
		Password:      "Password123!",
		CartSessionID: "sess_abcdef123456",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewAuthRepository().Return(authRepo)

		authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, input.Email).Return(nil, repository.ErrAuthNotFound)
		userRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
			Return(nil)
		authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.Anything).Return(nil)
	})
	fx.expectSignIn(userID, []string{"CUSTOMER"})
	fx.cartUC.EXPECT().
		MergeCarts(ctx, userID, "sess_abcdef123456").
		Return(&entity.Cart{}, nil)

	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "admin@example.com", Profile: &entity.Profile{Role: entity.RoleAdmin}}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "admin@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("secret", "hash").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.expectSignIn(userID, []string{"ADMIN"})

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "Admin@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx authServiceFixtures)
	}{
		{
			name: "unknown email",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().
					FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "claire@example.com").
					Return(nil, repository.ErrAuthNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().
					FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "claire@example.com").
					Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hash"}, nil)
				fx.hasher.EXPECT().Check("wrong", "hash").Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			output, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "claire@example.com", Password: "wrong"})
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_GoogleLogin_CreatesUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(&service.OAuthUser{
			ID:            "google-sub",
			Email:         "Claire@Example.com",
			GivenName:     "Claire",
			FamilyName:    "Dubois",
			EmailVerified: true,
		}, nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewAuthRepository().Return(authRepo)

		authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeGoogle, "google-sub").Return(nil, repository.ErrAuthNotFound)
		userRepo.EXPECT().FindByEmail(mock.Anything, "claire@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
				return user.Profile.EmailVerified && user.Profile.FirstName == "Claire"
			})).
			Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
			Return(nil)
		authRepo.EXPECT().
			CreateAuthentication(mock.Anything, mock.MatchedBy(func(auth *entity.Authentication) bool {
				return auth.UserID == userID && auth.Provider == entity.ProviderTypeGoogle && auth.ProviderUserID == "google-sub"
			})).
			Return(nil)
	})
	fx.expectSignIn(userID, []string{"CUSTOMER"})

	output, err := fx.service.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "google-id-token"})
	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_GoogleLogin_LinksExistingEmailAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "claire@example.com"}

	fx.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(&service.OAuthUser{ID: "google-sub", Email: "claire@example.com"}, nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewAuthRepository().Return(authRepo)

		authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeGoogle, "google-sub").Return(nil, repository.ErrAuthNotFound)
		userRepo.EXPECT().FindByEmail(mock.Anything, "claire@example.com").Return(existing, nil)
		authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.Anything).Return(nil)
	})
	fx.expectSignIn(existing.ID, []string{"CUSTOMER"})

	output, err := fx.service.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "google-id-token"})
	require.NoError(t, err)
	assert.Equal(t, existing, output.User)
}

func TestAuthService_GoogleLogin_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.googleAuthService.EXPECT().
		VerifyIDToken(mock.Anything, "bad").
		Return(nil, errors.New("token expired"))

	output, err := fx.service.GoogleLogin(context.Background(), usecase.GoogleLoginInput{IDToken: "bad"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.authRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken("refresh-token")).
		Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fx.now.Add(time.Hour)}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Profile: &entity.Profile{Role: entity.RoleCustomer}}, nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(userID, []string{"CUSTOMER"}).
		Return("new-access-token", nil)

	output, err := fx.service.RefreshToken(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestAuthService_RefreshToken_Rejected(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name  string
		setup func(fx authServiceFixtures)
	}{
		{
			name: "access token presented",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("token").Return(&service.Claims{UserID: userID, Type: "access"}, nil)
			},
		},
		{
			name: "revoked",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("token").Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
				fx.authRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, hashToken("token")).Return(nil, repository.ErrTokenNotFound)
			},
		},
		{
			name: "expired",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("token").Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
				fx.authRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, hashToken("token")).
					Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fx.now}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			output, err := fx.service.RefreshToken(context.Background(), "token")
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
		})
	}
}

func TestAuthService_Logout_UnknownTokenIsNoop(t *testing.T) {
	fx := createTestAuthService(t)

	fx.authRepo.EXPECT().
		DeleteRefreshTokenByHash(mock.Anything, hashToken("refresh-token")).
		Return(repository.ErrTokenNotFound)

	assert.NoError(t, fx.service.Logout(context.Background(), "refresh-token"))
}
