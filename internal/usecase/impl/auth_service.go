// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/domain/service"
	"aurelise/internal/errors"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	cartUC            usecase.CartUsecase
	logger            *slog.Logger
	now               func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	AuthRepo          repository.AuthRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	CartUC            usecase.CartUsecase
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		cartUC:            params.CartUC,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account, its email credential and a customer profile in one transaction.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Email: email,
		Profile: &entity.Profile{
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
			Phone:     strings.TrimSpace(input.Phone),
			Role:      entity.RoleCustomer,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		if _, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		return errors.Wrap(authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   passwordHash,
		}), "failed to create authentication")
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return srv.signIn(ctx, newUser, input.CartSessionID)
}

// Login verifies email and password and opens a session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return srv.signIn(ctx, user, input.CartSessionID)
}

// GoogleLogin signs in with a Google ID token, linking or creating the account.
func (srv *authService) GoogleLogin(ctx context.Context, input usecase.GoogleLoginInput) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)

		return findErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute google login transaction")
	}

	return srv.signIn(ctx, user, input.CartSessionID)
}

func (srv *authService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	userRepo := repoFactory.NewUserRepository()
	authRepo := repoFactory.NewAuthRepository()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err == nil {
		return userRepo.FindByID(ctx, authRecord.UserID)
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(oauthUser.Email)

	// An email account with the same address gets the Google credential linked.
	user, err := userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", email))
		user = &entity.User{
			Email: email,
			Profile: &entity.Profile{
				FirstName:     oauthUser.GivenName,
				LastName:      oauthUser.FamilyName,
				Role:          entity.RoleCustomer,
				EmailVerified: true,
			},
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user for Google authentication")
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by email")
	default:
		srv.log(ctx).Info("Linking Google account to existing user", slog.Any("userID", user.ID))
	}

	if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create Google authentication")
	}

	return user, nil
}

// RefreshToken issues a new access token. The refresh token itself is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	stored, err := srv.authRepo.FindRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.IsExpired(srv.now()) || stored.UserID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired")
	}

	user, err := srv.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, entity.Roles{user.RoleOf()}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// Logout ends the session bound to the refresh token.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.authRepo.DeleteRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// signIn issues tokens, stores the hashed refresh token and folds in the guest cart.
func (srv *authService) signIn(ctx context.Context, user *entity.User, cartSessionID string) (*usecase.AuthOutput, error) {
	roles := entity.Roles{user.RoleOf()}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.authRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token")
	}

	if cartSessionID != "" && entity.IsValidSessionID(cartSessionID) {
		if _, err := srv.cartUC.MergeCarts(ctx, user.ID, cartSessionID); err != nil {
			srv.log(ctx).Warn("Failed to merge guest cart", slog.Any("userID", user.ID), slog.Any("error", err))
		}
	}

	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// userIDPtr returns a pointer to a copy of id.
func userIDPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
