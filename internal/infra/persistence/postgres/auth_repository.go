package postgres

import (
	"context"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// authRepository is the concrete implementation of the AuthRepository interface.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthentication persists a new credential.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthenticationDomain(auth)

	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("credential already linked")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt

	return nil
}

// FindAuthentication retrieves a credential by provider and provider-specific ID.
func (repo *authRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", string(provider), providerUserID).
		First(&authM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return toAuthenticationDomain(&authM), nil
}

// CreateRefreshToken persists a new session.
func (repo *authRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := &model.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindRefreshTokenByHash retrieves a session by its token hash.
func (repo *authRepository) FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	return &entity.RefreshToken{
		ID:        tokenM.ID,
		UserID:    tokenM.UserID,
		TokenHash: tokenM.TokenHash,
		ExpiresAt: tokenM.ExpiresAt,
		CreatedAt: tokenM.CreatedAt,
	}, nil
}

// DeleteRefreshTokenByHash ends a session.
func (repo *authRepository) DeleteRefreshTokenByHash(ctx context.Context, hash string) error {
	result := repo.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAuthenticationDomain(data *model.AuthenticationModel) *entity.Authentication {
	if data == nil {
		return nil
	}

	return &entity.Authentication{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       entity.ProviderType(data.Provider),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}

func fromAuthenticationDomain(data *entity.Authentication) *model.AuthenticationModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       string(data.Provider),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}
