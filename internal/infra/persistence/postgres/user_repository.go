package postgres

import (
	"context"
	"time"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository is the concrete implementation of the UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user with its profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user with its profile by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and its profile.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil && userM.Profile != nil {
		user.Profile.UserID = userM.ID
		user.Profile.CreatedAt = userM.Profile.CreatedAt
		user.Profile.UpdatedAt = userM.Profile.UpdatedAt
	}

	return nil
}

// UpdateProfile writes the editable profile fields.
func (repo *userRepository) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
			"phone":      profile.Phone,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateRole changes the role stored on the profile.
func (repo *userRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Update("role", role.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindRole returns the stored role of a user.
func (repo *userRepository) FindRole(ctx context.Context, userID uuid.UUID) (entity.Role, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Select("role").
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to find role")
	}

	return entity.Role(profileM.Role), nil
}

type customerRow struct {
	UserID        uuid.UUID
	Email         string
	FirstName     string
	LastName      string
	Phone         string
	EmailVerified bool
	OrderCount    int64
	CreatedAt     time.Time
}

// ListCustomers returns customer profiles with order counts in a single grouped query.
func (repo *userRepository) ListCustomers(ctx context.Context) ([]*entity.CustomerSummary, error) {
	var rows []customerRow

	if err := repo.db.WithContext(ctx).
		Table("profiles AS p").
		Select("p.user_id, u.email, p.first_name, p.last_name, p.phone, p.email_verified, "+
			"COUNT(o.id) AS order_count, p.created_at").
		Joins("JOIN users u ON u.id = p.user_id").
		Joins("LEFT JOIN orders o ON o.user_id = p.user_id").
		Where("p.role = ?", entity.RoleCustomer.String()).
		Group("p.user_id, u.email, p.first_name, p.last_name, p.phone, p.email_verified, p.created_at").
		Order("p.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.CustomerSummary, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, &entity.CustomerSummary{
			UserID:        row.UserID,
			Email:         row.Email,
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			Phone:         row.Phone,
			EmailVerified: row.EmailVerified,
			OrderCount:    row.OrderCount,
			CreatedAt:     row.CreatedAt,
		})
	}

	return customers, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Profile:   toProfileDomain(data.Profile),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Email:     data.Email,
		Profile:   fromProfileDomain(data.Profile),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:        data.UserID,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Phone:         data.Phone,
		Role:          entity.Role(data.Role),
		EmailVerified: data.EmailVerified,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}
	role := data.Role
	if role == "" {
		role = entity.RoleCustomer
	}

	return &model.ProfileModel{
		UserID:        data.UserID,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Phone:         data.Phone,
		Role:          role.String(),
		EmailVerified: data.EmailVerified,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
