package postgres

import (
	"context"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByUser lists a user's addresses, default first.
func (repo *addressRepository) FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// UpdateAddress writes every editable column of the address.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"street":     address.Street,
			"city":       address.City,
			"county":     address.County,
			"postcode":   address.Postcode,
			"country":    address.Country,
			"type":       string(address.Type),
			"is_default": address.IsDefault,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// ClearDefault unsets is_default on every other address of the user.
func (repo *addressRepository) ClearDefault(ctx context.Context, userID, keepID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ? AND id <> ? AND is_default = ?", userID, keepID, true).
		Update("is_default", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear default address")
	}

	return nil
}

// --- Mapper Functions ---

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:        data.ID,
		UserID:    data.UserID,
		Street:    data.Street,
		City:      data.City,
		County:    data.County,
		Postcode:  data.Postcode,
		Country:   data.Country,
		Type:      entity.AddressType(data.Type),
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Street:    data.Street,
		City:      data.City,
		County:    data.County,
		Postcode:  data.Postcode,
		Country:   data.Country,
		Type:      string(data.Type),
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
