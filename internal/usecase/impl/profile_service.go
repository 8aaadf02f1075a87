// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	addressRepo  repository.AddressRepository
	productRepo  repository.ProductRepository
	wishlistRepo repository.WishlistRepository
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AddressRepo  repository.AddressRepository
	ProductRepo  repository.ProductRepository
	WishlistRepo repository.WishlistRepository
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		addressRepo:  params.AddressRepo,
		productRepo:  params.ProductRepo,
		wishlistRepo: params.WishlistRepo,
		logger:       params.Logger,
	}
}

// GetProfile retrieves the user with their profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.logger.Debug("Getting user profile", "userID", userID)

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile updates the given profile fields and returns the fresh user.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.logger.Info("Updating user profile", "userID", userID)

	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := user.Profile
	if profile == nil {
		profile = &entity.Profile{UserID: userID, Role: entity.RoleCustomer}
	}
	if input.FirstName != nil {
		profile.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		profile.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		profile.Phone = strings.TrimSpace(*input.Phone)
	}
	profile.UpdatedAt = time.Now()

	if err := srv.userRepo.UpdateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}
	user.Profile = profile

	return user, nil
}

// ListAddresses lists the user's saved addresses, default first.
func (srv *profileService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress saves a new address for the user.
func (srv *profileService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	if err := normalizeAddressInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	address := &entity.Address{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
	}
	applyAddressInput(address, input, now)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
		if address.IsDefault {
			return errors.Wrap(addressRepo.ClearDefault(ctx, userID, address.ID), "failed to clear default address")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create address transaction")
	}

	srv.logger.Info("Address created", "userID", userID, "addressID", address.ID)

	return address, nil
}

// UpdateAddress overwrites one of the user's addresses.
func (srv *profileService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	if err := normalizeAddressInput(input); err != nil {
		return nil, err
	}

	var address *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		existing, err := ownedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}
		applyAddressInput(existing, input, time.Now())

		if err := addressRepo.UpdateAddress(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		if existing.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID, existing.ID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}
		address = existing

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update address transaction")
	}

	return address, nil
}

// DeleteAddress removes one of the user's addresses.
func (srv *profileService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if _, err := ownedAddress(ctx, srv.addressRepo, userID, addressID); err != nil {
		return err
	}

	if err := srv.addressRepo.DeleteAddress(ctx, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to delete address")
	}

	srv.logger.Info("Address deleted", "userID", userID, "addressID", addressID)

	return nil
}

// GetWishlist lists the user's saved products.
func (srv *profileService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	items, err := srv.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return items, nil
}

// AddToWishlist saves a product for the user.
func (srv *profileService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistItem, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	item := &entity.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Product:   product,
		CreatedAt: time.Now(),
	}
	if err := srv.wishlistRepo.AddItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrWishlistItemExists) {
			return nil, domainerrors.ErrWishlistDuplicate
		}

		return nil, errors.Wrap(err, "failed to add wishlist item")
	}

	return item, nil
}

// RemoveFromWishlist drops a saved product.
func (srv *profileService) RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.wishlistRepo.RemoveItem(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrWishlistItemNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to remove wishlist item")
	}

	return nil
}

func ownedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.UserID != userID {
		return nil, domainerrors.ErrAddressNotFound
	}

	return address, nil
}

func normalizeAddressInput(input *usecase.AddressInput) error {
	input.Street = strings.TrimSpace(input.Street)
	input.City = strings.TrimSpace(input.City)
	input.Postcode = strings.TrimSpace(input.Postcode)
	if input.Street == "" || input.City == "" || input.Postcode == "" {
		return domainerrors.ErrValidationFailed.WithDetails("street, city and postcode are required")
	}
	if input.Country == "" {
		input.Country = "United Kingdom"
	}
	if input.Type == "" {
		input.Type = entity.AddressTypeHome
	}
	if !input.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("type must be HOME, WORK or OTHER")
	}

	return nil
}

func applyAddressInput(address *entity.Address, input *usecase.AddressInput, now time.Time) {
	address.Street = input.Street
	address.City = input.City
	address.County = strings.TrimSpace(input.County)
	address.Postcode = input.Postcode
	address.Country = input.Country
	address.Type = input.Type
	address.IsDefault = input.IsDefault
	address.UpdatedAt = now
}
