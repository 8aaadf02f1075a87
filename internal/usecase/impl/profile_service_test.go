package impl

import (
	"context"
	"testing"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	mockRepo "aurelise/internal/mocks/repository"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service      usecase.ProfileUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	addressRepo  *mockRepo.MockAddressRepository
	productRepo  *mockRepo.MockProductRepository
	wishlistRepo *mockRepo.MockWishlistRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fixtures := profileServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		addressRepo:  mockRepo.NewMockAddressRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		wishlistRepo: mockRepo.NewMockWishlistRepository(t),
	}
	fixtures.service = NewProfileService(ProfileServiceParams{
		TxManager:    fixtures.txManager,
		UserRepo:     fixtures.userRepo,
		AddressRepo:  fixtures.addressRepo,
		ProductRepo:  fixtures.productRepo,
		WishlistRepo: fixtures.wishlistRepo,
		Logger:       newDiscardLogger(),
	})

	return fixtures
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedUser := &entity.User{
		ID:      userID,
		Email:   "claire@example.com",
		Profile: &entity.Profile{UserID: userID, FirstName: "Claire", Role: entity.RoleCustomer},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(expectedUser, nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(context.Background(), userID)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_OnlyGivenFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID: userID,
		Profile: &entity.Profile{
			UserID:    userID,
			FirstName: "Claire",
			LastName:  "Dubois",
			Phone:     "07700 900000",
			Role:      entity.RoleAdmin,
		},
	}
	phone := " 07700 900123 "

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
			return profile.FirstName == "Claire" &&
				profile.LastName == "Dubois" &&
				profile.Phone == "07700 900123" &&
				profile.Role == entity.RoleAdmin
		})).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, "07700 900123", user.Profile.Phone)
}

func TestProfileService_CreateAddress_Default(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AddressInput{
		Street:    " 12 Rue Cler ",
		City:      "London",
		Postcode:  "SW1A 1AA",
		IsDefault: true,
	}

	var createdID uuid.UUID
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)

		txAddressRepo.EXPECT().
			CreateAddress(ctx, mock.MatchedBy(func(address *entity.Address) bool {
				createdID = address.ID
				return address.UserID == userID && address.Street == "12 Rue Cler" && address.IsDefault
			})).
			Return(nil)
		txAddressRepo.EXPECT().
			ClearDefault(ctx, userID, mock.AnythingOfType("uuid.UUID")).
			Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, createdID, address.ID)
	assert.Equal(t, "United Kingdom", address.Country)
	assert.Equal(t, entity.AddressTypeHome, address.Type)
}

func TestProfileService_CreateAddress_NotDefaultKeepsOthers(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
		txAddressRepo.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, userID, &usecase.AddressInput{
		Street:   "1 Market Street",
		City:     "Bath",
		Postcode: "BA1 1AA",
		Country:  "England",
		Type:     entity.AddressTypeWork,
	})

	require.NoError(t, err)
	assert.Equal(t, "England", address.Country)
	assert.False(t, address.IsDefault)
}

func TestProfileService_CreateAddress_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.AddressInput
	}{
		{name: "missing street", input: usecase.AddressInput{City: "Bath", Postcode: "BA1 1AA"}},
		{name: "blank postcode", input: usecase.AddressInput{Street: "1 Market Street", City: "Bath", Postcode: "   "}},
		{name: "unknown type", input: usecase.AddressInput{Street: "1 Market Street", City: "Bath", Postcode: "BA1 1AA", Type: "CASTLE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			input := tt.input

			address, err := fx.service.CreateAddress(context.Background(), uuid.New(), &input)

			assert.Nil(t, address)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProfileService_UpdateAddress_OtherUsersAddress(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	addressID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
		txAddressRepo.EXPECT().
			FindAddressByID(ctx, addressID).
			Return(&entity.Address{ID: addressID, UserID: uuid.New()}, nil)
	})

	address, err := fx.service.UpdateAddress(ctx, uuid.New(), addressID, &usecase.AddressInput{
		Street:   "1 Market Street",
		City:     "Bath",
		Postcode: "BA1 1AA",
	})

	assert.Nil(t, address)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestProfileService_UpdateAddress_BecomesDefault(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
		txAddressRepo.EXPECT().
			FindAddressByID(ctx, addressID).
			Return(&entity.Address{ID: addressID, UserID: userID, Street: "Old"}, nil)
		txAddressRepo.EXPECT().
			UpdateAddress(ctx, mock.MatchedBy(func(address *entity.Address) bool {
				return address.Street == "1 Market Street" && address.IsDefault
			})).
			Return(nil)
		txAddressRepo.EXPECT().ClearDefault(ctx, userID, addressID).Return(nil)
	})

	address, err := fx.service.UpdateAddress(ctx, userID, addressID, &usecase.AddressInput{
		Street:    "1 Market Street",
		City:      "Bath",
		Postcode:  "BA1 1AA",
		IsDefault: true,
	})

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestProfileService_DeleteAddress(t *testing.T) {
	t.Run("own address", func(t *testing.T) {
		fx := createTestProfileService(t)

		userID := uuid.New()
		addressID := uuid.New()
		fx.addressRepo.EXPECT().FindAddressByID(mock.Anything, addressID).Return(&entity.Address{ID: addressID, UserID: userID}, nil)
		fx.addressRepo.EXPECT().DeleteAddress(mock.Anything, addressID).Return(nil)

		assert.NoError(t, fx.service.DeleteAddress(context.Background(), userID, addressID))
	})

	t.Run("unknown address", func(t *testing.T) {
		fx := createTestProfileService(t)

		addressID := uuid.New()
		fx.addressRepo.EXPECT().FindAddressByID(mock.Anything, addressID).Return(nil, repository.ErrAddressNotFound)

		err := fx.service.DeleteAddress(context.Background(), uuid.New(), addressID)
		assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	})
}

func TestProfileService_AddToWishlist(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Paris-Brest"}

	tests := []struct {
		name    string
		setup   func(fx profileServiceFixtures)
		wantErr error
	}{
		{
			name: "saved",
			setup: func(fx profileServiceFixtures) {
				fx.productRepo.EXPECT().FindProductByID(mock.Anything, productID).Return(product, nil)
				fx.wishlistRepo.EXPECT().
					AddItem(mock.Anything, mock.MatchedBy(func(item *entity.WishlistItem) bool {
						return item.UserID == userID && item.ProductID == productID
					})).
					Return(nil)
			},
		},
		{
			name: "unknown product",
			setup: func(fx profileServiceFixtures) {
				fx.productRepo.EXPECT().FindProductByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)
			},
			wantErr: domainerrors.ErrProductNotFound,
		},
		{
			name: "already saved",
			setup: func(fx profileServiceFixtures) {
				fx.productRepo.EXPECT().FindProductByID(mock.Anything, productID).Return(product, nil)
				fx.wishlistRepo.EXPECT().AddItem(mock.Anything, mock.Anything).Return(repository.ErrWishlistItemExists)
			},
			wantErr: domainerrors.ErrWishlistDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			tt.setup(fx)

			item, err := fx.service.AddToWishlist(context.Background(), userID, productID)
			if tt.wantErr != nil {
				assert.Nil(t, item)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, product, item.Product)
		})
	}
}

func TestProfileService_RemoveFromWishlist_NotSaved(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()
	productID := uuid.New()
	fx.wishlistRepo.EXPECT().RemoveItem(mock.Anything, userID, productID).Return(repository.ErrWishlistItemNotFound)

	err := fx.service.RemoveFromWishlist(context.Background(), userID, productID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
