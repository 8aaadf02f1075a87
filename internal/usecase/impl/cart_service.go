package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const sessionIDPrefix = "sess_"

type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (s *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NewSession issues a fresh guest session token.
func (s *cartService) NewSession(_ context.Context) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session id")
	}

	return sessionIDPrefix + strings.ReplaceAll(id.String(), "-", ""), nil
}

// GetCart returns the owner's cart without creating one.
func (s *cartService) GetCart(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.FindCartByOwner(ctx, owner)
	if errors.Is(err, repository.ErrCartNotFound) {
		return emptyCart(owner), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

// AddItem adds quantity of a product size at its live price.
func (s *cartService) AddItem(ctx context.Context, owner entity.CartOwner, input usecase.AddCartItemInput) (*entity.Cart, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	size, err := s.productRepo.FindSize(ctx, input.ProductID, input.Size)
	if err != nil {
		if errors.Is(err, repository.ErrSizeNotFound) || errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrSizeUnavailable
		}

		return nil, errors.Wrap(err, "failed to find product size")
	}
	if !size.IsAvailable {
		return nil, domainerrors.ErrSizeUnavailable
	}

	var cartID uuid.UUID
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		cart, err := findOrCreateCart(ctx, cartRepo, owner)
		if err != nil {
			return err
		}
		cartID = cart.ID

		return cartRepo.UpsertItem(ctx, cart.ID, input.ProductID, input.Size, input.Quantity, size.Price)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	s.log(ctx).Debug("Cart item added",
		slog.Any("cartID", cartID),
		slog.Any("productID", input.ProductID),
		slog.String("size", input.Size),
		slog.Int("quantity", input.Quantity),
	)

	return s.reload(ctx, cartID)
}

// UpdateItem overwrites a line quantity; zero or less removes the line.
func (s *cartService) UpdateItem(ctx context.Context, owner entity.CartOwner, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, owner, itemID)
	}

	cart, err := s.ownedItemCart(ctx, owner, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return s.reload(ctx, cart.ID)
}

// RemoveItem deletes a line of the owner's cart.
func (s *cartService) RemoveItem(ctx context.Context, owner entity.CartOwner, itemID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.ownedItemCart(ctx, owner, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(ctx, itemID); err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, errors.Wrap(err, "failed to delete cart item")
	}

	return s.reload(ctx, cart.ID)
}

// ClearCart removes every line of the owner's cart.
func (s *cartService) ClearCart(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.FindCartByOwner(ctx, owner)
	if errors.Is(err, repository.ErrCartNotFound) {
		return emptyCart(owner), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	if err := s.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	return s.reload(ctx, cart.ID)
}

// MergeCarts moves the session cart lines into the account cart and deletes the session cart.
func (s *cartService) MergeCarts(ctx context.Context, userID uuid.UUID, sessionID string) (*entity.Cart, error) {
	if !entity.IsValidSessionID(sessionID) {
		return nil, domainerrors.ErrCartIdentityMissing
	}

	userOwner := entity.CartOwner{UserID: userIDPtr(userID)}
	var cartID uuid.UUID
	merged := 0

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		guestCart, err := cartRepo.FindCartByOwner(ctx, entity.CartOwner{SessionID: sessionID})
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find guest cart")
		}

		userCart, err := findOrCreateCart(ctx, cartRepo, userOwner)
		if err != nil {
			return err
		}
		cartID = userCart.ID

		for _, item := range guestCart.Items {
			if err := cartRepo.UpsertItem(ctx, userCart.ID, item.ProductID, item.Size, item.Quantity, item.UnitPrice); err != nil {
				return errors.Wrap(err, "failed to merge cart item")
			}
			merged++
		}

		return errors.Wrap(cartRepo.DeleteCart(ctx, guestCart.ID), "failed to delete guest cart")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute cart merge transaction")
	}

	if cartID == uuid.Nil {
		return s.GetCart(ctx, userOwner)
	}

	s.log(ctx).Info("Guest cart merged", slog.Any("userID", userID), slog.Int("lines", merged))

	return s.reload(ctx, cartID)
}

// ownedItemCart resolves the owner's cart and checks the line belongs to it.
func (s *cartService) ownedItemCart(ctx context.Context, owner entity.CartOwner, itemID uuid.UUID) (*entity.Cart, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.FindCartByOwner(ctx, owner)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrCartItemNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	if _, err := s.cartRepo.FindItem(ctx, cart.ID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return cart, nil
}

func (s *cartService) reload(ctx context.Context, cartID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindCartByID(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart")
	}

	return cart, nil
}

func findOrCreateCart(ctx context.Context, cartRepo repository.CartRepository, owner entity.CartOwner) (*entity.Cart, error) {
	cart, err := cartRepo.FindCartByOwner(ctx, owner)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart = emptyCart(owner)
	err = cartRepo.CreateCart(ctx, cart)
	if errors.Is(err, repository.ErrCartExists) {
		cart, err = cartRepo.FindCartByOwner(ctx, owner)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find concurrently created cart")
		}

		return cart, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}

func validateOwner(owner entity.CartOwner) error {
	if owner.IsUser() {
		return nil
	}
	if owner.SessionID == "" || !entity.IsValidSessionID(owner.SessionID) {
		return domainerrors.ErrCartIdentityMissing
	}

	return nil
}

func emptyCart(owner entity.CartOwner) *entity.Cart {
	cart := &entity.Cart{UserID: owner.UserID, Items: []*entity.CartItem{}}
	if !owner.IsUser() {
		sessionID := owner.SessionID
		cart.SessionID = &sessionID
	}

	return cart
}
