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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func preloadCartItems(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// FindCartByOwner loads the cart of a user or guest session with its items.
// Reads go to the primary so a mutation is always followed by its own result.
func (repo *cartRepository) FindCartByOwner(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)
	switch {
	case owner.UserID != nil:
		db = db.Where("user_id = ?", *owner.UserID)
	case owner.SessionID != "":
		db = db.Where("session_id = ?", owner.SessionID)
	default:
		return nil, repository.ErrCartNotFound
	}

	var cartM model.CartModel
	if err := db.
		Preload("Items", preloadCartItems).
		Preload("Items.Product").
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by owner")
	}

	return toCartDomain(&cartM), nil
}

// FindCartByID loads a cart with its items from the primary database.
func (repo *cartRepository) FindCartByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Items", preloadCartItems).
		Preload("Items.Product").
		Where("id = ?", id).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by ID")
	}

	return toCartDomain(&cartM), nil
}

// CreateCart persists an empty cart for the owner.
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{
		ID:        cart.ID,
		UserID:    cart.UserID,
		SessionID: cart.SessionID,
	}

	result := repo.db.WithContext(ctx).
		Omit("Items").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(cartM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrCartExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartExists
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// UpsertItem inserts a line or adds quantity to the existing (cart, product, size) line in one statement.
func (repo *cartRepository) UpsertItem(ctx context.Context, cartID, productID uuid.UUID, size string, quantity int, unitPrice decimal.Decimal) error {
	itemM := &model.CartItemModel{
		CartID:    cartID,
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}

	if err := repo.db.WithContext(ctx).
		Omit("Product").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}, {Name: "size"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
				"unit_price": gorm.Expr("excluded.unit_price"),
				"updated_at": time.Now(),
			}),
		}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCartNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	return nil
}

// FindItem loads a line scoped to its cart.
func (repo *cartRepository) FindItem(ctx context.Context, cartID, itemID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// UpdateItemQuantity overwrites the quantity of a line.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem removes a line.
func (repo *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearItems removes every line of the cart.
func (repo *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// DeleteCart removes the cart and its lines.
func (repo *cartRepository) DeleteCart(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.ClearItems(ctx, cartID); err != nil {
		return err
	}
	if err := repo.db.WithContext(ctx).
		Where("id = ?", cartID).
		Delete(&model.CartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]*entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toCartItemDomain(itemM))
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		SessionID: data.SessionID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	item := &entity.CartItem{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Size:      data.Size,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
	}
	if data.Product != nil {
		item.ProductName = data.Product.Name
		item.ProductSlug = data.Product.Slug
	}

	return item
}
