package postgres

import (
	"context"
	"encoding/json"
	"time"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func preloadOrderItems(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// CreateOrder persists the order with its items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order number already used")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindOrderByID loads an order with its items from the primary database.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id))
}

// FindOrderForUpdate loads an order and locks its row on databases that support row locks.
func (repo *orderRepository) FindOrderForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return repo.findOne(db.Where("id = ?", id))
}

// FindOrderByPaymentIntentID loads the order bound to a payment intent.
func (repo *orderRepository) FindOrderByPaymentIntentID(ctx context.Context, paymentIntentID string) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("payment_intent_id = ?", paymentIntentID))
}

func (repo *orderRepository) findOne(db *gorm.DB) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := db.Preload("Items", preloadOrderItems).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM)
}

// FindOrdersByUser lists an account's orders newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", preloadOrderItems).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return toOrderDomains(orderModels)
}

// ListOrders returns one page of orders newest first and the total count.
func (repo *orderRepository) ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status.String())
		}
		if filter.DeliveryDate != nil {
			day := time.Date(filter.DeliveryDate.Year(), filter.DeliveryDate.Month(), filter.DeliveryDate.Day(), 0, 0, 0, 0, filter.DeliveryDate.Location())
			db = db.Where("delivery_date >= ? AND delivery_date < ?", day, day.AddDate(0, 0, 1))
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Preload("Items", preloadOrderItems).
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders, err := toOrderDomains(orderModels)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// SetPaymentIntentID binds a payment intent to the order.
func (repo *orderRepository) SetPaymentIntentID(ctx context.Context, id uuid.UUID, paymentIntentID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("payment_intent_id", paymentIntentID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set payment intent")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateStatus writes the fulfilment status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// ApplyPaymentTransition writes the payment state only while the row is in one of the source states.
func (repo *orderRepository) ApplyPaymentTransition(ctx context.Context, transition repository.PaymentTransition) (bool, error) {
	from := make([]string, 0, len(transition.From))
	for _, status := range transition.From {
		from = append(from, string(status))
	}

	updates := map[string]any{"payment_status": string(transition.PaymentStatus)}
	if transition.Status != nil {
		updates["status"] = transition.Status.String()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("payment_intent_id = ? AND payment_status IN ?", transition.PaymentIntentID, from).
		Updates(updates)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to apply payment transition")
	}

	return result.RowsAffected > 0, nil
}

// RecordRefund accumulates the refunded amount and cancels the order.
func (repo *orderRepository) RecordRefund(ctx context.Context, id uuid.UUID, amount decimal.Decimal, paymentStatus entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"refunded_amount": gorm.Expr("refunded_amount + ?", amount),
			"payment_status":  string(paymentStatus),
			"status":          entity.OrderStatusCancelled.String(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record refund")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

type orderSummaryRow struct {
	OrderCount int64
	Revenue    decimal.Decimal
}

// SummarizeSince counts orders created at or after since and sums the total of paid ones.
func (repo *orderRepository) SummarizeSince(ctx context.Context, since time.Time) (int64, decimal.Decimal, error) {
	var row orderSummaryRow

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COUNT(*) AS order_count, "+
			"COALESCE(SUM(CASE WHEN payment_status = ? THEN total ELSE 0 END), 0) AS revenue",
			string(entity.PaymentStatusCompleted)).
		Where("created_at >= ?", since).
		Scan(&row).Error; err != nil {
		return 0, decimal.Zero, errors.Wrap(err, "failed to summarize orders")
	}

	return row.OrderCount, row.Revenue, nil
}

// CountByStatus counts orders in a fulfilment status.
func (repo *orderRepository) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by status")
	}

	return count, nil
}

// TopProducts ranks products by quantity sold.
func (repo *orderRepository) TopProducts(ctx context.Context, limit int) ([]*entity.PopularProduct, error) {
	var products []*entity.PopularProduct

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Select("product_id, product_name AS name, SUM(quantity) AS quantity_sold").
		Group("product_id, product_name").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&products).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank products")
	}

	return products, nil
}

// RecentOrders returns the newest orders without items.
func (repo *orderRepository) RecentOrders(ctx context.Context, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent orders")
	}

	return toOrderDomains(orderModels)
}

// FindOrdersDueOn lists orders due on day's calendar date, earliest slot first.
func (repo *orderRepository) FindOrdersDueOn(ctx context.Context, day time.Time, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, status.String())
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("delivery_date >= ? AND delivery_date < ?", start, start.AddDate(0, 0, 1)).
		Where("status IN ?", names).
		Order("delivery_time ASC").
		Order("order_number ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders due")
	}

	return toOrderDomains(orderModels)
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	customer := data.CustomerInfo.Data()
	order := &entity.Order{
		ID:            data.ID,
		OrderNumber:   data.OrderNumber,
		UserID:        data.UserID,
		Status:        entity.OrderStatus(data.Status),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		DeliveryType:  entity.DeliveryType(data.DeliveryType),
		DeliveryDate:  data.DeliveryDate,
		DeliveryTime:  data.DeliveryTime,
		Customer: entity.CustomerInfo{
			FirstName: customer.FirstName,
			LastName:  customer.LastName,
			Email:     customer.Email,
			Phone:     customer.Phone,
		},
		SpecialInstructions:  data.SpecialInstructions,
		AllergenAcknowledged: data.AllergenAcknowledged,
		Subtotal:             data.Subtotal,
		DeliveryFee:          data.DeliveryFee,
		Tax:                  data.Tax,
		Total:                data.Total,
		RefundedAmount:       data.RefundedAmount,
		Currency:             data.Currency,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
	if data.PaymentIntentID != nil {
		order.PaymentIntentID = *data.PaymentIntentID
	}
	if len(data.DeliveryAddress) > 0 && string(data.DeliveryAddress) != "null" {
		var address model.AddressSnapshot
		if err := json.Unmarshal(data.DeliveryAddress, &address); err != nil {
			return nil, errors.Wrap(err, "failed to decode delivery address")
		}
		order.DeliveryAddress = &entity.DeliveryAddress{
			Street:   address.Street,
			City:     address.City,
			County:   address.County,
			Postcode: address.Postcode,
			Country:  address.Country,
		}
	}

	order.Items = make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			Size:        itemM.Size,
			Quantity:    itemM.Quantity,
			Price:       itemM.Price,
		})
	}

	return order, nil
}

func toOrderDomains(models []*model.OrderModel) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	orderM := &model.OrderModel{
		ID:            data.ID,
		OrderNumber:   data.OrderNumber,
		UserID:        data.UserID,
		Status:        data.Status.String(),
		PaymentStatus: string(data.PaymentStatus),
		DeliveryType:  string(data.DeliveryType),
		DeliveryDate:  data.DeliveryDate,
		DeliveryTime:  data.DeliveryTime,
		CustomerInfo: datatypes.NewJSONType(model.CustomerSnapshot{
			FirstName: data.Customer.FirstName,
			LastName:  data.Customer.LastName,
			Email:     data.Customer.Email,
			Phone:     data.Customer.Phone,
		}),
		SpecialInstructions:  data.SpecialInstructions,
		AllergenAcknowledged: data.AllergenAcknowledged,
		Subtotal:             data.Subtotal,
		DeliveryFee:          data.DeliveryFee,
		Tax:                  data.Tax,
		Total:                data.Total,
		RefundedAmount:       data.RefundedAmount,
		Currency:             data.Currency,
	}
	if data.PaymentIntentID != "" {
		orderM.PaymentIntentID = &data.PaymentIntentID
	}
	if data.DeliveryAddress != nil {
		raw, err := json.Marshal(model.AddressSnapshot{
			Street:   data.DeliveryAddress.Street,
			City:     data.DeliveryAddress.City,
			County:   data.DeliveryAddress.County,
			Postcode: data.DeliveryAddress.Postcode,
			Country:  data.DeliveryAddress.Country,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode delivery address")
		}
		orderM.DeliveryAddress = datatypes.JSON(raw)
	}

	orderM.Items = make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, &model.OrderItemModel{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Size:        item.Size,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return orderM, nil
}
