package handler

import (
	"log/slog"

	"aurelise/internal/delivery/api/response"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart of an account or of a guest session.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddCartItemRequest puts a product size in the cart.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      string    `json:"size" validate:"required"`
	Quantity  *int      `json:"quantity" validate:"omitempty,min=1,max=99"`
}

// UpdateCartItemRequest overwrites a line quantity. Zero or less removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"max=99"`
}

// CartResponse is the cart with computed totals.
type CartResponse struct {
	ID        *uuid.UUID         `json:"id,omitempty"`
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSlug string          `json:"product_slug"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// NewSession issues a guest cart session token.
func (h *CartHandler) NewSession(c echo.Context) error {
	sessionID, err := h.cartUC.NewSession(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, map[string]string{"session_id": sessionID})
}

// GetCart returns the caller's cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toCartResponse(cart))
}

// AddItem adds a product size, incrementing an existing line.
func (h *CartHandler) AddItem(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddCartItemRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), owner, usecase.AddCartItemInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toCartResponse(cart))
}

// UpdateItem overwrites a line quantity.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCartItemRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.UpdateItem(c.Request().Context(), owner, itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toCartResponse(cart))
}

// RemoveItem deletes a line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), owner, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toCartResponse(cart))
}

// ClearCart deletes every line.
func (h *CartHandler) ClearCart(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.ClearCart(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toCartResponse(cart))
}

// MergeCarts folds the guest session cart into the account cart.
func (h *CartHandler) MergeCarts(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	sessionID := cartSession(c)
	if sessionID == "" {
		return response.HandleAppError(c, domainerrors.ErrCartIdentityMissing)
	}

	cart, err := h.cartUC.MergeCarts(c.Request().Context(), userID, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toCartResponse(cart))
}

func toCartResponse(cart *entity.Cart) CartResponse {
	resp := CartResponse{
		Items:    []CartItemResponse{},
		Subtotal: decimal.Zero,
	}
	if cart == nil {
		return resp
	}
	if cart.ID != uuid.Nil {
		resp.ID = &cart.ID
	}

	for _, item := range cart.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductSlug: item.ProductSlug,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal(),
		})
	}
	resp.ItemCount = cart.ItemCount()
	resp.Subtotal = cart.Subtotal()

	return resp
}
