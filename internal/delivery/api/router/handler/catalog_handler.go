package handler

import (
	"log/slog"

	"aurelise/internal/delivery/api/response"
	"aurelise/internal/domain/entity"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the storefront catalog, reviews and product administration.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductRequest is a product written from the back office.
type ProductRequest struct {
	Name             string        `json:"name" validate:"required,max=255"`
	Slug             string        `json:"slug" validate:"omitempty,max=255"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"short_description" validate:"omitempty,max=500"`
	CategoryID       *uuid.UUID    `json:"category_id"`
	Featured         bool          `json:"featured"`
	Active           *bool         `json:"active"`
	Allergens        []string      `json:"allergens"`
	Ingredients      []string      `json:"ingredients"`
	Images           []string      `json:"images" validate:"omitempty,dive,url"`
	Sizes            []SizeRequest `json:"sizes" validate:"omitempty,dive"`
}

// SizeRequest is one priced variant.
type SizeRequest struct {
	Size        string          `json:"size" validate:"required,max=50"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable *bool           `json:"is_available"`
}

// ReviewRequest is a customer review.
type ReviewRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" validate:"omitempty,max=2000"`
}

// ListProducts lists active products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	page, err := h.catalogUC.ListProducts(c.Request().Context(), productFilter(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// GetProduct returns the product page of an active product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	detail, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, detail)
}

// ListCategories lists active categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, categories)
}

// SubmitReview stores an unapproved review.
func (h *CatalogHandler) SubmitReview(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ReviewRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.catalogUC.SubmitReview(c.Request().Context(), userID, &usecase.ReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, review)
}

// AdminListProducts lists every product including disabled ones.
func (h *CatalogHandler) AdminListProducts(c echo.Context) error {
	page, err := h.catalogUC.AdminListProducts(c.Request().Context(), productFilter(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// CreateProduct adds a product with its sizes.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// UpdateProduct rewrites a product. Sizes are replaced when sent.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), productID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// DisableProduct hides a product from the storefront.
func (h *CatalogHandler) DisableProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DisableProduct(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Product disabled")
}

// ListReviews lists reviews, optionally by approval state.
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	reviews, err := h.catalogUC.ListReviews(c.Request().Context(), boolQuery(c, "approved"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reviews)
}

// ApproveReview publishes a review on the product page.
func (h *CatalogHandler) ApproveReview(c echo.Context) error {
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.ApproveReview(c.Request().Context(), reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Review approved")
}

func productFilter(c echo.Context) entity.ProductFilter {
	return entity.ProductFilter{
		CategorySlug: c.QueryParam("category"),
		Featured:     boolQuery(c, "featured"),
		Search:       c.QueryParam("search"),
		Page:         intQuery(c, "page"),
		Limit:        intQuery(c, "limit"),
	}
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	input := &usecase.ProductInput{
		Name:             r.Name,
		Slug:             r.Slug,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		CategoryID:       r.CategoryID,
		Featured:         r.Featured,
		Active:           r.Active,
		Allergens:        r.Allergens,
		Ingredients:      r.Ingredients,
		Images:           r.Images,
	}
	if r.Sizes != nil {
		input.Sizes = make([]usecase.SizeInput, 0, len(r.Sizes))
		for _, size := range r.Sizes {
			input.Sizes = append(input.Sizes, usecase.SizeInput{
				Size:        size.Size,
				Price:       size.Price,
				IsAvailable: size.IsAvailable == nil || *size.IsAvailable,
			})
		}
	}

	return input
}
