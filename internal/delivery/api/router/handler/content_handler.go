package handler

import (
	"log/slog"

	"aurelise/internal/delivery/api/response"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// ContentHandler serves the blog and the static content pages.
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler.
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// PostRequest is a blog post written from the back office.
type PostRequest struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Slug          string     `json:"slug" validate:"omitempty,max=255"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt" validate:"omitempty,max=500"`
	FeaturedImage string     `json:"featured_image" validate:"omitempty,url"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Published     bool       `json:"published"`
}

// PageRequest is a content page written from the back office.
type PageRequest struct {
	Title           string `json:"title" validate:"required,max=255"`
	Slug            string `json:"slug" validate:"omitempty,max=255"`
	Content         string `json:"content"`
	MetaDescription string `json:"meta_description" validate:"omitempty,max=300"`
	Active          *bool  `json:"active"`
}

// ListPosts lists published posts.
func (h *ContentHandler) ListPosts(c echo.Context) error {
	posts, err := h.contentUC.ListPublishedPosts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, posts)
}

// GetPost returns a published post.
func (h *ContentHandler) GetPost(c echo.Context) error {
	post, err := h.contentUC.GetPublishedPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, post)
}

// ListPages lists active pages.
func (h *ContentHandler) ListPages(c echo.Context) error {
	pages, err := h.contentUC.ListActivePages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, pages)
}

// GetPage returns an active page.
func (h *ContentHandler) GetPage(c echo.Context) error {
	page, err := h.contentUC.GetActivePage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// AdminListPosts lists every post including drafts.
func (h *ContentHandler) AdminListPosts(c echo.Context) error {
	posts, err := h.contentUC.AdminListPosts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, posts)
}

// CreatePost adds a post.
func (h *ContentHandler) CreatePost(c echo.Context) error {
	var req PostRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.contentUC.CreatePost(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, post)
}

// UpdatePost rewrites a post.
func (h *ContentHandler) UpdatePost(c echo.Context) error {
	postID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PostRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.contentUC.UpdatePost(c.Request().Context(), postID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, post)
}

// DeletePost removes a post.
func (h *ContentHandler) DeletePost(c echo.Context) error {
	postID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.contentUC.DeletePost(c.Request().Context(), postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Post deleted")
}

// AdminListPages lists every page including inactive ones.
func (h *ContentHandler) AdminListPages(c echo.Context) error {
	pages, err := h.contentUC.AdminListPages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, pages)
}

// CreatePage adds a page.
func (h *ContentHandler) CreatePage(c echo.Context) error {
	var req PageRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.contentUC.CreatePage(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, page)
}

// UpdatePage rewrites a page.
func (h *ContentHandler) UpdatePage(c echo.Context) error {
	pageID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PageRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.contentUC.UpdatePage(c.Request().Context(), pageID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// DeletePage removes a page.
func (h *ContentHandler) DeletePage(c echo.Context) error {
	pageID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.contentUC.DeletePage(c.Request().Context(), pageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Page deleted")
}

func (r *PostRequest) toInput() *usecase.PostInput {
	return &usecase.PostInput{
		Title:         r.Title,
		Slug:          r.Slug,
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		FeaturedImage: r.FeaturedImage,
		CategoryID:    r.CategoryID,
		Published:     r.Published,
	}
}

func (r *PageRequest) toInput() *usecase.PageInput {
	return &usecase.PageInput{
		Title:           r.Title,
		Slug:            r.Slug,
		Content:         r.Content,
		MetaDescription: r.MetaDescription,
		Active:          r.Active,
	}
}
