package repository

import (
	"context"

	"aurelise/internal/domain/entity"
	"aurelise/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for blog posts and content pages.
var (
	ErrPostNotFound         = errors.New("post not found")
	ErrPageNotFound         = errors.New("page not found")
	ErrDuplicateContentSlug = errors.New("content slug already exists")
)

// ContentRepository defines persistence for blog posts and content pages.
type ContentRepository interface {
	// ListPosts lists posts newest first; publishedOnly orders by publication time.
	ListPosts(ctx context.Context, publishedOnly bool) ([]*entity.Post, error)
	FindPostByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	FindPostBySlug(ctx context.Context, slug string) (*entity.Post, error)
	CreatePost(ctx context.Context, post *entity.Post) error
	UpdatePost(ctx context.Context, post *entity.Post) error
	DeletePost(ctx context.Context, id uuid.UUID) error

	// ListPages lists pages ordered by title.
	ListPages(ctx context.Context, activeOnly bool) ([]*entity.Page, error)
	FindPageByID(ctx context.Context, id uuid.UUID) (*entity.Page, error)
	FindPageBySlug(ctx context.Context, slug string) (*entity.Page, error)
	CreatePage(ctx context.Context, page *entity.Page) error
	UpdatePage(ctx context.Context, page *entity.Page) error
	DeletePage(ctx context.Context, id uuid.UUID) error
}
