package usecase

import (
	"context"

	"aurelise/internal/domain/entity"

	"github.com/google/uuid"
)

// PostInput defines a blog post written from the back office.
type PostInput struct {
	Title         string
	Slug          string
	Content       string
	Excerpt       string
	FeaturedImage string
	CategoryID    *uuid.UUID
	Published     bool
}

// PageInput defines a content page written from the back office.
type PageInput struct {
	Title           string
	Slug            string
	Content         string
	MetaDescription string
	Active          *bool
}

// ContentUsecase defines the blog and the static content pages.
type ContentUsecase interface {
	// ListPublishedPosts lists published posts, most recently published first.
	ListPublishedPosts(ctx context.Context) ([]*entity.Post, error)
	GetPublishedPost(ctx context.Context, slug string) (*entity.Post, error)
	ListActivePages(ctx context.Context) ([]*entity.Page, error)
	GetActivePage(ctx context.Context, slug string) (*entity.Page, error)

	AdminListPosts(ctx context.Context) ([]*entity.Post, error)
	CreatePost(ctx context.Context, input *PostInput) (*entity.Post, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, input *PostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error

	AdminListPages(ctx context.Context) ([]*entity.Page, error)
	CreatePage(ctx context.Context, input *PageInput) (*entity.Page, error)
	UpdatePage(ctx context.Context, pageID uuid.UUID, input *PageInput) (*entity.Page, error)
	DeletePage(ctx context.Context, pageID uuid.UUID) error
}
