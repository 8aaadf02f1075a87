package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
)

const maxExcerptLength = 500

type contentService struct {
	contentRepo repository.ContentRepository
	logger      *slog.Logger
	now         func() time.Time
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	ContentRepo repository.ContentRepository
	Logger      *slog.Logger
}

// NewContentService creates a new content service instance
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		contentRepo: params.ContentRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListPublishedPosts lists the posts shown on the blog.
func (s *contentService) ListPublishedPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := s.contentRepo.ListPosts(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// GetPublishedPost hides drafts behind a not found error.
func (s *contentService) GetPublishedPost(ctx context.Context, postSlug string) (*entity.Post, error) {
	post, err := s.contentRepo.FindPostBySlug(ctx, postSlug)
	if errors.Is(err, repository.ErrPostNotFound) || (err == nil && !post.Published) {
		return nil, domainerrors.ErrPostNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// ListActivePages lists the pages linked from the storefront.
func (s *contentService) ListActivePages(ctx context.Context) ([]*entity.Page, error) {
	pages, err := s.contentRepo.ListPages(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pages")
	}

	return pages, nil
}

// GetActivePage hides inactive pages behind a not found error.
func (s *contentService) GetActivePage(ctx context.Context, pageSlug string) (*entity.Page, error) {
	page, err := s.contentRepo.FindPageBySlug(ctx, pageSlug)
	if errors.Is(err, repository.ErrPageNotFound) || (err == nil && !page.Active) {
		return nil, domainerrors.ErrPageNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find page")
	}

	return page, nil
}

// AdminListPosts lists every post including drafts, newest first.
func (s *contentService) AdminListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := s.contentRepo.ListPosts(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// CreatePost stores a new post, stamping the publication time when published.
func (s *contentService) CreatePost(ctx context.Context, input *usecase.PostInput) (*entity.Post, error) {
	if err := validatePostInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	post := &entity.Post{ID: uuid.New(), CreatedAt: now}
	applyPostInput(post, input, now)

	if err := s.contentRepo.CreatePost(ctx, post); err != nil {
		return nil, mapContentWriteError(err, "failed to create post")
	}

	s.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.String("slug", post.Slug))

	return post, nil
}

// UpdatePost overwrites a post. Republishing keeps the original publication time.
func (s *contentService) UpdatePost(ctx context.Context, postID uuid.UUID, input *usecase.PostInput) (*entity.Post, error) {
	if err := validatePostInput(input); err != nil {
		return nil, err
	}

	post, err := s.contentRepo.FindPostByID(ctx, postID)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, domainerrors.ErrPostNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find post")
	}

	applyPostInput(post, input, s.now())

	if err := s.contentRepo.UpdatePost(ctx, post); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, mapContentWriteError(err, "failed to update post")
	}

	s.log(ctx).Info("Post updated", slog.Any("postID", postID), slog.Bool("published", post.Published))

	return post, nil
}

// DeletePost removes a post permanently.
func (s *contentService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	if err := s.contentRepo.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to delete post")
	}

	s.log(ctx).Info("Post deleted", slog.Any("postID", postID))

	return nil
}

// AdminListPages lists every page including inactive ones.
func (s *contentService) AdminListPages(ctx context.Context) ([]*entity.Page, error) {
	pages, err := s.contentRepo.ListPages(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pages")
	}

	return pages, nil
}

// CreatePage stores a new page, active unless stated otherwise.
func (s *contentService) CreatePage(ctx context.Context, input *usecase.PageInput) (*entity.Page, error) {
	if err := validatePageInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	page := &entity.Page{ID: uuid.New(), Active: true, CreatedAt: now}
	applyPageInput(page, input, now)

	if err := s.contentRepo.CreatePage(ctx, page); err != nil {
		return nil, mapContentWriteError(err, "failed to create page")
	}

	s.log(ctx).Info("Page created", slog.Any("pageID", page.ID), slog.String("slug", page.Slug))

	return page, nil
}

// UpdatePage overwrites a page. A nil Active keeps the current flag.
func (s *contentService) UpdatePage(ctx context.Context, pageID uuid.UUID, input *usecase.PageInput) (*entity.Page, error) {
	if err := validatePageInput(input); err != nil {
		return nil, err
	}

	page, err := s.contentRepo.FindPageByID(ctx, pageID)
	if errors.Is(err, repository.ErrPageNotFound) {
		return nil, domainerrors.ErrPageNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find page")
	}

	applyPageInput(page, input, s.now())

	if err := s.contentRepo.UpdatePage(ctx, page); err != nil {
		if errors.Is(err, repository.ErrPageNotFound) {
			return nil, domainerrors.ErrPageNotFound
		}

		return nil, mapContentWriteError(err, "failed to update page")
	}

	s.log(ctx).Info("Page updated", slog.Any("pageID", pageID))

	return page, nil
}

// DeletePage removes a page permanently.
func (s *contentService) DeletePage(ctx context.Context, pageID uuid.UUID) error {
	if err := s.contentRepo.DeletePage(ctx, pageID); err != nil {
		if errors.Is(err, repository.ErrPageNotFound) {
			return domainerrors.ErrPageNotFound
		}

		return errors.Wrap(err, "failed to delete page")
	}

	s.log(ctx).Info("Page deleted", slog.Any("pageID", pageID))

	return nil
}

func mapContentWriteError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateContentSlug):
		return domainerrors.ErrContentSlugTaken
	case errors.Is(err, repository.ErrCategoryNotFound):
		return domainerrors.ErrValidationFailed.WithDetails("category does not exist")
	default:
		return errors.Wrap(err, msg)
	}
}

// contentSlug derives a slug from the title when none is given.
func contentSlug(title, given string) (string, error) {
	given = strings.TrimSpace(given)
	if given == "" {
		return slug.Make(title), nil
	}
	if !slug.IsSlug(given) {
		return "", domainerrors.ErrValidationFailed.WithDetails("slug must be lowercase letters, digits and hyphens")
	}

	return given, nil
}

func validatePostInput(input *usecase.PostInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	postSlug, err := contentSlug(input.Title, input.Slug)
	if err != nil {
		return err
	}
	input.Slug = postSlug

	input.Excerpt = strings.TrimSpace(input.Excerpt)
	if len(input.Excerpt) > maxExcerptLength {
		return domainerrors.ErrValidationFailed.WithDetails("excerpt is too long")
	}

	return nil
}

func applyPostInput(post *entity.Post, input *usecase.PostInput, now time.Time) {
	post.Title = input.Title
	post.Slug = input.Slug
	post.Content = input.Content
	post.Excerpt = input.Excerpt
	post.FeaturedImage = strings.TrimSpace(input.FeaturedImage)
	post.CategoryID = input.CategoryID
	post.SetPublished(input.Published, now)
	post.UpdatedAt = now
}

func validatePageInput(input *usecase.PageInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	pageSlug, err := contentSlug(input.Title, input.Slug)
	if err != nil {
		return err
	}
	input.Slug = pageSlug

	return nil
}

func applyPageInput(page *entity.Page, input *usecase.PageInput, now time.Time) {
	page.Title = input.Title
	page.Slug = input.Slug
	page.Content = input.Content
	page.MetaDescription = strings.TrimSpace(input.MetaDescription)
	if input.Active != nil {
		page.Active = *input.Active
	}
	page.UpdatedAt = now
}
