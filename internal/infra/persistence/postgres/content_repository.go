package postgres

import (
	"context"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// contentRepository implements the repository.ContentRepository interface.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

// ListPosts lists posts. Published listings are ordered by publication time.
func (repo *contentRepository) ListPosts(ctx context.Context, publishedOnly bool) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	db := repo.db.WithContext(ctx)
	if publishedOnly {
		db = db.Where("published = ?", true).Order("published_at DESC")
	}
	if err := db.Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// FindPostByID loads a post whatever its publication state.
func (repo *contentRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	return repo.findPost(ctx, "id = ?", id)
}

// FindPostBySlug loads a post whatever its publication state.
func (repo *contentRepository) FindPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return repo.findPost(ctx, "slug = ?", slug)
}

func (repo *contentRepository) findPost(ctx context.Context, query string, arg any) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return toPostDomain(&postM), nil
}

// CreatePost stores a post.
func (repo *contentRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateContentSlug
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// UpdatePost overwrites every editable column of a post.
func (repo *contentRepository) UpdatePost(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":          postM.Title,
			"slug":           postM.Slug,
			"content":        postM.Content,
			"excerpt":        postM.Excerpt,
			"featured_image": postM.FeaturedImage,
			"category_id":    postM.CategoryID,
			"published":      postM.Published,
			"published_at":   postM.PublishedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateContentSlug
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// DeletePost removes a post.
func (repo *contentRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// ListPages lists pages ordered by title.
func (repo *contentRepository) ListPages(ctx context.Context, activeOnly bool) ([]*entity.Page, error) {
	var pageModels []*model.PageModel

	db := repo.db.WithContext(ctx)
	if activeOnly {
		db = db.Where("active = ?", true)
	}
	if err := db.Order("title ASC").Find(&pageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pages")
	}

	pages := make([]*entity.Page, 0, len(pageModels))
	for _, pageM := range pageModels {
		pages = append(pages, toPageDomain(pageM))
	}

	return pages, nil
}

// FindPageByID loads a page whatever its active flag.
func (repo *contentRepository) FindPageByID(ctx context.Context, id uuid.UUID) (*entity.Page, error) {
	return repo.findPage(ctx, "id = ?", id)
}

// FindPageBySlug loads a page whatever its active flag.
func (repo *contentRepository) FindPageBySlug(ctx context.Context, slug string) (*entity.Page, error) {
	return repo.findPage(ctx, "slug = ?", slug)
}

func (repo *contentRepository) findPage(ctx context.Context, query string, arg any) (*entity.Page, error) {
	var pageM model.PageModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&pageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPageNotFound
		}

		return nil, errors.Wrap(err, "failed to find page")
	}

	return toPageDomain(&pageM), nil
}

// CreatePage stores a page.
func (repo *contentRepository) CreatePage(ctx context.Context, page *entity.Page) error {
	pageM := fromPageDomain(page)

	if err := repo.db.WithContext(ctx).Create(pageM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateContentSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create page")
	}

	page.ID = pageM.ID
	page.CreatedAt = pageM.CreatedAt
	page.UpdatedAt = pageM.UpdatedAt

	return nil
}

// UpdatePage overwrites every editable column of a page.
func (repo *contentRepository) UpdatePage(ctx context.Context, page *entity.Page) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PageModel{}).
		Where("id = ?", page.ID).
		Updates(map[string]any{
			"title":            page.Title,
			"slug":             page.Slug,
			"content":          page.Content,
			"meta_description": page.MetaDescription,
			"active":           page.Active,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateContentSlug
		}

		return errors.Wrap(result.Error, "failed to update page")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPageNotFound
	}

	return nil
}

// DeletePage removes a page.
func (repo *contentRepository) DeletePage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PageModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete page")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPageNotFound
	}

	return nil
}

func fromPostDomain(post *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Content:       post.Content,
		Excerpt:       post.Excerpt,
		FeaturedImage: post.FeaturedImage,
		CategoryID:    post.CategoryID,
		Published:     post.Published,
		PublishedAt:   post.PublishedAt,
	}
}

func toPostDomain(postM *model.PostModel) *entity.Post {
	return &entity.Post{
		ID:            postM.ID,
		Title:         postM.Title,
		Slug:          postM.Slug,
		Content:       postM.Content,
		Excerpt:       postM.Excerpt,
		FeaturedImage: postM.FeaturedImage,
		CategoryID:    postM.CategoryID,
		Published:     postM.Published,
		PublishedAt:   postM.PublishedAt,
		CreatedAt:     postM.CreatedAt,
		UpdatedAt:     postM.UpdatedAt,
	}
}

func fromPageDomain(page *entity.Page) *model.PageModel {
	return &model.PageModel{
		ID:              page.ID,
		Title:           page.Title,
		Slug:            page.Slug,
		Content:         page.Content,
		MetaDescription: page.MetaDescription,
		Active:          page.Active,
	}
}

func toPageDomain(pageM *model.PageModel) *entity.Page {
	return &entity.Page{
		ID:              pageM.ID,
		Title:           pageM.Title,
		Slug:            pageM.Slug,
		Content:         pageM.Content,
		MetaDescription: pageM.MetaDescription,
		Active:          pageM.Active,
		CreatedAt:       pageM.CreatedAt,
		UpdatedAt:       pageM.UpdatedAt,
	}
}
