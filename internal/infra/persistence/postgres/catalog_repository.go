package postgres

import (
	"context"
	"strings"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func preloadSizes(db *gorm.DB) *gorm.DB {
	return db.Order("price ASC")
}

// ListProducts returns one page of products, featured first then newest, and the total count.
func (repo *productRepository) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if !filter.IncludeInactive {
			db = db.Where("active = ?", true)
		}
		if filter.CategorySlug != "" {
			db = db.Where("category_id IN (?)",
				repo.db.Model(&model.CategoryModel{}).Select("id").Where("slug = ?", filter.CategorySlug))
		}
		if filter.Featured != nil {
			db = db.Where("featured = ?", *filter.Featured)
		}
		if search := strings.TrimSpace(filter.Search); search != "" {
			pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
			db = db.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Preload("Sizes", preloadSizes).
		Preload("Category").
		Order("featured DESC, created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), total, nil
}

// FindProductBySlug loads an active product with sizes and category.
func (repo *productRepository) FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Sizes", preloadSizes).
		Preload("Category").
		Where("slug = ? AND active = ?", slug, true).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// FindProductByID loads a product with sizes and category regardless of its active flag.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Sizes", preloadSizes).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindRelatedProducts returns active products of the category, excluding excludeID.
func (repo *productRepository) FindRelatedProducts(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Sizes", preloadSizes).
		Where("category_id = ? AND id <> ? AND active = ?", categoryID, excludeID, true).
		Order("featured DESC, created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find related products")
	}

	return toProductDomains(productModels), nil
}

// FindSize returns the live size row of an active product.
func (repo *productRepository) FindSize(ctx context.Context, productID uuid.UUID, size string) (*entity.ProductSize, error) {
	var sizeM model.ProductSizeModel

	if err := repo.db.WithContext(ctx).
		Select("product_sizes.*").
		Joins("JOIN products ON products.id = product_sizes.product_id").
		Where("product_sizes.product_id = ? AND product_sizes.size = ? AND products.active = ?", productID, size, true).
		First(&sizeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSizeNotFound
		}

		return nil, errors.Wrap(err, "failed to find product size")
	}

	return toProductSizeDomain(&sizeM), nil
}

// CreateProduct persists the product and its sizes.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category").Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for i, sizeM := range productM.Sizes {
		product.Sizes[i].ID = sizeM.ID
		product.Sizes[i].ProductID = productM.ID
	}

	return nil
}

// UpdateProduct writes product fields; sizes are untouched.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":              productM.Name,
			"slug":              productM.Slug,
			"description":       productM.Description,
			"short_description": productM.ShortDescription,
			"category_id":       productM.CategoryID,
			"featured":          productM.Featured,
			"active":            productM.Active,
			"allergens":         productM.Allergens,
			"ingredients":       productM.Ingredients,
			"images":            productM.Images,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ReplaceSizes deletes the existing sizes of a product and inserts the given ones.
func (repo *productRepository) ReplaceSizes(ctx context.Context, productID uuid.UUID, sizes []*entity.ProductSize) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("product_id = ?", productID).Delete(&model.ProductSizeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete product sizes")
	}
	if len(sizes) == 0 {
		return nil
	}

	sizeModels := make([]*model.ProductSizeModel, 0, len(sizes))
	for _, size := range sizes {
		sizeM := fromProductSizeDomain(size)
		sizeM.ProductID = productID
		sizeModels = append(sizeModels, sizeM)
	}
	if err := db.Create(&sizeModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product sizes")
	}
	for i, sizeM := range sizeModels {
		sizes[i].ID = sizeM.ID
		sizes[i].ProductID = productID
	}

	return nil
}

// SetActive toggles product visibility.
func (repo *productRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product visibility")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// ListActiveCategories returns active categories ordered by name.
func (repo *categoryRepository) ListActiveCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	sizes := make([]*entity.ProductSize, 0, len(data.Sizes))
	for _, sizeM := range data.Sizes {
		sizes = append(sizes, toProductSizeDomain(sizeM))
	}

	return &entity.Product{
		ID:               data.ID,
		Name:             data.Name,
		Slug:             data.Slug,
		Description:      data.Description,
		ShortDescription: data.ShortDescription,
		CategoryID:       data.CategoryID,
		Category:         toCategoryDomain(data.Category),
		Featured:         data.Featured,
		Active:           data.Active,
		Allergens:        nonNilStrings(data.Allergens),
		Ingredients:      nonNilStrings(data.Ingredients),
		Images:           nonNilStrings(data.Images),
		Sizes:            sizes,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toProductDomains(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	sizes := make([]*model.ProductSizeModel, 0, len(data.Sizes))
	for _, size := range data.Sizes {
		sizes = append(sizes, fromProductSizeDomain(size))
	}

	return &model.ProductModel{
		ID:               data.ID,
		Name:             data.Name,
		Slug:             data.Slug,
		Description:      data.Description,
		ShortDescription: data.ShortDescription,
		CategoryID:       data.CategoryID,
		Featured:         data.Featured,
		Active:           data.Active,
		Allergens:        datatypes.NewJSONSlice(nonNilStrings(data.Allergens)),
		Ingredients:      datatypes.NewJSONSlice(nonNilStrings(data.Ingredients)),
		Images:           datatypes.NewJSONSlice(nonNilStrings(data.Images)),
		Sizes:            sizes,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toProductSizeDomain(data *model.ProductSizeModel) *entity.ProductSize {
	if data == nil {
		return nil
	}

	return &entity.ProductSize{
		ID:          data.ID,
		ProductID:   data.ProductID,
		Size:        data.Size,
		Price:       data.Price,
		IsAvailable: data.IsAvailable,
	}
}

func fromProductSizeDomain(data *entity.ProductSize) *model.ProductSizeModel {
	if data == nil {
		return nil
	}

	return &model.ProductSizeModel{
		ID:          data.ID,
		ProductID:   data.ProductID,
		Size:        data.Size,
		Price:       data.Price,
		IsAvailable: data.IsAvailable,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
