package impl

import (
	"context"
	"testing"
	"time"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	mockRepo "aurelise/internal/mocks/repository"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentServiceFixtures struct {
	service     usecase.ContentUsecase
	contentRepo *mockRepo.MockContentRepository
	now         time.Time
}

func createTestContentService(t *testing.T) contentServiceFixtures {
	fixtures := contentServiceFixtures{
		contentRepo: mockRepo.NewMockContentRepository(t),
		now:         time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC),
	}

	srv := NewContentService(ContentServiceParams{
		ContentRepo: fixtures.contentRepo,
		Logger:      newDiscardLogger(),
	})
	srv.(*contentService).now = func() time.Time { return fixtures.now }
	fixtures.service = srv

	return fixtures
}

func TestContentService_GetPublishedPost(t *testing.T) {
	ctx := context.Background()
	published := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		post    *entity.Post
		repoErr error
		wantErr error
	}{
		{
			name: "published post is returned",
			post: &entity.Post{Slug: "autumn-menu", Published: true, PublishedAt: &published},
		},
		{
			name:    "draft is hidden",
			post:    &entity.Post{Slug: "autumn-menu"},
			wantErr: domainerrors.ErrPostNotFound,
		},
		{
			name:    "missing post",
			repoErr: repository.ErrPostNotFound,
			wantErr: domainerrors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestContentService(t)
			fx.contentRepo.EXPECT().FindPostBySlug(ctx, "autumn-menu").Return(tt.post, tt.repoErr)

			post, err := fx.service.GetPublishedPost(ctx, "autumn-menu")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, post)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.post, post)
		})
	}
}

func TestContentService_GetActivePage_HidesInactive(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	fx.contentRepo.EXPECT().FindPageBySlug(ctx, "allergens").Return(&entity.Page{Slug: "allergens"}, nil)

	_, err := fx.service.GetActivePage(ctx, "allergens")
	assert.ErrorIs(t, err, domainerrors.ErrPageNotFound)
}

func TestContentService_ListUsesVisibilityFlags(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	fx.contentRepo.EXPECT().ListPosts(ctx, true).Return([]*entity.Post{{Title: "public"}}, nil).Once()
	fx.contentRepo.EXPECT().ListPosts(ctx, false).Return([]*entity.Post{{Title: "public"}, {Title: "draft"}}, nil).Once()
	fx.contentRepo.EXPECT().ListPages(ctx, true).Return([]*entity.Page{}, nil).Once()
	fx.contentRepo.EXPECT().ListPages(ctx, false).Return([]*entity.Page{{Title: "hidden"}}, nil).Once()

	posts, err := fx.service.ListPublishedPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	posts, err = fx.service.AdminListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	pages, err := fx.service.ListActivePages(ctx)
	require.NoError(t, err)
	assert.Empty(t, pages)

	pages, err = fx.service.AdminListPages(ctx)
	require.NoError(t, err)
	assert.Len(t, pages, 1)
}

func TestContentService_CreatePost(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	tests := []struct {
		name       string
		input      usecase.PostInput
		repoErr    error
		wantErr    error
		wantSlug   string
		wantPubAt  bool
		skipCreate bool
	}{
		{
			name:      "published with derived slug",
			input:     usecase.PostInput{Title: "  Crème Brûlée Season ", Published: true, CategoryID: &categoryID},
			wantSlug:  "creme-brulee-season",
			wantPubAt: true,
		},
		{
			name:     "draft keeps given slug",
			input:    usecase.PostInput{Title: "Autumn", Slug: "autumn-2026"},
			wantSlug: "autumn-2026",
		},
		{
			name:       "title is required",
			input:      usecase.PostInput{Title: "   "},
			wantErr:    domainerrors.ErrValidationFailed,
			skipCreate: true,
		},
		{
			name:       "malformed slug",
			input:      usecase.PostInput{Title: "Autumn", Slug: "Autumn Menu"},
			wantErr:    domainerrors.ErrValidationFailed,
			skipCreate: true,
		},
		{
			name:     "slug taken",
			input:    usecase.PostInput{Title: "Autumn"},
			repoErr:  repository.ErrDuplicateContentSlug,
			wantErr:  domainerrors.ErrContentSlugTaken,
			wantSlug: "autumn",
		},
		{
			name:     "unknown category",
			input:    usecase.PostInput{Title: "Autumn", CategoryID: &categoryID},
			repoErr:  repository.ErrCategoryNotFound,
			wantErr:  domainerrors.ErrValidationFailed,
			wantSlug: "autumn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestContentService(t)

			if !tt.skipCreate {
				fx.contentRepo.EXPECT().
					CreatePost(ctx, mock.MatchedBy(func(post *entity.Post) bool {
						return post.Slug == tt.wantSlug
					})).
					Return(tt.repoErr)
			}

			input := tt.input
			post, err := fx.service.CreatePost(ctx, &input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSlug, post.Slug)
			assert.Equal(t, tt.input.Published, post.Published)
			if tt.wantPubAt {
				require.NotNil(t, post.PublishedAt)
				assert.Equal(t, fx.now, *post.PublishedAt)
			} else {
				assert.Nil(t, post.PublishedAt)
			}
		})
	}
}

func TestContentService_UpdatePost_KeepsFirstPublicationTime(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	postID := uuid.New()
	firstPublished := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	existing := &entity.Post{ID: postID, Title: "Old", Slug: "old", Published: true, PublishedAt: &firstPublished}

	fx.contentRepo.EXPECT().FindPostByID(ctx, postID).Return(existing, nil)
	fx.contentRepo.EXPECT().UpdatePost(ctx, existing).Return(nil)

	post, err := fx.service.UpdatePost(ctx, postID, &usecase.PostInput{Title: "New title", Slug: "old", Published: true})
	require.NoError(t, err)
	assert.Equal(t, "New title", post.Title)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, firstPublished, *post.PublishedAt)
	assert.Equal(t, fx.now, post.UpdatedAt)
}

func TestContentService_UpdatePost_UnpublishClearsPublicationTime(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	postID := uuid.New()
	published := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	existing := &entity.Post{ID: postID, Title: "Old", Slug: "old", Published: true, PublishedAt: &published}

	fx.contentRepo.EXPECT().FindPostByID(ctx, postID).Return(existing, nil)
	fx.contentRepo.EXPECT().UpdatePost(ctx, existing).Return(nil)

	post, err := fx.service.UpdatePost(ctx, postID, &usecase.PostInput{Title: "Old"})
	require.NoError(t, err)
	assert.False(t, post.Published)
	assert.Nil(t, post.PublishedAt)
}

func TestContentService_UpdatePost_NotFound(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	postID := uuid.New()
	fx.contentRepo.EXPECT().FindPostByID(ctx, postID).Return(nil, repository.ErrPostNotFound)

	_, err := fx.service.UpdatePost(ctx, postID, &usecase.PostInput{Title: "Anything"})
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestContentService_DeletePost(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "deleted"},
		{name: "missing", repoErr: repository.ErrPostNotFound, wantErr: domainerrors.ErrPostNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestContentService(t)
			postID := uuid.New()
			fx.contentRepo.EXPECT().DeletePost(ctx, postID).Return(tt.repoErr)

			err := fx.service.DeletePost(ctx, postID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestContentService_CreatePage_DefaultsToActive(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	fx.contentRepo.EXPECT().
		CreatePage(ctx, mock.MatchedBy(func(page *entity.Page) bool {
			return page.Active && page.Slug == "delivery-information" && page.MetaDescription == "Where we deliver"
		})).
		Return(nil)

	page, err := fx.service.CreatePage(ctx, &usecase.PageInput{
		Title:           "Delivery Information",
		MetaDescription: " Where we deliver ",
	})
	require.NoError(t, err)
	assert.True(t, page.Active)
	assert.Equal(t, fx.now, page.CreatedAt)
}

func TestContentService_UpdatePage(t *testing.T) {
	ctx := context.Background()
	inactive := false

	t.Run("nil active keeps flag", func(t *testing.T) {
		fx := createTestContentService(t)
		pageID := uuid.New()
		existing := &entity.Page{ID: pageID, Title: "About", Slug: "about", Active: true}

		fx.contentRepo.EXPECT().FindPageByID(ctx, pageID).Return(existing, nil)
		fx.contentRepo.EXPECT().UpdatePage(ctx, existing).Return(nil)

		page, err := fx.service.UpdatePage(ctx, pageID, &usecase.PageInput{Title: "About us", Slug: "about"})
		require.NoError(t, err)
		assert.True(t, page.Active)
		assert.Equal(t, "About us", page.Title)
	})

	t.Run("deactivate", func(t *testing.T) {
		fx := createTestContentService(t)
		pageID := uuid.New()
		existing := &entity.Page{ID: pageID, Title: "About", Slug: "about", Active: true}

		fx.contentRepo.EXPECT().FindPageByID(ctx, pageID).Return(existing, nil)
		fx.contentRepo.EXPECT().UpdatePage(ctx, existing).Return(nil)

		page, err := fx.service.UpdatePage(ctx, pageID, &usecase.PageInput{Title: "About", Active: &inactive})
		require.NoError(t, err)
		assert.False(t, page.Active)
	})

	t.Run("slug taken", func(t *testing.T) {
		fx := createTestContentService(t)
		pageID := uuid.New()
		existing := &entity.Page{ID: pageID, Title: "About", Slug: "about", Active: true}

		fx.contentRepo.EXPECT().FindPageByID(ctx, pageID).Return(existing, nil)
		fx.contentRepo.EXPECT().UpdatePage(ctx, existing).Return(repository.ErrDuplicateContentSlug)

		_, err := fx.service.UpdatePage(ctx, pageID, &usecase.PageInput{Title: "About", Slug: "faq"})
		assert.ErrorIs(t, err, domainerrors.ErrContentSlugTaken)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestContentService(t)
		pageID := uuid.New()

		fx.contentRepo.EXPECT().FindPageByID(ctx, pageID).Return(nil, errors.New("connection reset"))

		_, err := fx.service.UpdatePage(ctx, pageID, &usecase.PageInput{Title: "About"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrPageNotFound)
	})
}

func TestContentService_DeletePage_NotFound(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	pageID := uuid.New()
	fx.contentRepo.EXPECT().DeletePage(ctx, pageID).Return(repository.ErrPageNotFound)

	assert.ErrorIs(t, fx.service.DeletePage(ctx, pageID), domainerrors.ErrPageNotFound)
}
