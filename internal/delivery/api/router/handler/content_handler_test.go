package handler

import (
	"net/http"
	"testing"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	mockUC "aurelise/internal/mocks/usecase"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContentHandler(t *testing.T) (*ContentHandler, *mockUC.MockContentUsecase) {
	contentUC := mockUC.NewMockContentUsecase(t)

	return NewContentHandler(ContentHandlerParams{ContentUC: contentUC, Logger: newDiscardLogger()}), contentUC
}

func TestContentHandler_GetPost(t *testing.T) {
	tests := []struct {
		name   string
		ucErr  error
		status int
		code   string
	}{
		{name: "published", status: http.StatusOK},
		{name: "draft or missing", ucErr: domainerrors.ErrPostNotFound, status: http.StatusNotFound, code: "POST_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, contentUC := newContentHandler(t)
			c, rec := newContext(http.MethodGet, "/api/v1/posts/autumn-menu", "")
			withParams(c, "slug", "autumn-menu")

			var post *entity.Post
			if tt.ucErr == nil {
				post = &entity.Post{ID: uuid.New(), Title: "Autumn menu", Slug: "autumn-menu", Published: true}
			}
			contentUC.EXPECT().GetPublishedPost(mock.Anything, "autumn-menu").Return(post, tt.ucErr).Once()

			require.NoError(t, h.GetPost(c))
			if tt.code != "" {
				requireErrorCode(t, rec, tt.status, tt.code)

				return
			}
			assert.Equal(t, tt.status, rec.Code)

			var got entity.Post
			decodeData(t, rec, &got)
			assert.Equal(t, "autumn-menu", got.Slug)
		})
	}
}

func TestContentHandler_ListPages(t *testing.T) {
	h, contentUC := newContentHandler(t)
	c, rec := newContext(http.MethodGet, "/api/v1/pages", "")

	contentUC.EXPECT().ListActivePages(mock.Anything).
		Return([]*entity.Page{{Title: "About", Slug: "about", Active: true}}, nil).
		Once()

	require.NoError(t, h.ListPages(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var pages []entity.Page
	decodeData(t, rec, &pages)
	require.Len(t, pages, 1)
	assert.Equal(t, "about", pages[0].Slug)
}

func TestContentHandler_CreatePost(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{
			name:   "created",
			body:   `{"title":"Autumn menu","excerpt":"Figs and pears","featured_image":"https://cdn.example.com/autumn.jpg","published":true}`,
			status: http.StatusCreated,
		},
		{name: "missing title", body: `{"content":"text"}`, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "image is not a url", body: `{"title":"Autumn","featured_image":"autumn.jpg"}`, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, contentUC := newContentHandler(t)
			c, rec := newContext(http.MethodPost, "/admin/posts", tt.body)

			if tt.code == "" {
				contentUC.EXPECT().
					CreatePost(mock.Anything, &usecase.PostInput{
						Title:         "Autumn menu",
						Excerpt:       "Figs and pears",
						FeaturedImage: "https://cdn.example.com/autumn.jpg",
						Published:     true,
					}).
					Return(&entity.Post{ID: uuid.New(), Title: "Autumn menu", Slug: "autumn-menu", Published: true}, nil).
					Once()
			}

			require.NoError(t, h.CreatePost(c))
			if tt.code != "" {
				requireErrorCode(t, rec, tt.status, tt.code)

				return
			}
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestContentHandler_UpdatePage_SlugTaken(t *testing.T) {
	h, contentUC := newContentHandler(t)
	pageID := uuid.New()
	c, rec := newContext(http.MethodPut, "/admin/pages/"+pageID.String(), `{"title":"FAQ","slug":"faq","active":false}`)
	withParams(c, "id", pageID.String())

	contentUC.EXPECT().
		UpdatePage(mock.Anything, pageID, mock.MatchedBy(func(input *usecase.PageInput) bool {
			return input.Slug == "faq" && input.Active != nil && !*input.Active
		})).
		Return(nil, domainerrors.ErrContentSlugTaken).
		Once()

	require.NoError(t, h.UpdatePage(c))
	requireErrorCode(t, rec, http.StatusConflict, "CONTENT_SLUG_TAKEN")
}

func TestContentHandler_DeletePost(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, contentUC := newContentHandler(t)
		postID := uuid.New()
		c, rec := newContext(http.MethodDelete, "/admin/posts/"+postID.String(), "")
		withParams(c, "id", postID.String())

		contentUC.EXPECT().DeletePost(mock.Anything, postID).Return(nil).Once()

		require.NoError(t, h.DeletePost(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newContentHandler(t)
		c, rec := newContext(http.MethodDelete, "/admin/posts/nope", "")
		withParams(c, "id", "nope")

		require.NoError(t, h.DeletePost(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_ID")
	})
}
