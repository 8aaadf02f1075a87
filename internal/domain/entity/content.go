package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog article. Only published posts appear on the storefront.
type Post struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featured_image"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	Published     bool       `json:"published"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SetPublished keeps the first publication time while the post stays published.
func (p *Post) SetPublished(published bool, now time.Time) {
	switch {
	case !published:
		p.PublishedAt = nil
	case p.PublishedAt == nil:
		p.PublishedAt = &now
	}
	p.Published = published
}

// Page is a static content page such as "About us" or "Delivery information".
type Page struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content"`
	MetaDescription string    `json:"meta_description"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
