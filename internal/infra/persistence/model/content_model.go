package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Slug          string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Content       string     `gorm:"type:text"`
	Excerpt       string     `gorm:"type:varchar(500)"`
	FeaturedImage string     `gorm:"type:varchar(500)"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index"`
	Published     bool       `gorm:"not null;index"`
	PublishedAt   *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// BeforeCreate assigns the primary key.
func (m *PostModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// PageModel mirrors the 'pages' table.
type PageModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Slug            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Content         string    `gorm:"type:text"`
	MetaDescription string    `gorm:"type:varchar(300)"`
	Active          bool      `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PageModel) TableName() string {
	return "pages"
}

// BeforeCreate assigns the primary key.
func (m *PageModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
