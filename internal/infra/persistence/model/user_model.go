package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile         *ProfileModel         `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key.
func (m *UserModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id.
type ProfileModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName     string    `gorm:"type:varchar(100)"`
	LastName      string    `gorm:"type:varchar(100)"`
	Phone         string    `gorm:"type:varchar(50)"`
	Role          string    `gorm:"type:varchar(20);not null;index"`
	EmailVerified bool      `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
