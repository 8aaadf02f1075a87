// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in. Guests never get a User row.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Profile   *Profile  `json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile holds account metadata and the authorization role.
// The role is only changed by an administrator.
type Profile struct {
	UserID        uuid.UUID `json:"user_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone"`
	Role          Role      `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FullName joins first and last name, skipping empty parts.
func (p *Profile) FullName() string {
	if p == nil {
		return ""
	}

	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// RoleOf returns the user's role, defaulting to customer when no profile is loaded.
func (u *User) RoleOf() Role {
	if u == nil || u.Profile == nil {
		return RoleCustomer
	}

	return u.Profile.Role
}

// CustomerSummary is the back-office view of a customer account.
type CustomerSummary struct {
	UserID        uuid.UUID `json:"user_id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone"`
	EmailVerified bool      `json:"email_verified"`
	OrderCount    int64     `json:"order_count"`
	CreatedAt     time.Time `json:"created_at"`
}
