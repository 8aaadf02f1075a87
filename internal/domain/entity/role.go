// Package entity contains the core business objects of the storefront.
package entity

import "slices"

// Role represents an account's authorization level.
type Role string

const (
	// RoleCustomer is the default role given at signup.
	RoleCustomer Role = "CUSTOMER"
	// RoleAdmin can manage products, orders and content.
	RoleAdmin Role = "ADMIN"
	// RoleSuperAdmin can additionally change other accounts' roles.
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants access to the back office.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
