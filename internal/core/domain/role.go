package domain

import (
	"strings"
	"time"
)

// Standard role names. The first four are seeded as system roles at bootstrap;
// "admin" is an alias tier above subadmin used in guard checks, and "vendor" /
// "builder" appear only in the non-admin classification list.
const (
	RoleCustomer   = "customer"
	RoleAgent      = "agent"
	RoleVendor     = "vendor"
	RoleBuilder    = "builder"
	RoleSubAdmin   = "subadmin"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Level bounds for any role.
const (
	MinRoleLevel = 1
	MaxRoleLevel = 10
)

// Canonical thresholds used by the built-in tier guards.
const (
	AdminLevelThreshold    = 8
	SubAdminLevelThreshold = 7
)

// Role is the persisted catalog entry a user's role name resolves to.
type Role struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Description  string    `json:"description" bson:"description"`
	Level        int       `json:"level" bson:"level"`
	Permissions  []string  `json:"permissions" bson:"permissions"`
	Pages        []string  `json:"pages" bson:"pages"`
	IsSystemRole bool      `json:"is_system_role" bson:"is_system_role"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// HasPermission reports whether the role itself grants the permission token.
func (r *Role) HasPermission(token string) bool {
	for _, p := range r.Permissions {
		if p == token {
			return true
		}
	}
	return false
}

// NormalizeRoleName lower-cases and trims a role name. Role names are
// case-normalized everywhere so "Admin" and "admin" are the same catalog entry.
func NormalizeRoleName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// canonicalRoleNames are the five names that level-threshold guards recognise
// explicitly. A role with any other name is authorized purely by numeric level.
var canonicalRoleNames = map[string]struct{}{
	RoleCustomer:   {},
	RoleAgent:      {},
	RoleAdmin:      {},
	RoleSubAdmin:   {},
	RoleSuperAdmin: {},
}

// IsCanonicalRole reports whether name is one of the five standard role names
// compared by name in guard checks.
func IsCanonicalRole(name string) bool {
	_, ok := canonicalRoleNames[NormalizeRoleName(name)]
	return ok
}

// RoleClass is the tier classification of a role name, resolved once when a
// principal is built.
type RoleClass int

const (
	ClassCustomer RoleClass = iota
	ClassAgent
	ClassVendor
	ClassBuilder
	// ClassAdminTier covers superadmin, admin, subadmin, and every custom role.
	// Classification is a deny-list: any name not recognised as a standard
	// end-user role lands here.
	ClassAdminTier
)

// ClassifyRole maps a role name to its RoleClass. Unknown names classify as
// admin-tier; callers that need a stricter gate must use level thresholds.
func ClassifyRole(name string) RoleClass {
	switch NormalizeRoleName(name) {
	case RoleCustomer:
		return ClassCustomer
	case RoleAgent:
		return ClassAgent
	case RoleVendor:
		return ClassVendor
	case RoleBuilder:
		return ClassBuilder
	default:
		return ClassAdminTier
	}
}

// SystemRoles returns the four built-in roles seeded at first bootstrap.
// They are never created through the lifecycle manager and are protected from
// deletion; only a superadmin may edit or deactivate them.
func SystemRoles() []Role {
	return []Role{
		{
			Name:        RoleCustomer,
			Description: "End user browsing and enquiring about listings",
			Level:       1,
			Permissions: []string{"properties.view", "enquiries.create", "reviews.create"},
			Pages:       []string{"home", "listings", "favourites", "profile"},
		},
		{
			Name:        RoleAgent,
			Description: "Vendor agent managing own property listings",
			Level:       5,
			Permissions: []string{"properties.view", "properties.create", "properties.edit", "enquiries.view"},
			Pages:       []string{"home", "listings", "my-properties", "enquiries", "profile"},
		},
		{
			Name:        RoleSubAdmin,
			Description: "Delegated administrator with a limited permission set",
			Level:       7,
			Permissions: []string{"users.view", "properties.view", "properties.moderate", "reviews.moderate"},
			Pages:       []string{"dashboard", "users", "properties", "reviews"},
		},
		{
			Name:        RoleSuperAdmin,
			Description: "Unrestricted platform administrator",
			Level:       10,
			Permissions: []string{"users.view", "users.delete", "roles.manage", "properties.moderate", "settings.edit"},
			Pages:       []string{"dashboard", "users", "roles", "properties", "reviews", "settings"},
		},
	}
}
