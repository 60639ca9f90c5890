package domain

import "time"

// UserStatus is the account lifecycle state. Only active accounts may
// authenticate.
type UserStatus string

const (
	StatusPending   UserStatus = "pending"
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
	StatusInactive  UserStatus = "inactive"
)

// User models an account holding a role by name. RolePermissions is a legacy
// per-user override list granted independently of the role document; it is
// unioned into the principal's permission set at resolve time.
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name,omitempty"`
	PasswordHash    string     `json:"-"`
	Status          UserStatus `json:"status"`
	Role            string     `json:"role"`
	RolePermissions []string   `json:"role_permissions,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
