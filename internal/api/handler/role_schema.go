package handler

import "time"

type createRoleRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Level       int      `json:"level"       validate:"required,min=1,max=10"`
	Permissions []string `json:"permissions"`
	Pages       []string `json:"pages"`
}

type updateRoleRequest struct {
	Description *string  `json:"description,omitempty"`
	Level       *int     `json:"level,omitempty" validate:"omitempty,min=1,max=10"`
	Permissions []string `json:"permissions,omitempty"`
	Pages       []string `json:"pages,omitempty"`
}

type roleResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Level        int       `json:"level"`
	Permissions  []string  `json:"permissions"`
	Pages        []string  `json:"pages"`
	IsSystemRole bool      `json:"is_system_role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// deleteRoleResponse reports the cascade: deleting a role permanently removes
// every account holding it.
type deleteRoleResponse struct {
	Role         string `json:"role"`
	UsersDeleted int64  `json:"users_deleted"`
	Message      string `json:"message"`
}
