package ports

import (
	"context"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
)

// CreateRoleInput carries the fields for a new custom role. IsSystemRole is
// not accepted: roles created through the lifecycle manager are never system
// roles.
type CreateRoleInput struct {
	Name        string
	Description string
	Level       int
	Permissions []string
	Pages       []string
}

// UpdateRoleInput is a partial patch; nil fields are left unchanged.
type UpdateRoleInput struct {
	Description *string
	Level       *int
	Permissions []string
	Pages       []string
}

// DeleteRoleResult reports the outcome of a role deletion, including how many
// dependent user accounts the cascade removed.
type DeleteRoleResult struct {
	RoleName     string
	UsersDeleted int64
}

// RoleService is the role lifecycle manager. Callers must already have passed
// an admin-tier guard at the route layer; the service enforces only domain
// invariants (system-role protection, level bounds, name uniqueness).
type RoleService interface {
	List(ctx context.Context) ([]domain.Role, error)
	Get(ctx context.Context, id string) (*domain.Role, error)
	Create(ctx context.Context, actor *domain.Principal, input CreateRoleInput) (*domain.Role, error)
	Update(ctx context.Context, actor *domain.Principal, id string, patch UpdateRoleInput) (*domain.Role, error)
	ToggleActive(ctx context.Context, actor *domain.Principal, id string) (*domain.Role, error)
	Delete(ctx context.Context, actor *domain.Principal, id string) (*DeleteRoleResult, error)
}
