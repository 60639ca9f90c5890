package ports

import (
	"context"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
)

// RoleRepository defines the interface for role catalog persistence.
// Exactly one role document exists per distinct name (unique index).
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id string) error
}
