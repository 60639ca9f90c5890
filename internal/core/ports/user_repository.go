package ports

import (
	"context"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
	// DeleteByRole removes every user holding the given role name and returns
	// the number of accounts deleted. Used by the role-delete cascade.
	DeleteByRole(ctx context.Context, roleName string) (int64, error)
	CountByRole(ctx context.Context, roleName string) (int64, error)
}
