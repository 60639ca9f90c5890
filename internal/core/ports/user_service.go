package ports

import (
	"context"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
)

// UserService covers the admin-facing user operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}
