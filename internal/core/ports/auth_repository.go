package ports

import (
	"context"

	"github.com/greenhouse/plants-api/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// CountByRole returns the number of accounts holding role.
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
