package ports

import (
	"context"

	"github.com/greenhouse/plants-api/internal/core/domain"
)

type AuthService interface {
	// Signup registers an account and returns a freshly minted token.
	// Self-assigning the admin role is rejected with domain.ErrInvalidRole.
	Signup(ctx context.Context, name, email, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
