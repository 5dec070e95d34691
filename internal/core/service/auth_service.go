package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/greenhouse/plants-api/internal/core/domain"
	"github.com/greenhouse/plants-api/internal/core/ports"
)

// AuthService implements signup and login.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Signup registers a new account and mints its first token. The admin role
// cannot be self-assigned; only employee and client signups are accepted.
func (s *AuthService) Signup(ctx context.Context, name, email, password, role string) (string, *domain.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	parsed, err := domain.ParseRole(role)
	if err != nil || parsed == domain.RoleAdmin {
		return "", nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         parsed,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.Principal())
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login authenticates by email and password and mints a token. An unknown
// email and a wrong password both fail with ErrInvalidCredentials, so the
// endpoint cannot be used to probe which addresses have accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Principal())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
