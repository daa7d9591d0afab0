package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/store"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// AuthService registers users and issues identity tokens. Sign-in is an
// identity assertion by email; there are no credentials to verify.
type AuthService struct {
	users  store.UserDirectory
	tokens *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.Config, users store.UserDirectory) *AuthService {
	return &AuthService{
		users:  users,
		tokens: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Register creates a user and signs them in. Administrators are not
// self-registerable; they only exist through seeding.
func (s *AuthService) Register(ctx context.Context, name, email string, role domain.Role, department domain.Department) (*domain.User, string, time.Time, error) {
	if role == domain.RoleAdministrator {
		return nil, "", time.Time{}, apperrors.NewPermissionDenied("administrators cannot self-register")
	}

	user := &domain.User{
		Name:       strings.TrimSpace(name),
		Email:      strings.TrimSpace(email),
		Role:       role,
		Department: department,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, "", time.Time{}, apperrors.NewConflict("email already registered", map[string]any{"email": user.Email})
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, expiresAt, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, expiresAt, nil
}

// Login looks the user up by email, case-insensitively, and issues a token.
func (s *AuthService) Login(ctx context.Context, email string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("unknown email")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, expiresAt, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, expiresAt, nil
}

// ListUsers returns every registered user, insertion order.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}
