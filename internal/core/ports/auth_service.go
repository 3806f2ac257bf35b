package ports

import (
	"context"

	"github.com/thevittavardhan/backend/internal/core/domain"
)

// AuthService verifies credentials and issues bearer tokens.
//
// Both login flows collapse "unknown user" and "wrong password" into
// domain.ErrInvalidCredentials so the API never allows account enumeration.
type AuthService interface {
	// LoginUser authenticates an account with role "user".
	LoginUser(ctx context.Context, username, password string) (string, *domain.User, error)
	// LoginAdmin authenticates any account by username, role unconstrained.
	LoginAdmin(ctx context.Context, username, password string) (string, *domain.User, error)
	// EnsureAdmin creates the admin account at startup when it does not exist.
	EnsureAdmin(ctx context.Context, username, password, email string) error
}
