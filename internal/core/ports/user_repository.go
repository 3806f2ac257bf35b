package ports

import (
	"context"

	"github.com/thevittavardhan/backend/internal/core/domain"
)

// UserRepository defines persistence for user credentials.
type UserRepository interface {
	// FindByUsername retrieves a user regardless of role (admin login path).
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByUsernameAndRole retrieves a user constrained to a role (public login path).
	FindByUsernameAndRole(ctx context.Context, username, role string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
