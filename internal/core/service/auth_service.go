package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

// AuthService implements both login flows and the admin bootstrap.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// LoginUser authenticates an account constrained to role "user".
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByUsernameAndRole(ctx, username, domain.RoleUser)
	return s.finishLogin(user, err, password)
}

// LoginAdmin authenticates any account by username, role unconstrained.
// Token possession is the only gate on the admin surface.
func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	return s.finishLogin(user, err, password)
}

// finishLogin collapses every failure into ErrInvalidCredentials so callers
// cannot distinguish an unknown username from a wrong password.
func (s *AuthService) finishLogin(user *domain.User, lookupErr error, password string) (string, *domain.User, error) {
	if lookupErr != nil {
		if errors.Is(lookupErr, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, lookupErr
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// EnsureAdmin creates the admin account when it does not exist yet. The
// password comes from deployment configuration; when it is empty the seed is
// skipped with a warning rather than falling back to a built-in default.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password, email string) error {
	if username == "" || password == "" {
		s.log.Warn().Msg("admin credentials not configured, skipping bootstrap")
		return nil
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	s.log.Info().Str("username", username).Msg("admin account created")
	return nil
}
