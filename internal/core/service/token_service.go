package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

// tokenLifetime is fixed policy: every issued token expires 7 days out.
const tokenLifetime = 7 * 24 * time.Hour

// TokenService issues and verifies HS256-signed bearer tokens. It holds no
// mutable state beyond the signing secret.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue signs a token carrying the user's identity and role.
func (s *TokenService) Issue(userID, username, role string) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"id":       userID,
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenLifetime).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning the claims it carries.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &ports.TokenClaims{UserID: userID, Username: username, Role: role}, nil
}
