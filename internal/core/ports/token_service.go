package ports

// TokenClaims is the identity carried by a verified bearer token.
type TokenClaims struct {
	UserID   string
	Username string
	Role     string
}

// TokenService issues and verifies signed, time-bounded bearer tokens.
// Verify is a pure function of the signing secret, the token bytes and the
// clock; it is safe to call concurrently from any number of requests.
type TokenService interface {
	Issue(userID, username, role string) (string, error)
	// Verify returns domain.ErrInvalidToken when the signature check fails and
	// domain.ErrTokenExpired when the token is past its expiry.
	Verify(token string) (*TokenClaims, error)
}
