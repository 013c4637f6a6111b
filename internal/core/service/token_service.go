package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// DefaultTokenTTL is used when the caller does not supply a lifetime.
const DefaultTokenTTL = 30 * time.Minute

// TokenService issues and verifies signed, self-contained identity tokens.
// Tokens are stateless: the expiry lives inside the token and nothing is
// tracked server-side, so a token cannot be revoked before it expires.
// Rotating the signing key invalidates all outstanding tokens.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenService returns a TokenService signing with secret. A non-positive
// defaultTTL falls back to DefaultTokenTTL.
func NewTokenService(secret string, defaultTTL time.Duration) *TokenService {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), defaultTTL: defaultTTL}
}

// Issue returns a signed token asserting subject=userID with an absolute
// expiry. A non-positive ttl uses the service default.
func (s *TokenService) Issue(userID int64, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify returns the subject user id the token asserts. Signature mismatch,
// structural damage and expiry all collapse to domain.ErrUnauthorized so
// the caller cannot tell which check failed.
func (s *TokenService) Verify(token string) (int64, error) {
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, domain.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domain.ErrUnauthorized
	}
	return userID, nil
}
