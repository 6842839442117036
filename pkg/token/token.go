package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Issuer is the fixed issuer claim stamped into every token.
	Issuer = "JobPortal"

	// DefaultTTL is the token lifetime when none is configured.
	DefaultTTL = 24 * time.Hour

	// BearerPrefix is the expected Authorization header scheme.
	BearerPrefix = "Bearer "
)

// ErrInvalidToken is returned for every verification failure. Malformed,
// badly signed and expired tokens are deliberately indistinguishable to
// callers so that responses don't leak cryptographic detail.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the verified claims of an accepted token.
type Claims struct {
	// Subject is the identity string the token asserts, an email.
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Service issues and verifies bearer identity tokens. The signing key is
// process-wide and immutable after construction; tokens are both issued
// and verified by this process, so a shared-secret HMAC is sufficient.
type Service struct {
	key []byte
	ttl time.Duration
}

// NewService creates a token service with the given signing key. A zero
// ttl falls back to DefaultTTL.
func NewService(key []byte, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{key: key, ttl: ttl}
}

// Issue produces a signed token asserting the given subject, valid from
// now until now + TTL.
func (s *Service) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verify parses and validates a token string. Signature, expiry and
// structural checks all collapse to ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || registered.Subject == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{Subject: registered.Subject}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}

	return claims, nil
}

// ExtractBearer strips the "Bearer " prefix from an Authorization header
// value. It reports false when the scheme is absent; this is not itself a
// security check.
func ExtractBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	return header[len(BearerPrefix):], true
}
