package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrSigningKeyTooShort is returned when the HS512 key is under 64 bytes.
	ErrSigningKeyTooShort = errors.New("jwt: HS512 signing key must be at least 64 bytes")
	// ErrTokenExpired is returned by Verify for an expired token.
	ErrTokenExpired = errors.New("jwt: token has expired")
	// ErrInvalidToken is returned when a token is malformed or fails validation.
	ErrInvalidToken = errors.New("jwt: invalid token")
)

// JWT issues and verifies access tokens.
type JWT interface {
	Generate(customerID int64, email string) (Token, error)
	Verify(tokenStr string) (Claims, error)
}

// Token is a signed access token with its validity bounds.
type Token struct {
	Value     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	Secret    []byte
	Issuer    string
	Audiences []string
	TTL       time.Duration
	Clock     clocker
	// UUID generates the jti claim.
	UUID generator
}

// Claims carries registered claims plus the customer identity.
type Claims struct {
	jwt.RegisteredClaims
	CustomerID int64  `json:"customer_id,string"`
	Email      string `json:"email"`
}
