package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrSecretIsRequired is returned when a TokenIssuer is created without a
	// signing secret.
	ErrSecretIsRequired = errors.New("jwt secret is required")

	// ErrTokenIsInvalid is returned for tokens that fail signature or claim
	// validation, including expired tokens.
	ErrTokenIsInvalid = errors.New("token is invalid")
)

// Claims carries the authenticated identity inside a token: who the user is
// and which role they hold. Authorization decisions happen in the domain, the
// token only transports the facts.
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HMAC-SHA256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) (TokenIssuer, error) {
	if secret == "" {
		return TokenIssuer{}, ErrSecretIsRequired
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates a signed token for the given user and role.
func (t TokenIssuer) Issue(userID, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse verifies a token string and returns its claims.
// Returns an error wrapping ErrTokenIsInvalid for any verification failure.
func (t TokenIssuer) Parse(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return t.secret, nil
		})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
	if !token.Valid {
		return Claims{}, ErrTokenIsInvalid
	}

	return claims, nil
}
