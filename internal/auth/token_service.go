package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the window during which an issued credential is accepted.
// There is no revocation: a token stays valid until this window closes.
const TokenValidity = 7 * 24 * time.Hour

var (
	// ErrMissingSecret is returned when the service is built without a signing secret.
	ErrMissingSecret = errors.New("jwt signing secret is not configured")
	// ErrInvalidAuthHeader is returned for a missing or malformed Authorization header.
	ErrInvalidAuthHeader = errors.New("invalid authorization header")
	// ErrInvalidToken is returned when a token fails signature or expiry checks.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the identity claim embedded in every issued credential. The email
// is the sole identity key; roles and permissions are re-derived from storage
// on every request rather than frozen into the token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer credentials used by the API.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given signing secret.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Generate issues a signed credential embedding the email claim, valid for
// exactly TokenValidity from now.
func (s *TokenService) Generate(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a raw token string and returns the embedded claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyHeader validates a raw Authorization header value in the form
// "Bearer <token>". Any malformed value resolves to an error, never a panic.
func (s *TokenService) VerifyHeader(header string) (*Claims, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return nil, ErrInvalidAuthHeader
	}
	return s.Verify(parts[1])
}
