package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService_MissingSecret(t *testing.T) {
	svc, err := NewTokenService("")
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	token, err := svc.Generate("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	// expiry is 7 days out, give or take clock skew in the test itself
	assert.WithinDuration(t, time.Now().Add(TokenValidity), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	// correctly signed but already past its expiry
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := svc.Verify(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer, err := NewTokenService("secret-one")
	require.NoError(t, err)
	verifier, err := NewTokenService("secret-two")
	require.NoError(t, err)

	token, err := issuer.Generate("a@x.com")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestTokenService_VerifyHeader(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	valid, err := svc.Generate("a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr bool
	}{
		{name: "valid bearer header", header: "Bearer " + valid, wantErr: false},
		{name: "lowercase scheme", header: "bearer " + valid, wantErr: false},
		{name: "empty header", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "scheme with empty token", header: "Bearer ", wantErr: true},
		{name: "wrong scheme", header: "Token " + valid, wantErr: true},
		{name: "bare token without scheme", header: valid, wantErr: true},
		{name: "garbage token", header: "Bearer not.a.jwt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.VerifyHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "a@x.com", claims.Email)
			}
		})
	}
}
