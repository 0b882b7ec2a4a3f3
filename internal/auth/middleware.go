package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// identityKey is the echo context key under which the gate stores the parsed token.
const identityKey = "user"

// GateConfig builds the echo-jwt configuration for the access gate. Every
// rejection, whatever the parsing fault, terminates the request with 403
// before any handler runs.
func GateConfig(secret string) echojwt.Config {
	return echojwt.Config{
		ContextKey: identityKey,
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Access Denied!"})
		},
	}
}

// IdentityEmail returns the verified caller email bound by the gate, or false
// when the request carries no verified identity.
func IdentityEmail(c echo.Context) (string, bool) {
	token, ok := c.Get(identityKey).(*jwt.Token)
	if !ok {
		return "", false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Email == "" {
		return "", false
	}
	return claims.Email, true
}
