package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/infrastructure/firebase"
)

type AuthMiddleware struct {
	authClient *auth.Client
	devTokens  *firebase.DevTokenService
}

// NewAuthMiddleware builds the bearer-token gate. devTokens may be nil; when
// set (development only), locally minted session tokens are accepted before
// falling back to Firebase verification.
func NewAuthMiddleware(authClient *auth.Client, devTokens *firebase.DevTokenService) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
		devTokens:  devTokens,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		idToken := parts[1]

		if m.devTokens != nil {
			if uid, role, err := m.devTokens.Verify(idToken); err == nil {
				c.Set("uid", uid)
				c.Set("role", role)
				return next(c)
			}
		}

		token, err := m.authClient.VerifyIDToken(c.Request().Context(), idToken)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		role, _ := token.Claims["role"].(string)

		c.Set("uid", token.UID)
		c.Set("role", role)

		return next(c)
	}
}
