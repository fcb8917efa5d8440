package firebase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// DevTokenService mints short-lived HS256 session tokens for local
// development, where no Firebase project is available. Never enabled in
// production configuration.
type DevTokenService struct {
	secret []byte
	expiry time.Duration
}

func NewDevTokenService(secret string, expiry time.Duration) *DevTokenService {
	return &DevTokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

type devClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *DevTokenService) Mint(uid, role string) (string, error) {
	now := time.Now()
	claims := devClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses a dev session token and returns the uid and role.
func (s *DevTokenService) Verify(tokenString string) (string, string, error) {
	var claims devClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", "", err
	}
	if !token.Valid {
		return "", "", fmt.Errorf("invalid token")
	}

	return claims.Subject, claims.Role, nil
}
