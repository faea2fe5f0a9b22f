package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campuschat/config"
	"campuschat/pkg/errors"
)

// GenerateAccessToken mints the session token the auth subsystem hands out.
// The chat service itself only parses tokens; this is exported for that
// subsystem and for tests.
func GenerateAccessToken(userID string, cfg config.Config) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.ExpiredIn) * time.Second)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseAccessToken verifies the signature and expiry and returns the subject
// user id the connection is bound to.
func ParseAccessToken(tokenString string, cfg config.Config) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return "", errors.Unauthorized("invalid or expired token")
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.Unauthorized("token has no subject")
	}
	return claims.Subject, nil
}
