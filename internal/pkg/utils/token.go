package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/spf13/viper"
)

// SecretClaims is carried by the admin cookie.
type SecretClaims struct {
	Secret string `json:"secret"`
	jwt.StandardClaims
}

// GenerateAuthToken signs an admin token with the configured secret key.
func GenerateAuthToken(ttl time.Duration) (string, error) {
	secret := viper.GetString(constants.ViperSecretKey)
	if secret == "" {
		return "", constants.ErrUnauthorized
	}

	claims := SecretClaims{
		Secret: secret,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("SignedString: %w", err)
	}
	return signed, nil
}

// ParseAuthToken verifies the signature and expiry of an admin token.
func ParseAuthToken(token string) (*SecretClaims, error) {
	secret := viper.GetString(constants.ViperSecretKey)
	if secret == "" {
		return nil, constants.ErrUnauthorized
	}

	claims := &SecretClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, constants.ErrUnauthorized
	}
	return claims, nil
}
