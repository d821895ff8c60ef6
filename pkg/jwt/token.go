package jwtPkg

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const secretEnvKey = "JWT_ACCESS_TOKEN_SECRET"

// Sign issues an HS256 token carrying the given claims plus an expiry.
// Returns the token and its unix expiry timestamp.
func Sign(data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		return "", 0, fmt.Errorf("%s not set", secretEnvKey)
	}

	expiredAt := time.Now().Add(expiresIn).Unix()

	claims := jwt.MapClaims{}
	claims["exp"] = expiredAt
	for k, v := range data {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expiredAt, nil
}

// Verify parses and validates a token issued by Sign, returning its claims.
func Verify(tokenString string) (jwt.MapClaims, error) {
	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		return nil, fmt.Errorf("%s not set", secretEnvKey)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
