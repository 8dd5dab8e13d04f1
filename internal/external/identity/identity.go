package identity

import (
	"context"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Verifies bearer tokens issued by the auth service, sub claim is the user id
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier() (*JWTVerifier, error) {
	// config
	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("env AUTH_JWT_SECRET is not set")
	}
	return &JWTVerifier{[]byte(secret)}, nil
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (userID string, err error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", fmt.Errorf("token is not valid")
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}
