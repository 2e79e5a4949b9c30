package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

var errNoKey = errors.New("auth: signing key is empty")

// GenerateToken issues an HS256 token for an admin account, valid 72h.
// The key comes from the caller; config owns where it is loaded from.
func GenerateToken(key []byte, adminID int64) (string, error) {
	if len(key) == 0 {
		return "", errNoKey
	}

	claims := jwt.MapClaims{
		"sub": adminID,
		"exp": time.Now().Add(72 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidateToken parses a token string and returns the admin ID it was
// issued for.
func ValidateToken(key []byte, tokenString string) (int64, error) {
	if len(key) == 0 {
		return 0, errNoKey
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	// JSON numbers come back as float64.
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return int64(sub), nil
}
