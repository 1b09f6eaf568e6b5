// Package auth issues and verifies the JWTs that protect user and
// admin routes, and wraps password hashing.
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// Claims is the decoded identity carried by a verified token.
type Claims struct {
	UserID  uint
	Email   string
	IsAdmin bool
}

// IssueToken signs a token for the given identity with the shared HMAC
// secret from JWT_SECRET.
func IssueToken(userID uint, email string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"email":    email,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseToken verifies a token string and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	email, _ := claims["email"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return &Claims{
		UserID:  uint(userID),
		Email:   email,
		IsAdmin: isAdmin,
	}, nil
}
