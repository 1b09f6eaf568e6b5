package middleware

import (
	"net/http"
	"strings"

	"github.com/electromart/ecommerce-api/auth"
	"github.com/gin-gonic/gin"
)

// RequireAuth validates the bearer token and puts the caller's user_id
// into the gin context for the handlers downstream.
func RequireAuth(c *gin.Context) {
	claims := parseAuthHeader(c)
	if claims == nil {
		return
	}

	c.Set("user_id", claims.UserID)
	c.Set("email", claims.Email)
	c.Next()
}

// RequireAdmin validates the bearer token and additionally requires the
// admin claim.
func RequireAdmin(c *gin.Context) {
	claims := parseAuthHeader(c)
	if claims == nil {
		return
	}
	if !claims.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}

	c.Set("admin_id", claims.UserID)
	c.Next()
}

// parseAuthHeader extracts and verifies the Authorization header,
// aborting the request itself on failure.
func parseAuthHeader(c *gin.Context) *auth.Claims {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return nil
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return nil
	}
	return claims
}
