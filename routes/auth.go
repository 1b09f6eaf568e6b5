package routes

import (
	authControllers "github.com/electromart/ecommerce-api/controllers/auth"
	"github.com/electromart/ecommerce-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers signup/login plus the token-protected
// current-user endpoint.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authControllers.Signup(db))
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.GET("/me", middleware.RequireAuth, authControllers.Me(db))
	}
}
