package routes

import (
	cartControllers "github.com/electromart/ecommerce-api/controllers/cart"
	"github.com/electromart/ecommerce-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the JWT-protected shopping cart endpoints.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	cart.Use(middleware.RequireAuth)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.AddToCart(db))
		cart.PUT("/:id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:id", cartControllers.RemoveCartItem(db))
	}
}
