package routes

import (
	orderControllers "github.com/electromart/ecommerce-api/controllers/order"
	"github.com/electromart/ecommerce-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the JWT-protected order endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	orders.Use(middleware.RequireAuth)
	{
		orders.POST("", orderControllers.PlaceOrder(db))
		orders.GET("", orderControllers.GetUserOrders(db))
		orders.GET("/:id", orderControllers.GetOrder(db))
	}
}
