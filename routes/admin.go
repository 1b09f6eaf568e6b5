package routes

import (
	adminControllers "github.com/electromart/ecommerce-api/controllers/admin"
	orderControllers "github.com/electromart/ecommerce-api/controllers/order"
	"github.com/electromart/ecommerce-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the back-office endpoints. Everything but
// login requires a token with the admin claim.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	admin := api.Group("/admin")

	admin.POST("/login", adminControllers.Login(db))

	protected := admin.Group("")
	protected.Use(middleware.RequireAdmin)
	{
		products := protected.Group("/products")
		{
			products.POST("", adminControllers.CreateProduct(db))
			products.PUT("/:id", adminControllers.UpdateProduct(db))
			products.DELETE("/:id", adminControllers.DeleteProduct(db))
		}

		orders := protected.Group("/orders")
		{
			orders.GET("", adminControllers.GetAllOrders(db))
			orders.GET("/export", adminControllers.ExportOrders(db))
			orders.GET("/ws", orderControllers.OrderFeed)
			orders.PUT("/:id", adminControllers.UpdateOrder(db))
		}
	}
}
