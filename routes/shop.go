package routes

import (
	categoryControllers "github.com/electromart/ecommerce-api/controllers/category"
	productControllers "github.com/electromart/ecommerce-api/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupShopRoutes registers the public catalog endpoints.
func SetupShopRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/featured", productControllers.GetFeaturedProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))
	}

	api.GET("/categories", categoryControllers.GetCategories(db))
}
