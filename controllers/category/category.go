package categoryControllers

import (
	"net/http"

	"github.com/electromart/ecommerce-api/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := repository.AllCategories(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}
