package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public,
// user-protected, and admin route groups under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db)
	SetupShopRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupOrderRoutes(api, db)
	SetupAdminRoutes(api, db)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})
}
