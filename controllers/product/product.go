package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/electromart/ecommerce-api/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPageSize     = 12
	defaultFeaturedSize = 6
)

// GET /api/products
// Filters: category_id, search (name/description/brand), brand.
// Pagination: page (1-based) and limit.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
		if limit < 1 {
			limit = defaultPageSize
		}

		filter := repository.ProductFilter{
			Search: c.Query("search"),
			Brand:  c.Query("brand"),
			Limit:  limit,
			Offset: (page - 1) * limit,
		}
		if raw := c.Query("category_id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			filter.CategoryID = uint(id)
		}

		products, err := repository.ListProducts(db, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"page":     page,
			"limit":    limit,
		})
	}
}

// GET /api/products/featured
func GetFeaturedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultFeaturedSize)))
		if limit < 1 {
			limit = defaultFeaturedSize
		}

		products, err := repository.FeaturedProducts(db, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := repository.ProductByID(db, uint(id))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
