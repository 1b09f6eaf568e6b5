package adminControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/electromart/ecommerce-api/models"
	"github.com/electromart/ecommerce-api/repository"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name           string            `json:"name" binding:"required"`
	Brand          string            `json:"brand" binding:"required"`
	CategoryID     uint              `json:"category_id" binding:"required"`
	Price          decimal.Decimal   `json:"price" binding:"required"`
	DiscountPrice  *decimal.Decimal  `json:"discount_price"`
	Description    string            `json:"description" binding:"required"`
	Specifications datatypes.JSONMap `json:"specifications"`
	ImageURL       string            `json:"image_url" binding:"required"`
	StockQuantity  *int              `json:"stock_quantity" binding:"required"`
	IsFeatured     bool              `json:"is_featured"`
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			Name:           req.Name,
			Brand:          req.Brand,
			CategoryID:     req.CategoryID,
			Price:          req.Price,
			Description:    req.Description,
			Specifications: req.Specifications,
			ImageURL:       req.ImageURL,
			StockQuantity:  *req.StockQuantity,
			IsFeatured:     req.IsFeatured,
		}
		if req.DiscountPrice != nil {
			product.DiscountPrice = decimal.NewNullDecimal(*req.DiscountPrice)
		}

		if err := repository.CreateProduct(db, &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":    "Product created successfully",
			"product_id": product.ID,
		})
	}
}

// PUT /api/admin/products/:id
// Partial update through an explicit field list; unknown JSON keys are
// rejected rather than silently dropped.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var update repository.ProductUpdate
		decoder := json.NewDecoder(c.Request.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update payload: " + err.Error()})
			return
		}

		if err := repository.UpdateProduct(db, uint(id), update); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
	}
}

// DELETE /api/admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if err := repository.DeleteProduct(db, uint(id)); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
