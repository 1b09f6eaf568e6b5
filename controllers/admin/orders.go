package adminControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/electromart/ecommerce-api/models"
	"github.com/electromart/ecommerce-api/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultOrderPageSize = 20

type UpdateOrderRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

// GET /api/admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultOrderPageSize)))
		if limit < 1 {
			limit = defaultOrderPageSize
		}

		orders, err := repository.AllOrders(db, limit, (page-1)*limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"page":   page,
			"limit":  limit,
		})
	}
}

// PUT /api/admin/orders/:id
// Updates fulfilment status and/or payment status.
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update payload"})
			return
		}
		if req.Status == nil && req.PaymentStatus == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}

		var status *models.OrderStatus
		if req.Status != nil {
			s, ok := models.ValidOrderStatus(*req.Status)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
				return
			}
			status = &s
		}

		var payment *models.PaymentStatus
		if req.PaymentStatus != nil {
			p, ok := models.ValidPaymentStatus(*req.PaymentStatus)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment status"})
				return
			}
			payment = &p
		}

		if err := repository.UpdateOrderStatus(db, uint(orderID), status, payment); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully"})
	}
}
