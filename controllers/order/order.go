package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/electromart/ecommerce-api/repository"
	"github.com/electromart/ecommerce-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlaceOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	PaymentMethod   string `json:"payment_method"`
}

// POST /api/orders
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Shipping address is required"})
			return
		}

		result, err := services.PlaceOrder(db, userID, services.PlaceOrderInput{
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
		})
		if err != nil {
			var stockErr *services.InsufficientStockError
			switch {
			case errors.Is(err, services.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
			case errors.Is(err, services.ErrCartConflict):
				c.JSON(http.StatusConflict, gin.H{"error": "Cart changed, please retry"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			}
			return
		}

		notifyOrderPlaced(db, result.OrderID)

		c.JSON(http.StatusCreated, gin.H{
			"message":   "Order created successfully",
			"order_id":  result.OrderID,
			"order_ref": result.OrderRef,
			"total":     result.Total.StringFixed(2),
		})
	}
}

// GET /api/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		orders, err := repository.OrdersForUser(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
// Owner-scoped: someone else's order comes back as 404, never as data.
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		order, err := repository.OrderForUser(db, uint(orderID), userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		items, err := repository.OrderItemsWithProducts(db, order.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order items"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order": order,
			"items": items,
		})
	}
}
