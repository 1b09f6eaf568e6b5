package repository

import (
	"github.com/electromart/ecommerce-api/models"
	"gorm.io/gorm"
)

// CreateOrder inserts the order header and fills in its generated ID.
func CreateOrder(db *gorm.DB, order *models.Order) error {
	return wrap("create order", db.Create(order).Error)
}

// AddOrderItem inserts one order line.
func AddOrderItem(db *gorm.DB, item *models.OrderItem) error {
	return wrap("add order item", db.Create(item).Error)
}

// OrdersForUser returns the user's orders, newest first.
func OrdersForUser(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, wrap("orders for user", err)
	}
	return orders, nil
}

// OrderByID fetches one order with no owner constraint (back-office).
func OrderByID(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	err := db.Where("id = ?", orderID).Take(&order).Error
	if err != nil {
		return nil, wrap("order by id", err)
	}
	return &order, nil
}

// OrderForUser fetches one order constrained to its owner. A matching
// order owned by someone else comes back as ErrNotFound, never as the
// order.
func OrderForUser(db *gorm.DB, orderID, userID uint) (*models.Order, error) {
	var order models.Order
	err := db.Where("id = ? AND user_id = ?", orderID, userID).Take(&order).Error
	if err != nil {
		return nil, wrap("order for user", err)
	}
	return &order, nil
}

// OrderItemsWithProducts returns an order's lines joined with product
// display fields.
func OrderItemsWithProducts(db *gorm.DB, orderID uint) ([]models.OrderItemDetail, error) {
	var items []models.OrderItemDetail
	err := db.Table("order_items").
		Select("order_items.id, order_items.order_id, order_items.product_id, "+
			"order_items.quantity, order_items.price, "+
			"products.name, products.brand, products.image_url").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id").
		Scan(&items).Error
	if err != nil {
		return nil, wrap("order items", err)
	}
	return items, nil
}

// AllOrders returns orders across all users joined with the owner's
// email and name, newest first, paginated (back-office).
func AllOrders(db *gorm.DB, limit, offset int) ([]models.AdminOrder, error) {
	var orders []models.AdminOrder
	err := db.Table("orders").
		Select("orders.*, users.email, users.full_name").
		Joins("JOIN users ON users.id = orders.user_id").
		Order("orders.created_at DESC, orders.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&orders).Error
	if err != nil {
		return nil, wrap("all orders", err)
	}
	return orders, nil
}

// UpdateOrderStatus changes the fulfilment and/or payment status. Nil
// means "leave as is"; both nil is a no-op.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status *models.OrderStatus, payment *models.PaymentStatus) error {
	cols := make(map[string]interface{})
	if status != nil {
		cols["status"] = *status
	}
	if payment != nil {
		cols["payment_status"] = *payment
	}
	if len(cols) == 0 {
		return nil
	}
	res := db.Model(&models.Order{}).Where("id = ?", orderID).Updates(cols)
	if res.Error != nil {
		return wrap("update order status", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
