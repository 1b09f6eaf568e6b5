package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the shop
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"

	// PaymentMethodCOD is the default payment method: cash on delivery.
	PaymentMethodCOD = "cod"
)

type Order struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint            `gorm:"index;not null" json:"user_id"`
	OrderRef        string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	ShippingAddress string          `gorm:"not null" json:"shipping_address"`
	PaymentMethod   string          `gorm:"type:varchar(20);default:'cod'" json:"payment_method"`
	Status          OrderStatus     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem stores the unit price as a snapshot taken at order time;
// later product price changes must not alter it.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

// OrderItemDetail is an order line joined with product display fields.
type OrderItemDetail struct {
	ID        uint            `json:"id"`
	OrderID   uint            `json:"order_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	ImageURL  string          `json:"image_url"`
}

// AdminOrder is an order joined with the owning user's identity fields,
// used by the back-office listing.
type AdminOrder struct {
	Order
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// ValidOrderStatus maps a request string onto an OrderStatus.
func ValidOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// ValidPaymentStatus maps a request string onto a PaymentStatus.
func ValidPaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed,
		PaymentStatusRefunded:
		return PaymentStatus(s), true
	}
	return "", false
}
