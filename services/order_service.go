// Package services holds the state-changing business workflows that
// controllers invoke. The order placement sequence lives here because
// it is the one multi-step write in the system.
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/electromart/ecommerce-api/models"
	"github.com/electromart/ecommerce-api/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrEmptyCart rejects order placement against an empty cart. It is
	// a user-correctable precondition failure, not a system fault.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCartConflict means another placement consumed some of the same
	// cart rows between our snapshot read and the cart clear. The whole
	// transaction rolls back; nothing was double-spent.
	ErrCartConflict = errors.New("cart changed during order placement")
)

// OrderCreationError wraps a failure to write the order header. The
// transaction rolls back, so the caller may safely retry.
type OrderCreationError struct {
	Err error
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("order creation failed: %v", e.Err)
}

func (e *OrderCreationError) Unwrap() error {
	return e.Err
}

// InsufficientStockError names the product whose remaining stock could
// not cover the ordered quantity.
type InsufficientStockError struct {
	ProductID uint
	Name      string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q (id %d)", e.Name, e.ProductID)
}

// PlaceOrderInput carries the request fields the workflow needs beyond
// the authenticated user.
type PlaceOrderInput struct {
	ShippingAddress string
	PaymentMethod   string
}

// PlaceOrderResult is returned to the HTTP layer on success.
type PlaceOrderResult struct {
	OrderID  uint            `json:"order_id"`
	OrderRef string          `json:"order_ref"`
	Total    decimal.Decimal `json:"total"`
}

// PlaceOrder turns the user's cart into an order.
//
// The whole sequence runs in one transaction: read the cart, decrement
// stock per line, write the header, write one line per cart row with
// the unit price snapshotted from the cart read, clear the cart. Any
// step failing rolls everything back, so an order either exists with
// all its lines and the stock accounted for, or not at all.
//
// The unit price per line is the discount price when set, the base
// price otherwise. The total is accumulated in exact decimal arithmetic
// and rounded to 2 digits once, after the last line.
func PlaceOrder(db *gorm.DB, userID uint, input PlaceOrderInput) (*PlaceOrderResult, error) {
	if input.PaymentMethod == "" {
		input.PaymentMethod = models.PaymentMethodCOD
	}

	var result PlaceOrderResult

	err := db.Transaction(func(tx *gorm.DB) error {
		lines, err := repository.CartLinesForUser(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		for _, line := range lines {
			ok, err := repository.DecrementStock(tx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return &InsufficientStockError{ProductID: line.ProductID, Name: line.Name}
			}
			total = total.Add(line.UnitPrice().Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		total = total.Round(2)

		order := models.Order{
			UserID:          userID,
			OrderRef:        newOrderRef(),
			TotalAmount:     total,
			ShippingAddress: input.ShippingAddress,
			PaymentMethod:   input.PaymentMethod,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
		}
		if err := repository.CreateOrder(tx, &order); err != nil {
			return &OrderCreationError{Err: err}
		}

		for _, line := range lines {
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.UnitPrice(),
			}
			if err := repository.AddOrderItem(tx, &item); err != nil {
				return err
			}
		}

		cleared, err := repository.ClearCart(tx, userID)
		if err != nil {
			return err
		}
		if cleared != int64(len(lines)) {
			return ErrCartConflict
		}

		result = PlaceOrderResult{
			OrderID:  order.ID,
			OrderRef: order.OrderRef,
			Total:    total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// newOrderRef builds a human-sortable unique order reference, e.g.
// 20250908130500-8f14e45f.
func newOrderRef() string {
	return time.Now().UTC().Format("20060102150405") + "-" + uuid.NewString()[:8]
}
