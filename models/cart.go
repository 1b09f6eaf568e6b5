package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem associates a user with a product awaiting order placement.
// The composite unique index makes "add the same product again" an
// increment, never a second row.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is a cart row joined with the product fields the storefront
// and the order workflow need.
type CartLine struct {
	ID            uint                `json:"id"`
	UserID        uint                `json:"user_id"`
	ProductID     uint                `json:"product_id"`
	Quantity      int                 `json:"quantity"`
	Name          string              `json:"name"`
	Brand         string              `json:"brand"`
	ImageURL      string              `json:"image_url"`
	Price         decimal.Decimal     `json:"price"`
	DiscountPrice decimal.NullDecimal `json:"discount_price"`
	StockQuantity int                 `json:"stock_quantity"`
}

// UnitPrice is the effective price for this line: discount over base.
func (l CartLine) UnitPrice() decimal.Decimal {
	if l.DiscountPrice.Valid {
		return l.DiscountPrice.Decimal
	}
	return l.Price
}
