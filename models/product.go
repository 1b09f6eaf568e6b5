package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Product struct {
	ID             uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string              `gorm:"not null" json:"name"`
	Brand          string              `gorm:"index" json:"brand"`
	CategoryID     uint                `gorm:"index;not null" json:"category_id"`
	Price          decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"price"`
	DiscountPrice  decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"discount_price"`
	Description    string              `json:"description"`
	Specifications datatypes.JSONMap   `json:"specifications"`
	ImageURL       string              `json:"image_url"`
	StockQuantity  int                 `gorm:"not null;default:0" json:"stock_quantity"`
	IsFeatured     bool                `gorm:"default:false" json:"is_featured"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// EffectivePrice is the price actually charged: the discount price when
// one is set, the base price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice.Valid {
		return p.DiscountPrice.Decimal
	}
	return p.Price
}
