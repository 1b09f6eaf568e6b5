package repository

import (
	"github.com/electromart/ecommerce-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartLinesForUser returns the user's cart rows joined with current
// product name, brand, image, prices and stock.
func CartLinesForUser(db *gorm.DB, userID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := db.Table("cart_items").
		Select("cart_items.id, cart_items.user_id, cart_items.product_id, cart_items.quantity, "+
			"products.name, products.brand, products.image_url, products.price, "+
			"products.discount_price, products.stock_quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id").
		Scan(&lines).Error
	if err != nil {
		return nil, wrap("cart lines for user", err)
	}
	return lines, nil
}

// AddCartItem inserts a cart row, or increments the quantity of the
// existing (user, product) row. The upsert is a single statement so
// concurrent adds never produce duplicate rows.
func AddCartItem(db *gorm.DB, userID, productID uint, quantity int) (*models.CartItem, error) {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": gorm.Expr("excluded.updated_at"),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, wrap("add cart item", err)
	}
	return &item, nil
}

// UpdateCartItemQuantity overwrites the quantity of a cart row owned by
// the given user. ErrNotFound when no such row exists.
func UpdateCartItemQuantity(db *gorm.DB, itemID, userID uint, quantity int) error {
	res := db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return wrap("update cart item", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveCartItem deletes one cart row, scoped to its owner.
func RemoveCartItem(db *gorm.DB, itemID, userID uint) error {
	res := db.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return wrap("remove cart item", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearCart deletes every cart row for the user and reports how many
// rows went away. The order workflow compares the count against the
// cart snapshot it read to detect a concurrent placement.
func ClearCart(db *gorm.DB, userID uint) (int64, error) {
	res := db.Where("user_id = ?", userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return 0, wrap("clear cart", res.Error)
	}
	return res.RowsAffected, nil
}
