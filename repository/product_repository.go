package repository

import (
	"github.com/electromart/ecommerce-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductFilter narrows ListProducts. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID uint
	Search     string
	Brand      string
	Limit      int
	Offset     int
}

// ProductWithCategory is a product joined with its category name for
// listing responses.
type ProductWithCategory struct {
	models.Product
	CategoryName string `json:"category_name"`
}

// ListProducts returns products newest first, joined with their
// category name, filtered and paginated.
func ListProducts(db *gorm.DB, f ProductFilter) ([]ProductWithCategory, error) {
	query := db.Table("products").
		Select("products.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id")

	if f.CategoryID != 0 {
		query = query.Where("products.category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where(
			"products.name LIKE ? OR products.description LIKE ? OR products.brand LIKE ?",
			like, like, like,
		)
	}
	if f.Brand != "" {
		query = query.Where("products.brand = ?", f.Brand)
	}

	var products []ProductWithCategory
	err := query.Order("products.created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Scan(&products).Error
	if err != nil {
		return nil, wrap("list products", err)
	}
	return products, nil
}

// ProductByID fetches one product joined with its category name.
func ProductByID(db *gorm.DB, id uint) (*ProductWithCategory, error) {
	var product ProductWithCategory
	err := db.Table("products").
		Select("products.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.id = ?", id).
		Take(&product).Error
	if err != nil {
		return nil, wrap("product by id", err)
	}
	return &product, nil
}

// FeaturedProducts returns up to limit featured products, newest first.
func FeaturedProducts(db *gorm.DB, limit int) ([]ProductWithCategory, error) {
	var products []ProductWithCategory
	err := db.Table("products").
		Select("products.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.is_featured = ?", true).
		Order("products.created_at DESC").
		Limit(limit).
		Scan(&products).Error
	if err != nil {
		return nil, wrap("featured products", err)
	}
	return products, nil
}

// CreateProduct inserts a product and fills in its generated ID.
func CreateProduct(db *gorm.DB, product *models.Product) error {
	return wrap("create product", db.Create(product).Error)
}

// ProductUpdate lists the fields an admin may change. Nil means "leave
// untouched"; unknown fields are rejected at the handler boundary, so
// an open column map never reaches the database.
type ProductUpdate struct {
	Name           *string           `json:"name"`
	Brand          *string           `json:"brand"`
	CategoryID     *uint             `json:"category_id"`
	Price          *decimal.Decimal  `json:"price"`
	DiscountPrice  *decimal.Decimal  `json:"discount_price"`
	Description    *string           `json:"description"`
	Specifications datatypes.JSONMap `json:"specifications"`
	ImageURL       *string           `json:"image_url"`
	StockQuantity  *int              `json:"stock_quantity"`
	IsFeatured     *bool             `json:"is_featured"`
}

// Columns flattens the update into gorm column assignments.
func (u ProductUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Brand != nil {
		cols["brand"] = *u.Brand
	}
	if u.CategoryID != nil {
		cols["category_id"] = *u.CategoryID
	}
	if u.Price != nil {
		cols["price"] = *u.Price
	}
	if u.DiscountPrice != nil {
		cols["discount_price"] = *u.DiscountPrice
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.Specifications != nil {
		cols["specifications"] = u.Specifications
	}
	if u.ImageURL != nil {
		cols["image_url"] = *u.ImageURL
	}
	if u.StockQuantity != nil {
		cols["stock_quantity"] = *u.StockQuantity
	}
	if u.IsFeatured != nil {
		cols["is_featured"] = *u.IsFeatured
	}
	return cols
}

// UpdateProduct applies a partial update. ErrNotFound when the product
// does not exist, nil without touching the database when the update is
// empty.
func UpdateProduct(db *gorm.DB, id uint, update ProductUpdate) error {
	cols := update.Columns()
	if len(cols) == 0 {
		return nil
	}
	res := db.Model(&models.Product{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return wrap("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product row.
func DeleteProduct(db *gorm.DB, id uint) error {
	res := db.Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return wrap("delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementStock takes qty units off a product's stock, but only when
// enough remain: the conditional UPDATE keeps stock_quantity from going
// negative under concurrent orders. False means insufficient stock.
func DecrementStock(db *gorm.DB, productID uint, qty int) (bool, error) {
	res := db.Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, qty).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if res.Error != nil {
		return false, wrap("decrement stock", res.Error)
	}
	return res.RowsAffected > 0, nil
}
