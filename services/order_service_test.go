package services

import (
	"testing"

	"github.com/electromart/ecommerce-api/models"
	"github.com/electromart/ecommerce-api/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{Email: email, PasswordHash: "x", FullName: "Test User"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedProduct(t *testing.T, db *gorm.DB, name, price, discount string, stock int) *models.Product {
	t.Helper()

	category := models.Category{Name: name + " category"}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{
		Name:          name,
		Brand:         "Acme",
		CategoryID:    category.ID,
		Price:         decimal.RequireFromString(price),
		Description:   name,
		ImageURL:      "/img/" + name + ".png",
		StockQuantity: stock,
	}
	if discount != "" {
		product.DiscountPrice = decimal.NewNullDecimal(decimal.RequireFromString(discount))
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func addToCart(t *testing.T, db *gorm.DB, userID, productID uint, qty int) {
	t.Helper()

	_, err := repository.AddCartItem(db, userID, productID, qty)
	require.NoError(t, err)
}

func TestPlaceOrderTotalUsesEffectivePrices(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "buyer@example.com")

	// Cart: 2 × A at 10.00 (no discount), 1 × B at 15.00 (discounted
	// from 20.00). Expected total 35.00.
	productA := seedProduct(t, db, "Product A", "10.00", "", 10)
	productB := seedProduct(t, db, "Product B", "20.00", "15.00", 10)
	addToCart(t, db, user.ID, productA.ID, 2)
	addToCart(t, db, user.ID, productB.ID, 1)

	result, err := PlaceOrder(db, user.ID, PlaceOrderInput{ShippingAddress: "1 Test Street"})
	require.NoError(t, err)
	assert.Equal(t, "35.00", result.Total.StringFixed(2))
	assert.NotZero(t, result.OrderID)
	assert.NotEmpty(t, result.OrderRef)

	var order models.Order
	require.NoError(t, db.First(&order, result.OrderID).Error)
	assert.Equal(t, "35.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, models.PaymentMethodCOD, order.PaymentMethod)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Order("id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, "10.00", items[0].Price.StringFixed(2))
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "15.00", items[1].Price.StringFixed(2))
	assert.Equal(t, 1, items[1].Quantity)

	// The stored total equals the sum over lines of qty × unit price.
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	assert.True(t, sum.Equal(order.TotalAmount))
}

func TestPlaceOrderRoundsOnceAtTheEnd(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "buyer@example.com")

	// 3 × 3.335 = 10.005; rounding per line (3.34 × 3 = 10.02 or
	// 3.33 × 3 = 9.99) would drift from rounding the final sum (10.01).
	product := seedProduct(t, db, "Widget", "3.335", "", 10)
	addToCart(t, db, user.ID, product.ID, 3)

	result, err := PlaceOrder(db, user.ID, PlaceOrderInput{ShippingAddress: "1 Test Street"})
	require.NoError(t, err)
	assert.Equal(t, "10.01", result.Total.StringFixed(2))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "buyer@example.com")

	_, err := PlaceOrder(db, user.ID, PlaceOrderInput{ShippingAddress: "1 Test Street"})
	assert.ErrorIs(t, err, ErrEmptyCart)

	var orders, items int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders, "an empty cart must create no order")
	assert.Zero(t, items)
}

func TestPlaceOrderClearsCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Product A", "10.00", "", 10)
	addToCart(t, db, user.ID, product.ID, 2)

	_, err := PlaceOrder(db, user.ID, PlaceOrderInput{ShippingAddress: "1 Test Street"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderItemPriceIsASnapshot(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Product A", "10.00", "", 10)
	addToCart(t, db, user.ID, product.ID, 1)

	result, err := PlaceOrder(db, user.ID, PlaceOrderInput{ShippingAddress: "1 Test Street"})
	require.NoError(t, err)

	// Raise the product price after placement.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("99.00")).Error)

	var item models.OrderItem
	require.NoError(t, db.Where("order_id = ?", result.OrderID).Take(&item).Error)
	assert.Equal(t, "10.00", item.Price.StringFixed(2), "stored unit price must not follow later price changes")
}

func TestPlaceOrderDecrementsStock(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Product A", "10.00", "", 5)
	addToCart(t, db, user.ID, product.ID, 3)

	_, err := PlaceOrder(db, user.ID, PlaceOrderInput{ShippingAddress: "1 Test Street"})
	require.NoError(t, err)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 2, reloaded.StockQuantity)
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "buyer@example.com")
	okProduct := seedProduct(t, db, "Product A", "10.00", "", 10)
	lowProduct := seedProduct(t, db, "Product B", "20.00", "", 1)
	addToCart(t, db, user.ID, okProduct.ID, 2)
	addToCart(t, db, user.ID, lowProduct.ID, 3)

	_, err := PlaceOrder(db, user.ID, PlaceOrderInput{ShippingAddress: "1 Test Street"})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, lowProduct.ID, stockErr.ProductID)
	assert.Equal(t, "Product B", stockErr.Name)

	// Everything rolled back: no order, no lines, stock untouched,
	// cart intact.
	var orders, items, cartRows int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	require.NoError(t, db.Model(&models.CartItem{}).Count(&cartRows).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
	assert.EqualValues(t, 2, cartRows)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, okProduct.ID).Error)
	assert.Equal(t, 10, reloaded.StockQuantity)
}

func TestPlaceOrderHonorsPaymentMethod(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Product A", "10.00", "", 10)
	addToCart(t, db, user.ID, product.ID, 1)

	result, err := PlaceOrder(db, user.ID, PlaceOrderInput{
		ShippingAddress: "1 Test Street",
		PaymentMethod:   "card",
	})
	require.NoError(t, err)

	var order models.Order
	require.NoError(t, db.First(&order, result.OrderID).Error)
	assert.Equal(t, "card", order.PaymentMethod)
}
