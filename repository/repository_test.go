package repository

import (
	"testing"

	"github.com/electromart/ecommerce-api/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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
		&models.Admin{},
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

	user := models.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     "Test User",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, name, price, discount string, stock int) *models.Product {
	t.Helper()

	product := models.Product{
		Name:          name,
		Brand:         "Acme",
		CategoryID:    categoryID,
		Price:         decimal.RequireFromString(price),
		Description:   name + " description",
		ImageURL:      "/img/" + name + ".png",
		StockQuantity: stock,
	}
	if discount != "" {
		product.DiscountPrice = decimal.NewNullDecimal(decimal.RequireFromString(discount))
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}
