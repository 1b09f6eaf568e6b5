package repository

import (
	"testing"

	"github.com/electromart/ecommerce-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCartItemIncrementsExistingRow(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "cart@example.com")
	category := seedCategory(t, db, "Phones")
	product := seedProduct(t, db, category.ID, "Phone X", "499.00", "", 10)

	_, err := AddCartItem(db, user.ID, product.ID, 2)
	require.NoError(t, err)
	_, err = AddCartItem(db, user.ID, product.ID, 3)
	require.NoError(t, err)

	var items []models.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&items).Error)
	require.Len(t, items, 1, "adding the same product twice must not create a second row")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddCartItemSeparateRowsPerProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "cart@example.com")
	category := seedCategory(t, db, "Phones")
	p1 := seedProduct(t, db, category.ID, "Phone X", "499.00", "", 10)
	p2 := seedProduct(t, db, category.ID, "Phone Y", "599.00", "", 10)

	_, err := AddCartItem(db, user.ID, p1.ID, 1)
	require.NoError(t, err)
	_, err = AddCartItem(db, user.ID, p2.ID, 1)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCartLinesForUserJoinsProductFields(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "cart@example.com")
	category := seedCategory(t, db, "Laptops")
	product := seedProduct(t, db, category.ID, "Laptop Pro", "1200.00", "999.99", 4)

	_, err := AddCartItem(db, user.ID, product.ID, 2)
	require.NoError(t, err)

	lines, err := CartLinesForUser(db, user.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	line := lines[0]
	assert.Equal(t, product.ID, line.ProductID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "Laptop Pro", line.Name)
	assert.Equal(t, 4, line.StockQuantity)
	assert.Equal(t, "1200.00", line.Price.StringFixed(2))
	require.True(t, line.DiscountPrice.Valid)
	assert.Equal(t, "999.99", line.DiscountPrice.Decimal.StringFixed(2))
	assert.Equal(t, "999.99", line.UnitPrice().StringFixed(2))
}

func TestUpdateCartItemQuantityScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	category := seedCategory(t, db, "Phones")
	product := seedProduct(t, db, category.ID, "Phone X", "499.00", "", 10)

	item, err := AddCartItem(db, owner.ID, product.ID, 1)
	require.NoError(t, err)

	err = UpdateCartItemQuantity(db, item.ID, other.ID, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, UpdateCartItemQuantity(db, item.ID, owner.ID, 5))

	var reloaded models.CartItem
	require.NoError(t, db.First(&reloaded, item.ID).Error)
	assert.Equal(t, 5, reloaded.Quantity)
}

func TestRemoveCartItemScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	category := seedCategory(t, db, "Phones")
	product := seedProduct(t, db, category.ID, "Phone X", "499.00", "", 10)

	item, err := AddCartItem(db, owner.ID, product.ID, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, RemoveCartItem(db, item.ID, other.ID), ErrNotFound)
	require.NoError(t, RemoveCartItem(db, item.ID, owner.ID))

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestClearCartReportsRemovedRows(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "cart@example.com")
	bystander := seedUser(t, db, "bystander@example.com")
	category := seedCategory(t, db, "Phones")
	p1 := seedProduct(t, db, category.ID, "Phone X", "499.00", "", 10)
	p2 := seedProduct(t, db, category.ID, "Phone Y", "599.00", "", 10)

	_, err := AddCartItem(db, user.ID, p1.ID, 1)
	require.NoError(t, err)
	_, err = AddCartItem(db, user.ID, p2.ID, 1)
	require.NoError(t, err)
	_, err = AddCartItem(db, bystander.ID, p1.ID, 1)
	require.NoError(t, err)

	cleared, err := ClearCart(db, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, cleared)

	// The other user's cart is untouched.
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", bystander.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
