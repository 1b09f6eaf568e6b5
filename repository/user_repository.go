package repository

import (
	"github.com/electromart/ecommerce-api/models"
	"gorm.io/gorm"
)

// CreateUser inserts a new customer account.
func CreateUser(db *gorm.DB, user *models.User) error {
	return wrap("create user", db.Create(user).Error)
}

// UserByEmail fetches a customer by their unique email.
func UserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).Take(&user).Error
	if err != nil {
		return nil, wrap("user by email", err)
	}
	return &user, nil
}

// UserByID fetches a customer by ID.
func UserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.Where("id = ?", id).Take(&user).Error
	if err != nil {
		return nil, wrap("user by id", err)
	}
	return &user, nil
}

// AdminByUsername fetches a back-office account by username.
func AdminByUsername(db *gorm.DB, username string) (*models.Admin, error) {
	var admin models.Admin
	err := db.Where("username = ?", username).Take(&admin).Error
	if err != nil {
		return nil, wrap("admin by username", err)
	}
	return &admin, nil
}
