package repository

import (
	"github.com/electromart/ecommerce-api/models"
	"gorm.io/gorm"
)

// AllCategories returns every category ordered by name.
func AllCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Order("name").Find(&categories).Error; err != nil {
		return nil, wrap("all categories", err)
	}
	return categories, nil
}
