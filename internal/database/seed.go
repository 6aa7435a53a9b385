package database

import (
	"fmt"

	"gorm.io/gorm"

	"butce/internal/logger"
	"butce/internal/models"
	"butce/internal/money"
)

// DefaultAccounts are created on first start when no account exists.
var DefaultAccounts = []models.Account{
	{Name: "Cash", Description: "Wallet", Currency: money.DefaultCurrency},
	{Name: "Bank", Description: "Checking account", Currency: money.DefaultCurrency},
	{Name: "Credit Card", Description: "Card spending", Currency: money.DefaultCurrency},
}

// DefaultCategories are created on first start when no category exists.
var DefaultCategories = []models.Category{
	{Name: "Salary", Color: "success"},
	{Name: "Groceries", Color: "warning"},
	{Name: "Bills", Color: "danger"},
	{Name: "Other", Color: "secondary"},
}

// Seed inserts the default accounts and categories into empty tables.
// Tables that already hold rows are left untouched.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count accounts: %w", err)
		}
		if count == 0 {
			accounts := append([]models.Account(nil), DefaultAccounts...)
			if err := tx.Create(&accounts).Error; err != nil {
				return fmt.Errorf("seed accounts: %w", err)
			}
			logger.Get().Infow("seeded default accounts", "count", len(accounts))
		}

		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		if count == 0 {
			categories := append([]models.Category(nil), DefaultCategories...)
			if err := tx.Create(&categories).Error; err != nil {
				return fmt.Errorf("seed categories: %w", err)
			}
			logger.Get().Infow("seeded default categories", "count", len(categories))
		}
		return nil
	})
}
