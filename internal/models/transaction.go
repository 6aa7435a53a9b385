package models

import (
	"time"

	"butce/internal/money"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single dated income or expense entry.
type Transaction struct {
	Base
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	AccountID   uint            `gorm:"not null;index" json:"account_id"`
	Type        TransactionType `gorm:"size:10;not null" json:"type"`
	Amount      money.Amount    `gorm:"not null" json:"amount"` // always positive
	Description string          `gorm:"size:255" json:"description"`
	Emotion     string          `gorm:"size:50" json:"emotion,omitempty"`

	// Relationships
	Account  *Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// SignedAmount returns the amount as positive for income and negative for expense.
func (t *Transaction) SignedAmount() money.Amount {
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}
