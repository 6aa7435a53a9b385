package models

// Category groups transactions and optionally carries a monthly spending limit.
type Category struct {
	Base
	Name  string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Color string `gorm:"size:30;not null;default:'secondary'" json:"color"`
	// MonthlyLimit is in minor units; nil means no limit.
	MonthlyLimit *int64 `json:"-"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}
