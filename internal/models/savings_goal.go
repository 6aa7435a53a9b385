package models

import (
	"time"

	"butce/internal/money"
)

// SavingsGoal is a target amount to reach by a target date. Progress is derived
// from the whole ledger inside [StartDate, TargetDate], not from a dedicated balance.
type SavingsGoal struct {
	Base
	Name         string       `gorm:"size:120;not null" json:"name"`
	TargetAmount money.Amount `gorm:"not null" json:"target_amount"`
	StartDate    time.Time    `gorm:"not null" json:"start_date"`
	TargetDate   time.Time    `gorm:"not null" json:"target_date"`
}
