package models

// Account is a named money container whose balance is derived from its transactions.
type Account struct {
	Base
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Currency    string `gorm:"size:3;not null;default:'TRY'" json:"currency"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}
