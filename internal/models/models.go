// Package models defines the GORM models of the ledger.
package models

// All lists every model, in dependency order, for auto-migration in tests.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Account{},
		&Category{},
		&Transaction{},
		&SavingsGoal{},
	}
}
