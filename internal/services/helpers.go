package services

import (
	"strings"

	"butce/internal/models"
)

// signedAmountSQL sums income as positive and expense as negative.
const signedAmountSQL = "COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)"

// typeSumSQL sums the amounts of a single transaction type.
func typeSumSQL(t models.TransactionType, alias string) string {
	return "COALESCE(SUM(CASE WHEN type = '" + string(t) + "' THEN amount ELSE 0 END), 0) AS " + alias
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
