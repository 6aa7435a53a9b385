package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"butce/internal/models"
	"butce/internal/money"
)

// TestPassword is the plain-text password of users created by CreateTestUser.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Day returns the UTC midnight of the given date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithEmail(t, db, fmt.Sprintf("user%d@test.com", nextID()))
}

// CreateTestUserWithEmail creates a user with the given email and TestPassword.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates an account with a unique name in the default currency.
func CreateTestAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	return CreateTestAccountNamed(t, db, fmt.Sprintf("Test Account %d", nextID()))
}

// CreateTestAccountNamed creates an account with the given name.
func CreateTestAccountNamed(t *testing.T, db *gorm.DB, name string) *models.Account {
	t.Helper()

	account := &models.Account{Name: name, Currency: money.DefaultCurrency}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category with a unique name and no limit.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithLimit(t, db, fmt.Sprintf("Test Category %d", nextID()), nil)
}

// CreateTestCategoryWithLimit creates a category with the given name and monthly limit.
func CreateTestCategoryWithLimit(t *testing.T, db *gorm.DB, name string, limit *int64) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Color: "secondary", MonthlyLimit: limit}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction of the given type and amount on date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID, categoryID uint, txType models.TransactionType, amount int64, date time.Time) *models.Transaction {
	t.Helper()
	return CreateTestTransactionWithEmotion(t, db, accountID, categoryID, txType, amount, date, "")
}

// CreateTestTransactionWithEmotion creates a transaction tagged with emotion.
func CreateTestTransactionWithEmotion(t *testing.T, db *gorm.DB, accountID, categoryID uint, txType models.TransactionType, amount int64, date time.Time, emotion string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		AccountID:  accountID,
		CategoryID: categoryID,
		Type:       txType,
		Amount:     money.Amount(amount),
		Date:       date,
		Emotion:    emotion,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestSavingsGoal creates a savings goal over [start, target].
func CreateTestSavingsGoal(t *testing.T, db *gorm.DB, name string, targetAmount int64, start, target time.Time) *models.SavingsGoal {
	t.Helper()

	goal := &models.SavingsGoal{
		Name:         name,
		TargetAmount: money.Amount(targetAmount),
		StartDate:    start,
		TargetDate:   target,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test savings goal: %v", err)
	}
	return goal
}
