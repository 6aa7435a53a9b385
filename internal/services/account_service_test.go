package services

import (
	"testing"

	"butce/internal/models"
	"butce/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestCreateAccount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		account, err := svc.CreateAccount(AccountInput{Name: " Wallet ", Description: "pocket", Currency: "usd"})
		testutil.AssertNoError(t, err)

		if account.Name != "Wallet" {
			t.Errorf("expected trimmed name, got %q", account.Name)
		}
		if account.Currency != "USD" {
			t.Errorf("expected USD, got %s", account.Currency)
		}
	})

	t.Run("unsupported_currency_defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		account, err := svc.CreateAccount(AccountInput{Name: "Yen", Currency: "JPY"})
		testutil.AssertNoError(t, err)
		if account.Currency != "TRY" {
			t.Errorf("expected TRY, got %s", account.Currency)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount(AccountInput{Name: "   "})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount(AccountInput{Name: "Cash"})
		testutil.AssertNoError(t, err)
		_, err = svc.CreateAccount(AccountInput{Name: "Cash"})
		testutil.AssertAppError(t, err, "DUPLICATE_ACCOUNT_NAME")
	})
}

func TestAccountBalances(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAccountService(db)
	cash := testutil.CreateTestAccountNamed(t, db, "Cash")
	bank := testutil.CreateTestAccountNamed(t, db, "Bank")
	category := testutil.CreateTestCategory(t, db)
	day := testutil.Day(2024, 3, 1)

	testutil.CreateTestTransaction(t, db, cash.ID, category.ID, models.TransactionTypeIncome, 100000, day)
	testutil.CreateTestTransaction(t, db, cash.ID, category.ID, models.TransactionTypeExpense, 30000, day)
	testutil.CreateTestTransaction(t, db, bank.ID, category.ID, models.TransactionTypeExpense, 2500, day)

	t.Run("get_balance", func(t *testing.T) {
		balance, err := svc.GetBalance(cash.ID)
		testutil.AssertNoError(t, err)
		if balance != 70000 {
			t.Errorf("expected balance 700.00, got %s", balance)
		}
	})

	t.Run("list_is_ordered_by_name", func(t *testing.T) {
		accounts, err := svc.ListAccounts()
		testutil.AssertNoError(t, err)

		if len(accounts) != 2 {
			t.Fatalf("expected 2 accounts, got %d", len(accounts))
		}
		if accounts[0].Name != "Bank" || accounts[0].Balance != -2500 {
			t.Errorf("unexpected first account %s %s", accounts[0].Name, accounts[0].Balance)
		}
		if accounts[1].Name != "Cash" || accounts[1].Balance != 70000 {
			t.Errorf("unexpected second account %s %s", accounts[1].Name, accounts[1].Balance)
		}
		if accounts[1].FormattedBalance == "" {
			t.Error("expected a formatted balance")
		}
	})

	t.Run("account_without_transactions", func(t *testing.T) {
		empty := testutil.CreateTestAccount(t, db)
		balance, err := svc.GetBalance(empty.ID)
		testutil.AssertNoError(t, err)
		if balance != 0 {
			t.Errorf("expected zero balance, got %s", balance)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.GetBalance(99999)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestUpdateAccount(t *testing.T) {
	t.Run("partial_update_keeps_other_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)
		account, err := svc.CreateAccount(AccountInput{Name: "Cash", Description: "wallet", Currency: "EUR"})
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateAccount(account.ID, AccountUpdate{Name: strPtr("Pocket")})
		testutil.AssertNoError(t, err)

		if updated.Name != "Pocket" || updated.Description != "wallet" || updated.Currency != "EUR" {
			t.Errorf("unexpected account after update %+v", updated)
		}
	})

	t.Run("invalid_currency_coerced", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)
		account := testutil.CreateTestAccount(t, db)

		updated, err := svc.UpdateAccount(account.ID, AccountUpdate{Currency: strPtr("GBP")})
		testutil.AssertNoError(t, err)
		if updated.Currency != "TRY" {
			t.Errorf("expected TRY, got %s", updated.Currency)
		}
	})

	t.Run("blank_name_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)
		account := testutil.CreateTestAccount(t, db)

		_, err := svc.UpdateAccount(account.ID, AccountUpdate{Name: strPtr("")})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("name_taken", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)
		testutil.CreateTestAccountNamed(t, db, "Cash")
		bank := testutil.CreateTestAccountNamed(t, db, "Bank")

		_, err := svc.UpdateAccount(bank.ID, AccountUpdate{Name: strPtr("Cash")})
		testutil.AssertAppError(t, err, "DUPLICATE_ACCOUNT_NAME")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		_, err := svc.UpdateAccount(99999, AccountUpdate{Name: strPtr("x")})
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("cascades_to_transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)
		doomed := testutil.CreateTestAccount(t, db)
		kept := testutil.CreateTestAccount(t, db)
		category := testutil.CreateTestCategory(t, db)
		day := testutil.Day(2024, 3, 1)
		testutil.CreateTestTransaction(t, db, doomed.ID, category.ID, models.TransactionTypeIncome, 100, day)
		testutil.CreateTestTransaction(t, db, kept.ID, category.ID, models.TransactionTypeIncome, 100, day)

		testutil.AssertNoError(t, svc.DeleteAccount(doomed.ID))

		testutil.AssertRowCount(t, db, &models.Transaction{}, 1)
		_, err := svc.GetAccountByID(doomed.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		testutil.AssertAppError(t, svc.DeleteAccount(99999), "ACCOUNT_NOT_FOUND")
	})
}
