package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "butce/internal/errors"
	"butce/internal/models"
	"butce/internal/money"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates an account. Unsupported currencies fall back to the default.
func (s *accountService) CreateAccount(in AccountInput) (*models.Account, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if err := s.checkNameFree(name, 0); err != nil {
		return nil, err
	}

	account := &models.Account{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Currency:    money.NormalizeCurrency(in.Currency),
	}
	if err := s.db.Create(account).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateAccountName
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// ListAccounts returns every account ordered by name, each with its balance.
func (s *accountService) ListAccounts() ([]AccountBalance, error) {
	var accounts []models.Account
	if err := s.db.Order("name ASC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rows []struct {
		AccountID uint
		Balance   int64
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("account_id, " + signedAmountSQL + " AS balance").
		Group("account_id").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	balances := make(map[uint]int64, len(rows))
	for _, r := range rows {
		balances[r.AccountID] = r.Balance
	}

	result := make([]AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		balance := money.Amount(balances[a.ID])
		result = append(result, AccountBalance{
			Account:          a,
			Balance:          balance,
			FormattedBalance: money.Format(balance, a.Currency),
		})
	}
	return result, nil
}

// GetAccountByID retrieves an account by ID
func (s *accountService) GetAccountByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// UpdateAccount applies the non-nil fields of upd.
func (s *accountService) UpdateAccount(id uint, upd AccountUpdate) (*models.Account, error) {
	account, err := s.GetAccountByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
		}
		if name != account.Name {
			if err := s.checkNameFree(name, account.ID); err != nil {
				return nil, err
			}
		}
		account.Name = name
	}
	if upd.Description != nil {
		account.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Currency != nil {
		account.Currency = money.NormalizeCurrency(*upd.Currency)
	}

	if err := s.db.Save(account).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateAccountName
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// DeleteAccount deletes an account together with its transactions.
func (s *accountService) DeleteAccount(id uint) error {
	if _, err := s.GetAccountByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&models.Account{}, id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// GetBalance returns income minus expense over the account's transactions.
func (s *accountService) GetBalance(id uint) (money.Amount, error) {
	if _, err := s.GetAccountByID(id); err != nil {
		return 0, err
	}

	var balance int64
	if err := s.db.Model(&models.Transaction{}).
		Select(signedAmountSQL).
		Where("account_id = ?", id).
		Scan(&balance).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return money.Amount(balance), nil
}

func (s *accountService) checkNameFree(name string, exceptID uint) error {
	var count int64
	if err := s.db.Model(&models.Account{}).
		Where("name = ? AND id <> ?", name, exceptID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateAccountName
	}
	return nil
}
