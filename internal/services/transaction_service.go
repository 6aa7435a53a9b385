package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"butce/internal/calendar"
	apperrors "butce/internal/errors"
	"butce/internal/models"
	"butce/internal/money"
	"butce/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db  *gorm.DB
	now Clock
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, now Clock) TransactionServicer {
	return &transactionService{db: db, now: now}
}

// CreateTransaction records an income or expense. The account and category
// must exist; a missing date means today.
func (s *transactionService) CreateTransaction(in TransactionInput) (*models.Transaction, error) {
	if !in.Type.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if in.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if in.AccountID == 0 || in.CategoryID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account and category are required")
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}

	transaction := &models.Transaction{
		Date:        calendar.DateOf(date),
		CategoryID:  in.CategoryID,
		AccountID:   in.AccountID,
		Type:        in.Type,
		Amount:      money.Amount(in.Amount),
		Description: strings.TrimSpace(in.Description),
		Emotion:     strings.TrimSpace(in.Emotion),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, transaction.AccountID, transaction.CategoryID); err != nil {
			return err
		}
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// ListTransactions returns a page of matching transactions, newest first,
// with their account and category loaded.
func (s *transactionService) ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*TransactionList, error) {
	page.Defaults()

	base := s.applyFilter(s.db.Model(&models.Transaction{}), filter)

	var totalItems int64
	if err := base.Session(&gorm.Session{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Select(signedAmountSQL).Scan(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Session(&gorm.Session{}).
		Preload("Account").
		Preload("Category").
		Order("date DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &TransactionList{
		PageResponse: pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems),
		Total:        money.Amount(total),
	}, nil
}

// GetTransactionByID retrieves a transaction by ID
func (s *transactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Account").Preload("Category").First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies the non-nil fields of upd. The type is fixed at
// creation; asking for a different one is rejected.
func (s *transactionService) UpdateTransaction(id uint, upd TransactionUpdate) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if upd.Type != nil && *upd.Type != transaction.Type {
		return nil, apperrors.ErrInvalidTypeChange
	}
	if upd.Amount != nil {
		if *upd.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		transaction.Amount = money.Amount(*upd.Amount)
	}
	if upd.Date != nil {
		transaction.Date = calendar.DateOf(*upd.Date)
	}
	if upd.AccountID != nil {
		transaction.AccountID = *upd.AccountID
	}
	if upd.CategoryID != nil {
		transaction.CategoryID = *upd.CategoryID
	}
	if upd.Description != nil {
		transaction.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Emotion != nil {
		transaction.Emotion = strings.TrimSpace(*upd.Emotion)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, transaction.AccountID, transaction.CategoryID); err != nil {
			return err
		}
		if err := tx.Omit("Account", "Category").Save(&transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// DeleteTransaction deletes a transaction.
func (s *transactionService) DeleteTransaction(id uint) error {
	result := s.db.Delete(&models.Transaction{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func (s *transactionService) applyFilter(q *gorm.DB, filter TransactionFilter) *gorm.DB {
	if filter.StartDate != nil {
		q = q.Where("date >= ?", calendar.DateOf(*filter.StartDate))
	}
	if filter.EndDate != nil {
		q = q.Where("date < ?", calendar.DateOf(*filter.EndDate).AddDate(0, 0, 1))
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	return q
}

// checkReferences verifies that the referenced account and category exist.
func checkReferences(tx *gorm.DB, accountID, categoryID uint) error {
	var count int64
	if err := tx.Model(&models.Account{}).Where("id = ?", accountID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrUnknownAccount
	}
	if err := tx.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrUnknownCategory
	}
	return nil
}
