package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"butce/internal/calendar"
	apperrors "butce/internal/errors"
	"butce/internal/flash"
	"butce/internal/middleware"
	"butce/internal/models"
	"butce/internal/pagination"
	"butce/internal/services"
)

const transactionsPath = "/transactions"

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
	accountService     services.AccountServicer
	categoryService    services.CategoryServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(
	transactionService services.TransactionServicer,
	accountService services.AccountServicer,
	categoryService services.CategoryServicer,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		accountService:     accountService,
		categoryService:    categoryService,
	}
}

// TransactionQuery holds the list filters. Malformed values are ignored.
type TransactionQuery struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	CategoryID string `form:"category_id"`
	Type       string `form:"type"`
	pagination.PageRequest
}

// CreateTransactionRequest represents the new transaction form. Amount is a
// decimal string; a blank Date means today.
type CreateTransactionRequest struct {
	Date        string `form:"date" json:"date" binding:"flex_date"`
	CategoryID  uint   `form:"category_id" json:"category_id" binding:"required"`
	AccountID   uint   `form:"account_id" json:"account_id" binding:"required"`
	Type        string `form:"type" json:"type" binding:"required,transaction_type"`
	Amount      string `form:"amount" json:"amount" binding:"required"`
	Description string `form:"description" json:"description" binding:"max=255"`
	Emotion     string `form:"emotion" json:"emotion" binding:"max=50"`
}

// UpdateTransactionRequest represents the transaction edit form. Absent
// fields keep their value; the type can only be resubmitted unchanged.
type UpdateTransactionRequest struct {
	Date        *string `form:"date" json:"date" binding:"omitempty,flex_date"`
	CategoryID  *uint   `form:"category_id" json:"category_id"`
	AccountID   *uint   `form:"account_id" json:"account_id"`
	Type        *string `form:"type" json:"type" binding:"omitempty,transaction_type"`
	Amount      *string `form:"amount" json:"amount"`
	Description *string `form:"description" json:"description" binding:"omitempty,max=255"`
	Emotion     *string `form:"emotion" json:"emotion" binding:"omitempty,max=50"`
}

// toFilter converts the query into a service filter, dropping values that do
// not parse.
func (q TransactionQuery) toFilter() services.TransactionFilter {
	var f services.TransactionFilter
	if d, ok := calendar.ParseDate(q.StartDate); ok {
		f.StartDate = &d
	}
	if d, ok := calendar.ParseDate(q.EndDate); ok {
		f.EndDate = &d
	}
	if id, err := strconv.ParseUint(q.CategoryID, 10, 32); err == nil && id > 0 {
		cid := uint(id)
		f.CategoryID = &cid
	}
	if t := models.TransactionType(strings.TrimSpace(q.Type)); t.Valid() {
		f.Type = &t
	}
	return f
}

// ListTransactions renders the filtered ledger and the form choices.
// @Summary     List transactions
// @Tags        transactions
// @Produce     json
// @Param       start_date  query string false "Inclusive start date"
// @Param       end_date    query string false "Inclusive end date"
// @Param       category_id query int    false "Category ID"
// @Param       type        query string false "income or expense"
// @Param       page        query int    false "Page number"
// @Param       page_size   query int    false "Items per page"
// @Success     200 {object} services.TransactionList
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context, s *middleware.Session) {
	var q TransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		q = TransactionQuery{
			StartDate:  c.Query("start_date"),
			EndDate:    c.Query("end_date"),
			CategoryID: c.Query("category_id"),
			Type:       c.Query("type"),
		}
	}
	q.Defaults()

	list, err := h.transactionService.ListTransactions(q.toFilter(), q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}
	accounts, err := h.accountService.ListAccounts()
	if err != nil {
		respondWithError(c, err)
		return
	}
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	page(c, s, gin.H{
		"transactions": list,
		"accounts":     accounts,
		"categories":   categories,
		"filters": gin.H{
			"start_date":  q.StartDate,
			"end_date":    q.EndDate,
			"category_id": q.CategoryID,
			"type":        q.Type,
		},
	})
}

// CreateTransaction handles the new transaction form
// @Summary     Create a transaction
// @Tags        transactions
// @Accept      x-www-form-urlencoded
// @Param       date        formData string false "YYYY-MM-DD or DD.MM.YYYY, defaults to today"
// @Param       category_id formData int    true  "Category ID"
// @Param       account_id  formData int    true  "Account ID"
// @Param       type        formData string true  "income or expense"
// @Param       amount      formData string true  "Positive amount"
// @Param       description formData string false "Description"
// @Param       emotion     formData string false "Emotion tag"
// @Success     303 "Redirect to /transactions"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context, _ *middleware.Session) {
	var req CreateTransactionRequest
	if err := bind(c, &req); err != nil {
		redirectWithError(c, transactionsPath, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		redirectWithError(c, transactionsPath, err)
		return
	}

	if _, err := h.transactionService.CreateTransaction(in); err != nil {
		redirectWithError(c, transactionsPath, err)
		return
	}
	flash.Write(c, flash.To(transactionsPath, flash.Success("Transaction added.")))
}

func (req CreateTransactionRequest) toInput() (services.TransactionInput, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return services.TransactionInput{}, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return services.TransactionInput{}, err
	}
	return services.TransactionInput{
		Date:        date,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		Type:        models.TransactionType(req.Type),
		Amount:      amount,
		Description: req.Description,
		Emotion:     req.Emotion,
	}, nil
}

// UpdateTransaction handles the transaction edit form
// @Summary     Update a transaction
// @Tags        transactions
// @Accept      x-www-form-urlencoded
// @Param       id path int true "Transaction ID"
// @Success     303 "Redirect to /transactions"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id}/update [post]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context, _ *middleware.Session) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if _, err := h.transactionService.GetTransactionByID(id); err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := bind(c, &req); err != nil {
		redirectWithError(c, transactionsPath, err)
		return
	}

	upd, err := req.toUpdate()
	if err != nil {
		redirectWithError(c, transactionsPath, err)
		return
	}

	if _, err := h.transactionService.UpdateTransaction(id, upd); err != nil {
		redirectWithError(c, transactionsPath, err)
		return
	}
	flash.Write(c, flash.To(transactionsPath, flash.Success("Transaction updated.")))
}

func (req UpdateTransactionRequest) toUpdate() (services.TransactionUpdate, error) {
	upd := services.TransactionUpdate{
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		Description: req.Description,
		Emotion:     req.Emotion,
	}
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		d, err := parseDate(*req.Date)
		if err != nil {
			return upd, err
		}
		upd.Date = &d
	}
	if req.Type != nil && *req.Type != "" {
		t := models.TransactionType(*req.Type)
		upd.Type = &t
	}
	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			return upd, err
		}
		upd.Amount = &amount
	}
	if upd.CategoryID != nil && *upd.CategoryID == 0 {
		return upd, apperrors.ErrUnknownCategory
	}
	if upd.AccountID != nil && *upd.AccountID == 0 {
		return upd, apperrors.ErrUnknownAccount
	}
	return upd, nil
}

// DeleteTransaction handles transaction removal
// @Summary     Delete a transaction
// @Tags        transactions
// @Param       id path int true "Transaction ID"
// @Success     303 "Redirect to /transactions"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id}/delete [post]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context, _ *middleware.Session) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		redirectWithError(c, transactionsPath, err)
		return
	}
	flash.Write(c, flash.To(transactionsPath, flash.Success("Transaction deleted.")))
}
