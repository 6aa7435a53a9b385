package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"butce/internal/flash"
	"butce/internal/middleware"
	"butce/internal/money"
	"butce/internal/services"
)

const accountsPath = "/accounts"

// AccountHandler handles account-related requests
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the new account form
type CreateAccountRequest struct {
	Name        string `form:"name" json:"name" binding:"required,max=100"`
	Description string `form:"description" json:"description" binding:"max=255"`
	Currency    string `form:"currency" json:"currency"`
}

// UpdateAccountRequest represents the account edit form. Absent fields keep their value.
type UpdateAccountRequest struct {
	Name        *string `form:"name" json:"name" binding:"omitempty,max=100"`
	Description *string `form:"description" json:"description" binding:"omitempty,max=255"`
	Currency    *string `form:"currency" json:"currency"`
}

// ListAccounts renders every account with its balance.
// @Summary     List accounts
// @Tags        accounts
// @Produce     json
// @Success     200 {array} services.AccountBalance
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context, s *middleware.Session) {
	accounts, err := h.accountService.ListAccounts()
	if err != nil {
		respondWithError(c, err)
		return
	}
	page(c, s, gin.H{
		"accounts":   accounts,
		"currencies": money.Currencies,
	})
}

// CreateAccount handles the new account form
// @Summary     Create an account
// @Tags        accounts
// @Accept      x-www-form-urlencoded
// @Param       name        formData string true  "Account name"
// @Param       description formData string false "Description"
// @Param       currency    formData string false "TRY, USD or EUR"
// @Success     303 "Redirect to /accounts"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context, _ *middleware.Session) {
	var req CreateAccountRequest
	if err := bind(c, &req); err != nil {
		redirectWithError(c, accountsPath, err)
		return
	}

	account, err := h.accountService.CreateAccount(services.AccountInput{
		Name:        req.Name,
		Description: req.Description,
		Currency:    req.Currency,
	})
	if err != nil {
		redirectWithError(c, accountsPath, err)
		return
	}
	flash.Write(c, flash.To(accountsPath, flash.Success(fmt.Sprintf("Account %q added.", account.Name))))
}

// UpdateAccount handles the account edit form
// @Summary     Update an account
// @Tags        accounts
// @Accept      x-www-form-urlencoded
// @Param       id path int true "Account ID"
// @Success     303 "Redirect to /accounts"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{id}/update [post]
func (h *AccountHandler) UpdateAccount(c *gin.Context, _ *middleware.Session) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if _, err := h.accountService.GetAccountByID(id); err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAccountRequest
	if err := bind(c, &req); err != nil {
		redirectWithError(c, accountsPath, err)
		return
	}

	account, err := h.accountService.UpdateAccount(id, services.AccountUpdate{
		Name:        req.Name,
		Description: req.Description,
		Currency:    req.Currency,
	})
	if err != nil {
		redirectWithError(c, accountsPath, err)
		return
	}
	flash.Write(c, flash.To(accountsPath, flash.Success(fmt.Sprintf("Account %q updated.", account.Name))))
}

// DeleteAccount deletes an account together with its transactions
// @Summary     Delete an account
// @Tags        accounts
// @Param       id path int true "Account ID"
// @Success     303 "Redirect to /accounts"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{id}/delete [post]
func (h *AccountHandler) DeleteAccount(c *gin.Context, _ *middleware.Session) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.DeleteAccount(id); err != nil {
		redirectWithError(c, accountsPath, err)
		return
	}
	flash.Write(c, flash.To(accountsPath, flash.Success("Account deleted.")))
}
