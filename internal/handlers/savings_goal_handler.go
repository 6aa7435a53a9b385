package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"butce/internal/flash"
	"butce/internal/middleware"
	"butce/internal/services"
)

// Savings goals are shown on the dashboard, so their forms return there.
const savingsGoalsReturnPath = "/"

// SavingsGoalHandler handles savings-goal requests
type SavingsGoalHandler struct {
	savingsService services.SavingsGoalServicer
}

// NewSavingsGoalHandler creates a new SavingsGoalHandler
func NewSavingsGoalHandler(savingsService services.SavingsGoalServicer) *SavingsGoalHandler {
	return &SavingsGoalHandler{savingsService: savingsService}
}

// CreateSavingsGoalRequest represents the new goal form. A blank StartDate means today.
type CreateSavingsGoalRequest struct {
	Name         string `form:"name" json:"name" binding:"required,max=120"`
	TargetAmount string `form:"target_amount" json:"target_amount" binding:"required"`
	StartDate    string `form:"start_date" json:"start_date" binding:"flex_date"`
	TargetDate   string `form:"target_date" json:"target_date" binding:"required,flex_date"`
}

// CreateGoal handles the new savings goal form
// @Summary     Create a savings goal
// @Tags        savings
// @Accept      x-www-form-urlencoded
// @Param       name          formData string true  "Goal name"
// @Param       target_amount formData string true  "Positive target amount"
// @Param       start_date    formData string false "Defaults to today"
// @Param       target_date   formData string true  "Must not precede the start date"
// @Success     303 "Redirect to the dashboard"
// @Router      /savings-goals [post]
func (h *SavingsGoalHandler) CreateGoal(c *gin.Context, _ *middleware.Session) {
	var req CreateSavingsGoalRequest
	if err := bind(c, &req); err != nil {
		redirectWithError(c, savingsGoalsReturnPath, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		redirectWithError(c, savingsGoalsReturnPath, err)
		return
	}

	goal, err := h.savingsService.CreateGoal(in)
	if err != nil {
		redirectWithError(c, savingsGoalsReturnPath, err)
		return
	}
	flash.Write(c, flash.To(savingsGoalsReturnPath, flash.Success(fmt.Sprintf("Savings goal %q created.", goal.Name))))
}

func (req CreateSavingsGoalRequest) toInput() (services.SavingsGoalInput, error) {
	target, err := parseAmount(req.TargetAmount)
	if err != nil {
		return services.SavingsGoalInput{}, err
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return services.SavingsGoalInput{}, err
	}
	end, err := parseDate(req.TargetDate)
	if err != nil {
		return services.SavingsGoalInput{}, err
	}
	return services.SavingsGoalInput{
		Name:         req.Name,
		TargetAmount: target,
		StartDate:    start,
		TargetDate:   end,
	}, nil
}

// DeleteGoal removes a savings goal
// @Summary     Delete a savings goal
// @Tags        savings
// @Param       id path int true "Savings goal ID"
// @Success     303 "Redirect to the dashboard"
// @Failure     404 {object} ErrorResponse "Savings goal not found"
// @Router      /savings-goals/{id}/delete [post]
func (h *SavingsGoalHandler) DeleteGoal(c *gin.Context, _ *middleware.Session) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.savingsService.DeleteGoal(id); err != nil {
		redirectWithError(c, savingsGoalsReturnPath, err)
		return
	}
	flash.Write(c, flash.To(savingsGoalsReturnPath, flash.Success("Savings goal deleted.")))
}
