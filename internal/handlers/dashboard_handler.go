package handlers

import (
	"github.com/gin-gonic/gin"

	"butce/internal/middleware"
	"butce/internal/services"
)

// DashboardHandler serves the home page and the reports page.
type DashboardHandler struct {
	reportService services.ReportServicer
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(reportService services.ReportServicer) *DashboardHandler {
	return &DashboardHandler{reportService: reportService}
}

// Dashboard renders totals, balances, trends, limits and savings progress.
// @Summary     Dashboard
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.Dashboard
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      / [get]
func (h *DashboardHandler) Dashboard(c *gin.Context, s *middleware.Session) {
	dashboard, err := h.reportService.Dashboard()
	if err != nil {
		respondWithError(c, err)
		return
	}
	page(c, s, gin.H{"dashboard": dashboard})
}

// Reports renders the monthly series and the category and account distributions.
// @Summary     Reports
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.Reports
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports [get]
func (h *DashboardHandler) Reports(c *gin.Context, s *middleware.Session) {
	reports, err := h.reportService.Reports()
	if err != nil {
		respondWithError(c, err)
		return
	}
	page(c, s, gin.H{"reports": reports})
}
