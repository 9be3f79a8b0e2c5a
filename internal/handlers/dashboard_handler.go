package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fincontrol/internal/services"
)

// DashboardHandler serves the monthly overview.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns the overview for one month
// @Summary     Monthly dashboard
// @Description Totals, expense breakdowns, six-month history, goals and the month's transactions. Defaults to the current month.
// @Tags        dashboard
// @Produce     json
// @Security    ApiKeyAuth
// @Param       year  query int false "Year"
// @Param       month query int false "Month (1-12)"
// @Success     200 {object} services.Dashboard
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
