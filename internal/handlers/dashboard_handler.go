package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/report"
	"spendwise/internal/store"
)

// DashboardHandler serves the aggregate dashboard view
type DashboardHandler struct {
	store *store.Store
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// GetDashboard returns the headline totals, the spending-by-category
// breakdown, the monthly income-vs-expense series, and progress for every
// budget goal. Everything is recomputed from the current state on each call.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	state := h.store.State()

	progress := make([]report.GoalProgress, 0, len(state.BudgetGoals))
	for _, goal := range state.BudgetGoals {
		progress = append(progress, report.Progress(goal, state))
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":            report.Summarize(state),
		"spendingByCategory": report.SpendingByCategory(state),
		"monthlySeries":      report.MonthlySeries(state),
		"budgetProgress":     progress,
	})
}
