package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/report"
	"spendwise/internal/store"
)

// BudgetGoalHandler handles budget-goal-related requests
type BudgetGoalHandler struct {
	store *store.Store
}

// NewBudgetGoalHandler creates a new BudgetGoalHandler
func NewBudgetGoalHandler(s *store.Store) *BudgetGoalHandler {
	return &BudgetGoalHandler{store: s}
}

// BudgetGoalRequest represents the payload for creating or updating a budget goal
type BudgetGoalRequest struct {
	Name       string  `json:"name" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	CategoryID string  `json:"categoryId"`
	Period     string  `json:"period" binding:"required,budget_period"`
	StartDate  string  `json:"startDate" binding:"required"`
	EndDate    string  `json:"endDate"`
}

func (r BudgetGoalRequest) toBudgetGoal() (models.BudgetGoal, error) {
	startDate, err := parseDate("startDate", r.StartDate)
	if err != nil {
		return models.BudgetGoal{}, err
	}
	endDate, err := parseOptionalDate("endDate", r.EndDate)
	if err != nil {
		return models.BudgetGoal{}, err
	}
	return models.BudgetGoal{
		Name:       r.Name,
		Amount:     decimal.NewFromFloat(r.Amount),
		CategoryID: r.CategoryID,
		Period:     models.BudgetPeriod(r.Period),
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

// CreateBudgetGoal adds a new budget goal
func (h *BudgetGoalHandler) CreateBudgetGoal(c *gin.Context) {
	var req BudgetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	goal, err := req.toBudgetGoal()
	if err != nil {
		respondWithError(c, err)
		return
	}

	created, err := h.store.AddBudgetGoal(goal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budgetGoal": created})
}

// ListBudgetGoals returns all budget goals
func (h *BudgetGoalHandler) ListBudgetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"budgetGoals": h.store.State().BudgetGoals})
}

// GetBudgetGoalByID returns a single budget goal
func (h *BudgetGoalHandler) GetBudgetGoalByID(c *gin.Context) {
	goal, ok := h.store.BudgetGoal(c.Param("id"))
	if !ok {
		respondWithError(c, apperrors.ErrBudgetGoalNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"budgetGoal": goal})
}

// UpdateBudgetGoal replaces an existing budget goal
func (h *BudgetGoalHandler) UpdateBudgetGoal(c *gin.Context) {
	var req BudgetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	goal, err := req.toBudgetGoal()
	if err != nil {
		respondWithError(c, err)
		return
	}
	goal.ID = c.Param("id")

	updated, err := h.store.UpdateBudgetGoal(goal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgetGoal": updated})
}

// DeleteBudgetGoal removes a budget goal
func (h *BudgetGoalHandler) DeleteBudgetGoal(c *gin.Context) {
	if err := h.store.DeleteBudgetGoal(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Budget goal deleted successfully"})
}

// GetBudgetGoalProgress reports spending against one goal
func (h *BudgetGoalHandler) GetBudgetGoalProgress(c *gin.Context) {
	goal, ok := h.store.BudgetGoal(c.Param("id"))
	if !ok {
		respondWithError(c, apperrors.ErrBudgetGoalNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": report.Progress(goal, h.store.State())})
}
