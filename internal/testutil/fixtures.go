package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestTransaction builds a one-off expense transaction with a unique ID.
func NewTestTransaction(categoryID string, amount float64, date models.Date) models.Transaction {
	return models.Transaction{
		ID:          fmt.Sprintf("txn_%d", nextID()),
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromFloat(amount),
		CategoryID:  categoryID,
		Date:        date,
		Description: fmt.Sprintf("Test transaction %d", counter.Load()),
		Frequency:   models.FrequencyOnce,
	}
}

// NewTestIncome builds a one-off income transaction with a unique ID.
func NewTestIncome(categoryID string, amount float64, date models.Date) models.Transaction {
	t := NewTestTransaction(categoryID, amount, date)
	t.Type = models.TransactionTypeIncome
	return t
}

// NewTestCategory builds an expense category with a unique ID and name.
func NewTestCategory(name string) models.Category {
	if name == "" {
		name = fmt.Sprintf("Test Category %d", nextID())
	}
	return models.Category{
		ID:    fmt.Sprintf("cat_%d", nextID()),
		Name:  name,
		Type:  models.CategoryTypeExpense,
		Icon:  "ShoppingCart",
		Color: "hsl(10, 70%, 50%)",
	}
}

// NewTestBudgetGoal builds a monthly budget goal scoped to the given category
// (empty means all spending), starting at the given date.
func NewTestBudgetGoal(categoryID string, amount float64, start models.Date) models.BudgetGoal {
	return models.BudgetGoal{
		ID:         fmt.Sprintf("goal_%d", nextID()),
		Name:       fmt.Sprintf("Test Goal %d", counter.Load()),
		Amount:     decimal.NewFromFloat(amount),
		CategoryID: categoryID,
		Period:     models.BudgetPeriodMonthly,
		StartDate:  start,
	}
}

// Day is shorthand for building a calendar date in tests.
func Day(year int, month time.Month, day int) models.Date {
	return models.NewDate(year, month, day)
}
