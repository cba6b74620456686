package models

import "github.com/shopspring/decimal"

// BudgetPeriod represents the time window a budget goal tracks.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
	BudgetPeriodCustom  BudgetPeriod = "custom"
)

// ValidBudgetPeriod reports whether p is a known budget period.
func ValidBudgetPeriod(p BudgetPeriod) bool {
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly, BudgetPeriodCustom:
		return true
	}
	return false
}

// BudgetGoal is a spending target over a window of time. An empty CategoryID
// scopes the goal to all expense spending. EndDate is present iff Period is
// "custom"; the named periods are open-ended from StartDate.
type BudgetGoal struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"categoryId,omitempty"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  Date            `json:"startDate"`
	EndDate    *Date           `json:"endDate,omitempty"`
}
