// Package report computes derived aggregates over AppState: dashboard totals,
// per-category spending, the monthly income/expense series, and budget goal
// progress. Everything here is a pure function recomputed on every read.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// UncategorizedLabel is the display name for expense transactions whose
// category reference no longer resolves.
const UncategorizedLabel = "Uncategorized"

// monthLabelLayout renders a bucket label like "Jan 24".
const monthLabelLayout = "Jan 06"

// Summary holds the headline dashboard totals.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetBalance    decimal.Decimal `json:"netBalance"`
}

// Summarize computes total income, total expenses, and net balance.
// TotalIncome - TotalExpenses == NetBalance always holds.
func Summarize(state models.AppState) Summary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range state.Transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetBalance:    income.Sub(expenses),
	}
}

// CategorySpend is one slice of the spending-by-category breakdown.
type CategorySpend struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Color  string          `json:"color"`
}

// SpendingByCategory groups expense transactions by resolved category name,
// falling back to UncategorizedLabel for dangling references. Groups keep
// first-seen order. The display color comes from the category when it has
// one, otherwise from a deterministic hash of the group name.
func SpendingByCategory(state models.AppState) []CategorySpend {
	index := make(map[string]int)
	var groups []CategorySpend

	for _, t := range state.Transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}

		name := UncategorizedLabel
		color := ""
		if cat, ok := state.CategoryByID(t.CategoryID); ok {
			name = cat.Name
			color = cat.Color
		}
		if color == "" {
			color = FallbackColor(name)
		}

		if i, ok := index[name]; ok {
			groups[i].Amount = groups[i].Amount.Add(t.Amount)
		} else {
			index[name] = len(groups)
			groups = append(groups, CategorySpend{Name: name, Amount: t.Amount, Color: color})
		}
	}
	return groups
}

// MonthlyFlow is one month's bucket in the income-vs-expense series.
type MonthlyFlow struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// MonthlySeries buckets transactions by calendar month and year, summing
// income and expenses separately per bucket. Buckets are sorted
// chronologically ascending by actual date, not by label string.
func MonthlySeries(state models.AppState) []MonthlyFlow {
	type bucket struct {
		at   time.Time
		flow MonthlyFlow
	}
	buckets := make(map[string]*bucket)

	for _, t := range state.Transactions {
		label := t.Date.Format(monthLabelLayout)
		b, ok := buckets[label]
		if !ok {
			b = &bucket{
				at:   time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC),
				flow: MonthlyFlow{Month: label, Income: decimal.Zero, Expenses: decimal.Zero},
			}
			buckets[label] = b
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			b.flow.Income = b.flow.Income.Add(t.Amount)
		case models.TransactionTypeExpense:
			b.flow.Expenses = b.flow.Expenses.Add(t.Amount)
		}
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].at.Before(ordered[j].at)
	})

	series := make([]MonthlyFlow, 0, len(ordered))
	for _, b := range ordered {
		series = append(series, b.flow)
	}
	return series
}

// GoalProgress describes how a budget goal is tracking against spending.
// A negative Remaining means the goal is overspent by that much.
type GoalProgress struct {
	GoalID    string          `json:"goalId"`
	Spent     decimal.Decimal `json:"spent"`
	Percent   float64         `json:"percent"`
	Remaining decimal.Decimal `json:"remaining"`
	Overspent bool            `json:"overspent"`
}

// Progress computes spending against a budget goal. The relevant set is every
// expense transaction that matches the goal's category scope (an empty
// CategoryID matches all) and falls inside [StartDate, EndDate]. Percent is
// capped at 100. A zero-amount goal counts as fully consumed (percent 100,
// remaining = -spent) so no division by zero can propagate.
func Progress(goal models.BudgetGoal, state models.AppState) GoalProgress {
	spent := decimal.Zero
	for _, t := range state.Transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		if goal.CategoryID != "" && t.CategoryID != goal.CategoryID {
			continue
		}
		if t.Date.Before(goal.StartDate) {
			continue
		}
		if goal.EndDate != nil && t.Date.After(*goal.EndDate) {
			continue
		}
		spent = spent.Add(t.Amount)
	}

	percent := 100.0
	if goal.Amount.IsPositive() {
		ratio, _ := spent.Div(goal.Amount).Mul(decimal.NewFromInt(100)).Float64()
		percent = math.Min(ratio, 100)
	}

	remaining := goal.Amount.Sub(spent)
	return GoalProgress{
		GoalID:    goal.ID,
		Spent:     spent,
		Percent:   percent,
		Remaining: remaining,
		Overspent: remaining.IsNegative(),
	}
}
