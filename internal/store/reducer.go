package store

import (
	"slices"

	"spendwise/internal/models"
)

// Apply reduces state by one action and returns the new state. It is total
// (every action yields a state, never panics), synchronous, and referentially
// transparent: identical (state, action) pairs yield identical results, and
// the input state is never mutated. Unknown actions return the state
// unchanged.
func Apply(state models.AppState, action Action) models.AppState {
	next := state.Clone()

	switch a := action.(type) {
	case LoadState:
		return a.Snapshot.Clone()

	case AddTransaction:
		next.Transactions = append(next.Transactions, a.Transaction)
	case UpdateTransaction:
		for i := range next.Transactions {
			if next.Transactions[i].ID == a.Transaction.ID {
				next.Transactions[i] = a.Transaction
			}
		}
	case DeleteTransaction:
		next.Transactions = slices.DeleteFunc(next.Transactions, func(t models.Transaction) bool {
			return t.ID == a.ID
		})

	case AddCategory:
		next.Categories = append(next.Categories, a.Category)
	case UpdateCategory:
		for i := range next.Categories {
			if next.Categories[i].ID == a.Category.ID {
				next.Categories[i] = a.Category
			}
		}
	case DeleteCategory:
		next.Categories = slices.DeleteFunc(next.Categories, func(c models.Category) bool {
			return c.ID == a.ID
		})

	case AddBudgetGoal:
		next.BudgetGoals = append(next.BudgetGoals, a.Goal)
	case UpdateBudgetGoal:
		for i := range next.BudgetGoals {
			if next.BudgetGoals[i].ID == a.Goal.ID {
				next.BudgetGoals[i] = a.Goal
			}
		}
	case DeleteBudgetGoal:
		next.BudgetGoals = slices.DeleteFunc(next.BudgetGoals, func(g models.BudgetGoal) bool {
			return g.ID == a.ID
		})
	}

	return next
}
