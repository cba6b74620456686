package store

import "spendwise/internal/models"

// Action is a tagged state transition consumed by Apply. Every mutation of
// AppState flows through exactly one of these variants.
type Action interface {
	isAction()
}

// LoadState replaces the entire state with a snapshot. Used once, at startup
// rehydration.
type LoadState struct {
	Snapshot models.AppState
}

// AddTransaction appends a transaction to the transaction sequence. The
// transaction carries its ID already; ID generation happens in the store's
// convenience mutators, keeping the reducer referentially transparent.
type AddTransaction struct {
	Transaction models.Transaction
}

// UpdateTransaction replaces the transaction with a matching ID. No-op if
// no transaction matches.
type UpdateTransaction struct {
	Transaction models.Transaction
}

// DeleteTransaction removes the transaction with the given ID. No-op if absent.
type DeleteTransaction struct {
	ID string
}

// AddCategory appends a category to the category sequence.
type AddCategory struct {
	Category models.Category
}

// UpdateCategory replaces the category with a matching ID. No-op if absent.
type UpdateCategory struct {
	Category models.Category
}

// DeleteCategory removes the category with the given ID. No-op if absent.
// Transactions referencing the deleted category are left untouched and become
// uncategorized on display.
type DeleteCategory struct {
	ID string
}

// AddBudgetGoal appends a budget goal to the goal sequence.
type AddBudgetGoal struct {
	Goal models.BudgetGoal
}

// UpdateBudgetGoal replaces the goal with a matching ID. No-op if absent.
type UpdateBudgetGoal struct {
	Goal models.BudgetGoal
}

// DeleteBudgetGoal removes the goal with the given ID. No-op if absent.
type DeleteBudgetGoal struct {
	ID string
}

func (LoadState) isAction()         {}
func (AddTransaction) isAction()    {}
func (UpdateTransaction) isAction() {}
func (DeleteTransaction) isAction() {}
func (AddCategory) isAction()       {}
func (UpdateCategory) isAction()    {}
func (DeleteCategory) isAction()    {}
func (AddBudgetGoal) isAction()     {}
func (UpdateBudgetGoal) isAction()  {}
func (DeleteBudgetGoal) isAction()  {}
