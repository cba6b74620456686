package store_test

import (
	"encoding/json"
	"testing"

	"spendwise/internal/models"
	"spendwise/internal/store"
	"spendwise/internal/testutil"
)

func TestApplyAddAndDelete(t *testing.T) {
	state := models.AppState{}

	tx := testutil.NewTestTransaction("", 25, testutil.Day(2024, 1, 10))
	state = store.Apply(state, store.AddTransaction{Transaction: tx})
	if len(state.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(state.Transactions))
	}

	state = store.Apply(state, store.DeleteTransaction{ID: tx.ID})
	if len(state.Transactions) != 0 {
		t.Errorf("expected 0 transactions after delete, got %d", len(state.Transactions))
	}
}

func TestApplyUpdateReplacesInPlace(t *testing.T) {
	a := testutil.NewTestCategory("Groceries")
	b := testutil.NewTestCategory("Utilities")
	state := models.AppState{Categories: []models.Category{a, b}}

	updated := a
	updated.Name = "Food"
	state = store.Apply(state, store.UpdateCategory{Category: updated})

	if state.Categories[0].Name != "Food" {
		t.Errorf("expected first category renamed, got %q", state.Categories[0].Name)
	}
	if state.Categories[1].ID != b.ID {
		t.Error("update should preserve the order of other categories")
	}
}

func TestApplyUpdateMissingIsNoOp(t *testing.T) {
	goal := testutil.NewTestBudgetGoal("", 100, testutil.Day(2024, 1, 1))
	state := models.AppState{BudgetGoals: []models.BudgetGoal{goal}}

	ghost := testutil.NewTestBudgetGoal("", 500, testutil.Day(2024, 1, 1))
	next := store.Apply(state, store.UpdateBudgetGoal{Goal: ghost})

	if len(next.BudgetGoals) != 1 || next.BudgetGoals[0].ID != goal.ID {
		t.Error("updating an absent goal should change nothing")
	}
	next = store.Apply(state, store.DeleteBudgetGoal{ID: "missing"})
	if len(next.BudgetGoals) != 1 {
		t.Error("deleting an absent goal should change nothing")
	}
}

func TestApplyLoadStateReplacesEverything(t *testing.T) {
	state := models.AppState{
		Categories: models.DefaultCategories(),
	}
	snapshot := models.AppState{
		Transactions: []models.Transaction{testutil.NewTestTransaction("", 10, testutil.Day(2024, 2, 1))},
		Categories:   []models.Category{testutil.NewTestCategory("Only")},
	}

	next := store.Apply(state, store.LoadState{Snapshot: snapshot})
	if len(next.Categories) != 1 || next.Categories[0].Name != "Only" {
		t.Error("load should replace the category list wholesale")
	}
	if len(next.Transactions) != 1 {
		t.Error("load should replace the transaction list wholesale")
	}
}

func TestApplyNeverMutatesInput(t *testing.T) {
	tx := testutil.NewTestTransaction("", 42, testutil.Day(2024, 3, 3))
	state := models.AppState{Transactions: []models.Transaction{tx}}
	before, _ := json.Marshal(state)

	_ = store.Apply(state, store.DeleteTransaction{ID: tx.ID})
	_ = store.Apply(state, store.AddCategory{Category: testutil.NewTestCategory("")})

	after, _ := json.Marshal(state)
	if string(before) != string(after) {
		t.Error("input state must not be mutated by Apply")
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	state := models.AppState{Categories: models.DefaultCategories()}
	action := store.AddTransaction{Transaction: testutil.NewTestTransaction("cat_expense_groceries", 9.99, testutil.Day(2024, 4, 1))}

	first, _ := json.Marshal(store.Apply(state, action))
	second, _ := json.Marshal(store.Apply(state, action))
	if string(first) != string(second) {
		t.Error("identical state and action must yield identical results")
	}
}
