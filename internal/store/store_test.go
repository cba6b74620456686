package store_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
	"spendwise/internal/store"
	"spendwise/internal/testutil"
)

// memoryPersister records every save and can be primed with a snapshot or a
// failure.
type memoryPersister struct {
	snapshot *models.AppState
	saveErr  error
	saves    int
	last     models.AppState
}

func (p *memoryPersister) Load() (*models.AppState, error) {
	return p.snapshot, nil
}

func (p *memoryPersister) Save(state models.AppState) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves++
	p.last = state
	return nil
}

func TestNewSeedsDefaultCategories(t *testing.T) {
	s, err := store.New(nil)
	testutil.AssertNoError(t, err)

	state := s.State()
	if len(state.Categories) != len(models.DefaultCategories()) {
		t.Errorf("expected %d seeded categories, got %d", len(models.DefaultCategories()), len(state.Categories))
	}
	if len(state.Transactions) != 0 || len(state.BudgetGoals) != 0 {
		t.Error("fresh state should have no transactions or goals")
	}
}

func TestNewRehydratesFromSnapshot(t *testing.T) {
	cat := testutil.NewTestCategory("Restored")
	p := &memoryPersister{snapshot: &models.AppState{
		Categories:   []models.Category{cat},
		Transactions: []models.Transaction{testutil.NewTestTransaction(cat.ID, 12.50, testutil.Day(2024, 5, 1))},
	}}

	s, err := store.New(p)
	testutil.AssertNoError(t, err)

	state := s.State()
	if len(state.Categories) != 1 || state.Categories[0].Name != "Restored" {
		t.Error("snapshot should replace the seeded defaults wholesale")
	}
	if len(state.Transactions) != 1 {
		t.Errorf("expected 1 restored transaction, got %d", len(state.Transactions))
	}
}

func TestAddTransactionAssignsIDAndPersists(t *testing.T) {
	p := &memoryPersister{}
	s, err := store.New(p)
	testutil.AssertNoError(t, err)

	created, err := s.AddTransaction(models.Transaction{
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(30),
		Date:      testutil.Day(2024, 6, 1),
		Frequency: models.FrequencyOnce,
	})
	testutil.AssertNoError(t, err)

	if created.ID == "" {
		t.Fatal("created transaction should have an assigned ID")
	}
	if p.saves != 1 {
		t.Errorf("expected 1 snapshot save, got %d", p.saves)
	}
	if len(p.last.Transactions) != 1 {
		t.Error("persisted snapshot should contain the new transaction")
	}

	second, err := s.AddTransaction(models.Transaction{
		Type:      models.TransactionTypeIncome,
		Amount:    decimal.NewFromInt(100),
		Date:      testutil.Day(2024, 6, 2),
		Frequency: models.FrequencyOnce,
	})
	testutil.AssertNoError(t, err)
	if second.ID == created.ID {
		t.Error("IDs must be unique across additions")
	}
}

func TestAddTransactionValidation(t *testing.T) {
	s, _ := store.New(nil)
	end := testutil.Day(2024, 1, 1)
	earlier := testutil.Day(2023, 12, 1)

	tests := []struct {
		name string
		tx   models.Transaction
	}{
		{"zero amount", models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.Zero, Date: end, Frequency: models.FrequencyOnce}},
		{"negative amount", models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(-5), Date: end, Frequency: models.FrequencyOnce}},
		{"bad type", models.Transaction{Type: "transfer", Amount: decimal.NewFromInt(5), Date: end, Frequency: models.FrequencyOnce}},
		{"missing date", models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(5), Frequency: models.FrequencyOnce}},
		{"bad frequency", models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(5), Date: end, Frequency: "sometimes"}},
		{"recurring without end date", models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(5), Date: end, Frequency: models.FrequencyMonthly}},
		{"end date before start", models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(5), Date: end, Frequency: models.FrequencyMonthly, EndDate: &earlier}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddTransaction(tt.tx)
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		})
	}

	if len(s.State().Transactions) != 0 {
		t.Error("invalid transactions must never enter the state")
	}
}

func TestAddTransactionDropsEndDateForOneOff(t *testing.T) {
	s, _ := store.New(nil)
	end := testutil.Day(2024, 12, 31)

	created, err := s.AddTransaction(models.Transaction{
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(10),
		Date:      testutil.Day(2024, 1, 1),
		Frequency: models.FrequencyOnce,
		EndDate:   &end,
	})
	testutil.AssertNoError(t, err)
	if created.EndDate != nil {
		t.Error("a one-off transaction must not keep an end date")
	}
}

func TestUpdateTransactionNotFound(t *testing.T) {
	s, _ := store.New(nil)
	tx := testutil.NewTestTransaction("", 20, testutil.Day(2024, 1, 1))
	tx.ID = "missing"

	_, err := s.UpdateTransaction(tx)
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	testutil.AssertAppError(t, s.DeleteTransaction("missing"), "TRANSACTION_NOT_FOUND")
}

func TestDeleteCategoryLeavesTransactions(t *testing.T) {
	s, _ := store.New(nil)

	cat, err := s.AddCategory(models.Category{Name: "Hobby", Type: models.CategoryTypeExpense})
	testutil.AssertNoError(t, err)

	created, err := s.AddTransaction(models.Transaction{
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromInt(15),
		CategoryID: cat.ID,
		Date:       testutil.Day(2024, 7, 1),
		Frequency:  models.FrequencyOnce,
	})
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, s.DeleteCategory(cat.ID))

	got, ok := s.Transaction(created.ID)
	if !ok {
		t.Fatal("transaction must survive its category's deletion")
	}
	if got.CategoryID != cat.ID {
		t.Error("the dangling category reference must be left as-is")
	}
}

func TestCategoryValidation(t *testing.T) {
	s, _ := store.New(nil)

	tests := []struct {
		name string
		cat  models.Category
	}{
		{"empty name", models.Category{Type: models.CategoryTypeExpense}},
		{"bad type", models.Category{Name: "X", Type: "misc"}},
		{"unknown icon", models.Category{Name: "X", Type: models.CategoryTypeExpense, Icon: "NoSuchIcon"}},
		{"bad color", models.Category{Name: "X", Type: models.CategoryTypeExpense, Color: "#fff"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddCategory(tt.cat)
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		})
	}
}

func TestBudgetGoalEndDateNormalization(t *testing.T) {
	s, _ := store.New(nil)
	start := testutil.Day(2024, 1, 1)
	end := testutil.Day(2024, 3, 31)

	monthly, err := s.AddBudgetGoal(models.BudgetGoal{
		Name: "Monthly food", Amount: decimal.NewFromInt(400),
		Period: models.BudgetPeriodMonthly, StartDate: start, EndDate: &end,
	})
	testutil.AssertNoError(t, err)
	if monthly.EndDate != nil {
		t.Error("non-custom goals must not keep an end date")
	}

	_, err = s.AddBudgetGoal(models.BudgetGoal{
		Name: "Custom", Amount: decimal.NewFromInt(400),
		Period: models.BudgetPeriodCustom, StartDate: start,
	})
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	custom, err := s.AddBudgetGoal(models.BudgetGoal{
		Name: "Q1", Amount: decimal.NewFromInt(1200),
		Period: models.BudgetPeriodCustom, StartDate: start, EndDate: &end,
	})
	testutil.AssertNoError(t, err)
	if custom.EndDate == nil || !custom.EndDate.Equal(end) {
		t.Error("custom goals must keep their end date")
	}
}

func TestDispatchSaveFailureKeepsState(t *testing.T) {
	p := &memoryPersister{saveErr: errors.New("disk full")}
	s, err := store.New(p)
	testutil.AssertNoError(t, err)

	_, err = s.AddTransaction(models.Transaction{
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(30),
		Date:      testutil.Day(2024, 8, 1),
		Frequency: models.FrequencyOnce,
	})
	testutil.AssertAppError(t, err, "SNAPSHOT_SAVE_FAILED")

	// The in-memory transition is kept; only durability failed.
	if len(s.State().Transactions) != 1 {
		t.Error("a failed save must not roll back the in-memory state")
	}
}

func TestStateReturnsCopy(t *testing.T) {
	s, _ := store.New(nil)

	state := s.State()
	state.Categories[0].Name = "tampered"

	if s.State().Categories[0].Name == "tampered" {
		t.Error("State must return an independent copy")
	}
}
