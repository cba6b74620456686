package snapshot_test

import (
	"testing"

	"spendwise/internal/models"
	"spendwise/internal/snapshot"
	"spendwise/internal/testutil"
)

func TestLoadEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t, &snapshot.Record{})
	defer testutil.TeardownTestDB(t, db)

	store := snapshot.NewStore(db)
	state, err := store.Load()
	testutil.AssertNoError(t, err)
	if state != nil {
		t.Error("an empty database should yield a nil state, not an error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t, &snapshot.Record{})
	defer testutil.TeardownTestDB(t, db)

	store := snapshot.NewStore(db)

	cat := testutil.NewTestCategory("Groceries")
	end := testutil.Day(2024, 12, 31)
	tx := testutil.NewTestTransaction(cat.ID, 42.50, testutil.Day(2024, 3, 5))
	tx.Frequency = models.FrequencyMonthly
	tx.EndDate = &end

	original := models.AppState{
		Transactions: []models.Transaction{tx},
		Categories:   []models.Category{cat},
		BudgetGoals:  []models.BudgetGoal{testutil.NewTestBudgetGoal(cat.ID, 300, testutil.Day(2024, 3, 1))},
	}

	testutil.AssertNoError(t, store.Save(original))

	restored, err := store.Load()
	testutil.AssertNoError(t, err)
	if restored == nil {
		t.Fatal("expected a restored state")
	}

	if len(restored.Transactions) != 1 || len(restored.Categories) != 1 || len(restored.BudgetGoals) != 1 {
		t.Fatalf("restored state has wrong shape: %+v", restored)
	}

	got := restored.Transactions[0]
	if got.ID != tx.ID || got.CategoryID != cat.ID {
		t.Error("transaction identity must survive the round trip")
	}
	testutil.AssertDecimalEqual(t, tx.Amount, got.Amount)
	if !got.Date.Equal(tx.Date) {
		t.Errorf("date changed across round trip: %s != %s", got.Date, tx.Date)
	}
	if got.EndDate == nil || !got.EndDate.Equal(end) {
		t.Error("end date must survive the round trip")
	}
}

func TestSaveOverwritesSingleSlot(t *testing.T) {
	db := testutil.SetupTestDB(t, &snapshot.Record{})
	defer testutil.TeardownTestDB(t, db)

	store := snapshot.NewStore(db)

	first := models.AppState{Categories: []models.Category{testutil.NewTestCategory("First")}}
	second := models.AppState{Categories: []models.Category{testutil.NewTestCategory("Second")}}

	testutil.AssertNoError(t, store.Save(first))
	testutil.AssertNoError(t, store.Save(second))

	var count int64
	if err := db.Model(&snapshot.Record{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single snapshot row, got %d", count)
	}

	restored, err := store.Load()
	testutil.AssertNoError(t, err)
	if restored.Categories[0].Name != "Second" {
		t.Errorf("expected the latest snapshot, got %q", restored.Categories[0].Name)
	}
}

func TestLoadCorruptDocument(t *testing.T) {
	db := testutil.SetupTestDB(t, &snapshot.Record{})
	defer testutil.TeardownTestDB(t, db)

	rec := snapshot.Record{Key: "spendwiseAppState", Document: "{not json"}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	_, err := snapshot.NewStore(db).Load()
	testutil.AssertAppError(t, err, "SNAPSHOT_LOAD_FAILED")
}
