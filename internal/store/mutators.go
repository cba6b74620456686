package store

import (
	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// The convenience mutators wrap action construction with validation and ID
// generation. Invalid payloads are rejected here and never reach the reducer,
// so nothing malformed can enter AppState.

// AddTransaction validates the transaction, assigns it a fresh ID, and
// appends it to the state.
func (s *Store) AddTransaction(t models.Transaction) (models.Transaction, error) {
	if err := validateTransaction(&t); err != nil {
		return models.Transaction{}, err
	}
	t.ID = newID()
	if err := s.Dispatch(AddTransaction{Transaction: t}); err != nil {
		return t, err
	}
	return t, nil
}

// UpdateTransaction validates and replaces the transaction with a matching ID.
func (s *Store) UpdateTransaction(t models.Transaction) (models.Transaction, error) {
	if err := validateTransaction(&t); err != nil {
		return models.Transaction{}, err
	}
	if _, ok := s.Transaction(t.ID); !ok {
		return models.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err := s.Dispatch(UpdateTransaction{Transaction: t}); err != nil {
		return t, err
	}
	return t, nil
}

// DeleteTransaction removes the transaction with the given ID.
func (s *Store) DeleteTransaction(id string) error {
	if _, ok := s.Transaction(id); !ok {
		return apperrors.ErrTransactionNotFound
	}
	return s.Dispatch(DeleteTransaction{ID: id})
}

// AddCategory validates the category, assigns it a fresh ID, and appends it.
func (s *Store) AddCategory(c models.Category) (models.Category, error) {
	if err := validateCategory(c); err != nil {
		return models.Category{}, err
	}
	c.ID = newID()
	if err := s.Dispatch(AddCategory{Category: c}); err != nil {
		return c, err
	}
	return c, nil
}

// UpdateCategory validates and replaces the category with a matching ID.
func (s *Store) UpdateCategory(c models.Category) (models.Category, error) {
	if err := validateCategory(c); err != nil {
		return models.Category{}, err
	}
	if _, ok := s.Category(c.ID); !ok {
		return models.Category{}, apperrors.ErrCategoryNotFound
	}
	if err := s.Dispatch(UpdateCategory{Category: c}); err != nil {
		return c, err
	}
	return c, nil
}

// DeleteCategory removes the category with the given ID. Transactions that
// reference it are deliberately left alone: they resolve to "Uncategorized"
// from then on instead of being deleted or reassigned.
func (s *Store) DeleteCategory(id string) error {
	if _, ok := s.Category(id); !ok {
		return apperrors.ErrCategoryNotFound
	}
	return s.Dispatch(DeleteCategory{ID: id})
}

// AddBudgetGoal validates the goal, assigns it a fresh ID, and appends it.
func (s *Store) AddBudgetGoal(g models.BudgetGoal) (models.BudgetGoal, error) {
	if err := validateBudgetGoal(&g); err != nil {
		return models.BudgetGoal{}, err
	}
	g.ID = newID()
	if err := s.Dispatch(AddBudgetGoal{Goal: g}); err != nil {
		return g, err
	}
	return g, nil
}

// UpdateBudgetGoal validates and replaces the goal with a matching ID.
func (s *Store) UpdateBudgetGoal(g models.BudgetGoal) (models.BudgetGoal, error) {
	if err := validateBudgetGoal(&g); err != nil {
		return models.BudgetGoal{}, err
	}
	if _, ok := s.BudgetGoal(g.ID); !ok {
		return models.BudgetGoal{}, apperrors.ErrBudgetGoalNotFound
	}
	if err := s.Dispatch(UpdateBudgetGoal{Goal: g}); err != nil {
		return g, err
	}
	return g, nil
}

// DeleteBudgetGoal removes the goal with the given ID.
func (s *Store) DeleteBudgetGoal(id string) error {
	if _, ok := s.BudgetGoal(id); !ok {
		return apperrors.ErrBudgetGoalNotFound
	}
	return s.Dispatch(DeleteBudgetGoal{ID: id})
}

// validateTransaction checks the transaction invariants and normalizes the
// recurrence metadata: an end date only makes sense on recurring entries.
func validateTransaction(t *models.Transaction) error {
	if t.Type != models.TransactionTypeIncome && t.Type != models.TransactionTypeExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported transaction type")
	}
	if !t.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction amount must be greater than zero")
	}
	if t.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction date is required")
	}
	if !models.ValidFrequency(t.Frequency) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported transaction frequency")
	}
	if t.Frequency == models.FrequencyOnce {
		t.EndDate = nil
		return nil
	}
	if t.EndDate == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "end date is required for recurring transactions")
	}
	if t.EndDate.Before(t.Date) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "end date cannot be before the transaction date")
	}
	return nil
}

// validateCategory checks the category invariants. Icon names are validated
// against the closed catalog so a stored reference can never miss at render
// time.
func validateCategory(c models.Category) error {
	if c.Name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if c.Type != models.CategoryTypeIncome && c.Type != models.CategoryTypeExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported category type")
	}
	if c.Icon != "" && !models.ValidIcon(c.Icon) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown icon name")
	}
	if c.Color != "" && !models.ValidHSLColor(c.Color) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "color must be an HSL triple like hsl(30, 80%, 60%)")
	}
	return nil
}

// validateBudgetGoal checks the goal invariants and drops the end date for
// non-custom periods, which is never persisted even if a form sends one.
func validateBudgetGoal(g *models.BudgetGoal) error {
	if g.Name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget goal name is required")
	}
	if !g.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget goal amount must be greater than zero")
	}
	if !models.ValidBudgetPeriod(g.Period) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported budget period")
	}
	if g.StartDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget goal start date is required")
	}
	if g.Period != models.BudgetPeriodCustom {
		g.EndDate = nil
		return nil
	}
	if g.EndDate == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "end date is required for custom period goals")
	}
	if g.EndDate.Before(g.StartDate) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "end date cannot be before the start date")
	}
	return nil
}
