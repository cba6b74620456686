package models

// AppState is the complete application document: every transaction, category,
// and budget goal. It is persisted and restored wholesale as one snapshot.
type AppState struct {
	Transactions []Transaction `json:"transactions"`
	Categories   []Category    `json:"categories"`
	BudgetGoals  []BudgetGoal  `json:"budgetGoals"`
}

// Clone returns a deep copy: the slices are independent and optional end
// dates are reallocated, so no mutation of the copy can reach the original.
func (s AppState) Clone() AppState {
	out := AppState{
		Transactions: make([]Transaction, len(s.Transactions)),
		Categories:   make([]Category, len(s.Categories)),
		BudgetGoals:  make([]BudgetGoal, len(s.BudgetGoals)),
	}
	copy(out.Transactions, s.Transactions)
	copy(out.Categories, s.Categories)
	copy(out.BudgetGoals, s.BudgetGoals)
	for i, t := range out.Transactions {
		if t.EndDate != nil {
			end := *t.EndDate
			out.Transactions[i].EndDate = &end
		}
	}
	for i, g := range out.BudgetGoals {
		if g.EndDate != nil {
			end := *g.EndDate
			out.BudgetGoals[i].EndDate = &end
		}
	}
	return out
}

// CategoryByID resolves a category reference. The second return is false when
// the reference dangles, which callers render as "Uncategorized".
func (s AppState) CategoryByID(id string) (Category, bool) {
	if id == "" {
		return Category{}, false
	}
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
