package models

// DefaultCategories returns the fixed category catalog seeded into a fresh
// AppState. IDs are stable so budget goals and transactions created against
// them survive re-seeding on another device.
func DefaultCategories() []Category {
	return []Category{
		// Expenses
		{ID: "cat_expense_groceries", Name: "Groceries", Icon: "ShoppingCart", Type: CategoryTypeExpense, Color: "hsl(30, 80%, 60%)"},
		{ID: "cat_expense_utilities", Name: "Utilities", Icon: "Lightbulb", Type: CategoryTypeExpense, Color: "hsl(200, 80%, 60%)"},
		{ID: "cat_expense_rent", Name: "Rent/Mortgage", Icon: "Home", Type: CategoryTypeExpense, Color: "hsl(240, 80%, 60%)"},
		{ID: "cat_expense_transport", Name: "Transport", Icon: "Car", Type: CategoryTypeExpense, Color: "hsl(0, 80%, 60%)"},
		{ID: "cat_expense_entertainment", Name: "Entertainment", Icon: "Gamepad2", Type: CategoryTypeExpense, Color: "hsl(300, 80%, 60%)"},
		{ID: "cat_expense_health", Name: "Healthcare", Icon: "HeartPulse", Type: CategoryTypeExpense, Color: "hsl(0, 100%, 70%)"},
		{ID: "cat_expense_education", Name: "Education", Icon: "BookOpen", Type: CategoryTypeExpense, Color: "hsl(50, 80%, 60%)"},
		// Income
		{ID: "cat_income_salary", Name: "Salary", Icon: "Briefcase", Type: CategoryTypeIncome, Color: "hsl(120, 60%, 50%)"},
		{ID: "cat_income_freelance", Name: "Freelance", Icon: "Laptop", Type: CategoryTypeIncome, Color: "hsl(150, 60%, 50%)"},
		{ID: "cat_income_investment", Name: "Investment", Icon: "TrendingUp", Type: CategoryTypeIncome, Color: "hsl(180, 60%, 50%)"},
		{ID: "cat_income_other", Name: "Other Income", Icon: "Gift", Type: CategoryTypeIncome, Color: "hsl(90, 60%, 50%)"},
	}
}
