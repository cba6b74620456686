package models

import "github.com/shopspring/decimal"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Frequency describes the recurrence intent of a transaction. Recurring
// instances are never materialized anywhere in the system: every Transaction
// is a single point-in-time entry and Frequency/EndDate are descriptive
// metadata only.
type Frequency string

const (
	FrequencyOnce        Frequency = "once"
	FrequencyDaily       Frequency = "daily"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyYearly      Frequency = "yearly"
)

// ValidFrequency reports whether f is a known recurrence frequency.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyFortnightly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Transaction is a single dated money movement. CategoryID is an unchecked
// reference: it may point at a category that no longer exists, in which case
// the transaction is displayed as "Uncategorized". EndDate is present iff
// Frequency is not "once".
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  string          `json:"categoryId"`
	Date        Date            `json:"date"`
	Description string          `json:"description,omitempty"`
	Frequency   Frequency       `json:"frequency"`
	EndDate     *Date           `json:"endDate,omitempty"`
}
