package forecast

import (
	"fmt"
	"sort"
	"strings"

	"spendwise/internal/models"
	"spendwise/internal/report"
)

// historyLimit caps how many transactions are rendered into the prompt.
const historyLimit = 50

// FormatHistory renders the most recent transactions, newest first, one per
// line as "date, type, amount, category, description". At most historyLimit
// entries are included so the prompt stays bounded regardless of how much
// history the user has accumulated.
func FormatHistory(state models.AppState) string {
	txs := make([]models.Transaction, len(state.Transactions))
	copy(txs, state.Transactions)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
	if len(txs) > historyLimit {
		txs = txs[:historyLimit]
	}

	lines := make([]string, 0, len(txs))
	for _, t := range txs {
		name := report.UncategorizedLabel
		if cat, ok := state.CategoryByID(t.CategoryID); ok {
			name = cat.Name
		}
		lines = append(lines, fmt.Sprintf("%s, %s, %s, %s, %s",
			t.Date, t.Type, t.Amount.StringFixed(2), name, t.Description))
	}
	return strings.Join(lines, "\n")
}
