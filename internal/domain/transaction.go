package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryUncategorized is the label applied when no category could be determined.
const CategoryUncategorized = "Uncategorized"

// Transaction is the canonical unit every source format is normalized into.
// Positive amounts are inflows, negative amounts are outflows.
type Transaction struct {
	ID             string
	Date           time.Time
	Description    string
	Amount         decimal.Decimal
	Category       string
	RunningBalance *decimal.Decimal
	AccountType    string
}

// Categorized reports whether a category has been set, either by the source
// or by a later classification pass.
func (t *Transaction) Categorized() bool {
	return t.Category != ""
}

// Day returns the transaction date truncated to a timezone-agnostic calendar day.
func (t *Transaction) Day() time.Time {
	return Day(t.Date)
}

// Day truncates a timestamp to midnight UTC.
func Day(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
