package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryBreakdown maps a category label to the absolute sum of expense
// amounts in that category. Categories with zero expense are omitted.
type CategoryBreakdown map[string]decimal.Decimal

// DailyTotal is one point of a ledger's daily time series: the sum of all
// amounts on a single calendar date.
type DailyTotal struct {
	Date   time.Time
	Amount decimal.Decimal
}

// FinancialSummary is the derived income/expense view of a ledger. It is
// computed on demand and never stored.
type FinancialSummary struct {
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	ProfitLoss     decimal.Decimal
	ByCategory     CategoryBreakdown
	Daily          []DailyTotal
	CurrentBalance *decimal.Decimal
}

// ZeroSummary returns an all-zero summary, used for empty ledgers.
func ZeroSummary() FinancialSummary {
	return FinancialSummary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		ProfitLoss:    decimal.Zero,
		ByCategory:    CategoryBreakdown{},
	}
}

// PersonalOverview juxtaposes the personal summary with per-account-type
// balances and each business ledger's profit/loss. Business figures are
// read-only pass-through values; no transactions are merged.
type PersonalOverview struct {
	Summary            FinancialSummary
	AccountBalances    map[string]decimal.Decimal
	BusinessProfitLoss map[string]decimal.Decimal
}
