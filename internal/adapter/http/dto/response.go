package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/finsight/internal/domain"
	"github.com/iho/finsight/internal/usecase"
)

const dateFormat = "2006-01-02"

// IngestResponse reports the outcome of one uploaded file.
type IngestResponse struct {
	FileID   string       `json:"file_id"`
	Ledger   string       `json:"ledger"`
	Format   string       `json:"format"`
	Accepted int          `json:"accepted"`
	Skipped  []SkippedRow `json:"skipped,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

// SkippedRow describes a dropped source row.
type SkippedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// IngestFromResult converts an ingest result to a response.
func IngestFromResult(res *usecase.IngestResult) *IngestResponse {
	out := &IngestResponse{
		FileID:   res.FileID,
		Ledger:   res.Ledger,
		Format:   res.Format,
		Accepted: res.Accepted,
		Warnings: res.Warnings,
	}

	for _, row := range res.Skipped {
		out.Skipped = append(out.Skipped, SkippedRow{Line: row.Line, Reason: row.Reason})
	}

	return out
}

// LedgerResponse represents a ledger in API responses.
type LedgerResponse struct {
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	BusinessName string `json:"business_name,omitempty"`
	Transactions int    `json:"transactions"`
}

// LedgerFromDomain converts a domain ledger to a response.
func LedgerFromDomain(l *domain.Ledger) *LedgerResponse {
	return &LedgerResponse{
		Name:         l.Name,
		Kind:         string(l.Kind),
		BusinessName: l.BusinessName,
		Transactions: l.Len(),
	}
}

// LedgersFromDomain converts domain ledgers to responses.
func LedgersFromDomain(ledgers []*domain.Ledger) []*LedgerResponse {
	result := make([]*LedgerResponse, len(ledgers))
	for i, l := range ledgers {
		result[i] = LedgerFromDomain(l)
	}
	return result
}

// DailyPoint is one point of the daily time series.
type DailyPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// SummaryResponse represents a financial summary in API responses.
type SummaryResponse struct {
	TotalIncome    decimal.Decimal            `json:"total_income"`
	TotalExpenses  decimal.Decimal            `json:"total_expenses"`
	ProfitLoss     decimal.Decimal            `json:"profit_loss"`
	ByCategory     map[string]decimal.Decimal `json:"by_category"`
	Daily          []DailyPoint               `json:"daily"`
	CurrentBalance *decimal.Decimal           `json:"current_balance,omitempty"`
}

// SummaryFromDomain converts a domain summary to a response.
func SummaryFromDomain(s domain.FinancialSummary) *SummaryResponse {
	out := &SummaryResponse{
		TotalIncome:    s.TotalIncome,
		TotalExpenses:  s.TotalExpenses,
		ProfitLoss:     s.ProfitLoss,
		ByCategory:     s.ByCategory,
		Daily:          make([]DailyPoint, 0, len(s.Daily)),
		CurrentBalance: s.CurrentBalance,
	}

	for _, d := range s.Daily {
		out.Daily = append(out.Daily, DailyPoint{
			Date:   d.Date.Format(dateFormat),
			Amount: d.Amount,
		})
	}

	return out
}

// OverviewResponse represents the personal overview in API responses.
type OverviewResponse struct {
	Summary            *SummaryResponse           `json:"summary"`
	AccountBalances    map[string]decimal.Decimal `json:"account_balances"`
	BusinessProfitLoss map[string]decimal.Decimal `json:"business_profit_loss"`
}

// OverviewFromDomain converts a domain overview to a response.
func OverviewFromDomain(o domain.PersonalOverview) *OverviewResponse {
	return &OverviewResponse{
		Summary:            SummaryFromDomain(o.Summary),
		AccountBalances:    o.AccountBalances,
		BusinessProfitLoss: o.BusinessProfitLoss,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
