package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finsight/internal/domain"
)

// SummaryUseCase computes financial summaries from ledger snapshots. All
// methods are pure: deterministic for a given snapshot, no side effects.
type SummaryUseCase struct{}

// NewSummaryUseCase creates a new SummaryUseCase.
func NewSummaryUseCase() *SummaryUseCase {
	return &SummaryUseCase{}
}

// Summarize derives the financial summary of one ledger. An empty ledger
// yields a zero-valued summary.
func (uc *SummaryUseCase) Summarize(ledger *domain.Ledger) domain.FinancialSummary {
	summary := domain.ZeroSummary()
	if ledger == nil || ledger.Len() == 0 {
		return summary
	}

	txs := ledger.Transactions()
	daily := make(map[int64]decimal.Decimal)

	for i := range txs {
		tx := &txs[i]

		switch {
		case tx.Amount.IsPositive():
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		case tx.Amount.IsNegative():
			summary.TotalExpenses = summary.TotalExpenses.Add(tx.Amount.Abs())

			category := tx.Category
			if category == "" {
				category = domain.CategoryUncategorized
			}
			summary.ByCategory[category] = summary.ByCategory[category].Add(tx.Amount.Abs())
		}

		// Zero-amount rows contribute to neither total but stay in the series.
		day := tx.Day().Unix()
		daily[day] = daily[day].Add(tx.Amount)
	}

	summary.ProfitLoss = summary.TotalIncome.Sub(summary.TotalExpenses)
	summary.Daily = sortedDaily(daily)

	if ledger.Kind == domain.LedgerKindPersonal {
		summary.CurrentBalance = latestRunningBalance(txs)
	}

	return summary
}

// PersonalOverview assembles the personal summary together with
// per-account-type balances and each business ledger's profit/loss. The
// business figures are a read-only juxtaposition, not a ledger merge.
func (uc *SummaryUseCase) PersonalOverview(ledgers []*domain.Ledger) domain.PersonalOverview {
	overview := domain.PersonalOverview{
		Summary:            domain.ZeroSummary(),
		AccountBalances:    make(map[string]decimal.Decimal),
		BusinessProfitLoss: make(map[string]decimal.Decimal),
	}

	for _, ledger := range ledgers {
		switch ledger.Kind {
		case domain.LedgerKindPersonal:
			overview.Summary = uc.Summarize(ledger)

			for _, tx := range ledger.Transactions() {
				if tx.AccountType == "" {
					continue
				}
				overview.AccountBalances[tx.AccountType] = overview.AccountBalances[tx.AccountType].Add(tx.Amount)
			}
		case domain.LedgerKindBusiness:
			overview.BusinessProfitLoss[ledger.Name] = uc.Summarize(ledger).ProfitLoss
		}
	}

	return overview
}

// latestRunningBalance picks the running balance of the transaction with the
// latest date; among same-date transactions the one appearing last in ledger
// order wins. Returns nil when no transaction carries a balance.
func latestRunningBalance(txs []domain.Transaction) *decimal.Decimal {
	var best *decimal.Decimal
	var bestDay int64

	for i := range txs {
		if txs[i].RunningBalance == nil {
			continue
		}
		day := txs[i].Day().Unix()
		if best == nil || day >= bestDay {
			bal := *txs[i].RunningBalance
			best = &bal
			bestDay = day
		}
	}

	return best
}

func sortedDaily(daily map[int64]decimal.Decimal) []domain.DailyTotal {
	out := make([]domain.DailyTotal, 0, len(daily))
	for day, amount := range daily {
		out = append(out, domain.DailyTotal{
			Date:   time.Unix(day, 0).UTC(),
			Amount: amount,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out
}
