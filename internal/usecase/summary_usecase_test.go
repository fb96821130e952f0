package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finsight/internal/domain"
	"github.com/iho/finsight/internal/usecase"
)

func balanceTx(id string, amount int64, balance string, date time.Time) domain.Transaction {
	bal, _ := decimal.NewFromString(balance)
	t := tx(id, "BALANCE CARRIER", "Misc", amount, date)
	t.RunningBalance = &bal
	return t
}

func TestSummarizeBusinessLedger(t *testing.T) {
	ledger := domain.NewLedger("Acme Consulting", domain.LedgerKindBusiness, "Acme Consulting")
	ledger.Append(
		tx("t1", "CLIENT INVOICE", "Sales", 500, day(2024, time.March, 4)),
		tx("t2", "OFFICE RENT", "Rent", -120, day(2024, time.March, 6)),
	)

	summary := usecase.NewSummaryUseCase().Summarize(ledger)

	if !summary.TotalIncome.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected income 500, got %s", summary.TotalIncome)
	}
	if !summary.TotalExpenses.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected expenses 120, got %s", summary.TotalExpenses)
	}
	if !summary.ProfitLoss.Equal(decimal.NewFromInt(380)) {
		t.Errorf("expected profit 380, got %s", summary.ProfitLoss)
	}

	if len(summary.ByCategory) != 1 || !summary.ByCategory["Rent"].Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected breakdown {Rent: 120}, got %v", summary.ByCategory)
	}

	if len(summary.Daily) != 2 {
		t.Fatalf("expected 2 daily points, got %d", len(summary.Daily))
	}
	if !summary.Daily[0].Date.Before(summary.Daily[1].Date) {
		t.Error("expected daily series in ascending date order")
	}

	if summary.CurrentBalance != nil {
		t.Error("business ledgers carry no current balance")
	}
}

func TestSummarizeInvariants(t *testing.T) {
	ledger := domain.NewLedger(domain.PersonalLedgerName, domain.LedgerKindPersonal, "")
	ledger.Append(
		tx("t1", "PAYROLL", "Income", 2000, day(2024, time.March, 1)),
		tx("t2", "RENT", "Rent", -900, day(2024, time.March, 2)),
		tx("t3", "GROCERY", "Groceries", -150, day(2024, time.March, 2)),
		tx("t4", "GROCERY", "Groceries", -60, day(2024, time.March, 9)),
		tx("t5", "MYSTERY", "", -40, day(2024, time.March, 9)),
	)

	summary := usecase.NewSummaryUseCase().Summarize(ledger)

	if !summary.ProfitLoss.Equal(summary.TotalIncome.Sub(summary.TotalExpenses)) {
		t.Error("profit/loss must equal income minus expenses")
	}

	categorySum := decimal.Zero
	for _, amount := range summary.ByCategory {
		categorySum = categorySum.Add(amount)
	}
	if !categorySum.Equal(summary.TotalExpenses) {
		t.Errorf("category breakdown sums to %s, expenses are %s", categorySum, summary.TotalExpenses)
	}

	if !summary.ByCategory[domain.CategoryUncategorized].Equal(decimal.NewFromInt(40)) {
		t.Errorf("blank category should fold into Uncategorized, got %v", summary.ByCategory)
	}
}

func TestSummarizeZeroAmountStaysOutOfTotals(t *testing.T) {
	ledger := domain.NewLedger(domain.PersonalLedgerName, domain.LedgerKindPersonal, "")
	ledger.Append(tx("t1", "BALANCE ADJUSTMENT", "Misc", 0, day(2024, time.March, 4)))

	summary := usecase.NewSummaryUseCase().Summarize(ledger)

	if !summary.TotalIncome.IsZero() || !summary.TotalExpenses.IsZero() {
		t.Errorf("zero amount leaked into totals: income %s expenses %s", summary.TotalIncome, summary.TotalExpenses)
	}
	if len(summary.ByCategory) != 0 {
		t.Errorf("zero amount leaked into breakdown: %v", summary.ByCategory)
	}
	if len(summary.Daily) != 1 {
		t.Fatalf("zero-amount day should stay in the series, got %d points", len(summary.Daily))
	}
}

func TestSummarizeEmptyLedger(t *testing.T) {
	summary := usecase.NewSummaryUseCase().Summarize(domain.NewLedger(domain.PersonalLedgerName, domain.LedgerKindPersonal, ""))

	if !summary.TotalIncome.IsZero() || !summary.TotalExpenses.IsZero() || !summary.ProfitLoss.IsZero() {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.ByCategory == nil {
		t.Error("expected an empty, non-nil breakdown")
	}
}

func TestSummarizeCurrentBalance(t *testing.T) {
	ledger := domain.NewLedger(domain.PersonalLedgerName, domain.LedgerKindPersonal, "")
	ledger.Append(
		balanceTx("t1", -10, "990.00", day(2024, time.March, 6)),
		balanceTx("t2", 100, "1100.00", day(2024, time.March, 4)),
		// Same latest date as t1: the later entry wins the tie.
		balanceTx("t3", -20, "970.00", day(2024, time.March, 6)),
		tx("t4", "NO BALANCE", "Misc", -5, day(2024, time.March, 7)),
	)

	summary := usecase.NewSummaryUseCase().Summarize(ledger)

	if summary.CurrentBalance == nil {
		t.Fatal("expected a current balance")
	}
	if !summary.CurrentBalance.Equal(decimal.RequireFromString("970.00")) {
		t.Fatalf("expected 970.00, got %s", summary.CurrentBalance)
	}
}

func TestSummarizeNoRunningBalance(t *testing.T) {
	ledger := domain.NewLedger(domain.PersonalLedgerName, domain.LedgerKindPersonal, "")
	ledger.Append(tx("t1", "CARD CHARGE", "Dining", -12, day(2024, time.March, 4)))

	if summary := usecase.NewSummaryUseCase().Summarize(ledger); summary.CurrentBalance != nil {
		t.Fatalf("expected nil balance, got %s", summary.CurrentBalance)
	}
}

func TestPersonalOverview(t *testing.T) {
	personal := domain.NewLedger(domain.PersonalLedgerName, domain.LedgerKindPersonal, "")
	checking := tx("t1", "PAYROLL", "Income", 2000, day(2024, time.March, 1))
	checking.AccountType = "Checking"
	checking2 := tx("t2", "RENT", "Rent", -900, day(2024, time.March, 2))
	checking2.AccountType = "Checking"
	savings := tx("t3", "TRANSFER IN", "Transfer", 300, day(2024, time.March, 3))
	savings.AccountType = "Savings"
	personal.Append(checking, checking2, savings, tx("t4", "CASH", "Misc", -10, day(2024, time.March, 4)))

	acme := domain.NewLedger("Acme Consulting", domain.LedgerKindBusiness, "Acme Consulting")
	acme.Append(
		tx("t5", "CLIENT INVOICE", "Sales", 500, day(2024, time.March, 4)),
		tx("t6", "OFFICE RENT", "Rent", -120, day(2024, time.March, 6)),
	)

	overview := usecase.NewSummaryUseCase().PersonalOverview([]*domain.Ledger{personal, acme})

	if !overview.Summary.TotalIncome.Equal(decimal.NewFromInt(2300)) {
		t.Errorf("expected personal income 2300, got %s", overview.Summary.TotalIncome)
	}

	if !overview.AccountBalances["Checking"].Equal(decimal.NewFromInt(1100)) {
		t.Errorf("expected checking balance 1100, got %s", overview.AccountBalances["Checking"])
	}
	if !overview.AccountBalances["Savings"].Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected savings balance 300, got %s", overview.AccountBalances["Savings"])
	}
	if _, ok := overview.AccountBalances[""]; ok {
		t.Error("transactions without an account type must not create a balance bucket")
	}

	// Business results sit beside the personal summary, never inside it.
	if !overview.BusinessProfitLoss["Acme Consulting"].Equal(decimal.NewFromInt(380)) {
		t.Errorf("expected Acme profit 380, got %s", overview.BusinessProfitLoss["Acme Consulting"])
	}
	if !overview.Summary.ProfitLoss.Equal(decimal.NewFromInt(1390)) {
		t.Errorf("business figures leaked into the personal summary: %s", overview.Summary.ProfitLoss)
	}
}
