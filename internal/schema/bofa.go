package schema

import (
	"github.com/iho/finsight/internal/domain"
)

// BankOfAmericaFormat matches Bank of America checking/savings exports:
// Date, Description, Amount, Running Bal. No category column is provided.
type BankOfAmericaFormat struct{}

func (f *BankOfAmericaFormat) Name() string { return "bofa" }

func (f *BankOfAmericaFormat) Priority() int { return 10 }

// Match keys on the "Running Bal." column, which only Bank of America uses.
// The category check keeps canonical re-imports out of this format.
func (f *BankOfAmericaFormat) Match(headers map[string]bool) bool {
	return headers["Running Bal."] && !headers["Category"]
}

func (f *BankOfAmericaFormat) MapRow(row map[string]string) (domain.Transaction, error) {
	date, err := parseDate(row["Date"])
	if err != nil {
		return domain.Transaction{}, err
	}

	amount, err := parseAmount(row["Amount"])
	if err != nil {
		return domain.Transaction{}, err
	}

	tx := domain.Transaction{
		Date:        date,
		Description: row["Description"],
		Amount:      amount,
	}

	if bal, err := parseAmount(row["Running Bal."]); err == nil {
		tx.RunningBalance = &bal
	}

	return tx, nil
}
