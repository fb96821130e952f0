package schema

import (
	"github.com/iho/finsight/internal/domain"
)

// CanonicalFormat matches the pipeline's own export shape:
// Date, Description, Amount, Category, optionally Running Bal. and
// Account Type. It is the lowest-priority format so institution-specific
// layouts always win detection.
type CanonicalFormat struct{}

func (f *CanonicalFormat) Name() string { return "canonical" }

func (f *CanonicalFormat) Priority() int { return 90 }

func (f *CanonicalFormat) Match(headers map[string]bool) bool {
	return headers["Date"] && headers["Description"] && headers["Amount"] && headers["Category"]
}

func (f *CanonicalFormat) MapRow(row map[string]string) (domain.Transaction, error) {
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
		Category:    row["Category"],
		AccountType: row["Account Type"],
	}

	if bal, err := parseAmount(row["Running Bal."]); err == nil {
		tx.RunningBalance = &bal
	}

	return tx, nil
}
