package schema

import (
	"github.com/iho/finsight/internal/domain"
)

// ChaseFormat matches Chase checking exports:
// Details, Posting Date, Description, Amount, Type, Balance, Check or Slip #.
type ChaseFormat struct{}

func (f *ChaseFormat) Name() string { return "chase" }

func (f *ChaseFormat) Priority() int { return 20 }

func (f *ChaseFormat) Match(headers map[string]bool) bool {
	return headers["Posting Date"]
}

func (f *ChaseFormat) MapRow(row map[string]string) (domain.Transaction, error) {
	date, err := parseDate(row["Posting Date"])
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

	if bal, err := parseAmount(row["Balance"]); err == nil {
		tx.RunningBalance = &bal
	}

	return tx, nil
}
