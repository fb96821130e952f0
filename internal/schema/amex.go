package schema

import (
	"github.com/iho/finsight/internal/domain"
)

// AmexFormat matches American Express card exports:
// Date, Description, Card Member, Account #, Amount, Category.
// Amex reports charges as positive values, so amounts are sign-flipped on the
// way into the canonical model.
type AmexFormat struct{}

func (f *AmexFormat) Name() string { return "amex" }

func (f *AmexFormat) Priority() int { return 40 }

func (f *AmexFormat) Match(headers map[string]bool) bool {
	return headers["Card Member"]
}

func (f *AmexFormat) MapRow(row map[string]string) (domain.Transaction, error) {
	date, err := parseDate(row["Date"])
	if err != nil {
		return domain.Transaction{}, err
	}

	amount, err := parseAmount(row["Amount"])
	if err != nil {
		return domain.Transaction{}, err
	}

	return domain.Transaction{
		Date:        date,
		Description: row["Description"],
		Amount:      amount.Neg(),
		Category:    row["Category"],
	}, nil
}
