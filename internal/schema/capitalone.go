package schema

import (
	"github.com/iho/finsight/internal/domain"
)

// CapitalOneFormat matches Capital One card exports, which split amounts into
// Debit and Credit columns:
// Transaction Date, Posted Date, Card No., Description, Category, Debit, Credit.
type CapitalOneFormat struct{}

func (f *CapitalOneFormat) Name() string { return "capitalone" }

func (f *CapitalOneFormat) Priority() int { return 30 }

func (f *CapitalOneFormat) Match(headers map[string]bool) bool {
	return headers["Debit"] && headers["Credit"]
}

func (f *CapitalOneFormat) MapRow(row map[string]string) (domain.Transaction, error) {
	date, err := parseDate(row["Transaction Date"])
	if err != nil {
		return domain.Transaction{}, err
	}

	// Exactly one of Debit/Credit is populated per row. A debit is an
	// outflow, so it lands as a negative canonical amount.
	debit, debitErr := parseAmount(row["Debit"])
	credit, creditErr := parseAmount(row["Credit"])

	if debitErr != nil && creditErr != nil {
		return domain.Transaction{}, debitErr
	}

	amount := credit
	if creditErr != nil {
		amount = debit.Neg()
	}

	return domain.Transaction{
		Date:        date,
		Description: row["Description"],
		Amount:      amount,
		Category:    row["Category"],
	}, nil
}
