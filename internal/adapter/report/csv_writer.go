package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/iho/finsight/internal/domain"
)

const dateFormat = "2006-01-02"

// CSVWriter serializes the union of all ledgers into the canonical tabular
// shape: one row per transaction, ledger insertion order then transaction
// order. Ledger membership is only encoded when IncludeLedger is set.
type CSVWriter struct {
	IncludeLedger bool
}

// Write writes all ledgers as CSV to out.
func (w *CSVWriter) Write(out io.Writer, ledgers []*domain.Ledger) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{"Date", "Description", "Amount", "Category", "Running Bal."}
	if w.IncludeLedger {
		header = append(header, "Ledger")
	}

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, ledger := range ledgers {
		for _, tx := range ledger.Transactions() {
			balance := ""
			if tx.RunningBalance != nil {
				balance = tx.RunningBalance.StringFixed(2)
			}

			row := []string{
				tx.Date.Format(dateFormat),
				tx.Description,
				tx.Amount.StringFixed(2),
				tx.Category,
				balance,
			}
			if w.IncludeLedger {
				row = append(row, ledger.Name)
			}

			if err := writer.Write(row); err != nil {
				return fmt.Errorf("write CSV row: %w", err)
			}
		}
	}

	writer.Flush()

	return writer.Error()
}
