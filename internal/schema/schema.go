package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iho/finsight/internal/domain"
)

// Format describes one known institution export layout: a signature predicate
// over the header set and a deterministic column-to-canonical-field mapping.
type Format interface {
	// Name identifies the format; usable as an institution hint.
	Name() string
	// Priority orders signature matching. Lower values are tried first.
	// Two matching formats with equal priority indicate a registry defect.
	Priority() int
	// Match reports whether the header set identifies this format.
	Match(headers map[string]bool) bool
	// MapRow converts one raw row (keyed by header) to a canonical transaction.
	MapRow(row map[string]string) (domain.Transaction, error)
}

// UnsupportedFormatError is returned when no registered format matches the
// header set of a source file.
type UnsupportedFormatError struct {
	Headers []string
}

func (e *UnsupportedFormatError) Error() string {
	headers := make([]string, len(e.Headers))
	copy(headers, e.Headers)
	sort.Strings(headers)
	return fmt.Sprintf("unsupported source format: no known layout matches headers [%s]", strings.Join(headers, ", "))
}

var (
	// ErrAmbiguousFormat signals two same-priority formats matched one header
	// set. That is a registry defect; detection fails rather than guessing.
	ErrAmbiguousFormat = errors.New("ambiguous source format")

	// ErrUnknownHint is returned when the caller's institution hint names no
	// registered format.
	ErrUnknownHint = errors.New("unknown institution hint")
)

// RowError records a row that was dropped during normalization.
type RowError struct {
	Line   int
	Reason string
}

// IDGenerator assigns IDs to normalized transactions.
type IDGenerator interface {
	Generate() string
}

// Normalizer maps raw tables onto canonical transactions by consulting a
// priority-ordered format registry.
type Normalizer struct {
	formats []Format
	idGen   IDGenerator
}

// NewNormalizer creates a Normalizer with the default format registry.
func NewNormalizer(idGen IDGenerator) *Normalizer {
	return &Normalizer{
		formats: defaultFormats(),
		idGen:   idGen,
	}
}

// defaultFormats returns the known formats in priority order. Registering a
// new institution is a pure registration step here.
func defaultFormats() []Format {
	formats := []Format{
		&BankOfAmericaFormat{},
		&ChaseFormat{},
		&CapitalOneFormat{},
		&AmexFormat{},
		&CanonicalFormat{},
	}

	sort.SliceStable(formats, func(i, j int) bool {
		return formats[i].Priority() < formats[j].Priority()
	})

	return formats
}

// Detect selects the format for a table by signature matching in priority
// order. Same-priority double matches fail with ErrAmbiguousFormat.
func (n *Normalizer) Detect(t *Table) (Format, error) {
	headers := t.HeaderSet()

	var matched Format
	for _, f := range n.formats {
		if !f.Match(headers) {
			continue
		}
		if matched != nil {
			if matched.Priority() == f.Priority() {
				return nil, fmt.Errorf("%w: %s and %s both match", ErrAmbiguousFormat, matched.Name(), f.Name())
			}
			break
		}
		matched = f
	}

	if matched == nil {
		return nil, &UnsupportedFormatError{Headers: t.Headers}
	}

	return matched, nil
}

// Result is the outcome of normalizing one raw table.
type Result struct {
	Format       string
	Transactions []domain.Transaction
	Skipped      []RowError
}

// Normalize converts a raw table into canonical transactions. The optional
// hint selects a format by name, bypassing detection. Rows without a
// parseable date (summary and subtotal rows) or with a malformed amount are
// dropped and reported, never coerced.
func (n *Normalizer) Normalize(t *Table, hint string) (*Result, error) {
	format, err := n.resolve(t, hint)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Format:       format.Name(),
		Transactions: make([]domain.Transaction, 0, len(t.Rows)),
	}

	for i := range t.Rows {
		tx, err := format.MapRow(t.RowMap(i))
		if err != nil {
			result.Skipped = append(result.Skipped, RowError{
				// +2: 1-based, after the header row.
				Line:   i + 2,
				Reason: err.Error(),
			})
			continue
		}
		tx.ID = n.idGen.Generate()
		result.Transactions = append(result.Transactions, tx)
	}

	return result, nil
}

func (n *Normalizer) resolve(t *Table, hint string) (Format, error) {
	if hint == "" {
		return n.Detect(t)
	}

	for _, f := range n.formats {
		if strings.EqualFold(f.Name(), hint) {
			return f, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHint, hint)
}
