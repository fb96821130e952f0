package schema

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finsight/internal/domain"
)

// Value parse errors
var (
	ErrEmptyAmount   = errors.New("empty amount")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

// Date layouts seen across institution exports, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"02 Jan 2006",
	"Jan 2, 2006",
}

// parseAmount converts strings like "1,234.56", "-$120.00" or "(45.00)" to a
// signed decimal. Parentheses denote negative amounts in some exports.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	replacer := strings.NewReplacer(
		"$", "",
		"£", "",
		"€", "",
		",", "",
		" ", "",
		" ", "",
	)
	s = replacer.Replace(s)

	if s == "" || s == "-" {
		return decimal.Zero, ErrEmptyAmount
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if negative {
		amount = amount.Neg()
	}

	return amount, nil
}

// parseDate parses a locale-specific date string and normalizes it to a
// timezone-agnostic calendar day.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return domain.Day(ts), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
