package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors
var (
	ErrInvalidLedgerName = errors.New("invalid ledger name")
)

// Validation constants
const (
	MaxLedgerNameLength = 255
	MinLedgerNameLength = 1
)

// ValidateBusinessName validates a caller-supplied business ledger name.
func ValidateBusinessName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return ErrMissingBusinessName
	}

	if len(name) < MinLedgerNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidLedgerName)
	}

	if len(name) > MaxLedgerNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidLedgerName, MaxLedgerNameLength)
	}

	return nil
}

// ValidateLedgerKind validates a ledger kind tag.
func ValidateLedgerKind(kind LedgerKind) error {
	switch kind {
	case LedgerKindPersonal, LedgerKindBusiness:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLedgerKind, kind)
	}
}

// ParseLedgerKind parses a user-supplied kind string.
func ParseLedgerKind(s string) (LedgerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "personal":
		return LedgerKindPersonal, nil
	case "business":
		return LedgerKindBusiness, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLedgerKind, s)
	}
}
