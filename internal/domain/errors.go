package domain

import "errors"

var (
	// Ledger assignment errors
	ErrMissingBusinessName = errors.New("business ledger requires a business name")
	ErrInvalidLedgerKind   = errors.New("invalid ledger kind")
	ErrLedgerNotFound      = errors.New("ledger not found")
	ErrKindMismatch        = errors.New("ledger already exists with a different kind")

	// Categorization errors
	ErrClassifierUnavailable = errors.New("classification lookup unavailable")
)
