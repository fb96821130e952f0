package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/finsight/internal/adapter/http/dto"
	"github.com/iho/finsight/internal/domain"
	"github.com/iho/finsight/internal/schema"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain and schema errors to HTTP status codes.
func mapDomainError(err error) int {
	var unsupported *schema.UnsupportedFormatError

	switch {
	case errors.Is(err, domain.ErrLedgerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMissingBusinessName),
		errors.Is(err, domain.ErrInvalidLedgerKind),
		errors.Is(err, domain.ErrInvalidLedgerName),
		errors.Is(err, domain.ErrKindMismatch),
		errors.Is(err, schema.ErrEmptyTable),
		errors.Is(err, schema.ErrUnknownHint):
		return http.StatusBadRequest
	case errors.As(err, &unsupported),
		errors.Is(err, schema.ErrAmbiguousFormat):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
