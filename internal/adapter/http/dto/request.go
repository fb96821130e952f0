package dto

import (
	"net/http"

	"github.com/iho/finsight/internal/domain"
)

// IngestParams are the caller-supplied parameters accompanying an upload.
// They arrive as query or form values from the presentation layer.
type IngestParams struct {
	Kind         string
	BusinessName string
	FormatHint   string
}

// ParseIngestParams extracts upload parameters from a request.
func ParseIngestParams(r *http.Request) IngestParams {
	get := func(key string) string {
		if v := r.URL.Query().Get(key); v != "" {
			return v
		}
		return r.FormValue(key)
	}

	return IngestParams{
		Kind:         get("kind"),
		BusinessName: get("business_name"),
		FormatHint:   get("format"),
	}
}

// LedgerKind parses the kind parameter, defaulting to personal when absent.
func (p IngestParams) LedgerKind() (domain.LedgerKind, error) {
	if p.Kind == "" {
		return domain.LedgerKindPersonal, nil
	}
	return domain.ParseLedgerKind(p.Kind)
}
