package dto

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iho/finsight/internal/domain"
)

func TestParseIngestParamsFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files?kind=business&business_name=Acme+Consulting&format=bofa", nil)

	params := ParseIngestParams(req)

	require.Equal(t, "business", params.Kind)
	require.Equal(t, "Acme Consulting", params.BusinessName)
	require.Equal(t, "bofa", params.FormatHint)
}

func TestParseIngestParamsQueryWinsOverForm(t *testing.T) {
	form := url.Values{"kind": {"personal"}, "business_name": {"Form Co"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files?kind=business", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	params := ParseIngestParams(req)

	require.Equal(t, "business", params.Kind)
	require.Equal(t, "Form Co", params.BusinessName)
}

func TestLedgerKindDefaultsToPersonal(t *testing.T) {
	kind, err := IngestParams{}.LedgerKind()
	require.NoError(t, err)
	require.Equal(t, domain.LedgerKindPersonal, kind)
}

func TestLedgerKindRejectsUnknown(t *testing.T) {
	_, err := IngestParams{Kind: "corporate"}.LedgerKind()
	require.ErrorIs(t, err, domain.ErrInvalidLedgerKind)
}
