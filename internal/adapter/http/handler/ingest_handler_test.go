package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iho/finsight/internal/adapter/http/dto"
	"github.com/iho/finsight/internal/domain"
	"github.com/iho/finsight/internal/schema"
	"github.com/iho/finsight/internal/usecase"
)

type stubIngestService struct {
	gotInput usecase.IngestInput
	gotBody  string
	result   *usecase.IngestResult
	err      error
}

func (s *stubIngestService) IngestFile(_ context.Context, input usecase.IngestInput) (*usecase.IngestResult, error) {
	s.gotInput = input
	if input.Reader != nil {
		body, _ := io.ReadAll(input.Reader)
		s.gotBody = string(body)
	}
	return s.result, s.err
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.WriteString(part, content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	return &buf, writer.FormDataContentType()
}

func TestUploadMultipart(t *testing.T) {
	stub := &stubIngestService{
		result: &usecase.IngestResult{
			FileID:   "01HXYZ",
			Ledger:   "Acme Consulting",
			Format:   "bofa",
			Accepted: 2,
			Skipped:  []schema.RowError{{Line: 2, Reason: "invalid date"}},
		},
	}
	h := NewIngestHandler(stub, 1<<20)

	body, contentType := multipartBody(t, "march.csv", "Date,Description,Amount,Running Bal.\n")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files?kind=business&business_name=Acme+Consulting&format=bofa", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if stub.gotInput.Filename != "march.csv" {
		t.Errorf("expected multipart filename, got %q", stub.gotInput.Filename)
	}
	if stub.gotInput.Kind != domain.LedgerKindBusiness || stub.gotInput.BusinessName != "Acme Consulting" {
		t.Errorf("unexpected ledger params: %+v", stub.gotInput)
	}
	if stub.gotInput.FormatHint != "bofa" {
		t.Errorf("expected format hint, got %q", stub.gotInput.FormatHint)
	}

	var resp dto.IngestResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.FileID != "01HXYZ" || resp.Accepted != 2 || len(resp.Skipped) != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestUploadRawBodyDefaultsToPersonal(t *testing.T) {
	stub := &stubIngestService{result: &usecase.IngestResult{Ledger: domain.PersonalLedgerName}}
	h := NewIngestHandler(stub, 1<<20)

	content := "Date,Description,Amount,Running Bal.\n03/04/2024,PAYROLL,10.00,10.00\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files", strings.NewReader(content))
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.gotInput.Kind != domain.LedgerKindPersonal {
		t.Errorf("expected personal default, got %s", stub.gotInput.Kind)
	}
	if stub.gotBody != content {
		t.Errorf("expected raw body passthrough, got %q", stub.gotBody)
	}
}

func TestUploadRejectsInvalidKind(t *testing.T) {
	h := NewIngestHandler(&stubIngestService{}, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files?kind=corporate", strings.NewReader("x"))
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUploadMapsIngestErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unsupported format", &schema.UnsupportedFormatError{Headers: []string{"Foo"}}, http.StatusUnprocessableEntity},
		{"empty file", schema.ErrEmptyTable, http.StatusBadRequest},
		{"unknown hint", schema.ErrUnknownHint, http.StatusBadRequest},
		{"missing business name", domain.ErrMissingBusinessName, http.StatusBadRequest},
		{"kind mismatch", domain.ErrKindMismatch, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewIngestHandler(&stubIngestService{err: tt.err}, 1<<20)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/files", strings.NewReader("x"))
			rec := httptest.NewRecorder()

			h.Upload(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}

			var resp dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if resp.Error == "" {
				t.Error("expected an error message")
			}
		})
	}
}
