package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/iho/finsight/internal/adapter/http/dto"
	"github.com/iho/finsight/internal/usecase"
)

// IngestService defines the behavior needed by IngestHandler.
type IngestService interface {
	IngestFile(ctx context.Context, input usecase.IngestInput) (*usecase.IngestResult, error)
}

// IngestHandler handles source file uploads.
type IngestHandler struct {
	ingestUC       IngestService
	maxUploadBytes int64
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(ingestUC IngestService, maxUploadBytes int64) *IngestHandler {
	return &IngestHandler{
		ingestUC:       ingestUC,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload ingests one delimited source file. The file arrives either as the
// "file" part of a multipart form or as the raw request body; kind,
// business_name and format are query or form parameters.
func (h *IngestHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	params := dto.ParseIngestParams(r)

	kind, err := params.LedgerKind()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ledger kind", err.Error())
		return
	}

	reader, filename, cleanup, err := h.fileReader(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable upload", err.Error())
		return
	}
	defer cleanup()

	result, err := h.ingestUC.IngestFile(r.Context(), usecase.IngestInput{
		Filename:     filename,
		Reader:       reader,
		Kind:         kind,
		BusinessName: params.BusinessName,
		FormatHint:   params.FormatHint,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to ingest file", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.IngestFromResult(result))
}

func (h *IngestHandler) fileReader(r *http.Request) (io.Reader, string, func(), error) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err == nil {
		file, header, err := r.FormFile("file")
		if err == nil {
			return file, header.Filename, func() { file.Close() }, nil
		}
	}

	return r.Body, "upload", func() {}, nil
}
