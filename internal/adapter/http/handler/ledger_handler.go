package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finsight/internal/adapter/http/dto"
	"github.com/iho/finsight/internal/domain"
)

// LedgerService defines ledger access for LedgerHandler.
type LedgerService interface {
	Ledgers() []*domain.Ledger
	Ledger(name string) (*domain.Ledger, error)
}

// SummaryService defines summary computation for LedgerHandler.
type SummaryService interface {
	Summarize(ledger *domain.Ledger) domain.FinancialSummary
	PersonalOverview(ledgers []*domain.Ledger) domain.PersonalOverview
}

// LedgerHandler handles ledger and summary requests.
type LedgerHandler struct {
	ledgers   LedgerService
	summaries SummaryService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgers LedgerService, summaries SummaryService) *LedgerHandler {
	return &LedgerHandler{
		ledgers:   ledgers,
		summaries: summaries,
	}
}

// List lists all ledgers in insertion order.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.LedgersFromDomain(h.ledgers.Ledgers()))
}

// Summary returns the financial summary of one ledger.
func (h *LedgerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing ledger name", "")
		return
	}

	ledger, err := h.ledgers.Ledger(name)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(h.summaries.Summarize(ledger)))
}

// Overview returns the personal overview with business pass-through figures.
func (h *LedgerHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview := h.summaries.PersonalOverview(h.ledgers.Ledgers())
	writeJSON(w, http.StatusOK, dto.OverviewFromDomain(overview))
}
