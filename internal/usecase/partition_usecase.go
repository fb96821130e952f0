package usecase

import (
	"fmt"
	"sync"

	"github.com/iho/finsight/internal/domain"
)

// PartitionUseCase owns all ledgers for a run. Ledgers grow only through
// Assign; once handed out for summarization or export they are read-only
// snapshots.
type PartitionUseCase struct {
	mu      sync.RWMutex
	ledgers map[string]*domain.Ledger
	order   []string
}

// NewPartitionUseCase creates an empty partitioner.
func NewPartitionUseCase() *PartitionUseCase {
	return &PartitionUseCase{
		ledgers: make(map[string]*domain.Ledger),
	}
}

// Assign appends transactions to the named ledger, creating it on first use.
// Personal assignments always accumulate into the single "Personal" ledger;
// business assignments require a non-empty business name and are keyed by it.
func (uc *PartitionUseCase) Assign(kind domain.LedgerKind, businessName string, txs []domain.Transaction) (*domain.Ledger, error) {
	if err := domain.ValidateLedgerKind(kind); err != nil {
		return nil, err
	}

	name := domain.PersonalLedgerName
	if kind == domain.LedgerKindBusiness {
		if err := domain.ValidateBusinessName(businessName); err != nil {
			return nil, err
		}
		name = businessName
	} else {
		businessName = ""
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	ledger, ok := uc.ledgers[name]
	if !ok {
		ledger = domain.NewLedger(name, kind, businessName)
		uc.ledgers[name] = ledger
		uc.order = append(uc.order, name)
	} else if ledger.Kind != kind {
		return nil, fmt.Errorf("%w: %q is %s", domain.ErrKindMismatch, name, ledger.Kind)
	}

	ledger.Append(txs...)

	return ledger, nil
}

// Ledgers returns all ledgers in insertion order.
func (uc *PartitionUseCase) Ledgers() []*domain.Ledger {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]*domain.Ledger, 0, len(uc.order))
	for _, name := range uc.order {
		out = append(out, uc.ledgers[name])
	}
	return out
}

// Ledger returns a single ledger by name.
func (uc *PartitionUseCase) Ledger(name string) (*domain.Ledger, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	ledger, ok := uc.ledgers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrLedgerNotFound, name)
	}
	return ledger, nil
}
