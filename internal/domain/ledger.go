package domain

// LedgerKind tags a ledger as personal or business.
type LedgerKind string

const (
	LedgerKindPersonal LedgerKind = "personal"
	LedgerKindBusiness LedgerKind = "business"
)

// PersonalLedgerName is the fixed name of the single personal ledger.
const PersonalLedgerName = "Personal"

// Ledger is a named, append-only collection of transactions. Transactions are
// never mutated after insertion; callers get copies of the backing slice.
type Ledger struct {
	Name         string
	Kind         LedgerKind
	BusinessName string

	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(name string, kind LedgerKind, businessName string) *Ledger {
	return &Ledger{
		Name:         name,
		Kind:         kind,
		BusinessName: businessName,
	}
}

// Append adds transactions in order. This is the only way a ledger grows.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Transactions returns a copy of the ledger's transactions in insertion order.
func (l *Ledger) Transactions() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int {
	return len(l.transactions)
}
