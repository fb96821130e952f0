package usecase

import (
	"context"
	"time"
)

// ClassifyRequest is a single batched classification request covering the
// date range spanned by a ledger's unclassified transactions.
type ClassifyRequest struct {
	From         time.Time
	To           time.Time
	Descriptions []string
}

// Classifier is the external classification lookup: given a date range and a
// batch of transaction descriptions, it returns a description-to-category
// mapping. Implementations carry their own access credential.
type Classifier interface {
	Classify(ctx context.Context, req ClassifyRequest) (map[string]string, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
