package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	"github.com/iho/finsight/internal/domain"
	"github.com/iho/finsight/internal/infrastructure/metrics"
)

// localRules maps keywords to category labels, used when the lookup has no
// answer for a description.
var localRules = map[string]string{
	"payroll":     "Income",
	"direct dep":  "Income",
	"rent":        "Rent",
	"mortgage":    "Rent",
	"grocery":     "Groceries",
	"supermarket": "Groceries",
	"restaurant":  "Dining",
	"coffee":      "Dining",
	"uber":        "Transport",
	"lyft":        "Transport",
	"gas station": "Transport",
	"electric":    "Utilities",
	"water":       "Utilities",
	"internet":    "Utilities",
	"pharmacy":    "Health",
	"insurance":   "Insurance",
}

// CategorizeUseCase backfills missing categories for a batch of transactions.
// The external lookup is injected as a capability so the step is testable and
// carries no process-wide state.
type CategorizeUseCase struct {
	classifier    Classifier
	fuzzyDistance int
	logger        zerolog.Logger
}

// NewCategorizeUseCase creates a new CategorizeUseCase. classifier may be nil,
// in which case only local rules apply.
func NewCategorizeUseCase(classifier Classifier, fuzzyDistance int, logger zerolog.Logger) *CategorizeUseCase {
	if fuzzyDistance <= 0 {
		fuzzyDistance = DefaultFuzzyMatchDistance
	}

	return &CategorizeUseCase{
		classifier:    classifier,
		fuzzyDistance: fuzzyDistance,
		logger:        logger,
	}
}

// Categorize fills the category of every transaction that does not have one.
// Already-set categories are never touched, so the operation is idempotent.
//
// A lookup failure is recoverable: the batch still comes back fully
// categorized (worst case "Uncategorized") and the failure is returned as a
// warning wrapping domain.ErrClassifierUnavailable.
func (uc *CategorizeUseCase) Categorize(ctx context.Context, txs []domain.Transaction) ([]domain.Transaction, error) {
	pending := pendingDescriptions(txs)
	if len(pending) == 0 {
		return txs, nil
	}

	known, warn := uc.lookup(ctx, txs, pending)

	for i := range txs {
		if txs[i].Categorized() {
			continue
		}
		txs[i].Category = uc.resolve(txs[i].Description, known)
	}

	return txs, warn
}

// lookup issues the single batched classification request for this batch.
// One attempt only: the upstream service is rate limited and a failure
// degrades to local rules.
func (uc *CategorizeUseCase) lookup(ctx context.Context, txs []domain.Transaction, pending []string) (map[string]string, error) {
	if uc.classifier == nil {
		return nil, nil
	}

	from, to := dateSpan(txs)

	metrics.ClassifierRequests.Inc()

	known, err := uc.classifier.Classify(ctx, ClassifyRequest{
		From:         from,
		To:           to,
		Descriptions: pending,
	})
	if err != nil {
		metrics.ClassifierFailures.Inc()
		uc.logger.Warn().Err(err).Int("descriptions", len(pending)).
			Msg("classification lookup failed, falling back to local rules")

		return nil, fmt.Errorf("%w: %v", domain.ErrClassifierUnavailable, err)
	}

	return known, nil
}

// resolve picks a category for a description: exact lookup match first, then
// a fuzzy match against classified descriptions, then local keyword rules.
func (uc *CategorizeUseCase) resolve(description string, known map[string]string) string {
	if category, ok := known[description]; ok && category != "" {
		return category
	}

	if category := uc.closestMatch(description, known); category != "" {
		return category
	}

	lower := strings.ToLower(description)
	for keyword, category := range localRules {
		if strings.Contains(lower, keyword) {
			return category
		}
	}

	return domain.CategoryUncategorized
}

func (uc *CategorizeUseCase) closestMatch(description string, known map[string]string) string {
	bestDistance := uc.fuzzyDistance + 1
	best := ""

	for candidate, category := range known {
		if category == "" {
			continue
		}
		if d := levenshtein.ComputeDistance(description, candidate); d < bestDistance {
			bestDistance = d
			best = category
		}
	}

	return best
}

func pendingDescriptions(txs []domain.Transaction) []string {
	seen := make(map[string]bool)
	var out []string

	for i := range txs {
		if txs[i].Categorized() || seen[txs[i].Description] {
			continue
		}
		seen[txs[i].Description] = true
		out = append(out, txs[i].Description)
	}

	return out
}

func dateSpan(txs []domain.Transaction) (from, to time.Time) {
	for i := range txs {
		d := txs[i].Day()
		if from.IsZero() || d.Before(from) {
			from = d
		}
		if to.IsZero() || d.After(to) {
			to = d
		}
	}
	return from, to
}
