package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/iho/finsight/internal/domain"
	"github.com/iho/finsight/internal/infrastructure/metrics"
	"github.com/iho/finsight/internal/schema"
)

// IngestInput describes one uploaded source file. Kind and BusinessName are
// caller-supplied at the pipeline boundary; FormatHint optionally bypasses
// schema detection.
type IngestInput struct {
	Filename     string
	Reader       io.Reader
	Kind         domain.LedgerKind
	BusinessName string
	FormatHint   string
}

// IngestResult reports what happened to one source file.
type IngestResult struct {
	FileID   string
	Ledger   string
	Format   string
	Accepted int
	Skipped  []schema.RowError
	Warnings []string
}

// IngestUseCase drives the per-file pipeline: normalize, categorize, assign.
// Files are processed sequentially; an error in one file never aborts others.
type IngestUseCase struct {
	normalizer  *schema.Normalizer
	categorizer *CategorizeUseCase
	partitioner *PartitionUseCase
	idGen       IDGenerator
	logger      zerolog.Logger
}

// NewIngestUseCase creates a new IngestUseCase.
func NewIngestUseCase(
	normalizer *schema.Normalizer,
	categorizer *CategorizeUseCase,
	partitioner *PartitionUseCase,
	idGen IDGenerator,
	logger zerolog.Logger,
) *IngestUseCase {
	return &IngestUseCase{
		normalizer:  normalizer,
		categorizer: categorizer,
		partitioner: partitioner,
		idGen:       idGen,
		logger:      logger,
	}
}

// IngestFile runs one source file through the pipeline. Normalization and
// assignment errors are file-scoped; a classification failure degrades to
// "Uncategorized" and surfaces as a warning on the result.
func (uc *IngestUseCase) IngestFile(ctx context.Context, input IngestInput) (*IngestResult, error) {
	fileID := uc.idGen.Generate()

	table, err := schema.ReadTable(input.Reader)
	if err != nil {
		metrics.FilesFailed.Inc()
		return nil, fmt.Errorf("read %s: %w", input.Filename, err)
	}

	normalized, err := uc.normalizer.Normalize(table, input.FormatHint)
	if err != nil {
		metrics.FilesFailed.Inc()

		var unsupported *schema.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			uc.logger.Warn().Str("file", input.Filename).Strs("headers", unsupported.Headers).
				Msg("unsupported source format")
		}

		return nil, fmt.Errorf("normalize %s: %w", input.Filename, err)
	}

	metrics.RowsNormalized.Add(float64(len(normalized.Transactions)))
	metrics.RowsSkipped.Add(float64(len(normalized.Skipped)))

	result := &IngestResult{
		FileID:  fileID,
		Format:  normalized.Format,
		Skipped: normalized.Skipped,
	}

	txs, warn := uc.categorizer.Categorize(ctx, normalized.Transactions)
	if warn != nil {
		result.Warnings = append(result.Warnings, warn.Error())
	}

	ledger, err := uc.partitioner.Assign(input.Kind, input.BusinessName, txs)
	if err != nil {
		metrics.FilesFailed.Inc()
		return nil, fmt.Errorf("assign %s: %w", input.Filename, err)
	}

	result.Ledger = ledger.Name
	result.Accepted = len(txs)

	metrics.FilesIngested.Inc()
	metrics.LedgerTransactions.WithLabelValues(ledger.Name, string(ledger.Kind)).Set(float64(ledger.Len()))

	uc.logger.Info().
		Str("file", input.Filename).
		Str("file_id", fileID).
		Str("format", normalized.Format).
		Str("ledger", ledger.Name).
		Int("accepted", result.Accepted).
		Int("skipped", len(result.Skipped)).
		Msg("file ingested")

	return result, nil
}
