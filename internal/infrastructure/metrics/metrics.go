package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics. Registered once at package init so every component can
// record without carrying a registry around.
var (
	FilesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finsight_files_ingested_total",
		Help: "Total number of source files successfully ingested",
	})

	FilesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finsight_files_failed_total",
		Help: "Total number of source files rejected",
	})

	RowsNormalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finsight_rows_normalized_total",
		Help: "Total number of rows normalized into canonical transactions",
	})

	RowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finsight_rows_skipped_total",
		Help: "Total number of rows dropped during normalization",
	})

	ClassifierRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finsight_classifier_requests_total",
		Help: "Total number of classification lookup requests",
	})

	ClassifierFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finsight_classifier_failures_total",
		Help: "Total number of failed classification lookups",
	})

	LedgerTransactions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "finsight_ledger_transactions",
			Help: "Current number of transactions per ledger",
		},
		[]string{"ledger", "kind"},
	)
)
