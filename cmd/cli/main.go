package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/finsight/internal/adapter/classifier"
	"github.com/iho/finsight/internal/adapter/report"
	"github.com/iho/finsight/internal/domain"
	"github.com/iho/finsight/internal/infrastructure/id"
	"github.com/iho/finsight/internal/schema"
	"github.com/iho/finsight/internal/usecase"
)

var (
	baseURL string
	timeout time.Duration

	kind              string
	businessName      string
	formatHint        string
	classifierURL     string
	classifierToken   string
	classifierTimeout time.Duration
	outputPath        string
	includeLedger     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finsight",
		Short: "Finsight CLI tool",
		Long:  `Normalize, categorize and summarize bank-exported transaction files.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the finsight API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Run the pipeline locally and print per-ledger summaries",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			analyze(args)
		},
	}
	addIngestFlags(analyzeCmd)

	exportCmd := &cobra.Command{
		Use:   "export [files...]",
		Short: "Run the pipeline locally and write the combined CSV export",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exportCSV(args)
		},
	}
	addIngestFlags(exportCmd)
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "transactions.csv", "Output file path")
	exportCmd.Flags().BoolVar(&includeLedger, "include-ledger", false, "Add a ledger membership column")

	ledgersCmd := &cobra.Command{
		Use:   "ledgers",
		Short: "List ledgers on a running server",
		Run: func(cmd *cobra.Command, args []string) {
			listLedgers()
		},
	}

	waitCmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait until the server is ready",
		Run: func(cmd *cobra.Command, args []string) {
			waitForServer()
		},
	}

	rootCmd.AddCommand(analyzeCmd, exportCmd, ledgersCmd, waitCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func addIngestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&kind, "kind", "personal", "Ledger kind for the files (personal or business)")
	cmd.Flags().StringVar(&businessName, "business", "", "Business name (required when kind is business)")
	cmd.Flags().StringVar(&formatHint, "format", "", "Institution format hint (bofa, chase, capitalone, amex, canonical)")
	cmd.Flags().StringVar(&classifierURL, "classifier-url", "", "Classification lookup base URL")
	cmd.Flags().StringVar(&classifierToken, "classifier-token", "", "Classification lookup access token")
	cmd.Flags().DurationVar(&classifierTimeout, "classifier-timeout", 10*time.Second, "Classification lookup timeout")
}

// buildPipeline wires a local, in-process pipeline identical to the server's.
func buildPipeline() (*usecase.IngestUseCase, *usecase.PartitionUseCase, *usecase.SummaryUseCase) {
	logger := zerolog.New(os.Stderr).Level(zerolog.WarnLevel)

	var lookup usecase.Classifier
	if classifierURL != "" {
		lookup = classifier.New(classifier.Config{
			BaseURL: classifierURL,
			Token:   classifierToken,
			Timeout: classifierTimeout,
		}, logger)
	}

	idGen := id.NewULIDGenerator()
	normalizer := schema.NewNormalizer(idGen)
	categorizeUC := usecase.NewCategorizeUseCase(lookup, 0, logger)
	partitionUC := usecase.NewPartitionUseCase()
	ingestUC := usecase.NewIngestUseCase(normalizer, categorizeUC, partitionUC, idGen, logger)

	return ingestUC, partitionUC, usecase.NewSummaryUseCase()
}

func ingestFiles(ingestUC *usecase.IngestUseCase, paths []string) {
	ledgerKind, err := parseKind()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	ctx := context.Background()

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", path, err)
			continue
		}

		result, err := ingestUC.IngestFile(ctx, usecase.IngestInput{
			Filename:     path,
			Reader:       f,
			Kind:         ledgerKind,
			BusinessName: businessName,
			FormatHint:   formatHint,
		})
		f.Close()

		if err != nil {
			fmt.Printf("Failed %s: %v\n", path, err)
			continue
		}

		fmt.Printf("%s: %d transactions into %q (format %s, %d rows skipped)\n",
			path, result.Accepted, result.Ledger, result.Format, len(result.Skipped))
		for _, warning := range result.Warnings {
			fmt.Printf("  warning: %s\n", warning)
		}
	}
}

func analyze(paths []string) {
	ingestUC, partitionUC, summaryUC := buildPipeline()
	ingestFiles(ingestUC, paths)

	for _, ledger := range partitionUC.Ledgers() {
		summary := summaryUC.Summarize(ledger)

		fmt.Printf("\n=== %s (%s) ===\n", ledger.Name, ledger.Kind)
		fmt.Printf("Total Income:   $%s\n", summary.TotalIncome.StringFixed(2))
		fmt.Printf("Total Expenses: $%s\n", summary.TotalExpenses.StringFixed(2))
		fmt.Printf("Profit/Loss:    $%s\n", summary.ProfitLoss.StringFixed(2))

		if summary.CurrentBalance != nil {
			fmt.Printf("Balance:        $%s\n", summary.CurrentBalance.StringFixed(2))
		}

		if len(summary.ByCategory) > 0 {
			fmt.Println("Expenses by category:")
			for category, amount := range summary.ByCategory {
				fmt.Printf("  %-20s $%s\n", category, amount.StringFixed(2))
			}
		}
	}
}

func exportCSV(paths []string) {
	ingestUC, partitionUC, _ := buildPipeline()
	ingestFiles(ingestUC, paths)

	out, err := os.Create(outputPath)
	if err != nil {
		fmt.Printf("Failed to create %s: %v\n", outputPath, err)
		os.Exit(1)
	}
	defer out.Close()

	writer := report.CSVWriter{IncludeLedger: includeLedger}
	if err := writer.Write(out, partitionUC.Ledgers()); err != nil {
		fmt.Printf("Export failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", outputPath)
}

func parseKind() (domain.LedgerKind, error) {
	return domain.ParseLedgerKind(kind)
}

func listLedgers() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/ledgers")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var ledgers []map[string]any
	if err := json.Unmarshal(body, &ledgers); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, l := range ledgers {
		fmt.Printf("%v (%v): %v transactions\n", l["name"], l["kind"], l["transactions"])
	}
}

// waitForServer probes /health with exponential backoff until the server
// responds or the retry budget runs out.
func waitForServer() {
	client := &http.Client{Timeout: timeout}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second

	err := backoff.Retry(func() error {
		resp, err := client.Get(baseURL + "/health")
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return nil
	}, b)

	if err != nil {
		fmt.Printf("Server did not become ready: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Server is ready")
}
