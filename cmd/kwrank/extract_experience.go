package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/experience"
	"github.com/jonathan/keyword-ranker/internal/ingestion"
	"github.com/jonathan/keyword-ranker/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract-experience",
	Short: "Mine years-of-experience requirements from a job posting",
	Long:  "Scans a job posting for explicit years-of-experience requirements and prints them, optionally as JSON for piping into other tools.",
	RunE:  runExtractExperience,
}

var (
	extractJob        string
	extractConfigPath string
	extractJSON       bool
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractJob, "job", "j", "", "Path to job posting text or HTML file (required)")
	extractCmd.Flags().StringVar(&extractConfigPath, "config", "", "Path to config.json file (overrides built-in defaults)")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print requirements as JSON")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := extractCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtractExperience(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if extractConfigPath != "" {
		loaded, err := config.Load(extractConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	compiled, err := cfg.Compile()
	if err != nil {
		return err
	}

	jobText, err := ingestion.LoadPosting(extractJob)
	if err != nil {
		return fmt.Errorf("failed to load job posting: %w", err)
	}

	// Logs share stdout with the printed results, so JSON mode silences
	// them to keep the output parseable.
	logger := zap.NewNop()
	if !extractJSON {
		built, err := observability.NewLogger(extractVerbose, false)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer built.Sync()
		logger = built
	}

	reqs := experience.NewExtractor(compiled, logger).Extract(jobText)

	if extractJSON {
		if reqs == nil {
			reqs = []experience.Requirement{}
		}
		data, err := json.MarshalIndent(reqs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal requirements: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if len(reqs) == 0 {
		fmt.Fprintln(os.Stdout, "No experience requirements found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "Found %d experience requirements:\n", len(reqs))
	for i, req := range reqs {
		fmt.Fprintf(os.Stdout, "%d. %s (years: %s, role: %s)\n", i+1, req.FullText, req.Years, req.Role)
	}
	return nil
}
