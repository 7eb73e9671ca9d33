package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/observability"
	"github.com/jonathan/keyword-ranker/internal/pipeline"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Run the full keyword ranking pipeline",
	Long: `Scores keyword candidates against a job posting, classifies knockout requirements, clusters semantic aliases, trims low-signal keywords, and writes the analysis artifacts.

Settings can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRankCmd,
}

var (
	rankConfigPath       string
	rankKeywords         string
	rankJob              string
	rankResume           string
	rankOut              string
	rankAPIKey           string
	rankClusterThreshold float64
	rankTop              int
	rankDropBuzzwords    bool
	rankExtractExp       bool
	rankSummary          bool
	rankVerbose          bool
)

func init() {
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (overrides built-in defaults)")

	rankCmd.Flags().StringVarP(&rankKeywords, "keywords", "k", "", "Path to keyword candidates JSON file (required)")
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to job posting text or HTML file (required)")
	rankCmd.Flags().StringVarP(&rankResume, "resume", "r", "", "Path to resume JSON file for injection-point analysis")
	rankCmd.Flags().StringVarP(&rankOut, "out", "o", "", "Output directory (default: <keywords dir>/../working)")
	rankCmd.Flags().Float64Var(&rankClusterThreshold, "cluster-threshold", 0, "Alias clustering distance threshold (default: from config)")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "Number of top skills to keep (default: from config)")
	rankCmd.Flags().BoolVar(&rankDropBuzzwords, "drop-buzzwords", false, "Drop buzzwords instead of penalizing them")
	rankCmd.Flags().BoolVar(&rankExtractExp, "extract-experience", false, "Mine years-of-experience requirements from the posting")
	rankCmd.Flags().BoolVar(&rankSummary, "summary", false, "Print a summary table after the run")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	rankCmd.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")

	if err := rankCmd.MarkFlagRequired("keywords"); err != nil {
		panic(fmt.Sprintf("failed to mark keywords flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRankCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Default()
	if rankConfigPath != "" {
		loaded, err := config.Load(rankConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if rankVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", rankConfigPath)
		}
	}

	compiled, err := cfg.Compile()
	if err != nil {
		return err
	}

	// API key handling: the run degrades to lexical-only analysis without one
	apiKey := rankAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	logger, err := observability.NewLogger(rankVerbose, false)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	_, err = pipeline.Run(ctx, compiled, pipeline.RunOptions{
		KeywordsPath:      rankKeywords,
		JobPath:           rankJob,
		ResumePath:        rankResume,
		OutputDir:         rankOut,
		APIKey:            apiKey,
		DropBuzzwords:     rankDropBuzzwords,
		ExtractExperience: rankExtractExp,
		ClusterThreshold:  rankClusterThreshold,
		TopN:              rankTop,
		Summary:           rankSummary,
		Verbose:           rankVerbose,
		Logger:            logger,
	})
	return err
}
