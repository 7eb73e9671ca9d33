// Package pipeline provides the high-level orchestration for a keyword
// ranking run, from candidate loading through artifact export.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/keyword-ranker/internal/clustering"
	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/embedding"
	"github.com/jonathan/keyword-ranker/internal/experience"
	"github.com/jonathan/keyword-ranker/internal/export"
	"github.com/jonathan/keyword-ranker/internal/ingestion"
	"github.com/jonathan/keyword-ranker/internal/injection"
	"github.com/jonathan/keyword-ranker/internal/knockout"
	"github.com/jonathan/keyword-ranker/internal/loaders"
	"github.com/jonathan/keyword-ranker/internal/observability"
	"github.com/jonathan/keyword-ranker/internal/scoring"
	"github.com/jonathan/keyword-ranker/internal/trimming"
	"github.com/jonathan/keyword-ranker/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step       string `json:"step"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	AnalysisID string `json:"analysis_id,omitempty"`
	Content    any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	KeywordsPath      string
	JobPath           string
	ResumePath        string
	OutputDir         string
	APIKey            string
	DropBuzzwords     bool
	ExtractExperience bool
	ClusterThreshold  float64
	TopN              int
	Summary           bool
	Verbose           bool

	// Embedder overrides the default Gemini client. Used by tests and
	// alternate providers; the caller keeps ownership and closes it.
	Embedder embedding.Embedder

	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// Result holds the run outputs and where the artifacts were written
type Result struct {
	Analysis         *types.Analysis
	Knockouts        []types.Keyword
	TopSkills        []types.Keyword
	DroppedBuzzwords []string
	TrimThreshold    float64
	AnalysisPath     string
	ChecklistPath    string
}

// Step names attached to progress events
const (
	StepCandidates = "keyword_candidates"
	StepJobPosting = "job_posting"
	StepExperience = "experience_requirements"
	StepScoring    = "scored_keywords"
	StepKnockouts  = "knockout_classification"
	StepClustering = "alias_clusters"
	StepTrimming   = "score_trim"
	StepInjection  = "injection_points"
	StepArtifacts  = "artifacts"
)

// Progress event categories
const (
	CategoryIngestion = "ingestion"
	CategoryScoring   = "scoring"
	CategoryRanking   = "ranking"
	CategoryExport    = "export"
)

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// splitByCategory separates knockout requirements from skills, preserving
// order within each group
func splitByCategory(keywords []types.Keyword) (knockouts, skills []types.Keyword) {
	for _, kw := range keywords {
		if kw.Category == types.CategoryKnockout {
			knockouts = append(knockouts, kw)
		} else {
			skills = append(skills, kw)
		}
	}
	return knockouts, skills
}

// Run executes the full ranking pipeline and writes the analysis artifacts
func Run(ctx context.Context, cfg *config.Compiled, opts RunOptions) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	fmt.Printf("Step 1/8: Loading keyword candidates from %s...\n", opts.KeywordsPath)
	candidates, err := loaders.LoadKeywords(opts.KeywordsPath)
	if err != nil {
		return nil, fmt.Errorf("loading keywords failed: %w", err)
	}
	emitProgress(&opts, StepCandidates, CategoryIngestion,
		fmt.Sprintf("Loaded %d keyword candidates", len(candidates)), nil)

	fmt.Printf("Step 2/8: Loading job posting from %s...\n", opts.JobPath)
	jobText, err := ingestion.LoadPosting(opts.JobPath)
	if err != nil {
		return nil, fmt.Errorf("loading job posting failed: %w", err)
	}
	stats := ingestion.ComputeStats(jobText)
	emitProgress(&opts, StepJobPosting, CategoryIngestion,
		fmt.Sprintf("Cleaned job posting (%d chars, %d words, %d lines)",
			stats.Chars, stats.Words, stats.Lines), stats)

	if opts.ExtractExperience {
		fmt.Printf("Step 2a/8: Extracting experience requirements...\n")
		reqs := experience.NewExtractor(cfg, logger).Extract(jobText)
		if len(reqs) > 0 {
			before := len(candidates)
			candidates = experience.Merge(candidates, reqs)
			fmt.Printf("Found %d experience requirements (%d new)\n", len(reqs), len(candidates)-before)
		}
		emitProgress(&opts, StepExperience, CategoryIngestion,
			fmt.Sprintf("Extracted %d experience requirements", len(reqs)), reqs)
	}

	fmt.Printf("Step 3/8: Scoring %d keywords...\n", len(candidates))
	ranker := scoring.NewRanker(cfg, logger)
	doc := ranker.Prepare(jobText)
	scored, dropped, err := ranker.ScoreAll(ctx, doc, candidates, opts.DropBuzzwords)
	if err != nil {
		return nil, fmt.Errorf("scoring keywords failed: %w", err)
	}
	if len(dropped) > 0 {
		fmt.Printf("Dropped %d buzzwords: %s\n", len(dropped), strings.Join(dropped, ", "))
	}
	if opts.Verbose {
		printer.PrintScoredKeywords(scored)
	}
	emitProgress(&opts, StepScoring, CategoryScoring,
		fmt.Sprintf("Scored %d keywords", len(scored)), nil)

	fmt.Printf("Step 4/8: Classifying knockout requirements...\n")
	classifier := knockout.NewClassifier(cfg, logger)
	classified := classifier.Classify(scored)
	classified = classifier.EnforceLimit(classified)
	classified = classifier.ApplyDegreeGuardrail(classified)

	knockouts, skills := splitByCategory(classified)
	if opts.Verbose {
		printer.PrintKnockouts(knockouts)
	}
	emitProgress(&opts, StepKnockouts, CategoryScoring,
		fmt.Sprintf("Found %d knockout requirements", len(knockouts)), nil)

	// Semantic stages need an embedding client. A missing key or failed
	// client setup skips them rather than failing the run.
	embedder := opts.Embedder
	if embedder == nil {
		if opts.APIKey == "" {
			fmt.Printf("Warning: no API key provided, semantic analysis is skipped\n")
		} else {
			gemini, err := embedding.NewGeminiEmbedder(ctx, cfg.Embedding, opts.APIKey)
			if err != nil {
				fmt.Printf("Warning: failed to initialize embedding client: %v\n", err)
				fmt.Printf("Continuing without semantic analysis...\n")
			} else {
				embedder = gemini
				defer gemini.Close()
			}
		}
	}

	threshold := opts.ClusterThreshold
	if threshold <= 0 {
		threshold = cfg.Clustering.DistanceThreshold
	}

	clustered := skills
	if embedder != nil {
		fmt.Printf("Step 5/8: Clustering skill aliases (threshold %.2f)...\n", threshold)
		clusterer := clustering.NewClusterer(cfg, embedder, logger)
		clustered = clusterer.ClusterAliases(ctx, skills, threshold)
		if opts.Verbose {
			printer.PrintClusters(clustered)
		}
	} else {
		fmt.Printf("Step 5/8: Skipping alias clustering (no embedding client).\n")
	}
	emitProgress(&opts, StepClustering, CategoryRanking,
		fmt.Sprintf("Reduced %d skills to %d canonical keywords", len(skills), len(clustered)), nil)

	fmt.Printf("Step 6/8: Trimming low-signal keywords...\n")
	trimmer := trimming.NewTrimmer(cfg, logger)
	kept, trimThreshold := trimmer.Trim(clustered)
	if opts.Verbose {
		printer.PrintTrimSummary(len(clustered), len(kept), trimThreshold)
	}
	emitProgress(&opts, StepTrimming, CategoryRanking,
		fmt.Sprintf("Kept %d of %d canonical skills", len(kept), len(clustered)), nil)

	topN := opts.TopN
	if topN <= 0 {
		topN = cfg.Output.MaxTopKeywords
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Score > kept[j].Score })
	top := kept
	if len(top) > topN {
		top = top[:topN]
	}
	knockout.SortKnockouts(knockouts)

	if opts.ResumePath == "" {
		fmt.Printf("Step 7/8: No resume provided, skipping injection points.\n")
	} else if embedder == nil {
		fmt.Printf("Step 7/8: Skipping injection points (no embedding client).\n")
	} else {
		fmt.Printf("Step 7/8: Locating resume injection points...\n")
		resume, err := loaders.LoadResume(opts.ResumePath)
		if err != nil {
			fmt.Printf("Warning: failed to load resume: %v\n", err)
			fmt.Printf("Continuing without injection analysis...\n")
		} else {
			locator := injection.NewLocator(cfg, embedder, logger)
			combined := make([]types.Keyword, 0, len(knockouts)+len(top))
			combined = append(combined, knockouts...)
			combined = append(combined, top...)
			annotated := locator.FindInjectionPoints(ctx, resume, combined)
			knockouts, top = splitByCategory(annotated)
			if opts.Verbose {
				printer.PrintInjectionPoints(annotated)
			}
		}
	}
	emitProgress(&opts, StepInjection, CategoryRanking,
		fmt.Sprintf("Annotated %d keywords", len(knockouts)+len(top)), nil)

	fmt.Printf("Step 8/8: Writing analysis artifacts...\n")
	outDir, err := export.ResolveOutputDir(opts.KeywordsPath, opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory failed: %w", err)
	}

	analysis := export.NewAnalysis(knockouts, top, len(knockouts)+len(clustered), cfg)
	analysisPath, err := export.WriteAnalysis(analysis, outDir, logger)
	if err != nil {
		return nil, fmt.Errorf("writing analysis failed: %w", err)
	}
	checklistPath, err := export.WriteChecklist(knockouts, top, outDir)
	if err != nil {
		return nil, fmt.Errorf("writing checklist failed: %w", err)
	}
	emitProgress(&opts, StepArtifacts, CategoryExport,
		fmt.Sprintf("Wrote %s and %s", analysisPath, checklistPath), analysis.Metadata)

	if opts.Summary {
		fmt.Printf("\n")
		if err := export.SummaryTable(os.Stdout, knockouts, top); err != nil {
			return nil, fmt.Errorf("printing summary failed: %w", err)
		}
	}

	fmt.Printf("Done! Analysis written to %s\n", outDir)

	return &Result{
		Analysis:         analysis,
		Knockouts:        knockouts,
		TopSkills:        top,
		DroppedBuzzwords: dropped,
		TrimThreshold:    trimThreshold,
		AnalysisPath:     analysisPath,
		ChecklistPath:    checklistPath,
	}, nil
}
