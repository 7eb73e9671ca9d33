// Package export writes the ranking artifacts: the analysis JSON, the
// keyword checklist markdown, and the optional summary table.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/schemas"
	"github.com/jonathan/keyword-ranker/internal/types"
)

// AnalysisFileName is the JSON artifact written into the output directory.
const AnalysisFileName = "keyword_analysis.json"

// NewAnalysis assembles the analysis artifact from the run outputs.
// canonicalCount is the number of keywords that survived clustering.
func NewAnalysis(knockouts, topSkills []types.Keyword, canonicalCount int, cfg *config.Compiled) *types.Analysis {
	if knockouts == nil {
		knockouts = []types.Keyword{}
	}
	if topSkills == nil {
		topSkills = []types.Keyword{}
	}

	return &types.Analysis{
		KnockoutRequirements: knockouts,
		SkillsRanked:         topSkills,
		Metadata: types.AnalysisMetadata{
			AnalysisID:             uuid.New().String(),
			GeneratedAt:            time.Now().UTC().Format(time.RFC3339),
			TotalKeywordsProcessed: canonicalCount,
			KnockoutCount:          len(knockouts),
			SkillsCount:            len(topSkills),
			EmbeddingModel:         cfg.Embedding.Model,
			TFIDFWeight:            cfg.Scoring.TFIDFWeight,
			SectionWeight:          cfg.Scoring.SectionWeight,
			RoleWeight:             cfg.Scoring.RoleWeight,
		},
	}
}

// WriteAnalysis writes the analysis artifact into dir and returns its path.
// The written bytes are checked against the artifact schema; a mismatch only
// warns, since the file is already on disk and usable.
func WriteAnalysis(analysis *types.Analysis, dir string, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal analysis: %w", err)
	}

	path := filepath.Join(dir, AnalysisFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write analysis file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/analysis.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			logger.Warn("analysis artifact failed schema validation",
				zap.String("path", path), zap.Error(err))
		}
	}

	return path, nil
}

// ResolveOutputDir returns the directory artifacts are written to, creating
// it if missing. An empty override defaults to <keywords dir>/../working.
func ResolveOutputDir(keywordsPath, override string) (string, error) {
	dir := override
	if dir == "" {
		dir = filepath.Join(filepath.Dir(keywordsPath), "..", "working")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return dir, nil
}
