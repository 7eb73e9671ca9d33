package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/keyword-ranker/internal/types"
)

// LoadResume reads a JSON Resume file for injection-point analysis.
func LoadResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	if err := validateAgainstSchema("schemas/resume.schema.json", data); err != nil {
		return nil, fmt.Errorf("resume file %s: %w", path, err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	return &resume, nil
}
