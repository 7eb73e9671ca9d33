// Package loaders reads and validates pipeline input files.
package loaders

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/keyword-ranker/internal/schemas"
	"github.com/jonathan/keyword-ranker/internal/types"
)

// roleAliases maps legacy role names onto the canonical set.
var roleAliases = map[string]string{
	"industry_experience": types.RoleImportant,
	"functional_skills":   types.RoleCore,
}

// rawCandidate tolerates both "text" and the legacy "kw" key.
type rawCandidate struct {
	Text   string `json:"text"`
	KW     string `json:"kw"`
	Role   string `json:"role"`
	Source string `json:"source"`
}

// LoadKeywords reads candidate keywords from a JSON file. Both a bare array
// and an object with a "keywords" field are accepted. Roles are normalized
// before validation, so legacy aliases load cleanly.
func LoadKeywords(path string) ([]types.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file %s: %w", path, err)
	}

	if err := validateAgainstSchema("schemas/keywords.schema.json", data); err != nil {
		return nil, fmt.Errorf("keywords file %s: %w", path, err)
	}

	rawList, err := decodeCandidates(data)
	if err != nil {
		return nil, fmt.Errorf("keywords file %s: %w", path, err)
	}
	if len(rawList) == 0 {
		return nil, fmt.Errorf("keywords file %s contains no keywords", path)
	}

	validate := validator.New()
	candidates := make([]types.Candidate, 0, len(rawList))
	for i, raw := range rawList {
		text := strings.TrimSpace(raw.Text)
		if text == "" {
			text = strings.TrimSpace(raw.KW)
		}

		role := strings.ToLower(strings.TrimSpace(raw.Role))
		if canonical, ok := roleAliases[role]; ok {
			role = canonical
		}

		candidate := types.Candidate{
			Text:   text,
			Role:   role,
			Source: raw.Source,
		}
		if err := validate.Struct(&candidate); err != nil {
			return nil, fmt.Errorf("keywords file %s: entry %d (%q): %w", path, i, text, err)
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// decodeCandidates handles the two accepted document shapes.
func decodeCandidates(data []byte) ([]rawCandidate, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	if trimmed[0] == '[' {
		var list []rawCandidate
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to parse keywords JSON: %w", err)
		}
		return list, nil
	}

	var wrapper struct {
		Keywords []rawCandidate `json:"keywords"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to parse keywords JSON: %w", err)
	}
	if wrapper.Keywords == nil {
		return nil, fmt.Errorf("expected a keyword array or an object with a \"keywords\" field")
	}
	return wrapper.Keywords, nil
}

// validateAgainstSchema checks data against a repo schema when one is
// resolvable. Schema load problems only warn; the struct validator is the
// enforcement of record.
func validateAgainstSchema(schemaRelPath string, data []byte) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return nil
	}

	err := schemas.ValidateBytes(schemaPath, data)
	if err == nil {
		return nil
	}

	var loadErr *schemas.SchemaLoadError
	if errors.As(err, &loadErr) {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not load schema %s: %v\n", schemaRelPath, err)
		return nil
	}
	return err
}
