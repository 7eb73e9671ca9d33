package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadPosting reads a job posting from disk and returns its cleaned text.
// Files ending in .html or .htm are reduced to their main text first;
// everything else is treated as plain text.
func LoadPosting(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("job posting not found: %w", err)
		}
		return "", fmt.Errorf("failed to read job posting: %w", err)
	}

	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = ExtractJobText(string(data))
		if err != nil {
			return "", err
		}
		text = CleanText(text)
	default:
		text = CleanText(string(data))
	}

	if text == "" {
		return "", fmt.Errorf("job posting %s is empty", path)
	}

	return text, nil
}
