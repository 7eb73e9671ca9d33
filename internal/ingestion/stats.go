package ingestion

import "strings"

// Stats summarizes an ingested posting for diagnostic logging.
type Stats struct {
	Chars int `json:"chars"`
	Words int `json:"words"`
	Lines int `json:"lines"`
}

// ComputeStats counts characters, words, and non-blank lines in cleaned text.
func ComputeStats(text string) Stats {
	stats := Stats{Chars: len(text)}
	if text == "" {
		return stats
	}
	stats.Words = len(strings.Fields(text))
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			stats.Lines++
		}
	}
	return stats
}
