// Package ingestion loads job postings from disk and normalizes them for analysis.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	blankRunRe   = regexp.MustCompile(`\n\n\n+`)
	headingRe    = regexp.MustCompile(`^#+\s*`)
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe     = regexp.MustCompile(`\*([^*]+)\*`)
)

// CleanText normalizes posting text while preserving line structure.
// Markdown markup (heading markers, bold, italic) is stripped so scoring
// sees plain prose, but headings and bullets keep their own lines because
// section detection scans line by line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")

	// Reduce runs of blank lines to max 2 consecutive
	result = blankRunRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine strips markup from a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")

	if trimmed == "" {
		return ""
	}

	// Heading markers drop, the heading text keeps its own line
	if strings.HasPrefix(trimmed, "#") {
		return collapse(stripEmphasis(headingRe.ReplaceAllString(trimmed, "")))
	}

	// Preserve bullet markers and their indentation
	if marker, ok := bulletMarker(trimmed); ok {
		indent := len(line) - len(trimmed)
		rest := collapse(stripEmphasis(trimmed[len(marker):]))
		return strings.Repeat(" ", indent) + marker + rest
	}

	// Regular lines: strip markup, collapse internal whitespace, keep indent
	indent := len(line) - len(trimmed)
	content := collapse(stripEmphasis(trimmed))
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// stripEmphasis removes bold and italic markers. Applied after the bullet
// marker is split off so a leading "* " never pairs with a later asterisk.
func stripEmphasis(s string) string {
	s = boldRe.ReplaceAllString(s, "$1")
	return italicRe.ReplaceAllString(s, "$1")
}

func collapse(s string) string {
	return multiSpaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// bulletMarker returns the list marker prefixing the line, if any
func bulletMarker(trimmed string) (string, bool) {
	for _, m := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(trimmed, m) {
			return m, true
		}
	}
	return "", false
}
