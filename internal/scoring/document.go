// Package scoring computes composite relevance scores for keyword candidates.
package scoring

import (
	"strings"
)

// Document is a job posting prepared for repeated keyword scoring. Line
// sections and the title zone are resolved once so each keyword lookup is
// a containment scan.
type Document struct {
	Text string

	tokens []string
	head   string // title zone: leading words of the posting, lowercased
	title  string // extracted job title, lowercased
	lines  []docLine
}

type docLine struct {
	lower string
	boost float64
}

// Prepare tokenizes the posting, resolves each line's section boost, and
// extracts the job title.
func (r *Ranker) Prepare(jobText string) *Document {
	doc := &Document{
		Text:   jobText,
		tokens: Tokenize(jobText),
	}

	words := strings.Fields(jobText)
	n := r.cfg.Scoring.TitleScanWords
	if len(words) < n {
		n = len(words)
	}
	doc.head = strings.ToLower(strings.Join(words[:n], " "))

	// Line scan carries the current section forward until the next
	// heading pattern switches it
	current := r.cfg.Sections.DefaultSection
	for _, line := range strings.Split(jobText, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))
		if lower == "" {
			continue
		}
		for _, rule := range r.cfg.SectionRules {
			if rule.Re.MatchString(lower) {
				current = rule.Name
				break
			}
		}
		doc.lines = append(doc.lines, docLine{lower: lower, boost: r.cfg.Sections.BoostFor(current)})
	}

	doc.title = r.extractJobTitle(jobText)

	return doc
}

// Title returns the extracted job title, lowercased. Empty when the
// posting has no usable header lines.
func (d *Document) Title() string {
	return d.title
}

// extractJobTitle searches the posting's first lines for a role title.
// Falls back to the first non-empty line when no pattern matches.
func (r *Ranker) extractJobTitle(jobText string) string {
	lines := strings.Split(jobText, "\n")
	if len(lines) > r.cfg.Scoring.TitleScanLines {
		lines = lines[:r.cfg.Scoring.TitleScanLines]
	}

	for _, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		if lower == "" {
			continue
		}
		for _, re := range r.cfg.TitleRes {
			if m := re.FindString(lower); m != "" {
				return m
			}
		}
	}

	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			return strings.ToLower(s)
		}
	}

	return ""
}

// sectionBoost returns the strongest section boost earned by a keyword.
// Keywords about tenure always rate at least the experience floor.
func (r *Ranker) sectionBoost(doc *Document, keyword string) float64 {
	kw := strings.ToLower(keyword)

	boost := 0.0
	if strings.Contains(doc.head, kw) {
		boost = r.cfg.Sections.BoostFor("title")
	}

	for _, line := range doc.lines {
		if line.boost > boost && strings.Contains(line.lower, kw) {
			boost = line.boost
		}
	}

	if strings.Contains(kw, "years") || strings.Contains(kw, "experience") {
		if r.cfg.Scoring.ExperienceBoost > boost {
			boost = r.cfg.Scoring.ExperienceBoost
		}
	}

	return boost
}

// titleMatch reports whether a keyword and the job title contain each other.
func titleMatch(title, keyword string) bool {
	if title == "" {
		return false
	}
	kw := strings.ToLower(keyword)
	return strings.Contains(title, kw) || strings.Contains(kw, title)
}
