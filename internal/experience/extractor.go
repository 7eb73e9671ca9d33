// Package experience mines explicit years-of-experience requirements out of
// raw posting text so they reach the ranking even when the candidate list
// omits them.
package experience

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/types"
)

// Requirement is one experience demand pulled from a posting.
type Requirement struct {
	FullText string `json:"full_text"`
	Years    string `json:"years"`
	Context  string `json:"context"`
	Role     string `json:"role"`
}

// Extractor finds experience requirements in posting text using the
// configured pattern families.
type Extractor struct {
	cfg    *config.Compiled
	logger *zap.Logger
}

// NewExtractor returns an Extractor. A nil logger disables logging.
func NewExtractor(cfg *config.Compiled, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{cfg: cfg, logger: logger}
}

// Extract returns the deduplicated experience requirements found in jobText.
// Requirements are ordered longest first; when two overlap heavily the longer
// one wins because it usually carries the more specific phrasing.
func (e *Extractor) Extract(jobText string) []Requirement {
	var reqs []Requirement
	for _, re := range e.cfg.ExtractionRes {
		for _, loc := range re.FindAllStringSubmatchIndex(jobText, -1) {
			req, ok := e.requirementAt(jobText, loc)
			if ok && e.isValid(req) {
				reqs = append(reqs, req)
			}
		}
	}

	unique := e.dedupe(reqs)
	e.logger.Info("extracted experience requirements",
		zap.Int("matches", len(reqs)),
		zap.Int("unique", len(unique)))
	return unique
}

// requirementAt builds a Requirement from a submatch index vector. The years
// figure comes from the first all-digit capture group; for range patterns
// that is the lower bound.
func (e *Extractor) requirementAt(text string, loc []int) (Requirement, bool) {
	var years string
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			continue
		}
		if g := text[loc[i]:loc[i+1]]; isDigits(g) {
			years = g
			break
		}
	}
	if years == "" {
		return Requirement{}, false
	}

	start := loc[0] - e.cfg.Extraction.ContextBefore
	if start < 0 {
		start = 0
	}
	end := loc[1] + e.cfg.Extraction.ContextAfter
	if end > len(text) {
		end = len(text)
	}

	match := strings.TrimSpace(text[loc[0]:loc[1]])
	return Requirement{
		FullText: match,
		Years:    years + "+",
		Context:  strings.TrimSpace(text[start:end]),
		Role:     e.roleFor(match),
	}, true
}

func (e *Extractor) roleFor(match string) string {
	lower := strings.ToLower(match)
	for _, term := range e.cfg.Extraction.SeniorTerms {
		if strings.Contains(lower, term) {
			return types.RoleCore
		}
	}
	return types.RoleImportant
}

func (e *Extractor) isValid(req Requirement) bool {
	if len(req.FullText) < e.cfg.Extraction.MinLength {
		return false
	}
	lower := strings.ToLower(req.FullText)
	for _, term := range e.cfg.Extraction.RequirementTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func (e *Extractor) dedupe(reqs []Requirement) []Requirement {
	if len(reqs) == 0 {
		return nil
	}

	sorted := make([]Requirement, len(reqs))
	copy(sorted, reqs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].FullText) > len(sorted[j].FullText)
	})

	var unique []Requirement
	for _, req := range sorted {
		dup := false
		for _, kept := range unique {
			if wordOverlap(req.FullText, kept.FullText) > e.cfg.Extraction.OverlapThreshold {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, req)
		}
	}
	return unique
}

// Candidates converts requirements into scoring candidates, tagged so output
// provenance stays auditable.
func Candidates(reqs []Requirement) []types.Candidate {
	out := make([]types.Candidate, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, types.Candidate{
			Text:   req.FullText,
			Role:   req.Role,
			Source: types.SourceExperienceExtractor,
		})
	}
	return out
}

// Merge appends extracted requirements to the input candidates, skipping any
// whose text an input candidate already carries.
func Merge(input []types.Candidate, reqs []Requirement) []types.Candidate {
	seen := make(map[string]struct{}, len(input))
	for _, c := range input {
		seen[textKey(c.Text)] = struct{}{}
	}

	merged := input
	for _, cand := range Candidates(reqs) {
		key := textKey(cand.Text)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, cand)
	}
	return merged
}

func textKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// wordOverlap returns the Jaccard similarity of the two texts' word sets.
func wordOverlap(a, b string) float64 {
	aw := wordSet(a)
	bw := wordSet(b)
	if len(aw) == 0 && len(bw) == 0 {
		return 0
	}

	shared := 0
	for w := range aw {
		if _, ok := bw[w]; ok {
			shared++
		}
	}
	union := len(aw) + len(bw) - shared
	return float64(shared) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
