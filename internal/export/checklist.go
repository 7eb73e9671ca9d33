package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/keyword-ranker/internal/types"
)

// ChecklistFileName is the markdown checklist written into the output directory.
const ChecklistFileName = "keyword-checklist.md"

var highlightIndexRe = regexp.MustCompile(`highlights\[(\d+)\]`)

// RenderChecklist builds the keyword checklist markdown: knockouts first,
// then top skills with their injection suggestions nested underneath.
func RenderChecklist(knockouts, topSkills []types.Keyword) string {
	lines := []string{
		"# Keyword Injection Checklist",
		"",
		"Use this checklist during resume optimization to ensure critical keywords are included.",
		"",
		"## 🎯 Knockout Requirements",
		"*These are critical qualifications that must be addressed in your resume.*",
		"",
	}

	if len(knockouts) == 0 {
		lines = append(lines, "- No knockout requirements identified")
	} else {
		for _, kw := range knockouts {
			lines = append(lines, knockoutLine(kw))
		}
	}

	lines = append(lines,
		"",
		fmt.Sprintf("## 🏆 Top %d Skills", len(topSkills)),
		"*These are the highest-priority skills to emphasize in your resume.*",
		"",
	)

	for _, kw := range topSkills {
		lines = append(lines, skillLine(kw))
		if len(kw.InjectionPoints) == 0 {
			continue
		}
		lines = append(lines, "")
		for _, pt := range kw.InjectionPoints {
			lines = append(lines, injectionLine(pt))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"",
		"## 📝 Usage Notes",
		"",
		"- **Knockout Requirements**: Ensure these appear prominently in your experience section",
		"- **Skills**: Work these naturally into job descriptions and achievements",
		"- **Aliases**: Use variety - don't repeat the same keyword phrase",
		"- **Buzzwords**: Use sparingly and in context, not as standalone terms",
		"",
	)

	if hasInjectionPoints(knockouts) || hasInjectionPoints(topSkills) {
		lines = append(lines,
			"---",
			"",
			"### 🎯 Injection Point Legend",
			"- ✅ **Already contains keyword**: Content already includes this keyword",
			"- 🟠 **May need short phrase**: Content is related, consider adding keyword phrase",
			"- 💡 **Suggest adding new bullet**: Create new bullet point featuring this keyword",
			"",
			"*Numbers in parentheses show semantic similarity scores (0.0-1.0)*",
			"",
		)
	}

	lines = append(lines,
		"---",
		"*Generated by keyword analysis pipeline*",
	)

	return strings.Join(lines, "\n") + "\n"
}

// WriteChecklist renders the checklist into dir and returns its path.
func WriteChecklist(knockouts, topSkills []types.Keyword, dir string) (string, error) {
	path := filepath.Join(dir, ChecklistFileName)
	content := RenderChecklist(knockouts, topSkills)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write checklist file: %w", err)
	}
	return path, nil
}

func knockoutLine(kw types.Keyword) string {
	line := fmt.Sprintf("- [ ] **%s** (score: %s)", kw.Text, formatScore(kw.Score))
	if len(kw.Aliases) > 0 {
		line += fmt.Sprintf(" (aliases: %s)", strings.Join(kw.Aliases, ", "))
	}
	if kw.KnockoutType == types.KnockoutPreferred {
		line += " (preferred)"
	}
	return line
}

func skillLine(kw types.Keyword) string {
	line := fmt.Sprintf("- [ ] **%s** (score: %s)", kw.Text, formatScore(kw.Score))
	if len(kw.Aliases) > 0 {
		line += fmt.Sprintf(" (aliases: %s)", strings.Join(kw.Aliases, ", "))
	}
	if kw.IsBuzzword {
		line += " ⚠️ *buzzword*"
	}
	return line
}

func injectionLine(pt types.InjectionPoint) string {
	sim := ""
	if pt.Similarity != 0 {
		sim = fmt.Sprintf("(%s) ", formatScore(pt.Similarity))
	}
	return fmt.Sprintf("  [ ] %s%s \"%s\" %s", sim, pt.Icon, pt.Text, employerRef(pt.Context, pt.Location))
}

// employerRef compresses an injection point's context and location path into
// a findable reference like "[Acme, bullet 2]" or "[Acme, sentence 1]".
func employerRef(context, location string) string {
	employer := context
	if i := strings.Index(context, " - "); i >= 0 {
		employer = context[:i]
	}

	info := ""
	switch {
	case strings.Contains(location, "sentence"):
		if i := strings.Index(location, "("); i >= 0 {
			info = strings.TrimSuffix(location[i+1:], ")")
		}
	case strings.Contains(location, "highlights"):
		if m := highlightIndexRe.FindStringSubmatch(location); m != nil {
			n, _ := strconv.Atoi(m[1])
			info = fmt.Sprintf("bullet %d", n+1)
		}
	}

	if info == "" {
		return fmt.Sprintf("[%s]", employer)
	}
	return fmt.Sprintf("[%s, %s]", employer, info)
}

func hasInjectionPoints(keywords []types.Keyword) bool {
	for _, kw := range keywords {
		if len(kw.InjectionPoints) > 0 {
			return true
		}
	}
	return false
}

// formatScore prints a score the way the JSON artifact carries it: shortest
// decimal form, keeping one fractional digit for whole numbers.
func formatScore(x float64) string {
	if x == math.Trunc(x) {
		return strconv.FormatFloat(x, 'f', 1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
