// Package observability provides logging and formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/keyword-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoredKeywords outputs the top scored keywords with their component breakdown.
func (p *Printer) PrintScoredKeywords(keywords []types.Keyword) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords scored: %d\n\n", len(keywords)))

	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := keywords[i]
		text := kw.Text
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, text))
		sb.WriteString(fmt.Sprintf("    Score: %.3f (tfidf %.2f, section %.2f, role %.2f)",
			kw.Score, kw.TFIDF, kw.Section, kw.Role))
		if kw.IsBuzzword {
			sb.WriteString(" ⚠ buzzword")
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more keywords", len(keywords)-maxItemsToShow))
	}

	p.printBox("SCORED KEYWORDS", sb.String())
}

// PrintKnockouts outputs detected knockout requirements with confidence and type.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintKnockouts(knockouts []types.Keyword) {
	if len(knockouts) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO KNOCKOUT REQUIREMENTS DETECTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d knockout requirements:\n\n", len(knockouts)))

	for i, kw := range knockouts {
		text := kw.Text
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", text))
		sb.WriteString(fmt.Sprintf("  %s, confidence %.2f (%s)", kw.KnockoutType, kw.Confidence, kw.Method))
		if kw.YearsMatch != "" {
			sb.WriteString(fmt.Sprintf(" [%s]", kw.YearsMatch))
		}
		sb.WriteString("\n")
		if i < len(knockouts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("KNOCKOUT REQUIREMENTS", sb.String())
}

// PrintClusters outputs canonical keywords that absorbed aliases during clustering.
func (p *Printer) PrintClusters(skills []types.Keyword) {
	clustered := make([]types.Keyword, 0, len(skills))
	for _, kw := range skills {
		if len(kw.Aliases) > 0 {
			clustered = append(clustered, kw)
		}
	}
	if len(clustered) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Merged %d clusters:\n\n", len(clustered)))

	count := min(len(clustered), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := clustered[i]
		text := kw.Text
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", text))
		aliases := strings.Join(kw.Aliases, ", ")
		if len(aliases) > 40 {
			aliases = aliases[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  [%s]\n", aliases))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(clustered) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more clusters", len(clustered)-maxItemsToShow))
	}

	p.printBox("KEYWORD CLUSTERS", sb.String())
}

// PrintInjectionPoints outputs resume injection-point matches for the top keywords.
func (p *Printer) PrintInjectionPoints(keywords []types.Keyword) {
	withPoints := make([]types.Keyword, 0, len(keywords))
	for _, kw := range keywords {
		if len(kw.InjectionPoints) > 0 {
			withPoints = append(withPoints, kw)
		}
	}
	if len(withPoints) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(withPoints), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := withPoints[i]
		text := kw.Text
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", text))
		for _, pt := range kw.InjectionPoints {
			loc := pt.Location
			if len(loc) > 40 {
				loc = loc[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s %.3f %s\n", pt.Icon, pt.Similarity, loc))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(withPoints) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more keywords", len(withPoints)-maxItemsToShow))
	}

	p.printBox("RESUME INJECTION POINTS", sb.String())
}

// PrintTrimSummary outputs the effect of the median trim pass.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTrimSummary(before, after int, threshold float64) {
	if before == after {
		return
	}
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	line := fmt.Sprintf("TRIM: %d → %d keywords (threshold %.3f)", before, after, threshold)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}
