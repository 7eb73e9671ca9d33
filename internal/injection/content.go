// Package injection locates resume placements for ranked keywords.
package injection

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/keyword-ranker/internal/types"
)

// ContentUnit is one addressable slice of a resume: a highlight bullet, a
// summary sentence, or a prose field.
type ContentUnit struct {
	Text     string
	Location string
	Context  string
	Section  string
}

var sentenceBoundaryRe = regexp.MustCompile(`[.!?]+\s+`)

// ExtractContent decomposes a resume into matchable content units, each
// carrying its location path and a display context.
func (l *Locator) ExtractContent(resume *types.Resume) []ContentUnit {
	var content []ContentUnit
	add := func(text, location, context, section string) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		content = append(content, ContentUnit{
			Text:     text,
			Location: location,
			Context:  context,
			Section:  section,
		})
	}

	for i, sentence := range l.splitSentences(resume.Basics.Summary) {
		add(sentence, fmt.Sprintf("basics.summary (sentence %d)", i+1),
			"Executive Summary", "basics_summary")
	}

	for wi, work := range resume.Work {
		company := work.Company
		if company == "" {
			company = fmt.Sprintf("Company %d", wi+1)
		}
		position := work.Position
		if position == "" {
			position = "Position"
		}
		context := company + " - " + position

		for si, sentence := range l.splitSentences(work.Summary) {
			add(sentence, fmt.Sprintf("work[%d].summary (sentence %d)", wi, si+1),
				context, "work_summary")
		}
		for hi, highlight := range work.Highlights {
			add(highlight, fmt.Sprintf("work[%d].highlights[%d]", wi, hi),
				context, "highlights")
		}
	}

	for ei, edu := range resume.Education {
		institution := edu.Institution
		if institution == "" {
			institution = fmt.Sprintf("Institution %d", ei+1)
		}
		study := edu.StudyType
		if study == "" {
			study = "Degree"
		}
		add(edu.Summary, fmt.Sprintf("education[%d].summary", ei),
			institution+" - "+study, "education")
	}

	for si, skill := range resume.Skills {
		name := skill.Name
		if name == "" {
			name = fmt.Sprintf("Skill %d", si+1)
		}
		add(skill.Summary, fmt.Sprintf("skills[%d].summary", si), name, "skills")
	}

	return content
}

// splitSentences splits prose at sentence punctuation followed by a capital
// letter, dropping fragments at or under the minimum length.
func (l *Locator) splitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var parts []string
	prev := 0
	for _, loc := range sentenceBoundaryRe.FindAllStringIndex(text, -1) {
		// Only break when the next sentence opens with a capital
		if loc[1] >= len(text) || text[loc[1]] < 'A' || text[loc[1]] > 'Z' {
			continue
		}
		parts = append(parts, text[prev:loc[0]])
		prev = loc[1]
	}
	parts = append(parts, text[prev:])

	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) > l.cfg.Injection.MinSentenceLength {
			sentences = append(sentences, part)
		}
	}
	return sentences
}
