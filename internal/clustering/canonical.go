// Package clustering groups semantically similar keywords under canonical representatives.
package clustering

import (
	"sort"
	"strings"

	"github.com/jonathan/keyword-ranker/internal/types"
)

// fold picks the canonical keyword for a cluster and absorbs the rest as
// aliases. Experience-phrased keywords outrank the others, then higher
// scores win; equal priorities keep their input order.
func (c *Clusterer) fold(members []types.Keyword) types.Keyword {
	sort.SliceStable(members, func(i, j int) bool {
		ei := c.isExperienceKeyword(members[i].Text)
		ej := c.isExperienceKeyword(members[j].Text)
		if ei != ej {
			return ei
		}
		return members[i].Score > members[j].Score
	})

	canonical := members[0]
	aliases := make([]string, 0, len(members)-1)
	for _, kw := range members[1:] {
		if kw.Text != canonical.Text {
			aliases = append(aliases, kw.Text)
		}
	}
	canonical.Aliases = aliases

	return canonical
}

func (c *Clusterer) isExperienceKeyword(text string) bool {
	return c.cfg.ExperienceRe.MatchString(strings.ToLower(text))
}
