package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jonathan/keyword-ranker/internal/types"
)

// SummaryTable writes knockouts and top skills as a fixed-width table.
func SummaryTable(w io.Writer, knockouts, topSkills []types.Keyword) error {
	if len(knockouts) == 0 && len(topSkills) == 0 {
		_, err := fmt.Fprintln(w, "No keywords to summarize.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEYWORD\tSCORE\tCATEGORY\tTYPE\tCONFIDENCE\tALIASES")
	fmt.Fprintln(tw, "-------\t-----\t--------\t----\t----------\t-------")

	for _, kw := range knockouts {
		writeSummaryRow(tw, kw)
	}
	for _, kw := range topSkills {
		writeSummaryRow(tw, kw)
	}

	return tw.Flush()
}

func writeSummaryRow(w io.Writer, kw types.Keyword) {
	knockoutType := "-"
	confidence := "-"
	if kw.IsKnockout() {
		knockoutType = kw.KnockoutType
		confidence = fmt.Sprintf("%.2f", kw.Confidence)
	}

	aliases := "-"
	if len(kw.Aliases) > 0 {
		aliases = truncate(strings.Join(kw.Aliases, ", "), 40)
	}

	fmt.Fprintf(w, "%s\t%.3f\t%s\t%s\t%s\t%s\n",
		truncate(kw.Text, 45),
		kw.Score,
		kw.Category,
		knockoutType,
		confidence,
		aliases,
	)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
