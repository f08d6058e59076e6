package present

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"gobayes/domain/bayes"
)

// RenderText formats a fit summary as an aligned plain-text table.
// Purely a consumer of the summary; no statistics are computed here.
func RenderText(s bayes.FitSummary) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "term\testimate\tlower\tupper\n")
	for _, rec := range s.TidyRecords() {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\n", rec.Term, rec.Estimate, rec.Lower, rec.Upper)
	}
	w.Flush()

	fmt.Fprintf(&b, "\n%.0f%% %s intervals, %d draws", s.Level*100, s.Method, s.SampleCount)
	if s.ExcludedRelRisk > 0 || s.ExcludedOddsRatio > 0 {
		fmt.Fprintf(&b, " (excluded degenerate draws: rel_risk=%d odds_ratio=%d)",
			s.ExcludedRelRisk, s.ExcludedOddsRatio)
	}
	fmt.Fprintf(&b, "\nP(p1 > p2) = %.3f\n", s.ProbDiffPositive)
	return b.String()
}

// RenderGroupsText formats the per-group observed counts and posteriors
func RenderGroupsText(s bayes.FitSummary) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "group\tsuccesses\ttrials\tposterior\tmean\n")
	for _, g := range s.Groups {
		fmt.Fprintf(w, "%s\t%d\t%d\tBeta(%.1f, %.1f)\t%.4f\n",
			g.Label, g.Successes, g.Trials, g.Alpha, g.Beta, g.Interval.Estimate)
	}
	w.Flush()
	return b.String()
}
