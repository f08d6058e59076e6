package present

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gobayes/domain/bayes"
)

// RenderMarkdown builds a markdown analysis report from a fit summary
func RenderMarkdown(name string, s bayes.FitSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "Posterior summary from %d draws, %.0f%% %s intervals.\n\n",
		s.SampleCount, s.Level*100, s.Method)

	fmt.Fprintf(&b, "## Groups\n\n")
	fmt.Fprintf(&b, "| group | successes | trials | posterior | mean |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	for _, g := range s.Groups {
		fmt.Fprintf(&b, "| %s | %d | %d | Beta(%.1f, %.1f) | %.4f |\n",
			g.Label, g.Successes, g.Trials, g.Alpha, g.Beta, g.Interval.Estimate)
	}

	fmt.Fprintf(&b, "\n## Estimates\n\n")
	fmt.Fprintf(&b, "| term | estimate | lower | upper |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	for _, rec := range s.TidyRecords() {
		fmt.Fprintf(&b, "| %s | %.4f | %.4f | %.4f |\n", rec.Term, rec.Estimate, rec.Lower, rec.Upper)
	}

	fmt.Fprintf(&b, "\nP(p1 > p2) = %.3f\n", s.ProbDiffPositive)
	if s.ExcludedRelRisk > 0 || s.ExcludedOddsRatio > 0 {
		fmt.Fprintf(&b, "\nExcluded degenerate draws: rel_risk=%d, odds_ratio=%d.\n",
			s.ExcludedRelRisk, s.ExcludedOddsRatio)
	}
	return b.String()
}

// RenderHTML renders the markdown report to HTML
func RenderHTML(name string, s bayes.FitSummary) []byte {
	md := RenderMarkdown(name, s)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
