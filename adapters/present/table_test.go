package present

import (
	"math/rand/v2"
	"strings"
	"testing"

	"gobayes/domain/bayes"
	"gobayes/domain/tables"
)

func fixtureSummary(t *testing.T) bayes.FitSummary {
	t.Helper()
	table, err := tables.NewLabeled(
		[2][2]int{{12, 38}, {9, 41}},
		[2]string{"treatment", "control"},
		[2]string{"event", "no_event"},
	)
	if err != nil {
		t.Fatalf("table construction failed: %v", err)
	}
	fit, err := bayes.Fit(table, nil)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	ds, err := fit.Sample(2000, rand.NewPCG(1, 1))
	if err != nil {
		t.Fatalf("sampling failed: %v", err)
	}
	summary, err := fit.Summarize(ds, 0.95, bayes.MethodHPD)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	return summary
}

func TestRenderText_ContainsAllTerms(t *testing.T) {
	out := RenderText(fixtureSummary(t))

	for _, term := range []string{
		bayes.TermP1, bayes.TermP2, bayes.TermDiff, bayes.TermRelRisk, bayes.TermOddsRatio,
	} {
		if !strings.Contains(out, term) {
			t.Errorf("output missing term %q:\n%s", term, out)
		}
	}
	if !strings.Contains(out, "95% hpd intervals") {
		t.Errorf("output missing interval description:\n%s", out)
	}
}

func TestRenderGroupsText_ContainsLabelsAndCounts(t *testing.T) {
	out := RenderGroupsText(fixtureSummary(t))

	for _, want := range []string{"treatment", "control", "12", "41"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHTML_ProducesTables(t *testing.T) {
	html := string(RenderHTML("pilot study", fixtureSummary(t)))

	for _, want := range []string{"<h1", "pilot study", "<table", "odds_ratio"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}
