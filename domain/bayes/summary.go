package bayes

import (
	"gobayes/domain/core"
)

// Term names used in tidy output
const (
	TermP1        = "p_group1"
	TermP2        = "p_group2"
	TermDiff      = "prop_diff"
	TermRelRisk   = "rel_risk"
	TermOddsRatio = "odds_ratio"
)

// TidyRecord is one row of tidy output: a named estimate with bounds.
// Presentation and visualization layers consume these without reaching
// into fit internals.
type TidyRecord struct {
	Term     string  `json:"term"`
	Estimate float64 `json:"estimate"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
}

// GroupSummary reports one group's observed counts, posterior
// parameters and credible interval.
type GroupSummary struct {
	Label     string         `json:"label"`
	Successes int            `json:"successes"`
	Trials    int            `json:"trials"`
	Alpha     float64        `json:"alpha"`
	Beta      float64        `json:"beta"`
	Interval  IntervalResult `json:"interval"`
}

// FitSummary is the complete presentation-ready summary of a fit:
// per-group posteriors plus intervals for every derived effect measure.
type FitSummary struct {
	Groups     [2]GroupSummary `json:"groups"`
	Difference IntervalResult  `json:"difference"`
	RelRisk    IntervalResult  `json:"rel_risk"`
	OddsRatio  IntervalResult  `json:"odds_ratio"`

	ProbDiffPositive  float64 `json:"prob_diff_positive"`
	SampleCount       int     `json:"sample_count"`
	ExcludedRelRisk   int     `json:"excluded_rel_risk"`
	ExcludedOddsRatio int     `json:"excluded_odds_ratio"`

	Level       float64        `json:"level"`
	Method      IntervalMethod `json:"method"`
	Fingerprint core.Hash      `json:"fingerprint"`
}

// Summarize builds a FitSummary from a fit and its posterior samples.
// Intervals for the groups and all derived quantities use the requested
// method and level on the borrowed sample sequences; the fit itself is
// never mutated.
func (f BetaBinomialFit) Summarize(ds *DerivedSamples, level float64, method IntervalMethod) (FitSummary, error) {
	level = clampLevel(level)
	if method != MethodHPD {
		method = MethodQuantile
	}

	groupSamples := [2][]float64{ds.P1, ds.P2}
	var summary FitSummary
	for i := 0; i < 2; i++ {
		iv, err := Interval(groupSamples[i], level, method)
		if err != nil {
			return FitSummary{}, err
		}
		summary.Groups[i] = GroupSummary{
			Label:     f.Groups[i].Label,
			Successes: f.Groups[i].Successes,
			Trials:    f.Groups[i].Trials,
			Alpha:     f.Groups[i].Alpha,
			Beta:      f.Groups[i].Beta,
			Interval:  iv,
		}
	}

	var err error
	if summary.Difference, err = Interval(ds.Diff, level, method); err != nil {
		return FitSummary{}, err
	}
	if summary.RelRisk, err = Interval(ds.RelRisk, level, method); err != nil {
		return FitSummary{}, err
	}
	if summary.OddsRatio, err = Interval(ds.OddsRatio, level, method); err != nil {
		return FitSummary{}, err
	}

	summary.ProbDiffPositive = ds.Summary.ProbDiffPositive
	summary.SampleCount = len(ds.Diff)
	summary.ExcludedRelRisk = ds.ExcludedRelRisk
	summary.ExcludedOddsRatio = ds.ExcludedOddsRatio
	summary.Level = level
	summary.Method = method
	summary.Fingerprint = f.Fingerprint()
	return summary, nil
}

// TidyRecords flattens the summary into ordered (term, estimate,
// lower, upper) rows: group probabilities first, then the derived
// effect measures.
func (s FitSummary) TidyRecords() []TidyRecord {
	records := make([]TidyRecord, 0, 5)
	terms := []string{TermP1, TermP2}
	for i, g := range s.Groups {
		records = append(records, TidyRecord{
			Term:     terms[i],
			Estimate: g.Interval.Estimate,
			Lower:    g.Interval.Lower,
			Upper:    g.Interval.Upper,
		})
	}
	for _, row := range []struct {
		term string
		iv   IntervalResult
	}{
		{TermDiff, s.Difference},
		{TermRelRisk, s.RelRisk},
		{TermOddsRatio, s.OddsRatio},
	} {
		records = append(records, TidyRecord{
			Term:     row.term,
			Estimate: row.iv.Estimate,
			Lower:    row.iv.Lower,
			Upper:    row.iv.Upper,
		})
	}
	return records
}
