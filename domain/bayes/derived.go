package bayes

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"gobayes/domain/core"
)

// DefaultSampleCount is the number of posterior draws used when the
// caller does not specify one.
const DefaultSampleCount = 10000

// DerivedSamples holds paired posterior draws for the two group
// probabilities and the derived effect measures computed from them.
// Ratio sequences can be shorter than the draw count: draws that land
// exactly on a probability boundary (0 or 1) produce non-finite ratios
// and are excluded, with the exclusion counts reported alongside.
type DerivedSamples struct {
	P1   []float64 `json:"-"`
	P2   []float64 `json:"-"`
	Diff []float64 `json:"-"`

	RelRisk   []float64 `json:"-"`
	OddsRatio []float64 `json:"-"`

	ExcludedRelRisk   int `json:"excluded_rel_risk"`
	ExcludedOddsRatio int `json:"excluded_odds_ratio"`

	Summary DerivedSummary `json:"summary"`
}

// DerivedSummary holds posterior means of the sampled quantities
type DerivedSummary struct {
	MeanP1        float64 `json:"mean_p1"`
	MeanP2        float64 `json:"mean_p2"`
	MeanDiff      float64 `json:"mean_diff"`
	MeanRelRisk   float64 `json:"mean_rel_risk"`
	MeanOddsRatio float64 `json:"mean_odds_ratio"`

	// ProbDiffPositive is the posterior probability that group 1's
	// success probability exceeds group 2's.
	ProbDiffPositive float64 `json:"prob_diff_positive"`
}

// Sample draws n paired posterior samples for both group probabilities
// and computes difference, relative risk and odds ratio element-wise.
// The source controls reproducibility: the same source state, fit and n
// reproduce bit-identical sequences. A nil source falls back to the
// process-global generator.
func (f BetaBinomialFit) Sample(n int, src rand.Source) (*DerivedSamples, error) {
	if n < 2 {
		return nil, core.NewInsufficientSamplesError(n, 2)
	}

	dist1 := distuv.Beta{Alpha: f.Groups[0].Alpha, Beta: f.Groups[0].Beta, Src: src}
	dist2 := distuv.Beta{Alpha: f.Groups[1].Alpha, Beta: f.Groups[1].Beta, Src: src}

	ds := &DerivedSamples{
		P1:        make([]float64, n),
		P2:        make([]float64, n),
		Diff:      make([]float64, n),
		RelRisk:   make([]float64, 0, n),
		OddsRatio: make([]float64, 0, n),
	}

	positive := 0
	for k := 0; k < n; k++ {
		p1 := dist1.Rand()
		p2 := dist2.Rand()
		ds.P1[k] = p1
		ds.P2[k] = p2
		ds.Diff[k] = p1 - p2
		if ds.Diff[k] > 0 {
			positive++
		}

		if rr := p1 / p2; isFinite(rr) {
			ds.RelRisk = append(ds.RelRisk, rr)
		} else {
			ds.ExcludedRelRisk++
		}

		if or := (p1 / (1 - p1)) / (p2 / (1 - p2)); isFinite(or) {
			ds.OddsRatio = append(ds.OddsRatio, or)
		} else {
			ds.ExcludedOddsRatio++
		}
	}

	if len(ds.RelRisk) == 0 || len(ds.OddsRatio) == 0 {
		return nil, fmt.Errorf("%w: all %d ratio draws excluded", core.ErrNumericDegenerate, n)
	}

	meanP1, _ := stats.Mean(ds.P1)
	meanP2, _ := stats.Mean(ds.P2)
	meanDiff, _ := stats.Mean(ds.Diff)
	meanRR, _ := stats.Mean(ds.RelRisk)
	meanOR, _ := stats.Mean(ds.OddsRatio)

	ds.Summary = DerivedSummary{
		MeanP1:           meanP1,
		MeanP2:           meanP2,
		MeanDiff:         meanDiff,
		MeanRelRisk:      meanRR,
		MeanOddsRatio:    meanOR,
		ProbDiffPositive: float64(positive) / float64(n),
	}
	return ds, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
