package bayes

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"gobayes/domain/core"
	"gobayes/domain/tables"
)

// GroupPosterior holds one group's observed counts and conjugate state.
// Posterior parameters are Alpha = prior alpha + successes and
// Beta = prior beta + failures; the closed-form Beta-Binomial update.
type GroupPosterior struct {
	Label     string    `json:"label,omitempty"`
	Successes int       `json:"successes"`
	Trials    int       `json:"trials"`
	Prior     BetaPrior `json:"prior"`
	Alpha     float64   `json:"alpha"`
	Beta      float64   `json:"beta"`
}

// Mean returns the posterior mean alpha / (alpha + beta)
func (g GroupPosterior) Mean() float64 {
	return g.Alpha / (g.Alpha + g.Beta)
}

// CredibleBounds returns the closed-form equal-tail credible interval
// for the group's success probability from the posterior Beta quantiles.
func (g GroupPosterior) CredibleBounds(level float64) (lower, upper float64) {
	if level <= 0 || level >= 1 {
		level = DefaultLevel
	}
	dist := distuv.Beta{Alpha: g.Alpha, Beta: g.Beta}
	tail := (1 - level) / 2
	return dist.Quantile(tail), dist.Quantile(1 - tail)
}

// BetaBinomialFit is the immutable result of fitting two independent
// Beta-Binomial models, one per group. Updating never mutates a fit;
// it produces a successor whose priors are this fit's posteriors, so a
// fit can be shared safely across callers and update chains.
type BetaBinomialFit struct {
	Groups [2]GroupPosterior `json:"groups"`
}

// Fit fits the two-group Beta-Binomial model from a 2x2 table.
// The first column is read as successes, row totals as trials.
// A nil prior means Beta(1,1) for both groups.
func Fit(t tables.ContingencyTable, priors *GroupPriors) (BetaBinomialFit, error) {
	if err := t.Validate(); err != nil {
		return BetaBinomialFit{}, err
	}
	f, err := FitCounts(t.Successes(), t.Trials(), priors)
	if err != nil {
		return BetaBinomialFit{}, err
	}
	f.Groups[0].Label = t.RowLabel(0)
	f.Groups[1].Label = t.RowLabel(1)
	return f, nil
}

// FitCounts fits the model from explicit success and trial counts per group
func FitCounts(successes, trials [2]int, priors *GroupPriors) (BetaBinomialFit, error) {
	p := UniformPriors()
	if priors != nil {
		p = *priors
	}
	if err := p.Validate(); err != nil {
		return BetaBinomialFit{}, err
	}

	var fit BetaBinomialFit
	for i := 0; i < 2; i++ {
		if successes[i] < 0 || trials[i] < 0 {
			return BetaBinomialFit{}, fmt.Errorf("%w: group %d", core.ErrNegativeCount, i+1)
		}
		if successes[i] > trials[i] {
			return BetaBinomialFit{}, fmt.Errorf("%w: group %d has %d successes in %d trials",
				core.ErrSuccessExceedsTrials, i+1, successes[i], trials[i])
		}
		fit.Groups[i] = GroupPosterior{
			Successes: successes[i],
			Trials:    trials[i],
			Prior:     p[i],
			Alpha:     p[i].Alpha + float64(successes[i]),
			Beta:      p[i].Beta + float64(trials[i]-successes[i]),
		}
	}
	return fit, nil
}

// Update folds additional observations into the model and returns a new
// fit. The new fit's prior for each group is this fit's posterior, so
// updating with batches B1 then B2 matches a single fit on B1+B2
// exactly for integer counts.
func (f BetaBinomialFit) Update(successes, trials [2]int) (BetaBinomialFit, error) {
	priors := GroupPriors{
		{Alpha: f.Groups[0].Alpha, Beta: f.Groups[0].Beta},
		{Alpha: f.Groups[1].Alpha, Beta: f.Groups[1].Beta},
	}
	next, err := FitCounts(successes, trials, &priors)
	if err != nil {
		return BetaBinomialFit{}, err
	}
	for i := 0; i < 2; i++ {
		next.Groups[i].Label = f.Groups[i].Label
		// Observed counts accumulate across the chain for reporting
		next.Groups[i].Successes += f.Groups[i].Successes
		next.Groups[i].Trials += f.Groups[i].Trials
	}
	return next, nil
}

// UpdateWithTable folds a new 2x2 batch of observations into the model
func (f BetaBinomialFit) UpdateWithTable(t tables.ContingencyTable) (BetaBinomialFit, error) {
	if err := t.Validate(); err != nil {
		return BetaBinomialFit{}, err
	}
	return f.Update(t.Successes(), t.Trials())
}

// Fingerprint returns a deterministic hash of the posterior state
func (f BetaBinomialFit) Fingerprint() core.Hash {
	return core.ComputeFingerprint(
		f.Groups[0].Alpha, f.Groups[0].Beta,
		f.Groups[1].Alpha, f.Groups[1].Beta,
	)
}
