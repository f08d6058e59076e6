package models

import (
	"gobayes/domain/bayes"
	"gobayes/domain/core"
)

// Analysis is the persisted state of a two-group Beta-Binomial
// analysis. The stored posterior is the prior of the next update, so a
// row carries everything needed to continue a sequential analysis.
type Analysis struct {
	ID       core.AnalysisID `db:"id" json:"id"`
	Name     string          `db:"name" json:"name"`
	Seed     int64           `db:"seed" json:"seed"`
	Revision int             `db:"revision" json:"revision"`

	Group1Label string `db:"group1_label" json:"group1_label"`
	Group2Label string `db:"group2_label" json:"group2_label"`

	G1Successes int `db:"g1_successes" json:"g1_successes"`
	G1Trials    int `db:"g1_trials" json:"g1_trials"`
	G2Successes int `db:"g2_successes" json:"g2_successes"`
	G2Trials    int `db:"g2_trials" json:"g2_trials"`

	PriorAlpha1 float64 `db:"prior_alpha1" json:"prior_alpha1"`
	PriorBeta1  float64 `db:"prior_beta1" json:"prior_beta1"`
	PriorAlpha2 float64 `db:"prior_alpha2" json:"prior_alpha2"`
	PriorBeta2  float64 `db:"prior_beta2" json:"prior_beta2"`

	PostAlpha1 float64 `db:"post_alpha1" json:"post_alpha1"`
	PostBeta1  float64 `db:"post_beta1" json:"post_beta1"`
	PostAlpha2 float64 `db:"post_alpha2" json:"post_alpha2"`
	PostBeta2  float64 `db:"post_beta2" json:"post_beta2"`

	CreatedAt core.Timestamp `db:"created_at" json:"created_at"`
	UpdatedAt core.Timestamp `db:"updated_at" json:"updated_at"`
}

// NewAnalysis creates an analysis record from a freshly fitted model
func NewAnalysis(name string, fit bayes.BetaBinomialFit, seed int64) *Analysis {
	now := core.Now()
	a := &Analysis{
		ID:        core.AnalysisID(core.NewID()),
		Name:      name,
		Seed:      seed,
		Revision:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	a.applyFit(fit)
	return a
}

// Fit reconstructs the in-memory fit from the stored state
func (a *Analysis) Fit() bayes.BetaBinomialFit {
	return bayes.BetaBinomialFit{
		Groups: [2]bayes.GroupPosterior{
			{
				Label:     a.Group1Label,
				Successes: a.G1Successes,
				Trials:    a.G1Trials,
				Prior:     bayes.BetaPrior{Alpha: a.PriorAlpha1, Beta: a.PriorBeta1},
				Alpha:     a.PostAlpha1,
				Beta:      a.PostBeta1,
			},
			{
				Label:     a.Group2Label,
				Successes: a.G2Successes,
				Trials:    a.G2Trials,
				Prior:     bayes.BetaPrior{Alpha: a.PriorAlpha2, Beta: a.PriorBeta2},
				Alpha:     a.PostAlpha2,
				Beta:      a.PostBeta2,
			},
		},
	}
}

// Advance records the successor fit produced by an update and bumps
// the revision. The previous posterior becomes the stored prior,
// mirroring the conjugate update chain.
func (a *Analysis) Advance(fit bayes.BetaBinomialFit) {
	a.applyFit(fit)
	a.Revision++
	a.UpdatedAt = core.Now()
}

func (a *Analysis) applyFit(fit bayes.BetaBinomialFit) {
	g1, g2 := fit.Groups[0], fit.Groups[1]
	a.Group1Label = g1.Label
	a.Group2Label = g2.Label
	a.G1Successes, a.G1Trials = g1.Successes, g1.Trials
	a.G2Successes, a.G2Trials = g2.Successes, g2.Trials
	a.PriorAlpha1, a.PriorBeta1 = g1.Prior.Alpha, g1.Prior.Beta
	a.PriorAlpha2, a.PriorBeta2 = g2.Prior.Alpha, g2.Prior.Beta
	a.PostAlpha1, a.PostBeta1 = g1.Alpha, g1.Beta
	a.PostAlpha2, a.PostBeta2 = g2.Alpha, g2.Beta
}
