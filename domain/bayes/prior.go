package bayes

import (
	"fmt"

	"gobayes/domain/core"
	"gobayes/domain/tables"
)

// DirichletPrior holds one hyperparameter per cell of a 2x2 table.
// All entries must be strictly positive for the Dirichlet to be proper.
type DirichletPrior struct {
	Gamma [2][2]float64 `json:"gamma"`
}

// Validate checks Dirichlet validity (all hyperparameters > 0)
func (p DirichletPrior) Validate() error {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !(p.Gamma[i][j] > 0) {
				return fmt.Errorf("%w: gamma(%d,%d) = %g", core.ErrNonPositivePrior, i, j, p.Gamma[i][j])
			}
		}
	}
	return nil
}

// Total returns the total prior mass
func (p DirichletPrior) Total() float64 {
	return p.Gamma[0][0] + p.Gamma[0][1] + p.Gamma[1][0] + p.Gamma[1][1]
}

// DefaultDirichletPrior derives hyperparameters from the observed
// marginals: gamma_ij = rowProportion_i * colProportion_j, scaled to a
// total prior mass of 1. The data-driven shrinkage target keeps cell
// estimates proper even when a cell count is zero.
func DefaultDirichletPrior(t tables.ContingencyTable) DirichletPrior {
	n := t.Total()
	if n == 0 {
		// No data to derive marginals from; fall back to uniform mass
		return DirichletPrior{Gamma: [2][2]float64{{0.25, 0.25}, {0.25, 0.25}}}
	}

	rows := t.RowTotals()
	cols := t.ColTotals()

	var p DirichletPrior
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			p.Gamma[i][j] = (float64(rows[i]) / float64(n)) * (float64(cols[j]) / float64(n))
			// A zero marginal would zero out the cell hyperparameter;
			// floor it so the prior stays proper.
			if p.Gamma[i][j] <= 0 {
				p.Gamma[i][j] = 1e-6
			}
		}
	}
	return p
}

// BetaPrior holds the (alpha, beta) hyperparameters for one group's
// Beta prior on its success probability.
type BetaPrior struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// Validate checks Beta validity (alpha, beta > 0)
func (p BetaPrior) Validate() error {
	if !(p.Alpha > 0) || !(p.Beta > 0) {
		return fmt.Errorf("%w: beta(%g,%g)", core.ErrNonPositivePrior, p.Alpha, p.Beta)
	}
	return nil
}

// GroupPriors holds one Beta prior per group of a two-group comparison
type GroupPriors [2]BetaPrior

// UniformPriors returns the non-informative Beta(1,1) prior for both groups
func UniformPriors() GroupPriors {
	return GroupPriors{{Alpha: 1, Beta: 1}, {Alpha: 1, Beta: 1}}
}

// Validate checks both group priors
func (p GroupPriors) Validate() error {
	for i := range p {
		if err := p[i].Validate(); err != nil {
			return fmt.Errorf("group %d: %w", i+1, err)
		}
	}
	return nil
}
