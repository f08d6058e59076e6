package bayes

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distmv"

	"gobayes/domain/core"
	"gobayes/domain/tables"
)

// CellProbabilities computes the posterior mean of each cell probability
// under a multinomial likelihood with a Dirichlet prior:
//
//	pi_ij = (n_ij + gamma_ij) / (N + sum(gamma))
//
// When prior is nil the marginal-product default of DefaultDirichletPrior
// is used. The result sums to 1 up to floating-point rounding.
// Pure function; no retained state.
func CellProbabilities(t tables.ContingencyTable, prior *DirichletPrior) ([2][2]float64, error) {
	if err := t.Validate(); err != nil {
		return [2][2]float64{}, err
	}

	var p DirichletPrior
	if prior != nil {
		p = *prior
	} else {
		p = DefaultDirichletPrior(t)
	}
	if err := p.Validate(); err != nil {
		return [2][2]float64{}, err
	}

	denom := float64(t.Total()) + p.Total()

	var probs [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			probs[i][j] = (float64(t.Counts[i][j]) + p.Gamma[i][j]) / denom
		}
	}
	return probs, nil
}

// SampleCellProbabilities draws n cell-probability vectors from the
// posterior Dirichlet(n_ij + gamma_ij). Each draw is a length-4 vector
// in row-major cell order summing to 1. The source controls
// reproducibility; identical sources produce identical draws.
func SampleCellProbabilities(t tables.ContingencyTable, prior *DirichletPrior, n int, src rand.Source) ([][]float64, error) {
	if n < 1 {
		return nil, core.NewValidationError("sample_count", "must be at least 1")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	var p DirichletPrior
	if prior != nil {
		p = *prior
	} else {
		p = DefaultDirichletPrior(t)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	alpha := []float64{
		float64(t.Counts[0][0]) + p.Gamma[0][0],
		float64(t.Counts[0][1]) + p.Gamma[0][1],
		float64(t.Counts[1][0]) + p.Gamma[1][0],
		float64(t.Counts[1][1]) + p.Gamma[1][1],
	}

	dir := distmv.NewDirichlet(alpha, src)
	draws := make([][]float64, n)
	for k := 0; k < n; k++ {
		draws[k] = dir.Rand(make([]float64, 4))
	}
	return draws, nil
}
