package bayes

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"gobayes/domain/core"
)

// DefaultLevel is the credible level used when the caller passes an
// out-of-range level.
const DefaultLevel = 0.95

// IntervalMethod tags how an interval was computed
type IntervalMethod string

const (
	MethodQuantile IntervalMethod = "quantile"
	MethodHPD      IntervalMethod = "hpd"
)

// IntervalResult is a point estimate with credible bounds.
// INVARIANT: Lower <= Upper.
type IntervalResult struct {
	Estimate float64        `json:"estimate"`
	Lower    float64        `json:"lower"`
	Upper    float64        `json:"upper"`
	Level    float64        `json:"level"`
	Method   IntervalMethod `json:"method"`
}

// Width returns the interval width
func (r IntervalResult) Width() float64 {
	return r.Upper - r.Lower
}

// Contains reports whether x lies inside the interval
func (r IntervalResult) Contains(x float64) bool {
	return x >= r.Lower && x <= r.Upper
}

// QuantileInterval computes the equal-tail credible interval from the
// empirical (level/2, 1-level/2) quantiles of the samples. The point
// estimate is the sample mean. Not guaranteed to be the shortest
// interval for the given mass.
func QuantileInterval(samples []float64, level float64) (IntervalResult, error) {
	level = clampLevel(level)
	if len(samples) < 2 {
		return IntervalResult{}, core.NewInsufficientSamplesError(len(samples), 2)
	}

	tail := (1 - level) / 2 * 100
	lower, err := stats.Percentile(samples, tail)
	if err != nil {
		return IntervalResult{}, err
	}
	upper, err := stats.Percentile(samples, 100-tail)
	if err != nil {
		return IntervalResult{}, err
	}
	mean, err := stats.Mean(samples)
	if err != nil {
		return IntervalResult{}, err
	}

	return IntervalResult{
		Estimate: mean,
		Lower:    math.Min(lower, upper),
		Upper:    math.Max(lower, upper),
		Level:    level,
		Method:   MethodQuantile,
	}, nil
}

// HPDInterval computes the highest-posterior-density interval: the
// shortest contiguous window of the sorted samples containing the
// requested probability mass. For unimodal posteriors this is never
// wider than the equal-tail interval.
func HPDInterval(samples []float64, level float64) (IntervalResult, error) {
	level = clampLevel(level)
	if len(samples) < 2 {
		return IntervalResult{}, core.NewInsufficientSamplesError(len(samples), 2)
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	n := len(sorted)
	window := int(math.Ceil(level * float64(n)))
	if window < 2 {
		window = 2
	}
	if window > n {
		window = n
	}

	best := 0
	bestWidth := sorted[window-1] - sorted[0]
	for i := 1; i+window <= n; i++ {
		if w := sorted[i+window-1] - sorted[i]; w < bestWidth {
			bestWidth = w
			best = i
		}
	}

	mean, err := stats.Mean(samples)
	if err != nil {
		return IntervalResult{}, err
	}

	return IntervalResult{
		Estimate: mean,
		Lower:    sorted[best],
		Upper:    sorted[best+window-1],
		Level:    level,
		Method:   MethodHPD,
	}, nil
}

// Interval dispatches on the method tag
func Interval(samples []float64, level float64, method IntervalMethod) (IntervalResult, error) {
	switch method {
	case MethodHPD:
		return HPDInterval(samples, level)
	default:
		return QuantileInterval(samples, level)
	}
}

func clampLevel(level float64) float64 {
	if level <= 0 || level >= 1 {
		return DefaultLevel
	}
	return level
}
