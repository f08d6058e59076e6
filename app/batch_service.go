package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"gobayes/domain/bayes"
	"gobayes/domain/tables"
	"gobayes/ports"
)

// BatchService fits and summarizes many independent tables
// concurrently. Each item gets its own seeded stream derived from the
// item name, so batch order and worker scheduling never change results.
type BatchService struct {
	rng     ports.RNGPort
	draws   int
	workers int
}

// BatchItem is one table to analyze
type BatchItem struct {
	Name   string
	Table  tables.ContingencyTable
	Priors *bayes.GroupPriors
}

// BatchResult pairs an item name with its summary
type BatchResult struct {
	Name    string           `json:"name"`
	Summary bayes.FitSummary `json:"summary"`
}

// NewBatchService creates a batch service with a bounded worker pool
func NewBatchService(rng ports.RNGPort, draws, workers int) *BatchService {
	if draws < 2 {
		draws = bayes.DefaultSampleCount
	}
	if workers < 1 {
		workers = 4
	}
	return &BatchService{rng: rng, draws: draws, workers: workers}
}

// Run analyzes every item and returns results in input order.
// The first failing item aborts the batch.
func (s *BatchService) Run(ctx context.Context, items []BatchItem, seed int64, level float64, method bayes.IntervalMethod) ([]BatchResult, error) {
	results := make([]BatchResult, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, item := range items {
		g.Go(func() error {
			fit, err := bayes.Fit(item.Table, item.Priors)
			if err != nil {
				return err
			}

			src, err := s.rng.Stream(ctx, item.Name, "batch/sample", seed)
			if err != nil {
				return err
			}
			samples, err := fit.Sample(s.draws, src)
			if err != nil {
				return err
			}
			summary, err := fit.Summarize(samples, level, method)
			if err != nil {
				return err
			}

			results[i] = BatchResult{Name: item.Name, Summary: summary}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
