package app

import (
	"context"
	"fmt"
	"log"

	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/domain/tables"
	"gobayes/models"
	"gobayes/ports"
)

// AnalysisService orchestrates the fit -> persist -> update -> summarize
// lifecycle of two-group analyses. All statistical work happens in
// domain/bayes; this layer only wires fits to storage and seeded
// sampling streams.
type AnalysisService struct {
	repo  ports.AnalysisRepository
	rng   ports.RNGPort
	draws int
}

// FitRequest defines the inputs for a new analysis
type FitRequest struct {
	Name   string
	Table  tables.ContingencyTable
	Priors *bayes.GroupPriors
	Seed   int64
}

// UpdateRequest folds a new observation batch into a stored analysis
type UpdateRequest struct {
	Successes [2]int
	Trials    [2]int
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(repo ports.AnalysisRepository, rng ports.RNGPort, draws int) *AnalysisService {
	if draws < 2 {
		draws = bayes.DefaultSampleCount
	}
	return &AnalysisService{repo: repo, rng: rng, draws: draws}
}

// Fit fits a new analysis and stores it
func (s *AnalysisService) Fit(ctx context.Context, req FitRequest) (*models.Analysis, error) {
	fit, err := bayes.Fit(req.Table, req.Priors)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = "untitled analysis"
	}
	analysis := models.NewAnalysis(name, fit, req.Seed)
	if err := s.repo.Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	log.Printf("[AnalysisService] Fitted analysis %s (%s) fingerprint=%s",
		analysis.ID, name, fit.Fingerprint())
	return analysis, nil
}

// Update folds new observations into a stored analysis. The stored
// posterior becomes the prior of the successor fit; the revision
// counter advances so summaries of different revisions draw from
// distinct seeded streams.
func (s *AnalysisService) Update(ctx context.Context, id core.AnalysisID, req UpdateRequest) (*models.Analysis, error) {
	analysis, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := analysis.Fit().Update(req.Successes, req.Trials)
	if err != nil {
		return nil, err
	}

	analysis.Advance(next)
	if err := s.repo.Save(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to store updated analysis: %w", err)
	}

	log.Printf("[AnalysisService] Updated analysis %s to revision %d", id, analysis.Revision)
	return analysis, nil
}

// Summarize draws posterior samples for a stored analysis and computes
// interval summaries. Draw streams are derived from the analysis ID,
// revision and stored seed, so the same stored state always yields the
// same summary.
func (s *AnalysisService) Summarize(ctx context.Context, id core.AnalysisID, level float64, method bayes.IntervalMethod) (bayes.FitSummary, error) {
	analysis, err := s.repo.Get(ctx, id)
	if err != nil {
		return bayes.FitSummary{}, err
	}
	return s.summarizeAnalysis(ctx, analysis, level, method)
}

// Get retrieves a stored analysis
func (s *AnalysisService) Get(ctx context.Context, id core.AnalysisID) (*models.Analysis, error) {
	return s.repo.Get(ctx, id)
}

// List returns recent analyses
func (s *AnalysisService) List(ctx context.Context, limit int) ([]*models.Analysis, error) {
	return s.repo.List(ctx, limit)
}

func (s *AnalysisService) summarizeAnalysis(ctx context.Context, analysis *models.Analysis, level float64, method bayes.IntervalMethod) (bayes.FitSummary, error) {
	step := fmt.Sprintf("rev%d/sample", analysis.Revision)
	src, err := s.rng.Stream(ctx, analysis.ID.String(), step, analysis.Seed)
	if err != nil {
		return bayes.FitSummary{}, err
	}

	fit := analysis.Fit()
	samples, err := fit.Sample(s.draws, src)
	if err != nil {
		return bayes.FitSummary{}, err
	}
	return fit.Summarize(samples, level, method)
}
