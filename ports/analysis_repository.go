package ports

import (
	"context"

	"gobayes/domain/core"
	"gobayes/models"
)

// AnalysisRepository persists analyses so sequential updates can fold
// new observations into a previously stored posterior.
type AnalysisRepository interface {
	// Create stores a new analysis
	Create(ctx context.Context, analysis *models.Analysis) error

	// Get retrieves an analysis by ID
	Get(ctx context.Context, id core.AnalysisID) (*models.Analysis, error)

	// Save stores the successor state produced by an update
	Save(ctx context.Context, analysis *models.Analysis) error

	// List returns the most recent analyses, newest first
	List(ctx context.Context, limit int) ([]*models.Analysis, error)
}
