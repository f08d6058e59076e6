package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"gobayes/domain/core"
	apperrors "gobayes/internal/errors"
	"gobayes/models"
	"gobayes/ports"
)

// ErrCodeStorageFailure tags database failures surfaced to callers
const ErrCodeStorageFailure = "STORAGE_FAILURE"

// AnalysisRepositoryImpl implements AnalysisRepository for PostgreSQL
type AnalysisRepositoryImpl struct {
	db *sqlx.DB
}

// NewAnalysisRepository creates a new PostgreSQL analysis repository
func NewAnalysisRepository(db *sqlx.DB) ports.AnalysisRepository {
	return &AnalysisRepositoryImpl{db: db}
}

// Connect opens and pings a PostgreSQL connection
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to connect to postgres")
	}
	return db, nil
}

// Create stores a new analysis
func (r *AnalysisRepositoryImpl) Create(ctx context.Context, a *models.Analysis) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO analyses (
			id, name, seed, revision,
			group1_label, group2_label,
			g1_successes, g1_trials, g2_successes, g2_trials,
			prior_alpha1, prior_beta1, prior_alpha2, prior_beta2,
			post_alpha1, post_beta1, post_alpha2, post_beta2,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`, a.ID, a.Name, a.Seed, a.Revision,
		a.Group1Label, a.Group2Label,
		a.G1Successes, a.G1Trials, a.G2Successes, a.G2Trials,
		a.PriorAlpha1, a.PriorBeta1, a.PriorAlpha2, a.PriorBeta2,
		a.PostAlpha1, a.PostBeta1, a.PostAlpha2, a.PostBeta2,
		a.CreatedAt, a.UpdatedAt)
	return apperrors.WithCode(ErrCodeStorageFailure, err)
}

// Get retrieves an analysis by ID
func (r *AnalysisRepositoryImpl) Get(ctx context.Context, id core.AnalysisID) (*models.Analysis, error) {
	var a models.Analysis
	err := r.db.GetContext(ctx, &a, `
		SELECT id, name, seed, revision,
			group1_label, group2_label,
			g1_successes, g1_trials, g2_successes, g2_trials,
			prior_alpha1, prior_beta1, prior_alpha2, prior_beta2,
			post_alpha1, post_beta1, post_alpha2, post_beta2,
			created_at, updated_at
		FROM analyses
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewAnalysisNotFoundError(id)
	}
	if err != nil {
		return nil, apperrors.WithCode(ErrCodeStorageFailure, err)
	}
	return &a, nil
}

// Save stores the successor state produced by an update
func (r *AnalysisRepositoryImpl) Save(ctx context.Context, a *models.Analysis) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE analyses
		SET revision = $2,
			g1_successes = $3, g1_trials = $4, g2_successes = $5, g2_trials = $6,
			prior_alpha1 = $7, prior_beta1 = $8, prior_alpha2 = $9, prior_beta2 = $10,
			post_alpha1 = $11, post_beta1 = $12, post_alpha2 = $13, post_beta2 = $14,
			updated_at = $15
		WHERE id = $1
	`, a.ID, a.Revision,
		a.G1Successes, a.G1Trials, a.G2Successes, a.G2Trials,
		a.PriorAlpha1, a.PriorBeta1, a.PriorAlpha2, a.PriorBeta2,
		a.PostAlpha1, a.PostBeta1, a.PostAlpha2, a.PostBeta2,
		a.UpdatedAt)
	if err != nil {
		return apperrors.WithCode(ErrCodeStorageFailure, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperrors.WithCode(ErrCodeStorageFailure, err)
	}
	if rows == 0 {
		return core.NewAnalysisNotFoundError(a.ID)
	}
	return nil
}

// List returns the most recent analyses, newest first
func (r *AnalysisRepositoryImpl) List(ctx context.Context, limit int) ([]*models.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	analyses := []*models.Analysis{}
	err := r.db.SelectContext(ctx, &analyses, `
		SELECT id, name, seed, revision,
			group1_label, group2_label,
			g1_successes, g1_trials, g2_successes, g2_trials,
			prior_alpha1, prior_beta1, prior_alpha2, prior_beta2,
			post_alpha1, post_beta1, post_alpha2, post_beta2,
			created_at, updated_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, apperrors.WithCode(ErrCodeStorageFailure, err)
	}
	return analyses, nil
}
