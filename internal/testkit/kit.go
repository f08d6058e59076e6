package testkit

import (
	"context"
	"sort"
	"sync"

	"gobayes/adapters/rng"
	"gobayes/app"
	"gobayes/domain/core"
	"gobayes/domain/tables"
	"gobayes/models"
	"gobayes/ports"
)

// Kit provides in-memory adapters and canned fixtures for tests
type Kit struct {
	repo *InMemoryAnalysisRepository
}

// NewKit creates a test kit instance
func NewKit() *Kit {
	return &Kit{repo: NewInMemoryAnalysisRepository()}
}

// Repository returns the shared in-memory repository
func (k *Kit) Repository() ports.AnalysisRepository {
	return k.repo
}

// RNG returns a deterministic seeded RNG adapter
func (k *Kit) RNG() ports.RNGPort {
	return rng.New()
}

// Service builds an analysis service over the kit's adapters
func (k *Kit) Service(draws int) *app.AnalysisService {
	return app.NewAnalysisService(k.Repository(), k.RNG(), draws)
}

// AspirinTable returns the aspirin vs placebo myocardial infarction
// table: rows are treatment groups, columns fatal vs nonfatal events.
func AspirinTable() tables.ContingencyTable {
	t, _ := tables.NewLabeled(
		[2][2]int{{5, 94}, {18, 188}},
		[2]string{"aspirin", "placebo"},
		[2]string{"fatal", "nonfatal"},
	)
	return t
}

// ZeroCellTable returns a table with zero successes in one group
func ZeroCellTable() tables.ContingencyTable {
	t, _ := tables.New([2][2]int{{0, 20}, {4, 16}})
	return t
}

// BalancedTable returns a small balanced table for smoke tests
func BalancedTable() tables.ContingencyTable {
	t, _ := tables.New([2][2]int{{12, 38}, {9, 41}})
	return t
}

// InMemoryAnalysisRepository is a map-backed AnalysisRepository
type InMemoryAnalysisRepository struct {
	mu       sync.RWMutex
	analyses map[core.AnalysisID]models.Analysis
}

// NewInMemoryAnalysisRepository creates an empty in-memory repository
func NewInMemoryAnalysisRepository() *InMemoryAnalysisRepository {
	return &InMemoryAnalysisRepository{analyses: make(map[core.AnalysisID]models.Analysis)}
}

var _ ports.AnalysisRepository = (*InMemoryAnalysisRepository)(nil)

func (r *InMemoryAnalysisRepository) Create(_ context.Context, a *models.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses[a.ID] = *a
	return nil
}

func (r *InMemoryAnalysisRepository) Get(_ context.Context, id core.AnalysisID) (*models.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.analyses[id]
	if !ok {
		return nil, core.NewAnalysisNotFoundError(id)
	}
	copied := a
	return &copied, nil
}

func (r *InMemoryAnalysisRepository) Save(_ context.Context, a *models.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.analyses[a.ID]; !ok {
		return core.NewAnalysisNotFoundError(a.ID)
	}
	r.analyses[a.ID] = *a
	return nil
}

func (r *InMemoryAnalysisRepository) List(_ context.Context, limit int) ([]*models.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Analysis, 0, len(r.analyses))
	for id := range r.analyses {
		a := r.analyses[id]
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
