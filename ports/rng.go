package ports

import (
	"context"
	"math/rand/v2"
)

// RNGPort provides seeded random sources for deterministic sampling
type RNGPort interface {
	// SeededSource creates a deterministic random source for a named operation
	SeededSource(ctx context.Context, name string, seed int64) (rand.Source, error)

	// Stream creates a deterministic source for a specific analysis step.
	// This ensures repeated summaries of the same analysis produce
	// identical posterior draws for the same base seed.
	Stream(ctx context.Context, analysisID, stepName string, baseSeed int64) (rand.Source, error)
}
