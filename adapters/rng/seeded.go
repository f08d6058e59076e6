package rng

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"gobayes/ports"
)

// SeededAdapter derives deterministic PCG sources from a name and seed.
// The same (name, seed) pair always yields an identically seeded
// source, so repeated runs reproduce bit-identical draw sequences.
type SeededAdapter struct{}

// New creates a seeded RNG adapter
func New() *SeededAdapter {
	return &SeededAdapter{}
}

var _ ports.RNGPort = (*SeededAdapter)(nil)

// SeededSource creates a deterministic source for a named operation
func (a *SeededAdapter) SeededSource(_ context.Context, name string, seed int64) (rand.Source, error) {
	if name == "" {
		return nil, fmt.Errorf("rng stream name cannot be empty")
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", name, seed)))
	s1 := binary.LittleEndian.Uint64(sum[0:8])
	s2 := binary.LittleEndian.Uint64(sum[8:16])
	return rand.NewPCG(s1, s2), nil
}

// Stream derives a source for one step of an analysis
func (a *SeededAdapter) Stream(ctx context.Context, analysisID, stepName string, baseSeed int64) (rand.Source, error) {
	return a.SeededSource(ctx, analysisID+"/"+stepName, baseSeed)
}
