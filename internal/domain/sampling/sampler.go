// Package sampling draws uniform random samples from the problem catalog.
package sampling

import (
	"math/rand"
	"sync"
	"time"

	"blind75-generator/internal/domain/model"
)

// Sampler picks problems without replacement. It is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a Sampler seeded from the wall clock.
func New() *Sampler {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates a Sampler backed by src.
func NewWithSource(src rand.Source) *Sampler {
	return &Sampler{rnd: rand.New(src)}
}

// Sample returns min(count, len(problems)) distinct problems in random order.
// The input slice is never reordered.
func (s *Sampler) Sample(problems []model.Problem, count int) ([]model.Problem, error) {
	if len(problems) == 0 {
		return nil, model.ErrEmptyCatalog
	}
	if count <= 0 {
		return nil, model.ErrInvalidSampleSize
	}

	candidates := make([]model.Problem, len(problems))
	copy(candidates, problems)

	s.mu.Lock()
	s.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	s.mu.Unlock()

	if count > len(candidates) {
		count = len(candidates)
	}

	return candidates[:count:count], nil
}
