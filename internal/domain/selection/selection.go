// Package selection tracks the bounded set of assessments staged for
// side-by-side comparison.
package selection

import (
	"context"
	"sync"

	"github.com/okian/hireboard/pkg/metrics"
)

// minCompareSize is the smallest selection that can be compared.
const minCompareSize = 2

// defaultMaxSize bounds the selection; the comparison view renders at most
// three candidates side by side.
const defaultMaxSize = 3

// Set is an insertion-ordered, bounded set of assessment ids.
// Toggling an id past the bound is a no-op, not an error.
type Set struct {
	mu      sync.RWMutex
	ids     []string
	maxSize int
}

// Option applies a configuration option to the Set.
type Option func(*Set)

// WithMaxSize overrides the selection bound.
func WithMaxSize(n int) Option {
	return func(s *Set) {
		if n >= minCompareSize {
			s.maxSize = n
		}
	}
}

// New creates an empty selection set.
func New(opts ...Option) *Set {
	s := &Set{maxSize: defaultMaxSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Toggle adds id when absent (and under the bound) or removes it when
// present. It reports whether the selection changed.
func (s *Set) Toggle(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			metrics.UpdateSelectionSize(len(s.ids))
			return true
		}
	}
	if len(s.ids) >= s.maxSize {
		return false
	}
	s.ids = append(s.ids, id)
	metrics.UpdateSelectionSize(len(s.ids))
	return true
}

// Has reports whether id is selected.
func (s *Set) Has(_ context.Context, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns the selected ids in insertion order.
func (s *Set) IDs(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.ids...)
}

// Len returns the selection size.
func (s *Set) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Clear empties the selection.
func (s *Set) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	metrics.UpdateSelectionSize(0)
}

// CanCompare reports whether enough assessments are selected to compare.
func (s *Set) CanCompare(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids) >= minCompareSize
}
