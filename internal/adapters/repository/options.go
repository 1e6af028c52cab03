package repository

import "time"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(clock func() time.Time) Option {
	return func(s *MemStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator replaces the id generator, for deterministic tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *MemStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}
