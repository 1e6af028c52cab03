// Package recorder simulates the external audio capture and transcription
// collaborator. Real recording is out of scope; the core only ever receives
// completed notes, so the simulation produces plausible durations and canned
// transcripts, deterministic under a fixed seed.
package recorder

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/pkg/metrics"
)

// Simulated recording bounds, in seconds.
const (
	minDurationSec = 20
	maxDurationSec = 180
	defaultSeed    = 42
)

// cannedTranscripts rotate across recordings until real speech-to-text
// replaces this collaborator.
var cannedTranscripts = []string{ //nolint:gochecknoglobals // fixture data for the simulated transcriber
	"Candidate demonstrated excellent problem-solving skills during the system design discussion.",
	"Strong communication throughout. Explained trade-offs clearly without prompting.",
	"Showed great enthusiasm and willingness to learn. Needs mentorship on fundamentals.",
	"Solid grasp of production concerns: monitoring, rollbacks and on-call experience.",
}

// Recorder produces completed audio notes. One recording at a time.
type Recorder struct {
	mu        sync.Mutex
	rng       *rand.Rand
	newID     func() string
	clock     func() time.Time
	recording bool
	startedAt time.Time
	next      int
}

// Option applies a configuration option to the Recorder.
type Option func(*Recorder)

// WithSeed fixes the RNG seed for reproducible durations.
func WithSeed(seed int64) Option {
	return func(r *Recorder) {
		r.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible simulation
	}
}

// WithIDGenerator replaces the note id generator, for deterministic tests.
func WithIDGenerator(gen func() string) Option {
	return func(r *Recorder) {
		if gen != nil {
			r.newID = gen
		}
	}
}

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(clock func() time.Time) Option {
	return func(r *Recorder) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// New creates a simulated recorder.
func New(opts ...Option) *Recorder {
	r := &Recorder{
		rng:   rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic seed for reproducible simulation
		newID: uuid.NewString,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins a recording session.
func (r *Recorder) Start(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return ErrAlreadyRecording
	}
	r.recording = true
	r.startedAt = r.clock()
	return nil
}

// Stop ends the session and returns the completed note. The duration is
// simulated, not wall-clock: stopping immediately still yields a plausible
// recording length.
func (r *Recorder) Stop(_ context.Context) (model.AudioNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return model.AudioNote{}, ErrNotRecording
	}
	r.recording = false

	note := model.AudioNote{
		ID:         r.newID(),
		Timestamp:  r.startedAt,
		Duration:   minDurationSec + r.rng.Intn(maxDurationSec-minDurationSec),
		Transcript: cannedTranscripts[r.next%len(cannedTranscripts)],
	}
	r.next++

	metrics.RecordAudioNote()
	return note, nil
}

// Recording reports whether a session is in progress.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}
