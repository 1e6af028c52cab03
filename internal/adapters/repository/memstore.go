package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
	"github.com/okian/hireboard/pkg/metrics"
)

// minComparisonIDs and maxComparisonIDs bound a saved selection snapshot.
const (
	minComparisonIDs = 2
	maxComparisonIDs = 3
)

// MemStore implements Store with process-lifetime in-memory state.
// All state is guarded by a single RWMutex; the entity counts here are
// interview-sized, not leaderboard-sized.
type MemStore struct {
	mu sync.RWMutex

	rubric      rubric.Rubric
	assessments []model.Assessment // most recently created first
	byID        map[string]int     // id -> index into assessments
	comparisons []model.SavedComparison

	clock func() time.Time
	newID func() string
}

// NewMemStore creates an empty in-memory store bound to a rubric.
func NewMemStore(r rubric.Rubric, opts ...Option) *MemStore {
	s := &MemStore{
		rubric: r,
		byID:   make(map[string]int),
		clock:  time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create adds a new assessment and returns a copy of it.
func (s *MemStore) Create(_ context.Context, candidateName, role string, links model.Links) (model.Assessment, error) {
	if strings.TrimSpace(candidateName) == "" {
		metrics.RecordValidationError("empty_name")
		return model.Assessment{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := model.NewAssessment(s.newID(), candidateName, role, links, s.clock())
	s.assessments = append([]model.Assessment{a}, s.assessments...)
	s.reindex()

	metrics.RecordAssessmentCreated()
	metrics.UpdateAssessmentsTotal(len(s.assessments))
	return a.Clone(), nil
}

// Get returns a copy of the assessment with the given id.
func (s *MemStore) Get(_ context.Context, id string) (model.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return model.Assessment{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.assessments[idx].Clone(), nil
}

// List returns copies of all assessments, most recently created first.
func (s *MemStore) List(_ context.Context) []model.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Assessment, 0, len(s.assessments))
	for i := range s.assessments {
		out = append(out, s.assessments[i].Clone())
	}
	return out
}

// ListPage returns one page of the listing and whether more rows remain.
func (s *MemStore) ListPage(_ context.Context, offset, limit int) ([]model.Assessment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 || offset >= len(s.assessments) || limit <= 0 {
		return nil, false
	}
	end := offset + limit
	if end > len(s.assessments) {
		end = len(s.assessments)
	}
	out := make([]model.Assessment, 0, end-offset)
	for i := offset; i < end; i++ {
		out = append(out, s.assessments[i].Clone())
	}
	return out, end < len(s.assessments)
}

// Count returns the number of stored assessments.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assessments)
}

// Update replaces the stored record matching a.ID.
// The incoming record is sanitized so the stored scores invariant holds:
// unknown competency ids are dropped and values are clamped into range.
func (s *MemStore) Update(_ context.Context, a model.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[a.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, a.ID)
	}

	stored := a.Clone()
	s.sanitizeScores(&stored)
	stored.CreatedAt = s.assessments[idx].CreatedAt
	stored.Date = s.clock().Format(model.DateLayout)
	s.assessments[idx] = stored
	return nil
}

// SetScore clamps and stores a single competency score, refreshing the
// last-touched date. It returns the stored value.
func (s *MemStore) SetScore(_ context.Context, id string, level rubric.Level, competencyID string, score int) (int, error) {
	if !level.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLevel, level)
	}
	comp, ok := s.rubric.Competency(level, competencyID)
	if !ok {
		return 0, fmt.Errorf("%w: %s/%s", ErrUnknownCompetency, level, competencyID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, found := s.byID[id]
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	stored := s.assessments[idx].SetScore(level, competencyID, score, comp.MaxScore)
	s.assessments[idx].Date = s.clock().Format(model.DateLayout)

	metrics.RecordScoreUpdate()
	if stored != score {
		metrics.RecordScoreClamp()
	}
	return stored, nil
}

// SaveComparison stores a named snapshot of the given assessment ids.
func (s *MemStore) SaveComparison(_ context.Context, name string, assessmentIDs []string) (model.SavedComparison, error) {
	if strings.TrimSpace(name) == "" {
		metrics.RecordValidationError("empty_comparison_name")
		return model.SavedComparison{}, ErrInvalidName
	}
	if len(assessmentIDs) < minComparisonIDs || len(assessmentIDs) > maxComparisonIDs {
		metrics.RecordValidationError("comparison_size")
		return model.SavedComparison{}, fmt.Errorf("%w: got %d", ErrSelectionSize, len(assessmentIDs))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.SavedComparison{
		ID:            s.newID(),
		Name:          name,
		AssessmentIDs: append([]string(nil), assessmentIDs...),
		SavedAt:       s.clock().Format(model.DateLayout),
	}
	s.comparisons = append([]model.SavedComparison{c}, s.comparisons...)

	metrics.RecordComparisonSaved()
	return c, nil
}

// DeleteComparison removes a saved comparison by id. No cascading effects.
func (s *MemStore) DeleteComparison(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.comparisons {
		if c.ID == id {
			s.comparisons = append(s.comparisons[:i], s.comparisons[i+1:]...)
			metrics.RecordComparisonDeleted()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrComparisonNotFound, id)
}

// Comparisons returns copies of all saved comparisons, most recent first.
func (s *MemStore) Comparisons(_ context.Context) []model.SavedComparison {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.SavedComparison, len(s.comparisons))
	for i, c := range s.comparisons {
		c.AssessmentIDs = append([]string(nil), c.AssessmentIDs...)
		out[i] = c
	}
	return out
}

// GetComparison returns a saved comparison by id.
func (s *MemStore) GetComparison(_ context.Context, id string) (model.SavedComparison, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.comparisons {
		if c.ID == id {
			c.AssessmentIDs = append([]string(nil), c.AssessmentIDs...)
			return c, nil
		}
	}
	return model.SavedComparison{}, fmt.Errorf("%w: %s", ErrComparisonNotFound, id)
}

// sanitizeScores drops competency ids the rubric does not know and clamps
// the rest into [0, maxScore]. Callers hold the write lock.
func (s *MemStore) sanitizeScores(a *model.Assessment) {
	for level, levelScores := range a.Scores {
		for id, v := range levelScores {
			comp, ok := s.rubric.Competency(level, id)
			if !ok {
				delete(levelScores, id)
				continue
			}
			if v < 0 {
				levelScores[id] = 0
			} else if v > comp.MaxScore {
				levelScores[id] = comp.MaxScore
			}
		}
	}
}

// reindex rebuilds the id index. Callers hold the write lock.
func (s *MemStore) reindex() {
	for i := range s.assessments {
		s.byID[s.assessments[i].ID] = i
	}
}
