// Package service wires the assessment store, rubric, selection set and
// collaborators into the core the surfaces call.
package service

import (
	"context"
	"math"
	"time"

	"github.com/okian/hireboard/internal/adapters/repository"
	"github.com/okian/hireboard/internal/domain/compare"
	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
	"github.com/okian/hireboard/internal/domain/scoring"
	"github.com/okian/hireboard/internal/domain/selection"
	"github.com/okian/hireboard/internal/notify"
	"github.com/okian/hireboard/pkg/logger"
	"github.com/okian/hireboard/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultDebounce   = 800 * time.Millisecond
	defaultFetchDelay = 600 * time.Millisecond
	percentScale      = 100
)

// Service implements the operations the table, drawer and comparison
// surfaces depend on. Views hold read copies; every mutation routes back
// through here.
type Service struct {
	store     repository.Store
	rubric    rubric.Rubric
	sel       *selection.Set
	notifier  notify.Notifier
	scheduler Scheduler

	debounce   time.Duration
	fetchDelay time.Duration

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the assessment store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithRubric sets the rubric configuration.
func WithRubric(r rubric.Rubric) Option {
	return func(s *Service) {
		if r != nil {
			s.rubric = r
		}
	}
}

// WithNotifier sets the notification collaborator.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithScheduler sets the timer scheduler used for debounced auto-save.
func WithScheduler(sched Scheduler) Option {
	return func(s *Service) {
		if sched != nil {
			s.scheduler = sched
		}
	}
}

// WithDebounce sets the auto-save inactivity window.
func WithDebounce(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithMaxSelection sets the comparison selection bound.
func WithMaxSelection(n int) Option {
	return func(s *Service) {
		s.sel = selection.New(selection.WithMaxSize(n))
	}
}

// WithFetchDelay sets the simulated latency for incremental list loading.
// Zero disables the delay.
func WithFetchDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.fetchDelay = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		rubric:     rubric.Default(),
		sel:        selection.New(),
		scheduler:  NewTimerScheduler(),
		debounce:   defaultDebounce,
		fetchDelay: defaultFetchDelay,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get().Named("service")
	}
	if s.store == nil {
		s.store = repository.NewMemStore(s.rubric)
	}
	if s.notifier == nil {
		s.notifier = notify.NewLogNotifier(s.log.Named("notify"))
	}
	return s
}

// Rubric returns the active rubric configuration.
func (s *Service) Rubric() rubric.Rubric {
	return s.rubric
}

// CreateAssessment adds a new assessment for a candidate.
func (s *Service) CreateAssessment(ctx context.Context, candidateName, role string, links model.Links) (model.Assessment, error) {
	a, err := s.store.Create(ctx, candidateName, role, links)
	if err != nil {
		return model.Assessment{}, err
	}
	s.log.Info(ctx, "assessment created",
		logger.String("assessment_id", a.ID),
		logger.String("candidate", a.CandidateName))
	return a, nil
}

// Assessment returns one assessment by id.
func (s *Service) Assessment(ctx context.Context, id string) (model.Assessment, error) {
	return s.store.Get(ctx, id)
}

// Assessments returns all assessments, most recent first.
func (s *Service) Assessments(ctx context.Context) []model.Assessment {
	return s.store.List(ctx)
}

// LoadMore returns the next page of the listing after a simulated fetch
// delay, honoring ctx cancellation. It mirrors the incremental rendering of
// the table view.
func (s *Service) LoadMore(ctx context.Context, offset, limit int) ([]model.Assessment, bool, error) {
	if s.fetchDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		case <-time.After(s.fetchDelay):
		}
	}
	page, more := s.store.ListPage(ctx, offset, limit)
	return page, more, nil
}

// SetScore clamps and stores a single competency score outside any session,
// then surfaces the score-updated notification.
func (s *Service) SetScore(ctx context.Context, id string, level rubric.Level, competencyID string, score int) (int, error) {
	stored, err := s.store.SetScore(ctx, id, level, competencyID, score)
	if err != nil {
		return 0, err
	}
	s.notifier.Notify(ctx, notify.Notification{Message: "Score updated", Severity: notify.Success})
	return stored, nil
}

// OpenSession starts a buffered editing session for one assessment.
func (s *Service) OpenSession(ctx context.Context, id string) (*EditSession, error) {
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &EditSession{
		svc:     s,
		log:     s.log.Named("session"),
		working: a,
	}, nil
}

// ToggleCompare stages or unstages an assessment for comparison.
// Past the selection bound it is a no-op and reports false.
func (s *Service) ToggleCompare(ctx context.Context, id string) bool {
	return s.sel.Toggle(ctx, id)
}

// Selected returns the staged assessment ids in insertion order.
func (s *Service) Selected(ctx context.Context) []string {
	return s.sel.IDs(ctx)
}

// ClearSelection empties the staged selection.
func (s *Service) ClearSelection(ctx context.Context) {
	s.sel.Clear(ctx)
}

// CanCompare reports whether at least two assessments are staged.
func (s *Service) CanCompare(ctx context.Context) bool {
	return s.sel.CanCompare(ctx)
}

// BuildComparison resolves ids against the store and projects them into the
// comparison matrix. Dangling ids are filtered out, not errors.
func (s *Service) BuildComparison(ctx context.Context, ids []string) compare.Matrix {
	assessments := make([]model.Assessment, 0, len(ids))
	for _, id := range ids {
		a, err := s.store.Get(ctx, id)
		if err != nil {
			s.log.Debug(ctx, "skipping dangling comparison reference", logger.String("assessment_id", id))
			continue
		}
		assessments = append(assessments, a)
	}

	m := compare.BuildMatrix(assessments, s.rubric)
	for _, row := range m.Rows {
		for level, score := range row.LevelScores {
			metrics.ObserveLevelScore(string(level), score)
		}
	}
	return m
}

// BuildSelected projects the current selection into the comparison matrix.
func (s *Service) BuildSelected(ctx context.Context) compare.Matrix {
	return s.BuildComparison(ctx, s.sel.IDs(ctx))
}

// SaveComparison stores a named snapshot of the given ids. On success the
// staged selection is cleared and the save is acknowledged.
func (s *Service) SaveComparison(ctx context.Context, name string, ids []string) (model.SavedComparison, error) {
	c, err := s.store.SaveComparison(ctx, name, ids)
	if err != nil {
		return model.SavedComparison{}, err
	}
	s.sel.Clear(ctx)
	s.notifier.Notify(ctx, notify.Notification{Message: "Comparison saved", Severity: notify.Success})
	return c, nil
}

// DeleteComparison removes a saved comparison by id.
func (s *Service) DeleteComparison(ctx context.Context, id string) error {
	return s.store.DeleteComparison(ctx, id)
}

// Comparisons returns all saved comparisons, most recent first.
func (s *Service) Comparisons(ctx context.Context) []model.SavedComparison {
	return s.store.Comparisons(ctx)
}

// DashboardStats summarizes the assessment list for the metric cards.
type DashboardStats struct {
	TotalAssessments int
	// AverageScore is the mean overall score across all assessments.
	AverageScore int
	// SuccessRate is the percentage of assessments meeting any threshold.
	SuccessRate int
}

// Stats computes the dashboard summary.
func (s *Service) Stats(ctx context.Context) DashboardStats {
	assessments := s.store.List(ctx)
	stats := DashboardStats{TotalAssessments: len(assessments)}
	if len(assessments) == 0 {
		return stats
	}

	sum := 0
	withLevel := 0
	for i := range assessments {
		sum += scoring.OverallScore(&assessments[i], s.rubric)
		if _, ok := scoring.BestFitLevel(&assessments[i], s.rubric); ok {
			withLevel++
		}
	}
	stats.AverageScore = int(math.Round(float64(sum) / float64(len(assessments))))
	stats.SuccessRate = int(math.Round(float64(withLevel) / float64(len(assessments)) * percentScale))
	return stats
}
