// Package repository defines the assessment store interface and errors.
package repository

import (
	"context"

	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
)

// Store provides read/write access to assessments and saved comparisons.
// Implementations hand out deep copies only; callers route every mutation
// back through the store.
type Store interface {
	// Create adds a new assessment with empty score maps for every level.
	// The candidate name must not be blank.
	Create(ctx context.Context, candidateName, role string, links model.Links) (model.Assessment, error)

	// Get returns a copy of the assessment with the given id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (model.Assessment, error)

	// List returns all assessments, most recently created first.
	List(ctx context.Context) []model.Assessment

	// ListPage returns a page of the most-recent-first listing and whether
	// more rows remain past it.
	ListPage(ctx context.Context, offset, limit int) ([]model.Assessment, bool)

	// Count returns the number of stored assessments.
	Count(ctx context.Context) int

	// Update replaces the stored record matching a.ID and refreshes its
	// last-touched date. Returns ErrNotFound for an unknown id; records
	// enter the store through Create only.
	Update(ctx context.Context, a model.Assessment) error

	// SetScore stores a competency score clamped into [0, maxScore] and
	// returns the stored value. Out-of-range input is never an error.
	SetScore(ctx context.Context, id string, level rubric.Level, competencyID string, score int) (int, error)

	// SaveComparison stores a named snapshot of 2-3 assessment ids.
	// The name must not be blank. Ids are not checked against the
	// assessment list; dangling references resolve at render time.
	SaveComparison(ctx context.Context, name string, assessmentIDs []string) (model.SavedComparison, error)

	// DeleteComparison removes a saved comparison by id.
	DeleteComparison(ctx context.Context, id string) error

	// Comparisons returns all saved comparisons, most recent first.
	Comparisons(ctx context.Context) []model.SavedComparison

	// GetComparison returns a saved comparison by id.
	GetComparison(ctx context.Context, id string) (model.SavedComparison, error)
}
