// Package model contains domain entities passed between layers.
package model

import (
	"time"

	"github.com/okian/hireboard/internal/domain/rubric"
)

// DateLayout is the calendar-date format used for Date and SavedAt fields.
const DateLayout = "2006-01-02"

// Links holds optional named URLs for a candidate.
type Links struct {
	LinkedIn  string
	GitHub    string
	Portfolio string
	CodePen   string
}

// AudioNote is a recorded annotation owned by exactly one assessment.
type AudioNote struct {
	ID         string
	Timestamp  time.Time
	Duration   int // seconds
	Transcript string
}

// Assessment is the central mutable entity: one candidate's scores, notes
// and annotations. The store owns the canonical record; views work on copies
// and route mutations back through the store.
type Assessment struct {
	ID            string
	CandidateName string
	Role          string
	// Date is the last-touched calendar date shown in the table.
	// CreatedAt stays fixed so recency sorting remains truthful.
	Date       string
	CreatedAt  time.Time
	Notes      string
	Skills     []string
	Tags       []string
	Links      Links
	AudioNotes []AudioNote
	// Scores maps level -> competency id -> raw score.
	// Unscored competencies are absent and count as zero.
	Scores map[rubric.Level]map[string]int
}

// NewAssessment builds an assessment with empty score maps for every level.
func NewAssessment(id, candidateName, role string, links Links, now time.Time) Assessment {
	scores := make(map[rubric.Level]map[string]int, len(rubric.Levels()))
	for _, level := range rubric.Levels() {
		scores[level] = make(map[string]int)
	}
	return Assessment{
		ID:            id,
		CandidateName: candidateName,
		Role:          role,
		Date:          now.Format(DateLayout),
		CreatedAt:     now,
		Links:         links,
		Scores:        scores,
	}
}

// Score returns the raw score for a competency, zero when unscored.
func (a *Assessment) Score(level rubric.Level, competencyID string) int {
	return a.Scores[level][competencyID]
}

// SetScore stores a raw score clamped into [0, maxScore].
// It returns the stored value. Out-of-range input is never an error.
func (a *Assessment) SetScore(level rubric.Level, competencyID string, score, maxScore int) int {
	if score < 0 {
		score = 0
	}
	if score > maxScore {
		score = maxScore
	}
	if a.Scores == nil {
		a.Scores = make(map[rubric.Level]map[string]int)
	}
	if a.Scores[level] == nil {
		a.Scores[level] = make(map[string]int)
	}
	a.Scores[level][competencyID] = score
	return score
}

// AddSkill appends a skill unless already present. Insertion order is kept.
func (a *Assessment) AddSkill(skill string) bool {
	return appendUnique(&a.Skills, skill)
}

// RemoveSkill removes a skill by value.
func (a *Assessment) RemoveSkill(skill string) bool {
	return removeValue(&a.Skills, skill)
}

// AddTag appends a tag unless already present. Insertion order is kept.
func (a *Assessment) AddTag(tag string) bool {
	return appendUnique(&a.Tags, tag)
}

// RemoveTag removes a tag by value.
func (a *Assessment) RemoveTag(tag string) bool {
	return removeValue(&a.Tags, tag)
}

// AddAudioNote appends a completed recording.
func (a *Assessment) AddAudioNote(note AudioNote) {
	a.AudioNotes = append(a.AudioNotes, note)
}

// RemoveAudioNote removes a recording by id.
func (a *Assessment) RemoveAudioNote(id string) bool {
	for i, n := range a.AudioNotes {
		if n.ID == id {
			a.AudioNotes = append(a.AudioNotes[:i], a.AudioNotes[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy. The store hands out and accepts copies only, so
// callers can never alias the canonical record.
func (a *Assessment) Clone() Assessment {
	c := *a
	c.Skills = append([]string(nil), a.Skills...)
	c.Tags = append([]string(nil), a.Tags...)
	c.AudioNotes = append([]AudioNote(nil), a.AudioNotes...)
	c.Scores = make(map[rubric.Level]map[string]int, len(a.Scores))
	for level, m := range a.Scores {
		lm := make(map[string]int, len(m))
		for id, v := range m {
			lm[id] = v
		}
		c.Scores[level] = lm
	}
	return c
}

// SavedComparison is a named snapshot of a selection set.
// Read-only after creation except for deletion.
type SavedComparison struct {
	ID            string
	Name          string
	AssessmentIDs []string
	SavedAt       string
}

func appendUnique(list *[]string, v string) bool {
	for _, existing := range *list {
		if existing == v {
			return false
		}
	}
	*list = append(*list, v)
	return true
}

func removeValue(list *[]string, v string) bool {
	for i, existing := range *list {
		if existing == v {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
