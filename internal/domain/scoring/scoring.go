// Package scoring computes normalized level scores and best-fit levels from
// raw competency scores. Every function here is pure and deterministic, and
// this package is the only place aggregation lives: the table, the drawer
// and the comparison view all import it, so their numbers can never drift.
package scoring

import (
	"math"

	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
)

const maxLevelScore = 100

// LevelScore returns the 0-100 normalized score for one seniority level:
// round(100 * sum(raw scores) / sum(max scores)), half away from zero.
// A level with zero total possible score yields 0. Competency ids absent
// from the rubric contribute nothing; unscored competencies count as zero.
func LevelScore(a *model.Assessment, level rubric.Level, r rubric.Rubric) int {
	totalPossible := r.TotalPossible(level)
	if totalPossible == 0 {
		return 0
	}
	totalCurrent := 0
	for _, c := range r[level].Competencies {
		totalCurrent += a.Score(level, c.ID)
	}
	return int(math.Round(float64(totalCurrent) / float64(totalPossible) * maxLevelScore))
}

// BestFitLevel returns the highest level whose threshold the candidate meets,
// evaluating senior, mid, junior in that order. ok is false when no threshold
// is met. The ordering is a deliberate tie-break: a candidate meeting both
// the senior and junior thresholds is reported as senior.
func BestFitLevel(a *model.Assessment, r rubric.Rubric) (level rubric.Level, ok bool) {
	for _, l := range rubric.LevelsByPrecedence() {
		if LevelScore(a, l, r) >= r.Threshold(l) {
			return l, true
		}
	}
	return "", false
}

// OverallScore returns the single headline number for a candidate: the
// best-fit level's score when a threshold is met, otherwise the best
// available progress across all levels.
func OverallScore(a *model.Assessment, r rubric.Rubric) int {
	if best, ok := BestFitLevel(a, r); ok {
		return LevelScore(a, best, r)
	}
	max := 0
	for _, l := range rubric.Levels() {
		if s := LevelScore(a, l, r); s > max {
			max = s
		}
	}
	return max
}

// DefaultSelectedLevel picks the level tab to show first: best-fit precedence
// with a fallback to mid when no threshold is met.
func DefaultSelectedLevel(a *model.Assessment, r rubric.Rubric) rubric.Level {
	if best, ok := BestFitLevel(a, r); ok {
		return best
	}
	return rubric.Mid
}

// LevelStatus pairs a level score with its threshold.
type LevelStatus struct {
	Level     rubric.Level
	Score     int
	Threshold int
	Met       bool
}

// Breakdown returns per-level status in ascending seniority order.
func Breakdown(a *model.Assessment, r rubric.Rubric) []LevelStatus {
	statuses := make([]LevelStatus, 0, len(rubric.Levels()))
	for _, l := range rubric.Levels() {
		score := LevelScore(a, l, r)
		statuses = append(statuses, LevelStatus{
			Level:     l,
			Score:     score,
			Threshold: r.Threshold(l),
			Met:       score >= r.Threshold(l),
		})
	}
	return statuses
}

// Verdict returns the human-readable summary line shown above the rubric.
func Verdict(a *model.Assessment, r rubric.Rubric) string {
	best, ok := BestFitLevel(a, r)
	if !ok {
		return "Below all thresholds – no clear level yet"
	}
	switch best {
	case rubric.Senior:
		return "Meets Senior threshold"
	case rubric.Mid:
		return "Meets Mid threshold"
	default:
		return "Meets Junior threshold"
	}
}
