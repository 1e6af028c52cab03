// Package compare materializes the side-by-side comparison view for a set of
// assessments. BuildMatrix is a pure projection: all aggregation is delegated
// to the scoring package so comparison numbers always match the table and
// drawer views.
package compare

import (
	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
	"github.com/okian/hireboard/internal/domain/scoring"
)

// Row is one candidate's column in the comparison table.
type Row struct {
	AssessmentID  string
	CandidateName string
	Role          string
	Date          string

	LevelScores map[rubric.Level]int
	BestFit     rubric.Level
	BestFitMet  bool
	Overall     int

	// CompetencyScores maps level -> competency id -> raw score for every
	// rubric competency, including unscored ones at zero.
	CompetencyScores map[rubric.Level]map[string]int

	Skills     []string
	Tags       []string
	Notes      string
	AudioNotes []model.AudioNote
}

// Matrix is the full comparison projection.
type Matrix struct {
	Rows   []Row
	Levels []rubric.Level
}

// BuildMatrix projects the given assessments into comparison rows. The input
// order is preserved. Callers resolve ids beforehand; dangling references are
// simply not in the input.
func BuildMatrix(assessments []model.Assessment, r rubric.Rubric) Matrix {
	rows := make([]Row, 0, len(assessments))
	for i := range assessments {
		rows = append(rows, buildRow(&assessments[i], r))
	}
	return Matrix{Rows: rows, Levels: rubric.Levels()}
}

func buildRow(a *model.Assessment, r rubric.Rubric) Row {
	levelScores := make(map[rubric.Level]int, len(rubric.Levels()))
	competencyScores := make(map[rubric.Level]map[string]int, len(rubric.Levels()))
	for _, level := range rubric.Levels() {
		levelScores[level] = scoring.LevelScore(a, level, r)
		perLevel := make(map[string]int, len(r[level].Competencies))
		for _, c := range r[level].Competencies {
			perLevel[c.ID] = a.Score(level, c.ID)
		}
		competencyScores[level] = perLevel
	}

	best, met := scoring.BestFitLevel(a, r)

	return Row{
		AssessmentID:     a.ID,
		CandidateName:    a.CandidateName,
		Role:             a.Role,
		Date:             a.Date,
		LevelScores:      levelScores,
		BestFit:          best,
		BestFitMet:       met,
		Overall:          scoring.OverallScore(a, r),
		CompetencyScores: competencyScores,
		Skills:           append([]string(nil), a.Skills...),
		Tags:             append([]string(nil), a.Tags...),
		Notes:            a.Notes,
		AudioNotes:       append([]model.AudioNote(nil), a.AudioNotes...),
	}
}
