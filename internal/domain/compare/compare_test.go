package compare_test

import (
	"testing"
	"time"

	"github.com/okian/hireboard/internal/domain/compare"
	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
	"github.com/okian/hireboard/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildMatrix(t *testing.T) {
	Convey("Given scored assessments and the built-in rubric", t, func() {
		r := rubric.Default()

		a := model.NewAssessment("a-1", "Stevie Nicks", "Senior Full-Stack Developer", model.Links{}, time.Now())
		a.SetScore(rubric.Senior, "technical_depth", 4, 5)
		a.SetScore(rubric.Senior, "practical_judgment", 4, 5)
		a.SetScore(rubric.Senior, "communication_leadership", 4, 5)
		a.SetScore(rubric.Senior, "experience_quality", 3, 4)
		a.AddSkill("React")
		a.Notes = "Excellent system design skills."

		b := model.NewAssessment("b-1", "Robert Plant", "Mid-Level Backend Developer", model.Links{}, time.Now())
		for _, c := range r[rubric.Mid].Competencies {
			b.SetScore(rubric.Mid, c.ID, c.MaxScore, c.MaxScore)
		}

		Convey("When building a single-row matrix", func() {
			m := compare.BuildMatrix([]model.Assessment{a}, r)

			Convey("Then its level scores match the scoring package exactly", func() {
				So(len(m.Rows), ShouldEqual, 1)
				row := m.Rows[0]
				for _, level := range rubric.Levels() {
					So(row.LevelScores[level], ShouldEqual, scoring.LevelScore(&a, level, r))
				}
				So(row.Overall, ShouldEqual, scoring.OverallScore(&a, r))
				So(row.BestFitMet, ShouldBeFalse) // 79 < 85
			})

			Convey("Then every rubric competency appears, unscored ones at zero", func() {
				row := m.Rows[0]
				So(row.CompetencyScores[rubric.Senior]["technical_depth"], ShouldEqual, 4)
				So(row.CompetencyScores[rubric.Senior]["experience_quality"], ShouldEqual, 3)
				So(row.CompetencyScores[rubric.Junior]["technical_basics"], ShouldEqual, 0)
				So(len(row.CompetencyScores[rubric.Mid]), ShouldEqual, len(r[rubric.Mid].Competencies))
			})

			Convey("Then candidate details carry over", func() {
				row := m.Rows[0]
				So(row.CandidateName, ShouldEqual, "Stevie Nicks")
				So(row.Skills, ShouldResemble, []string{"React"})
				So(row.Notes, ShouldEqual, "Excellent system design skills.")
			})
		})

		Convey("When building a multi-row matrix", func() {
			m := compare.BuildMatrix([]model.Assessment{a, b}, r)

			Convey("Then input order is preserved", func() {
				So(len(m.Rows), ShouldEqual, 2)
				So(m.Rows[0].AssessmentID, ShouldEqual, "a-1")
				So(m.Rows[1].AssessmentID, ShouldEqual, "b-1")
			})

			Convey("Then best fit is computed per candidate", func() {
				So(m.Rows[1].BestFitMet, ShouldBeTrue)
				So(m.Rows[1].BestFit, ShouldEqual, rubric.Mid)
				So(m.Rows[1].LevelScores[rubric.Mid], ShouldEqual, 100)
			})
		})

		Convey("When building an empty matrix", func() {
			m := compare.BuildMatrix(nil, r)
			So(len(m.Rows), ShouldEqual, 0)
			So(m.Levels, ShouldResemble, rubric.Levels())
		})
	})
}
