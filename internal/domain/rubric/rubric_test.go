package rubric_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/hireboard/internal/domain/rubric"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultRubric(t *testing.T) {
	Convey("Given the built-in rubric", t, func() {
		r := rubric.Default()

		Convey("Then it should validate", func() {
			So(r.Validate(), ShouldBeNil)
		})

		Convey("Then thresholds should match the product cut points", func() {
			So(r.Threshold(rubric.Junior), ShouldEqual, 60)
			So(r.Threshold(rubric.Mid), ShouldEqual, 70)
			So(r.Threshold(rubric.Senior), ShouldEqual, 85)
		})

		Convey("Then total possible scores should follow the max scores", func() {
			So(r.TotalPossible(rubric.Junior), ShouldEqual, 14) // 4+4+3+3
			So(r.TotalPossible(rubric.Mid), ShouldEqual, 15)    // 4+4+4+3
			So(r.TotalPossible(rubric.Senior), ShouldEqual, 19) // 5+5+5+4
		})

		Convey("Then competency lookup should work per level", func() {
			c, ok := r.Competency(rubric.Senior, "practical_judgment")
			So(ok, ShouldBeTrue)
			So(c.Label, ShouldEqual, "Practical Judgment")
			So(c.MaxScore, ShouldEqual, 5)
			So(len(c.SampleQuestions), ShouldEqual, 4)

			_, ok = r.Competency(rubric.Junior, "practical_judgment")
			So(ok, ShouldBeFalse)
		})

		Convey("Then level ordering helpers should be stable", func() {
			So(rubric.Levels(), ShouldResemble, []rubric.Level{rubric.Junior, rubric.Mid, rubric.Senior})
			So(rubric.LevelsByPrecedence(), ShouldResemble, []rubric.Level{rubric.Senior, rubric.Mid, rubric.Junior})
		})
	})
}

func TestRubricValidate(t *testing.T) {
	Convey("Given rubric validation", t, func() {
		Convey("When a level is missing", func() {
			r := rubric.Rubric{rubric.Junior: {Threshold: 60}}
			So(r.Validate(), ShouldNotBeNil)
		})

		Convey("When a threshold is out of range", func() {
			r := rubric.Default()
			lr := r[rubric.Mid]
			lr.Threshold = 140
			r[rubric.Mid] = lr
			So(r.Validate(), ShouldNotBeNil)
		})

		Convey("When competency ids collide within a level", func() {
			r := rubric.Default()
			lr := r[rubric.Junior]
			lr.Competencies = append(lr.Competencies, lr.Competencies[0])
			r[rubric.Junior] = lr
			So(r.Validate(), ShouldNotBeNil)
		})

		Convey("When a max score is below one", func() {
			r := rubric.Default()
			lr := r[rubric.Senior]
			lr.Competencies[0].MaxScore = 0
			r[rubric.Senior] = lr
			So(r.Validate(), ShouldNotBeNil)
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a YAML rubric file", t, func() {
		yamlContent := `
junior:
  threshold: 50
  competencies:
    - id: basics
      label: Basics
      max_score: 4
mid:
  threshold: 65
  competencies:
    - id: depth
      label: Depth
      max_score: 5
senior:
  threshold: 80
  competencies:
    - id: judgment
      label: Judgment
      max_score: 5
      sample_questions:
        - question: "How do you decide when to refactor?"
          rationale: "Tests business judgment."
`
		path := filepath.Join(t.TempDir(), "rubric.yaml")
		So(os.WriteFile(path, []byte(yamlContent), 0o600), ShouldBeNil)

		Convey("When loading it", func() {
			r, err := rubric.LoadFile(path)

			Convey("Then the parsed rubric should match the file", func() {
				So(err, ShouldBeNil)
				So(r.Threshold(rubric.Junior), ShouldEqual, 50)
				So(r.TotalPossible(rubric.Senior), ShouldEqual, 5)
				c, ok := r.Competency(rubric.Senior, "judgment")
				So(ok, ShouldBeTrue)
				So(c.SampleQuestions[0].Text, ShouldEqual, "How do you decide when to refactor?")
			})
		})

		Convey("When loading a missing file", func() {
			_, err := rubric.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
			So(err, ShouldNotBeNil)
		})

		Convey("When loading an invalid rubric", func() {
			bad := filepath.Join(t.TempDir(), "bad.yaml")
			So(os.WriteFile(bad, []byte("junior:\n  threshold: 200\nmid:\n  threshold: 70\nsenior:\n  threshold: 85\n"), 0o600), ShouldBeNil)
			_, err := rubric.LoadFile(bad)
			So(err, ShouldNotBeNil)
		})
	})
}
