package model_test

import (
	"testing"
	"time"

	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewAssessment(t *testing.T) {
	Convey("Given a new assessment", t, func() {
		now := time.Date(2024, 11, 28, 10, 30, 0, 0, time.UTC)
		a := model.NewAssessment("id-1", "Stevie Nicks", "Senior Full-Stack Developer", model.Links{GitHub: "https://github.com/stevienicks"}, now)

		Convey("Then identity fields should be set", func() {
			So(a.ID, ShouldEqual, "id-1")
			So(a.CandidateName, ShouldEqual, "Stevie Nicks")
			So(a.Role, ShouldEqual, "Senior Full-Stack Developer")
			So(a.Date, ShouldEqual, "2024-11-28")
			So(a.Links.GitHub, ShouldEqual, "https://github.com/stevienicks")
		})

		Convey("Then all three level score maps should exist and be empty", func() {
			for _, level := range rubric.Levels() {
				So(a.Scores[level], ShouldNotBeNil)
				So(len(a.Scores[level]), ShouldEqual, 0)
			}
		})
	})
}

func TestScoreClamping(t *testing.T) {
	Convey("Given an assessment", t, func() {
		a := model.NewAssessment("id-1", "Robert Plant", "", model.Links{}, time.Now())

		Convey("When setting a negative score", func() {
			stored := a.SetScore(rubric.Mid, "technical_depth", -5, 4)

			Convey("Then it should clamp to zero", func() {
				So(stored, ShouldEqual, 0)
				So(a.Score(rubric.Mid, "technical_depth"), ShouldEqual, 0)
			})
		})

		Convey("When setting a score above the maximum", func() {
			stored := a.SetScore(rubric.Mid, "technical_depth", 104, 4)

			Convey("Then it should clamp to the maximum", func() {
				So(stored, ShouldEqual, 4)
			})
		})

		Convey("When reading an unscored competency", func() {
			So(a.Score(rubric.Senior, "practical_judgment"), ShouldEqual, 0)
		})
	})
}

func TestSkillsAndTags(t *testing.T) {
	Convey("Given an assessment", t, func() {
		a := model.NewAssessment("id-1", "Janis Joplin", "", model.Links{}, time.Now())

		Convey("When adding skills", func() {
			So(a.AddSkill("CSS"), ShouldBeTrue)
			So(a.AddSkill("React"), ShouldBeTrue)
			So(a.AddSkill("CSS"), ShouldBeFalse) // duplicate

			Convey("Then insertion order is kept and duplicates dropped", func() {
				So(a.Skills, ShouldResemble, []string{"CSS", "React"})
			})
		})

		Convey("When removing a tag", func() {
			a.AddTag("eager to learn")
			a.AddTag("creative thinker")
			So(a.RemoveTag("eager to learn"), ShouldBeTrue)
			So(a.RemoveTag("absent"), ShouldBeFalse)
			So(a.Tags, ShouldResemble, []string{"creative thinker"})
		})
	})
}

func TestAudioNotes(t *testing.T) {
	Convey("Given an assessment with audio notes", t, func() {
		a := model.NewAssessment("id-1", "Janis Joplin", "", model.Links{}, time.Now())
		a.AddAudioNote(model.AudioNote{ID: "audio-1", Duration: 89})
		a.AddAudioNote(model.AudioNote{ID: "audio-2", Duration: 145})

		Convey("When removing one by id", func() {
			So(a.RemoveAudioNote("audio-1"), ShouldBeTrue)

			Convey("Then only the other remains", func() {
				So(len(a.AudioNotes), ShouldEqual, 1)
				So(a.AudioNotes[0].ID, ShouldEqual, "audio-2")
			})
		})

		Convey("When removing an unknown id", func() {
			So(a.RemoveAudioNote("nope"), ShouldBeFalse)
			So(len(a.AudioNotes), ShouldEqual, 2)
		})
	})
}

func TestClone(t *testing.T) {
	Convey("Given an assessment with state", t, func() {
		a := model.NewAssessment("id-1", "Stevie Nicks", "", model.Links{}, time.Now())
		a.SetScore(rubric.Senior, "technical_depth", 4, 5)
		a.AddSkill("React")
		a.AddAudioNote(model.AudioNote{ID: "audio-1"})

		Convey("When cloning and mutating the clone", func() {
			c := a.Clone()
			c.SetScore(rubric.Senior, "technical_depth", 1, 5)
			c.AddSkill("Go")
			c.RemoveAudioNote("audio-1")

			Convey("Then the original is untouched", func() {
				So(a.Score(rubric.Senior, "technical_depth"), ShouldEqual, 4)
				So(a.Skills, ShouldResemble, []string{"React"})
				So(len(a.AudioNotes), ShouldEqual, 1)
			})
		})
	})
}
