package service

import (
	"context"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/hireboard/internal/adapters/repository"
	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
	"github.com/okian/hireboard/internal/notify"
)

func newServiceFixture() (*Service, *notify.MemoryNotifier) {
	notifier := notify.NewMemoryNotifier()
	svc := New(
		WithNotifier(notifier),
		WithScheduler(NewManualScheduler()),
		WithFetchDelay(0),
	)
	return svc, notifier
}

func createCandidates(ctx context.Context, svc *Service, names ...string) []string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		a, err := svc.CreateAssessment(ctx, name, "Engineer", model.Links{})
		if err != nil {
			panic(err)
		}
		ids = append(ids, a.ID)
	}
	return ids
}

func TestServiceSelection(t *testing.T) {
	convey.Convey("Given a service with four assessments", t, func() {
		svc, _ := newServiceFixture()
		ctx := context.Background()
		ids := createCandidates(ctx, svc, "Stevie Nicks", "Robert Plant", "Janis Joplin", "David Bowie")

		convey.Convey("When three are staged for comparison", func() {
			for _, id := range ids[:3] {
				convey.So(svc.ToggleCompare(ctx, id), convey.ShouldBeTrue)
			}

			convey.Convey("Then a fourth toggle is refused", func() {
				convey.So(svc.ToggleCompare(ctx, ids[3]), convey.ShouldBeFalse)
				convey.So(svc.Selected(ctx), convey.ShouldResemble, ids[:3])
			})

			convey.Convey("Then toggling a staged id unstages it", func() {
				convey.So(svc.ToggleCompare(ctx, ids[1]), convey.ShouldBeTrue)
				convey.So(svc.Selected(ctx), convey.ShouldResemble, []string{ids[0], ids[2]})
			})

			convey.Convey("Then the selection is comparable", func() {
				convey.So(svc.CanCompare(ctx), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When only one is staged", func() {
			convey.So(svc.ToggleCompare(ctx, ids[0]), convey.ShouldBeTrue)

			convey.Convey("Then comparison stays unavailable", func() {
				convey.So(svc.CanCompare(ctx), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the selection is cleared", func() {
			svc.ToggleCompare(ctx, ids[0])
			svc.ToggleCompare(ctx, ids[1])
			svc.ClearSelection(ctx)

			convey.Convey("Then nothing remains staged", func() {
				convey.So(svc.Selected(ctx), convey.ShouldBeEmpty)
			})
		})
	})
}

func TestServiceComparisons(t *testing.T) {
	convey.Convey("Given a service with staged assessments", t, func() {
		svc, notifier := newServiceFixture()
		ctx := context.Background()
		ids := createCandidates(ctx, svc, "Stevie Nicks", "Robert Plant")
		for _, id := range ids {
			svc.ToggleCompare(ctx, id)
		}

		convey.Convey("When the selection is saved as a comparison", func() {
			saved, err := svc.SaveComparison(ctx, "Frontend finalists", svc.Selected(ctx))
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the snapshot is retrievable", func() {
				all := svc.Comparisons(ctx)
				convey.So(all, convey.ShouldHaveLength, 1)
				convey.So(all[0].ID, convey.ShouldEqual, saved.ID)
				convey.So(all[0].AssessmentIDs, convey.ShouldResemble, ids)
			})

			convey.Convey("Then the staged selection is cleared", func() {
				convey.So(svc.Selected(ctx), convey.ShouldBeEmpty)
			})

			convey.Convey("Then the save is acknowledged", func() {
				sent := notifier.Sent()
				convey.So(sent, convey.ShouldHaveLength, 1)
				convey.So(sent[0].Message, convey.ShouldEqual, "Comparison saved")
			})

			convey.Convey("Then deleting it empties the list", func() {
				convey.So(svc.DeleteComparison(ctx, saved.ID), convey.ShouldBeNil)
				convey.So(svc.Comparisons(ctx), convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When the name is blank", func() {
			_, err := svc.SaveComparison(ctx, "   ", svc.Selected(ctx))

			convey.Convey("Then the save is rejected and the selection survives", func() {
				convey.So(err, convey.ShouldWrap, repository.ErrInvalidName)
				convey.So(svc.Selected(ctx), convey.ShouldResemble, ids)
			})
		})
	})
}

func TestServiceBuildComparison(t *testing.T) {
	convey.Convey("Given assessments with senior scores", t, func() {
		svc, _ := newServiceFixture()
		ctx := context.Background()
		ids := createCandidates(ctx, svc, "Stevie Nicks", "Robert Plant")

		for _, c := range []string{"technical_depth", "practical_judgment", "communication_leadership"} {
			_, err := svc.SetScore(ctx, ids[0], rubric.Senior, c, 5)
			convey.So(err, convey.ShouldBeNil)
		}
		_, err := svc.SetScore(ctx, ids[0], rubric.Senior, "experience_quality", 2)
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("When a matrix is built over both", func() {
			m := svc.BuildComparison(ctx, ids)

			convey.Convey("Then rows follow the requested order", func() {
				convey.So(m.Rows, convey.ShouldHaveLength, 2)
				convey.So(m.Rows[0].CandidateName, convey.ShouldEqual, "Stevie Nicks")
				convey.So(m.Rows[1].CandidateName, convey.ShouldEqual, "Robert Plant")
			})

			convey.Convey("Then level scores round half away from zero", func() {
				// 17 of 19 senior points is 89.47, rounded to 89.
				convey.So(m.Rows[0].LevelScores[rubric.Senior], convey.ShouldEqual, 89)
				convey.So(m.Rows[0].BestFit, convey.ShouldEqual, rubric.Senior)
				convey.So(m.Rows[0].BestFitMet, convey.ShouldBeTrue)
			})

			convey.Convey("Then an unscored candidate reads as zero everywhere", func() {
				convey.So(m.Rows[1].Overall, convey.ShouldEqual, 0)
				convey.So(m.Rows[1].BestFitMet, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When an id no longer resolves", func() {
			m := svc.BuildComparison(ctx, []string{ids[0], "gone", ids[1]})

			convey.Convey("Then the dangling reference is dropped, not an error", func() {
				convey.So(m.Rows, convey.ShouldHaveLength, 2)
				convey.So(m.Rows[0].AssessmentID, convey.ShouldEqual, ids[0])
				convey.So(m.Rows[1].AssessmentID, convey.ShouldEqual, ids[1])
			})
		})
	})
}

func TestServiceLoadMore(t *testing.T) {
	convey.Convey("Given a service with five assessments and no fetch delay", t, func() {
		svc, _ := newServiceFixture()
		ctx := context.Background()
		createCandidates(ctx, svc, "a", "b", "c", "d", "e")

		convey.Convey("When the first page of two is loaded", func() {
			page, more, err := svc.LoadMore(ctx, 0, 2)
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then two rows return and more remain", func() {
				convey.So(page, convey.ShouldHaveLength, 2)
				convey.So(more, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the final partial page is loaded", func() {
			page, more, err := svc.LoadMore(ctx, 4, 2)
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then one row returns and none remain", func() {
				convey.So(page, convey.ShouldHaveLength, 1)
				convey.So(more, convey.ShouldBeFalse)
			})
		})
	})

	convey.Convey("Given a service with a fetch delay", t, func() {
		notifier := notify.NewMemoryNotifier()
		svc := New(
			WithNotifier(notifier),
			WithScheduler(NewManualScheduler()),
			WithFetchDelay(time.Minute),
		)
		createCandidates(context.Background(), svc, "a")

		convey.Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, _, err := svc.LoadMore(ctx, 0, 1)

			convey.Convey("Then the load aborts with the context error", func() {
				convey.So(err, convey.ShouldWrap, context.Canceled)
			})
		})
	})
}

func TestServiceStats(t *testing.T) {
	convey.Convey("Given an empty service", t, func() {
		svc, _ := newServiceFixture()
		ctx := context.Background()

		convey.Convey("Then the stats are all zero", func() {
			convey.So(svc.Stats(ctx), convey.ShouldResemble, DashboardStats{})
		})
	})

	convey.Convey("Given one qualified and one unscored assessment", t, func() {
		svc, _ := newServiceFixture()
		ctx := context.Background()
		ids := createCandidates(ctx, svc, "Stevie Nicks", "Robert Plant")

		// Full marks on every junior competency: level score 100.
		for _, c := range []string{"technical_basics", "learning_ability"} {
			_, err := svc.SetScore(ctx, ids[0], rubric.Junior, c, 4)
			convey.So(err, convey.ShouldBeNil)
		}
		for _, c := range []string{"code_quality", "collaboration"} {
			_, err := svc.SetScore(ctx, ids[0], rubric.Junior, c, 3)
			convey.So(err, convey.ShouldBeNil)
		}

		convey.Convey("When stats are computed", func() {
			stats := svc.Stats(ctx)

			convey.Convey("Then totals, averages and success rate follow", func() {
				convey.So(stats.TotalAssessments, convey.ShouldEqual, 2)
				convey.So(stats.AverageScore, convey.ShouldEqual, 50)
				convey.So(stats.SuccessRate, convey.ShouldEqual, 50)
			})
		})
	})
}
