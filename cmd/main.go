package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/okian/hireboard/internal/adapters/repository"
	app "github.com/okian/hireboard/internal/app"
	"github.com/okian/hireboard/internal/config"
	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
	"github.com/okian/hireboard/internal/domain/scoring"
	"github.com/okian/hireboard/internal/notify"
	"github.com/okian/hireboard/internal/recorder"
	"github.com/okian/hireboard/internal/seed"
	"github.com/okian/hireboard/pkg/logger"
	"github.com/okian/hireboard/pkg/metrics"
)

// syntheticCount pads the demo roster past one page so the paging walk below
// has something to do.
const syntheticCount = 20

func main() {
	// Disable default Go metrics collection; only domain metrics matter here.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	r := rubric.Default()
	if cfg.RubricPath != "" {
		r, err = rubric.LoadFile(cfg.RubricPath)
		if err != nil {
			os.Stderr.WriteString("failed to load rubric: " + err.Error() + "\n")
			return
		}
		log.Info(ctx, "loaded rubric", logger.String("path", cfg.RubricPath))
	}

	store := repository.NewMemStore(r)
	notifier := notify.NewLogNotifier(log.Named("notify"))
	svc := app.New(
		app.WithLogger(log),
		app.WithRubric(r),
		app.WithStore(store),
		app.WithNotifier(notifier),
		app.WithDebounce(time.Duration(cfg.AutosaveDebounceMS)*time.Millisecond),
		app.WithMaxSelection(cfg.MaxSelection),
		app.WithFetchDelay(time.Duration(cfg.FetchDelayMS)*time.Millisecond),
	)

	roster, err := seed.Load(ctx, store)
	if err != nil {
		os.Stderr.WriteString("failed to seed assessments: " + err.Error() + "\n")
		return
	}
	extra, err := seed.Generate(ctx, store, r, syntheticCount, cfg.RecorderSeed)
	if err != nil {
		os.Stderr.WriteString("failed to generate assessments: " + err.Error() + "\n")
		return
	}
	log.Info(ctx, "seeded demo roster",
		logger.Int("fixtures", len(roster)), logger.Int("synthetic", len(extra)))

	printDashboard(ctx, svc)

	// Walk the listing the way the table view does, page by page.
	for offset := 0; ; {
		page, more, err := svc.LoadMore(ctx, offset, cfg.PageSize)
		if err != nil {
			log.Error(ctx, "load more failed", logger.Error(err))
			return
		}
		offset += len(page)
		log.Info(ctx, "loaded page", logger.Int("rows", len(page)), logger.Bool("more", more))
		if !more {
			break
		}
	}

	if err := runEditSession(ctx, svc, cfg, roster); err != nil {
		log.Error(ctx, "edit session failed", logger.Error(err))
		return
	}

	if err := runComparison(ctx, svc); err != nil {
		log.Error(ctx, "comparison failed", logger.Error(err))
		return
	}

	printMetrics()
	log.Info(ctx, "done")
}

// printDashboard renders the assessment listing with the headline numbers.
func printDashboard(ctx context.Context, svc *app.Service) {
	r := svc.Rubric()
	stats := svc.Stats(ctx)
	fmt.Printf("\n%d assessments | average score %d | success rate %d%%\n\n",
		stats.TotalAssessments, stats.AverageScore, stats.SuccessRate)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CANDIDATE\tROLE\tDATE\tBEST FIT\tOVERALL\tVERDICT")
	for _, a := range svc.Assessments(ctx) {
		bestFit := "-"
		if level, ok := scoring.BestFitLevel(&a, r); ok {
			bestFit = string(level)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			a.CandidateName, a.Role, a.Date, bestFit,
			scoring.OverallScore(&a, r), scoring.Verdict(&a, r))
	}
	w.Flush()
	fmt.Println()
}

// runEditSession exercises the drawer flow: buffered edits, a simulated
// recording, and a close that flushes everything in one commit.
func runEditSession(ctx context.Context, svc *app.Service, cfg *config.Config, roster []model.Assessment) error {
	target := roster[len(roster)-1] // most recently seeded candidate
	session, err := svc.OpenSession(ctx, target.ID)
	if err != nil {
		return err
	}

	if err := session.Apply(ctx, app.NewScoreTap(rubric.Senior, "experience_quality", 4)); err != nil {
		return err
	}
	if err := session.Apply(ctx, app.NewTagEdit("platform team fit", true)); err != nil {
		return err
	}

	rec := recorder.New(recorder.WithSeed(cfg.RecorderSeed))
	if err := rec.Start(ctx); err != nil {
		return err
	}
	note, err := rec.Stop(ctx)
	if err != nil {
		return err
	}
	if err := session.Apply(ctx, app.NewAudioAdd(note)); err != nil {
		return err
	}

	return session.Close(ctx)
}

// runComparison stages the three strongest candidates and saves the matrix.
func runComparison(ctx context.Context, svc *app.Service) error {
	r := svc.Rubric()
	all := svc.Assessments(ctx)
	sort.SliceStable(all, func(i, j int) bool {
		return scoring.OverallScore(&all[i], r) > scoring.OverallScore(&all[j], r)
	})

	for i := 0; i < len(all) && i < 3; i++ {
		svc.ToggleCompare(ctx, all[i].ID)
	}
	if !svc.CanCompare(ctx) {
		return nil
	}

	m := svc.BuildSelected(ctx)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CANDIDATE\tJUNIOR\tMID\tSENIOR\tBEST FIT\tOVERALL")
	for _, row := range m.Rows {
		bestFit := "-"
		if row.BestFitMet {
			bestFit = string(row.BestFit)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%d\n",
			row.CandidateName,
			row.LevelScores[rubric.Junior],
			row.LevelScores[rubric.Mid],
			row.LevelScores[rubric.Senior],
			bestFit, row.Overall)
	}
	w.Flush()
	fmt.Println()

	_, err := svc.SaveComparison(ctx, "Top candidates", svc.Selected(ctx))
	return err
}

// printMetrics dumps the domain metric families collected during the run.
func printMetrics() {
	families, err := metrics.Registry().Gather()
	if err != nil {
		os.Stderr.WriteString("failed to gather metrics: " + err.Error() + "\n")
		return
	}
	fmt.Println("metrics:")
	for _, mf := range families {
		fmt.Printf("  %s (%d series)\n", mf.GetName(), len(mf.GetMetric()))
	}
}
