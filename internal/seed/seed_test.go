package seed

import (
	"context"
	"testing"

	"github.com/okian/hireboard/internal/adapters/repository"
	"github.com/okian/hireboard/internal/domain/rubric"
	"github.com/okian/hireboard/internal/domain/scoring"
)

func TestLoad(t *testing.T) {
	store := repository.NewMemStore(rubric.Default())
	ctx := context.Background()

	loaded, err := Load(ctx, store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := store.Count(ctx), len(roster()); got != want {
		t.Fatalf("count = %d, want %d", got, want)
	}
	if got, want := len(loaded), len(roster()); got != want {
		t.Fatalf("len(loaded) = %d, want %d", got, want)
	}

	listing := store.List(ctx)
	if listing[0].CandidateName != "Stevie Nicks" {
		t.Errorf("newest candidate = %q, want Stevie Nicks", listing[0].CandidateName)
	}
	if listing[len(listing)-1].CandidateName != "Fatima Hassan" {
		t.Errorf("oldest candidate = %q, want Fatima Hassan", listing[len(listing)-1].CandidateName)
	}
}

func TestLoadScoresSurviveSanitizing(t *testing.T) {
	r := rubric.Default()
	store := repository.NewMemStore(r)
	ctx := context.Background()

	loaded, err := Load(ctx, store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	for _, a := range loaded {
		for level, scores := range a.Scores {
			for id, v := range scores {
				comp, ok := r.Competency(level, id)
				if !ok {
					t.Errorf("%s: unknown competency %s/%s survived", a.CandidateName, level, id)
					continue
				}
				if v < 0 || v > comp.MaxScore {
					t.Errorf("%s: score %s/%s = %d out of range", a.CandidateName, level, id, v)
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	r := rubric.Default()
	ctx := context.Background()

	first, err := Generate(ctx, repository.NewMemStore(r), r, 10, 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := Generate(ctx, repository.NewMemStore(r), r, 10, 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(first) != 10 || len(second) != 10 {
		t.Fatalf("lengths = %d, %d, want 10", len(first), len(second))
	}
	for i := range first {
		if first[i].CandidateName != second[i].CandidateName {
			t.Errorf("candidate %d: %q vs %q under same seed", i, first[i].CandidateName, second[i].CandidateName)
		}
		for level, scores := range first[i].Scores {
			for id, v := range scores {
				if second[i].Scores[level][id] != v {
					t.Errorf("candidate %d: score %s/%s differs under same seed", i, level, id)
				}
			}
		}
	}
}

func TestGenerateScoresWithinRubricBounds(t *testing.T) {
	r := rubric.Default()
	store := repository.NewMemStore(r)

	generated, err := Generate(context.Background(), store, r, 25, 0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, a := range generated {
		for level, scores := range a.Scores {
			for id, v := range scores {
				comp, ok := r.Competency(level, id)
				if !ok {
					t.Fatalf("%s: unknown competency %s/%s", a.CandidateName, level, id)
				}
				if v < 0 || v > comp.MaxScore {
					t.Errorf("%s: score %s/%s = %d out of range", a.CandidateName, level, id, v)
				}
			}
		}
	}
}

func TestLoadProducesQualifiedSeniors(t *testing.T) {
	r := rubric.Default()
	store := repository.NewMemStore(r)
	ctx := context.Background()

	loaded, err := Load(ctx, store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	byName := make(map[string]int)
	for i := range loaded {
		byName[loaded[i].CandidateName] = i
	}

	idx, ok := byName["Eddie Vedder"]
	if !ok {
		t.Fatal("Eddie Vedder missing from roster")
	}
	level, met := scoring.BestFitLevel(&loaded[idx], r)
	if !met || level != rubric.Senior {
		t.Errorf("Eddie Vedder best fit = %s met=%v, want senior met", level, met)
	}

	idx, ok = byName["Janis Joplin"]
	if !ok {
		t.Fatal("Janis Joplin missing from roster")
	}
	if _, met := scoring.BestFitLevel(&loaded[idx], r); met {
		t.Error("Janis Joplin should fall below every threshold")
	}
}
