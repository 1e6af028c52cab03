package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/okian/hireboard/internal/adapters/repository"
	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
)

const defaultSeed = 42

// Candidate name pools for synthetic generation.
var (
	firstNames = []string{ //nolint:gochecknoglobals // fixture data
		"Alex", "Sam", "Jordan", "Casey", "Riley", "Morgan", "Quinn", "Avery",
		"Dana", "Reese", "Taylor", "Jamie",
	}
	lastNames = []string{ //nolint:gochecknoglobals // fixture data
		"Reyes", "Kim", "Patel", "Novak", "Okoye", "Larsen", "Costa", "Ivanov",
		"Tanaka", "Moreau", "Haddad", "Singh",
	}
	roles = []string{ //nolint:gochecknoglobals // fixture data
		"Junior Frontend Developer", "Mid-Level Backend Developer",
		"Senior Full-Stack Developer", "Mid-Level DevOps Engineer",
		"Senior Platform Engineer",
	}
	skillPool = []string{ //nolint:gochecknoglobals // fixture data
		"Go", "React", "TypeScript", "PostgreSQL", "Kubernetes", "Docker",
		"Python", "Kafka", "Redis", "AWS", "Terraform", "GraphQL",
	}
)

// Generate creates n synthetic assessments with randomized scores, useful for
// exercising pagination. The output is deterministic under a fixed seed.
func Generate(ctx context.Context, store repository.Store, r rubric.Rubric, n int, seed int64) ([]model.Assessment, error) {
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible fixtures

	out := make([]model.Assessment, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s %s",
			firstNames[rng.Intn(len(firstNames))],
			lastNames[rng.Intn(len(lastNames))])
		role := roles[rng.Intn(len(roles))]

		a, err := store.Create(ctx, name, role, model.Links{})
		if err != nil {
			return nil, err
		}

		for j := 0; j < 3; j++ {
			a.AddSkill(skillPool[rng.Intn(len(skillPool))])
		}

		// Score one level per candidate, weighted toward the role's seniority
		// only loosely: a uniform pick keeps the distribution interesting.
		level := rubric.Levels()[rng.Intn(len(rubric.Levels()))]
		for _, c := range r[level].Competencies {
			a.Scores[level][c.ID] = rng.Intn(c.MaxScore + 1)
		}

		if err := store.Update(ctx, a); err != nil {
			return nil, err
		}
		stored, err := store.Get(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}
	return out, nil
}
