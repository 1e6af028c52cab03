// Package seed loads a demo roster of assessments so the dashboard renders
// something useful on a fresh start.
package seed

import (
	"context"

	"github.com/okian/hireboard/internal/adapters/repository"
	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
)

// fixture describes one seeded candidate before it gets a store identity.
type fixture struct {
	candidateName string
	role          string
	notes         string
	skills        []string
	tags          []string
	links         model.Links
	audioNotes    []model.AudioNote
	scores        map[rubric.Level]map[string]int
}

// Load creates the demo roster in the store and returns the stored records,
// oldest fixture first in creation order so the listing shows the newest on
// top. Scores pass through the store's sanitizer like any other update.
func Load(ctx context.Context, store repository.Store) ([]model.Assessment, error) {
	fixtures := roster()
	out := make([]model.Assessment, 0, len(fixtures))

	// Create oldest first so the most recent candidate lists first.
	for i := len(fixtures) - 1; i >= 0; i-- {
		f := fixtures[i]
		a, err := store.Create(ctx, f.candidateName, f.role, f.links)
		if err != nil {
			return nil, err
		}

		a.Notes = f.notes
		a.Skills = append([]string(nil), f.skills...)
		a.Tags = append([]string(nil), f.tags...)
		a.AudioNotes = append([]model.AudioNote(nil), f.audioNotes...)
		for level, scores := range f.scores {
			for id, v := range scores {
				a.Scores[level][id] = v
			}
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

// roster returns the demo candidates, most recently assessed first.
func roster() []fixture {
	return []fixture{
		{
			candidateName: "Stevie Nicks",
			role:          "Senior Full-Stack Developer",
			notes:         "Excellent system design skills. Strong communication. Would be great for the platform team.",
			skills:        []string{"React", "Node.js", "PostgreSQL", "AWS"},
			tags:          []string{"strong communicator", "team player", "leadership potential"},
			links: model.Links{
				LinkedIn:  "https://linkedin.com/in/stevienicks",
				GitHub:    "https://github.com/stevienicks",
				Portfolio: "https://stevienicks.dev",
			},
			audioNotes: []model.AudioNote{
				{
					ID:         "audio-1",
					Duration:   145,
					Transcript: "Stevie demonstrated excellent problem-solving skills during the system design discussion. Her approach to scalability was particularly impressive.",
				},
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Senior: {
					"technical_depth":          4,
					"practical_judgment":       4,
					"communication_leadership": 4,
					"experience_quality":       3,
				},
			},
		},
		{
			candidateName: "Robert Plant",
			role:          "Mid-Level Backend Developer",
			notes:         "Solid backend fundamentals. Needs more experience with distributed systems.",
			skills:        []string{"Python", "Django", "Redis", "Docker"},
			tags:          []string{"independent worker", "detail-oriented"},
			links: model.Links{
				GitHub:   "https://github.com/robertplant",
				LinkedIn: "https://linkedin.com/in/robertplant",
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Mid: {
					"technical_depth": 3,
					"problem_solving": 3,
					"autonomy":        3,
					"communication":   2,
				},
			},
		},
		{
			candidateName: "Janis Joplin",
			role:          "Junior Frontend Developer",
			notes:         "Great potential. Strong CSS skills and attention to detail. Needs mentorship on JS fundamentals.",
			skills:        []string{"HTML", "CSS", "JavaScript", "React"},
			tags:          []string{"eager to learn", "creative thinker", "needs mentorship"},
			links: model.Links{
				Portfolio: "https://janisjoplin.com",
				CodePen:   "https://codepen.io/janisjoplin",
			},
			audioNotes: []model.AudioNote{
				{
					ID:         "audio-2",
					Duration:   89,
					Transcript: "Janis showed great enthusiasm and willingness to learn. Her CSS animations were impressive for a junior developer.",
				},
				{
					ID:         "audio-3",
					Duration:   62,
					Transcript: "Follow-up: Discussed career growth path and mentorship opportunities.",
				},
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Junior: {
					"technical_basics": 3,
					"learning_ability": 3,
					"code_quality":     2,
					"collaboration":    2,
				},
			},
		},
		{
			candidateName: "Eddie Vedder",
			role:          "Senior Full-Stack Developer",
			notes:         "Exceptional technical depth. Has led teams of 5+ engineers. Strong culture fit.",
			skills:        []string{"TypeScript", "React", "GraphQL", "Kubernetes"},
			tags:          []string{"natural leader", "mentor", "culture fit"},
			links: model.Links{
				LinkedIn: "https://linkedin.com/in/eddievedder",
				GitHub:   "https://github.com/eddievedder",
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Senior: {
					"technical_depth":          5,
					"practical_judgment":       5,
					"communication_leadership": 5,
					"experience_quality":       4,
				},
			},
		},
		{
			candidateName: "Joni Mitchell",
			role:          "Mid-Level Frontend Developer",
			notes:         "Strong React and TypeScript knowledge. Good eye for UX. Could improve testing practices.",
			skills:        []string{"React", "TypeScript", "Tailwind", "Jest"},
			links: model.Links{
				Portfolio: "https://jonimitchell.io",
				GitHub:    "https://github.com/jonimitchell",
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Mid: {
					"technical_depth": 3,
					"problem_solving": 3,
					"autonomy":        2,
					"communication":   3,
				},
			},
		},
		{
			candidateName: "John Lennon",
			role:          "Junior Backend Developer",
			notes:         "Recent bootcamp grad. Enthusiastic learner. Needs real-world project experience.",
			skills:        []string{"Node.js", "Express", "MongoDB"},
			links: model.Links{
				GitHub:   "https://github.com/johnlennon",
				LinkedIn: "https://linkedin.com/in/johnlennon",
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Junior: {
					"technical_basics": 2,
					"learning_ability": 4,
					"code_quality":     2,
					"collaboration":    3,
				},
			},
		},
		{
			candidateName: "Debbie Harry",
			role:          "Senior Frontend Architect",
			notes:         "Incredible expertise in frontend architecture. Has built design systems at scale. Would be perfect for our component library initiative.",
			skills:        []string{"React", "TypeScript", "Design Systems", "Storybook", "Figma"},
			links: model.Links{
				Portfolio: "https://debbieharry.com",
				LinkedIn:  "https://linkedin.com/in/debbieharry",
				GitHub:    "https://github.com/debbieharry",
			},
			audioNotes: []model.AudioNote{
				{
					ID:         "audio-4",
					Duration:   203,
					Transcript: "Debbie presented her work on building a design system from scratch. Her approach to accessibility and component composition was world-class.",
				},
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Senior: {
					"technical_depth":          5,
					"practical_judgment":       4,
					"communication_leadership": 5,
					"experience_quality":       4,
				},
			},
		},
		{
			candidateName: "Anthony Kiedis",
			role:          "Mid-Level DevOps Engineer",
			notes:         "Strong infrastructure knowledge. Good with CI/CD pipelines. Limited programming background.",
			skills:        []string{"Kubernetes", "Docker", "Terraform", "AWS", "Jenkins"},
			links: model.Links{
				GitHub: "https://github.com/anthonykiedis",
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Mid: {
					"technical_depth": 3,
					"problem_solving": 3,
					"autonomy":        3,
					"communication":   2,
				},
			},
		},
		{
			candidateName: "Aretha Franklin",
			role:          "Senior Backend Architect",
			notes:         "Expert in microservices architecture. Strong experience with cloud-native technologies. Great mentor.",
			skills:        []string{"Go", "Microservices", "Kafka", "Redis", "GCP"},
			links: model.Links{
				LinkedIn: "https://linkedin.com/in/arethafranklin",
				GitHub:   "https://github.com/arethafranklin",
			},
			audioNotes: []model.AudioNote{
				{
					ID:         "audio-5",
					Duration:   178,
					Transcript: "Aretha shared her experience scaling services to handle millions of requests. Her approach to event-driven architecture was impressive.",
				},
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Senior: {
					"technical_depth":          5,
					"practical_judgment":       5,
					"communication_leadership": 4,
					"experience_quality":       4,
				},
			},
		},
		{
			candidateName: "Kurt Cobain",
			role:          "Mid-Level Full-Stack Developer",
			notes:         "Balanced skills across frontend and backend. Good team player. Would benefit from more complex project exposure.",
			skills:        []string{"Vue.js", "Node.js", "MySQL", "AWS"},
			links: model.Links{
				GitHub:    "https://github.com/kurtcobain",
				Portfolio: "https://kurtcobain.dev",
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Mid: {
					"technical_depth": 3,
					"problem_solving": 3,
					"autonomy":        3,
					"communication":   3,
				},
			},
		},
		{
			candidateName: "Ryan O'Brien",
			role:          "Junior Full-Stack Developer",
			notes:         "Self-taught developer with impressive portfolio projects. Quick learner but lacks professional experience.",
			skills:        []string{"React", "Node.js", "MongoDB", "Tailwind"},
			links: model.Links{
				GitHub:    "https://github.com/robrien",
				Portfolio: "https://ryanobrien.tech",
				CodePen:   "https://codepen.io/robrien",
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Junior: {
					"technical_basics": 3,
					"learning_ability": 4,
					"code_quality":     2,
					"collaboration":    2,
				},
			},
		},
		{
			candidateName: "Fatima Hassan",
			role:          "Senior Data Engineer",
			notes:         "Exceptional data pipeline design. Experience with large-scale ETL. Strong Python and SQL skills.",
			skills:        []string{"Python", "SQL", "Spark", "Airflow", "AWS", "Snowflake"},
			links: model.Links{
				LinkedIn: "https://linkedin.com/in/fatimahassan",
				GitHub:   "https://github.com/fhassan",
			},
			scores: map[rubric.Level]map[string]int{
				rubric.Senior: {
					"technical_depth":          5,
					"practical_judgment":       4,
					"communication_leadership": 4,
					"experience_quality":       4,
				},
			},
		},
	}
}
