// Package rubric defines the leveled competency rubric the assessment core
// scores against. The rubric is read-only configuration: loaded once at
// startup and never mutated.
package rubric

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Level is a seniority level. Values are ordered junior < mid < senior.
type Level string

// Seniority levels.
const (
	Junior Level = "junior"
	Mid    Level = "mid"
	Senior Level = "senior"
)

// Levels returns all levels in ascending seniority order.
func Levels() []Level {
	return []Level{Junior, Mid, Senior}
}

// LevelsByPrecedence returns all levels in best-fit evaluation order.
// A candidate meeting several thresholds is reported at the highest level.
func LevelsByPrecedence() []Level {
	return []Level{Senior, Mid, Junior}
}

// Valid reports whether l is a known seniority level.
func (l Level) Valid() bool {
	return l == Junior || l == Mid || l == Senior
}

// Question is a suggested interview question with the reasoning behind it.
type Question struct {
	Text      string `koanf:"question"`
	Rationale string `koanf:"rationale"`
}

// Competency is a scorable dimension within one level's rubric.
// Competencies are defined by configuration and never change at runtime.
type Competency struct {
	ID              string     `koanf:"id"`
	Label           string     `koanf:"label"`
	MaxScore        int        `koanf:"max_score"`
	SampleQuestions []Question `koanf:"sample_questions"`
}

// LevelRubric holds the pass threshold and competencies for one level.
type LevelRubric struct {
	// Threshold is the 0-100 level score required to meet this level.
	Threshold    int          `koanf:"threshold"`
	Competencies []Competency `koanf:"competencies"`
}

// Rubric maps each seniority level to its rubric.
type Rubric map[Level]LevelRubric

// Competency looks up a competency by level and id.
func (r Rubric) Competency(level Level, id string) (Competency, bool) {
	for _, c := range r[level].Competencies {
		if c.ID == id {
			return c, true
		}
	}
	return Competency{}, false
}

// TotalPossible returns the sum of max scores for a level.
func (r Rubric) TotalPossible(level Level) int {
	total := 0
	for _, c := range r[level].Competencies {
		total += c.MaxScore
	}
	return total
}

// Threshold returns the pass threshold for a level.
func (r Rubric) Threshold(level Level) int {
	return r[level].Threshold
}

// Validate checks structural invariants: all three levels present,
// thresholds in [0,100], max scores >= 1, competency ids unique per level.
func (r Rubric) Validate() error {
	for _, level := range Levels() {
		lr, ok := r[level]
		if !ok {
			return fmt.Errorf("%w: missing level %q", ErrInvalidRubric, level)
		}
		if lr.Threshold < 0 || lr.Threshold > 100 {
			return fmt.Errorf("%w: level %q threshold %d out of range", ErrInvalidRubric, level, lr.Threshold)
		}
		seen := make(map[string]bool, len(lr.Competencies))
		for _, c := range lr.Competencies {
			if c.ID == "" {
				return fmt.Errorf("%w: level %q has a competency without an id", ErrInvalidRubric, level)
			}
			if seen[c.ID] {
				return fmt.Errorf("%w: level %q has duplicate competency %q", ErrInvalidRubric, level, c.ID)
			}
			seen[c.ID] = true
			if c.MaxScore < 1 {
				return fmt.Errorf("%w: competency %q max score must be at least 1", ErrInvalidRubric, c.ID)
			}
		}
	}
	return nil
}

// fileRubric mirrors the YAML layout of an external rubric definition.
type fileRubric struct {
	Junior LevelRubric `koanf:"junior"`
	Mid    LevelRubric `koanf:"mid"`
	Senior LevelRubric `koanf:"senior"`
}

// LoadFile parses a YAML rubric from path and validates it.
// The file layout mirrors the built-in rubric: a junior/mid/senior mapping
// of threshold plus competencies.
func LoadFile(path string) (Rubric, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRubric, err)
	}

	var fr fileRubric
	if err := k.UnmarshalWithConf("", &fr, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRubric, err)
	}

	r := Rubric{
		Junior: fr.Junior,
		Mid:    fr.Mid,
		Senior: fr.Senior,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
