package service

import (
	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/domain/rubric"
	"github.com/okian/hireboard/internal/notify"
)

// EditKind tags the kind of mutation an edit performs.
type EditKind string

// Edit kinds.
const (
	ScoreEdit EditKind = "score"
	NoteEdit  EditKind = "note"
	SkillEdit EditKind = "skill"
	TagEdit   EditKind = "tag"
	AudioEdit EditKind = "audio"
)

// Edit is one typed mutation applied to an editing session's working copy.
// Silent edits coalesce into a single end-of-session acknowledgment; noisy
// ones surface their own notification once the debounce window commits.
type Edit struct {
	Kind     EditKind
	Silent   bool
	Message  string
	Severity notify.Severity
	apply    func(a *model.Assessment, r rubric.Rubric)
}

// NewScoreTap is a silent score edit, used by tap/keyboard increments.
func NewScoreTap(level rubric.Level, competencyID string, score int) Edit {
	return Edit{
		Kind:   ScoreEdit,
		Silent: true,
		apply:  applyScore(level, competencyID, score),
	}
}

// NewScoreRelease is a noisy score edit, used when a slider drag is released.
func NewScoreRelease(level rubric.Level, competencyID string, score int) Edit {
	return Edit{
		Kind:     ScoreEdit,
		Message:  "Score updated",
		Severity: notify.Success,
		apply:    applyScore(level, competencyID, score),
	}
}

func applyScore(level rubric.Level, competencyID string, score int) func(*model.Assessment, rubric.Rubric) {
	return func(a *model.Assessment, r rubric.Rubric) {
		comp, ok := r.Competency(level, competencyID)
		if !ok {
			// Unknown ids never reach the stored record; the store
			// sanitizes on commit. Nothing to do here.
			return
		}
		a.SetScore(level, competencyID, score, comp.MaxScore)
	}
}

// NewNoteEdit replaces the free-text notes.
func NewNoteEdit(text string) Edit {
	return Edit{
		Kind:   NoteEdit,
		Silent: true,
		apply: func(a *model.Assessment, _ rubric.Rubric) {
			a.Notes = text
		},
	}
}

// NewSkillEdit adds or removes a skill.
func NewSkillEdit(skill string, add bool) Edit {
	return Edit{
		Kind:   SkillEdit,
		Silent: true,
		apply: func(a *model.Assessment, _ rubric.Rubric) {
			if add {
				a.AddSkill(skill)
			} else {
				a.RemoveSkill(skill)
			}
		},
	}
}

// NewTagEdit adds or removes a tag.
func NewTagEdit(tag string, add bool) Edit {
	return Edit{
		Kind:   TagEdit,
		Silent: true,
		apply: func(a *model.Assessment, _ rubric.Rubric) {
			if add {
				a.AddTag(tag)
			} else {
				a.RemoveTag(tag)
			}
		},
	}
}

// NewAudioAdd attaches a completed recording. The recorder collaborator
// already surfaced its own feedback, so the edit itself is silent.
func NewAudioAdd(note model.AudioNote) Edit {
	return Edit{
		Kind:   AudioEdit,
		Silent: true,
		apply: func(a *model.Assessment, _ rubric.Rubric) {
			a.AddAudioNote(note)
		},
	}
}

// NewAudioRemove deletes a recording by id.
func NewAudioRemove(id string) Edit {
	return Edit{
		Kind:   AudioEdit,
		Silent: true,
		apply: func(a *model.Assessment, _ rubric.Rubric) {
			a.RemoveAudioNote(id)
		},
	}
}
