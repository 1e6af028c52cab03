package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound           = errors.New("assessment not found")
	ErrEmptyName          = errors.New("candidate name must not be empty")
	ErrUnknownLevel       = errors.New("unknown seniority level")
	ErrUnknownCompetency  = errors.New("unknown competency for level")
	ErrInvalidName        = errors.New("comparison name must not be empty")
	ErrSelectionSize      = errors.New("comparison needs two or three assessments")
	ErrComparisonNotFound = errors.New("saved comparison not found")
)
