package recorder

import "errors"

// Sentinel kinds for recorder errors.
var (
	ErrAlreadyRecording = errors.New("recording already in progress")
	ErrNotRecording     = errors.New("no recording in progress")
)
