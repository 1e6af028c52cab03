package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrSessionClosed = errors.New("editing session already closed")
)
