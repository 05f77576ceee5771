package httpapi

import "errors"

var (
	// ErrScoutRequired is returned when no pipelines are supplied.
	ErrScoutRequired = errors.New("scout pipelines required")

	errTrailingData    = errors.New("unexpected data after JSON body")
	errEmptyBody       = errors.New("request body is empty")
	errEmptyTranscript = errors.New("transcript cannot be empty")
)
