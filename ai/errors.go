package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential indicates the provider key is absent or still a
	// placeholder. Pipelines treat it as "use mock data", not as a failure.
	ErrMissingCredential = errors.New("provider credential not configured")

	// ErrProviderHTTP indicates the provider answered with a non-2xx status.
	ErrProviderHTTP = errors.New("provider returned an error status")

	// ErrProviderParse indicates the provider body could not be decoded.
	ErrProviderParse = errors.New("provider response could not be parsed")
)

// HTTPError carries the status of a failed provider call. It matches
// ErrProviderHTTP with errors.Is.
type HTTPError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrProviderHTTP
}
