package triage

import "errors"

var (
	// ErrProviderRequired is returned when an AI provider is not provided.
	ErrProviderRequired = errors.New("AI provider required")

	// ErrConfigRequired is returned when a provider configuration is not provided.
	ErrConfigRequired = errors.New("provider config required")
)
