package llm

import (
	"context"
	"errors"
)

// Unavailable returns a Provider whose every call fails with
// ErrProviderUnavailable. It stands in when no backend is configured so
// the rest of the system runs on its local fallbacks.
func Unavailable(reason string) Provider {
	return unavailableProvider{reason: reason}
}

type unavailableProvider struct {
	reason string
}

func (p unavailableProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{Err: errors.New(p.reason)}
}

func (p unavailableProvider) ModelID() string {
	return "none"
}
