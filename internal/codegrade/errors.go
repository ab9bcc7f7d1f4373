package codegrade

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidVerdict indicates the model returned content that does not
// conform to the verdict schema.
type ErrInvalidVerdict struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidVerdict) Error() string {
	return fmt.Sprintf("invalid grading verdict: %v", e.Err)
}

func (e *ErrInvalidVerdict) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the grading provider is down or
// unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grading provider unavailable: %v", e.Err)
	}
	return "grading provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
