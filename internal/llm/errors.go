package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitedError reports a 429 from the provider. RetryAfter is the
// pause the provider asked for, zero when it did not send one.
type RateLimitedError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *RateLimitedError) Unwrap() error { return e.Err }

// BadOutputError reports a generation that cannot be used as a
// question batch: the model returned no text, invalid JSON, JSON that
// fails the request schema, or output truncated at the token limit.
// Raw keeps the offending output for diagnostics.
type BadOutputError struct {
	Raw json.RawMessage
	Err error
}

func (e *BadOutputError) Error() string {
	return fmt.Sprintf("unusable model output: %v", e.Err)
}

func (e *BadOutputError) Unwrap() error { return e.Err }

// UnavailableError reports that the provider could not serve the
// request at all: a 5xx, a network failure, or an exhausted mock.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return "provider unavailable"
	}
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
