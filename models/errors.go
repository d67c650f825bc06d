package models

import "fmt"

// ValidationError reports a malformed search request. Always a client
// error, never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// RateLimitError reports an exhausted request budget with a retry hint.
type RateLimitError struct {
	RetryAfterSeconds int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %ds", e.RetryAfterSeconds)
}

// UpstreamError carries a non-2xx status or transport failure from the
// places provider. StatusCode is 0 when no response was received.
type UpstreamError struct {
	StatusCode int
	Msg        string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream request failed with status %d: %s", e.StatusCode, e.Msg)
	}
	return "upstream request failed: " + e.Msg
}
