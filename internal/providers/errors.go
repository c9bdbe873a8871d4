package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// StatusError reports a non-success HTTP status from an upstream feed.
type StatusError struct {
	Feed       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Feed, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Feed, e.StatusCode, e.Body)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

// DecodeError reports an upstream payload that could not be parsed.
type DecodeError struct {
	Feed string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Feed, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsTimeout reports whether err came from a deadline or a network timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Retryable reports whether another attempt could plausibly succeed.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrProviderUnavailable) {
		return false
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return false
	}
	if stErr, ok := AsStatusError(err); ok {
		return stErr.StatusCode >= 500
	}
	return true
}
