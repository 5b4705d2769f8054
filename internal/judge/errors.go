package judge

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Sentinel errors for judgment requests.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNotConfigured indicates the judgment service has no usable
	// credential; the request fails fast without an external call.
	ErrNotConfigured = errors.New("judge is not configured, add an API key to your .env file")

	// ErrRequestInFlight indicates another dispatch is already running.
	// Only one external request may be in flight at a time.
	ErrRequestInFlight = errors.New("a roast is already being generated")

	// ErrTimeout indicates the external call exceeded its bound.
	ErrTimeout = errors.New("request timed out, check your connection and try again")

	// ErrNetwork indicates a transport-level failure reaching the service.
	ErrNetwork = errors.New("could not connect to the server, check your internet connection")

	// ErrEmptyResponse indicates the service answered without usable text.
	ErrEmptyResponse = errors.New("received an empty response from the judge")
)

// RateLimitError is a local policy rejection; no external call was made.
type RateLimitError struct {
	SecondsRemaining int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("Easy there! Wait %d seconds before getting roasted again.", e.SecondsRemaining)
}

// ServiceError is a recognizable failure returned by the external
// service, distinguished loosely by status class.
type ServiceError struct {
	StatusHint string // "unauthorized", "rate_limited", "server_error" or "unknown"
	Message    string
}

func (e *ServiceError) Error() string {
	switch e.StatusHint {
	case "unauthorized":
		return "invalid API key, check your configuration"
	case "rate_limited":
		return "too many requests, wait a moment and try again"
	case "server_error":
		return "the judge is having a moment, try again later"
	}
	if e.Message != "" {
		return e.Message
	}
	return "something went wrong, please try again"
}

// Code returns the internal error code for a judgment error, suitable
// for logging alongside the user-facing message.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, ErrRequestInFlight):
		return "request_in_flight"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNetwork):
		return "network_error"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	}

	var rateErr *RateLimitError
	if errors.As(err, &rateErr) {
		return "rate_limited"
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return "service_" + svcErr.StatusHint
	}
	return "unknown_error"
}

// classifyGenerateError maps a raw error from the generation backend
// onto the judgment error taxonomy. The backend surfaces opaque errors,
// so status classes are matched loosely on the message text.
func classifyGenerateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrTimeout
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "authentication") || strings.Contains(msg, "api key"):
		return &ServiceError{StatusHint: "unauthorized", Message: err.Error()}
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "overloaded"):
		return &ServiceError{StatusHint: "rate_limited", Message: err.Error()}
	case strings.Contains(msg, "500") || strings.Contains(msg, "502") ||
		strings.Contains(msg, "503") || strings.Contains(msg, "internal server"):
		return &ServiceError{StatusHint: "server_error", Message: err.Error()}
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "dial tcp"):
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return &ServiceError{StatusHint: "unknown", Message: err.Error()}
}
