package errors

import (
	"errors"
	"fmt"
)

// FallbackMessage is shown when a failed lookup carries no server message.
const FallbackMessage = "An error occurred."

// Sentinel errors for common failure modes.
var (
	ErrLookupFailed   = errors.New("lookup failed")
	ErrInvalidBaseURL = errors.New("invalid base URL")
	ErrMalformedBag   = errors.New("malformed bag response")
)

// LookupError is returned for every unsuccessful bag lookup: transport
// failures, non-2xx responses and undecodable bodies.
type LookupError struct {
	URL        string
	StatusCode int    // 0 when no response was received
	Message    string // Server-provided message, empty if none
	Err        error
}

func (e *LookupError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("lookup %s: status %d: %s", e.URL, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("lookup %s: status %d", e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("lookup %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("lookup %s failed", e.URL)
}

// Unwrap exposes both the LookupFailed kind and the underlying cause.
func (e *LookupError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrLookupFailed}
	}
	return []error{ErrLookupFailed, e.Err}
}

// DisplayMessage returns the text to show inline for a failed lookup:
// the server's message when one was sent, FallbackMessage otherwise.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) && lookupErr.Message != "" {
		return lookupErr.Message
	}
	return FallbackMessage
}

// ValidationError represents a configuration value that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
