package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
	SeverityFatal                        // Application must exit
)

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string   // Short user-facing title
	Message  string   // Detailed user-facing message
	Recovery []string // Suggested actions (bullet points)
	Details  string   // Technical details
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// ClassifyError converts an error into a UIError with appropriate
// severity, title, message, and recovery suggestions.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	var lookupErr *LookupError
	if errors.As(err, &lookupErr) && lookupErr.StatusCode != 0 {
		return classifyStatus(err, lookupErr)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The bag service took too long to respond.",
			Recovery: []string{"Try again", "Increase DISCBAG_TIMEOUT"},
			Details:  err.Error(),
		}

	case errors.Is(err, context.Canceled):
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "Search Cancelled",
			Message:  "The search was replaced by a newer one.",
			Recovery: []string{},
		}

	case errors.Is(err, ErrMalformedBag):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Unreadable Response",
			Message:  "The bag service returned data that could not be read.",
			Recovery: []string{"Check the service version", "Set DISCBAG_DECODE to match the service"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrInvalidBaseURL):
		return &UIError{
			Err:      err,
			Severity: SeverityFatal,
			Title:    "Invalid Configuration",
			Message:  "The bag service address is not a valid URL.",
			Recovery: []string{"Fix DISCBAG_BASE_URL"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrLookupFailed):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Cannot Reach Bag Service",
			Message:  "The bag service is not responding.",
			Recovery: []string{
				"Check that the service is running",
				"Verify DISCBAG_BASE_URL",
				"Check your network connection",
			},
			Details: err.Error(),
		}
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the value and try again"},
			Details:  validationErr.Error(),
		}
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  FallbackMessage,
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}

// classifyStatus maps a non-2xx lookup response to a UIError. The server's
// own message, when present, takes precedence over the generic text.
func classifyStatus(err error, lookupErr *LookupError) *UIError {
	details := fmt.Sprintf("HTTP %d %s", lookupErr.StatusCode, http.StatusText(lookupErr.StatusCode))
	message := func(generic string) string {
		if lookupErr.Message != "" {
			return lookupErr.Message
		}
		return generic
	}

	switch code := lookupErr.StatusCode; {
	case code == http.StatusNotFound:
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "Bag Not Found",
			Message:  message("No bag exists for that user."),
			Recovery: []string{"Check the user ID", "Clear the search to load your own bag"},
			Details:  details,
		}

	case code == http.StatusBadRequest:
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Invalid User ID",
			Message:  message("The service rejected the user ID."),
			Recovery: []string{"Check the user ID"},
			Details:  details,
		}

	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Access Denied",
			Message:  message("You don't have permission to view this bag."),
			Recovery: []string{},
			Details:  details,
		}

	case code == http.StatusTooManyRequests:
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Too Many Requests",
			Message:  message("The service is rate limiting searches."),
			Recovery: []string{"Wait a moment and try again"},
			Details:  details,
		}

	case code >= 500:
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Server Error",
			Message:  message("The bag service encountered an unexpected error."),
			Recovery: []string{"Try again later"},
			Details:  details,
		}
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Request Failed",
		Message:  message(FallbackMessage),
		Recovery: []string{"Try again"},
		Details:  details,
	}
}
