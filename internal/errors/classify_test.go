package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupError_IsLookupFailed(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("search: %w", &LookupError{URL: "http://localhost:3001/bag", Err: cause})

	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.ErrorIs(t, err, cause)

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, 0, lookupErr.StatusCode)
}

func TestLookupError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *LookupError
		want string
	}{
		{
			name: "status and message",
			err:  &LookupError{URL: "http://x/bag/1", StatusCode: 404, Message: "user not found"},
			want: "lookup http://x/bag/1: status 404: user not found",
		},
		{
			name: "status only",
			err:  &LookupError{URL: "http://x/bag", StatusCode: 500},
			want: "lookup http://x/bag: status 500",
		},
		{
			name: "transport",
			err:  &LookupError{URL: "http://x/bag", Err: errors.New("dial tcp: refused")},
			want: "lookup http://x/bag: dial tcp: refused",
		},
		{
			name: "bare",
			err:  &LookupError{URL: "http://x/bag"},
			want: "lookup http://x/bag failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDisplayMessage(t *testing.T) {
	assert.Equal(t, "", DisplayMessage(nil))
	assert.Equal(t, "user not found", DisplayMessage(&LookupError{StatusCode: 404, Message: "user not found"}))
	assert.Equal(t, FallbackMessage, DisplayMessage(&LookupError{StatusCode: 500}))
	assert.Equal(t, FallbackMessage, DisplayMessage(errors.New("boom")))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		title    string
		severity ErrorSeverity
		message  string
	}{
		{
			name:     "not found with server message",
			err:      &LookupError{StatusCode: 404, Message: "user not found"},
			title:    "Bag Not Found",
			severity: SeverityWarning,
			message:  "user not found",
		},
		{
			name:     "server error without message",
			err:      &LookupError{StatusCode: 503},
			title:    "Server Error",
			severity: SeverityError,
			message:  "The bag service encountered an unexpected error.",
		},
		{
			name:     "unmapped status",
			err:      &LookupError{StatusCode: 418},
			title:    "Request Failed",
			severity: SeverityError,
			message:  FallbackMessage,
		},
		{
			name:     "timeout",
			err:      &LookupError{Err: context.DeadlineExceeded},
			title:    "Request Timeout",
			severity: SeverityError,
		},
		{
			name:     "cancelled",
			err:      &LookupError{Err: context.Canceled},
			title:    "Search Cancelled",
			severity: SeverityInfo,
		},
		{
			name:     "malformed",
			err:      &LookupError{Err: fmt.Errorf("%w: bad json", ErrMalformedBag)},
			title:    "Unreadable Response",
			severity: SeverityError,
		},
		{
			name:     "transport",
			err:      &LookupError{Err: errors.New("connection refused")},
			title:    "Cannot Reach Bag Service",
			severity: SeverityError,
		},
		{
			name:     "validation",
			err:      ValidationError{Field: "DISCBAG_TIMEOUT", Message: "must not be negative"},
			title:    "Validation Error",
			severity: SeverityError,
			message:  "must not be negative",
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			title:    "Unexpected Error",
			severity: SeverityError,
			message:  FallbackMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uiErr := ClassifyError(tt.err)
			require.NotNil(t, uiErr)
			assert.Equal(t, tt.title, uiErr.Title)
			assert.Equal(t, tt.severity, uiErr.Severity)
			if tt.message != "" {
				assert.Equal(t, tt.message, uiErr.Message)
			}
			assert.ErrorIs(t, uiErr, tt.err)
		})
	}
}

func TestClassifyError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}
