package model

import (
	"fmt"

	"fyne.io/fyne/v2/data/binding"
	apperrors "github.com/shhac/discbag/internal/errors"
)

// Lookup status values shown by the status bar
const (
	StatusIdle      = "idle"
	StatusSearching = "searching"
	StatusLoaded    = "loaded"
	StatusError     = "error"
)

// LookupUIState holds the bindable values the window derives from a
// BagView snapshot. Update it from the UI goroutine only.
type LookupUIState struct {
	State   binding.String // One of the Status* constants
	Message binding.String // Status bar text
	Error   binding.String // Inline error message, empty when none
	Loading binding.Bool
}

// NewLookupUIState creates a LookupUIState in the idle state.
func NewLookupUIState() *LookupUIState {
	state := binding.NewString()
	_ = state.Set(StatusIdle)

	return &LookupUIState{
		State:   state,
		Message: binding.NewString(),
		Error:   binding.NewString(),
		Loading: binding.NewBool(),
	}
}

// Apply copies the parts of a snapshot the bindings expose.
func (s *LookupUIState) Apply(snap Snapshot) {
	_ = s.Loading.Set(snap.Loading)
	_ = s.Error.Set(snap.Error)

	switch {
	case snap.Loading:
		_ = s.State.Set(StatusSearching)
		_ = s.Message.Set(fmt.Sprintf("Searching %s...", describeIdentifier(snap.SearchedTerm)))
	case snap.Err != nil:
		_ = s.State.Set(StatusError)
		if uiErr := apperrors.ClassifyError(snap.Err); uiErr != nil {
			_ = s.Message.Set(uiErr.Title)
		}
	case snap.Searched:
		_ = s.State.Set(StatusLoaded)
		_ = s.Message.Set(fmt.Sprintf("Loaded %d discs for %s", snap.Bag.Count(), describeIdentifier(snap.SearchedTerm)))
	default:
		_ = s.State.Set(StatusIdle)
		_ = s.Message.Set("")
	}
}

func describeIdentifier(identifier string) string {
	if identifier == "" {
		return "your bag"
	}
	return "user " + identifier
}
