package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/discbag/internal/model"
)

// StatusBar displays the current lookup status with a shape-changing icon indicator.
// Each state uses a distinct icon shape for accessibility (not color-only):
//   - Idle: empty radio button (circle outline)
//   - Searching: view-refresh icon (circular arrows)
//   - Loaded: confirm icon (checkmark)
//   - Error: error icon (X shape), plus a Details button
type StatusBar struct {
	widget.BaseWidget

	state       *model.LookupUIState
	statusLabel *widget.Label
	indicator   *widget.Icon
	detailsBtn  *widget.Button

	onDetails func()
}

// NewStatusBar creates a new status bar bound to the given lookup state.
func NewStatusBar(state *model.LookupUIState) *StatusBar {
	label := widget.NewLabel("Ready")
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:       state,
		statusLabel: label,
		indicator:   widget.NewIcon(theme.RadioButtonIcon()),
	}
	s.detailsBtn = widget.NewButton("Details", func() {
		if s.onDetails != nil {
			s.onDetails()
		}
	})
	s.detailsBtn.Importance = widget.LowImportance
	s.detailsBtn.Hide()
	s.ExtendBaseWidget(s)

	state.State.AddListener(binding.NewDataListener(s.updateStatus))
	state.Message.AddListener(binding.NewDataListener(s.updateStatus))

	s.updateStatus()

	return s
}

// SetOnDetails sets the callback for the Details button shown on errors.
func (s *StatusBar) SetOnDetails(fn func()) {
	s.onDetails = fn
}

// updateStatus refreshes the status bar based on current state.
func (s *StatusBar) updateStatus() {
	stateStr, _ := s.state.State.Get()
	message, _ := s.state.Message.Get()

	s.detailsBtn.Hide()

	switch stateStr {
	case model.StatusIdle:
		s.indicator.SetResource(theme.RadioButtonIcon())
		s.statusLabel.SetText(orDefault(message, "Ready"))

	case model.StatusSearching:
		s.indicator.SetResource(theme.ViewRefreshIcon())
		s.statusLabel.SetText(orDefault(message, "Searching..."))

	case model.StatusLoaded:
		s.indicator.SetResource(theme.ConfirmIcon())
		s.statusLabel.SetText(orDefault(message, "Loaded"))

	case model.StatusError:
		s.indicator.SetResource(theme.ErrorIcon())
		s.statusLabel.SetText(orDefault(message, "Lookup Failed"))
		s.detailsBtn.Show()

	default:
		s.indicator.SetResource(theme.RadioButtonIcon())
		s.statusLabel.SetText("Unknown state")
	}

	s.statusLabel.Refresh()
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

// Text returns the label currently shown.
func (s *StatusBar) Text() string {
	return s.statusLabel.Text
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	statusContainer := container.NewBorder(nil, nil,
		s.indicator,
		s.detailsBtn,
		s.statusLabel,
	)

	return widget.NewSimpleRenderer(statusContainer)
}
