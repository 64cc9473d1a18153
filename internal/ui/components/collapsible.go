package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// CollapsibleSection is a header button over a body that is shown only
// while the section is open. Unlike widget.Accordion it keeps no state of
// its own: the owner decides when it is open and reacts to OnToggle.
type CollapsibleSection struct {
	widget.BaseWidget

	title  string
	count  int
	open   bool
	header *widget.Button
	body   *fyne.Container

	// OnToggle is called when the header is tapped.
	OnToggle func()
}

// NewCollapsibleSection creates a closed section.
func NewCollapsibleSection(title string, content ...fyne.CanvasObject) *CollapsibleSection {
	s := &CollapsibleSection{title: title}
	s.header = widget.NewButtonWithIcon("", theme.MenuDropDownIcon(), func() {
		if s.OnToggle != nil {
			s.OnToggle()
		}
	})
	s.header.Alignment = widget.ButtonAlignLeading
	s.header.Importance = widget.LowImportance
	s.body = container.NewVBox(content...)
	s.ExtendBaseWidget(s)
	s.update()
	return s
}

// SetOpen shows or hides the body.
func (s *CollapsibleSection) SetOpen(open bool) {
	if s.open == open {
		return
	}
	s.open = open
	s.update()
}

// IsOpen reports whether the body is visible.
func (s *CollapsibleSection) IsOpen() bool {
	return s.open
}

// SetCount sets the item count shown after the title.
func (s *CollapsibleSection) SetCount(n int) {
	s.count = n
	s.update()
}

// SetContent replaces the body objects.
func (s *CollapsibleSection) SetContent(objects ...fyne.CanvasObject) {
	s.body.Objects = objects
	s.body.Refresh()
}

// HeaderText returns the label shown on the header button.
func (s *CollapsibleSection) HeaderText() string {
	return s.header.Text
}

// Tap toggles the section as if the header were clicked.
func (s *CollapsibleSection) Tap() {
	s.header.OnTapped()
}

func (s *CollapsibleSection) update() {
	s.header.SetText(fmt.Sprintf("%s  (%d)", s.title, s.count))
	if s.open {
		s.header.SetIcon(theme.MenuDropDownIcon())
		s.body.Show()
	} else {
		s.header.SetIcon(theme.MenuExpandIcon())
		s.body.Hide()
	}
}

// CreateRenderer implements fyne.Widget.
func (s *CollapsibleSection) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(s.header, s.body))
}
