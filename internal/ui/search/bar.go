package search

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/discbag/internal/model"
)

const placeholder = "User ID (blank for your own bag)"

// SearchBar holds the pending identifier and submits it explicitly, either
// from the Search button or with Enter. Typing never triggers a lookup.
type SearchBar struct {
	widget.BaseWidget

	entry     *widget.SelectEntry
	searchBtn *widget.Button
	state     *model.LookupUIState

	onChanged func(input string)
	onSearch  func()

	container *fyne.Container
}

// NewSearchBar creates a search bar whose button tracks the lookup state.
func NewSearchBar(state *model.LookupUIState) *SearchBar {
	s := &SearchBar{
		state: state,
	}

	s.entry = widget.NewSelectEntry(nil)
	s.entry.SetPlaceHolder(placeholder)
	s.entry.OnChanged = func(input string) {
		if s.onChanged != nil {
			s.onChanged(input)
		}
	}
	s.entry.OnSubmitted = func(string) {
		s.submit()
	}

	s.searchBtn = widget.NewButtonWithIcon("Search", theme.SearchIcon(), s.submit)
	s.searchBtn.Importance = widget.HighImportance

	s.container = container.NewBorder(nil, nil, nil, s.searchBtn, s.entry)

	state.State.AddListener(binding.NewDataListener(func() {
		s.updateButton()
	}))

	s.ExtendBaseWidget(s)
	return s
}

// SetOnChanged sets the callback for edits to the pending identifier.
func (s *SearchBar) SetOnChanged(fn func(input string)) {
	s.onChanged = fn
}

// SetOnSearch sets the callback for an explicit submit.
func (s *SearchBar) SetOnSearch(fn func()) {
	s.onSearch = fn
}

// SetRecent replaces the dropdown of recently searched identifiers.
func (s *SearchBar) SetRecent(identifiers []string) {
	s.entry.SetOptions(identifiers)
}

// SetText replaces the pending identifier, firing OnChanged.
func (s *SearchBar) SetText(text string) {
	s.entry.SetText(text)
}

// Text returns the pending identifier as typed.
func (s *SearchBar) Text() string {
	return s.entry.Text
}

// Entry returns the input so the window can focus it.
func (s *SearchBar) Entry() fyne.Focusable {
	return s.entry
}

// Submit searches as if the button were clicked.
func (s *SearchBar) Submit() {
	s.submit()
}

// CreateRenderer creates the renderer for this widget
func (s *SearchBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.container)
}

func (s *SearchBar) submit() {
	if s.onSearch != nil {
		s.onSearch()
	}
}

// updateButton relabels the button while a lookup is in flight. Submitting
// again stays allowed and supersedes the running search.
func (s *SearchBar) updateButton() {
	state, err := s.state.State.Get()
	if err != nil {
		return
	}

	switch state {
	case model.StatusSearching:
		s.searchBtn.SetText("Searching...")
	case model.StatusError:
		s.searchBtn.SetText("Retry")
	default:
		s.searchBtn.SetText("Search")
	}
}
