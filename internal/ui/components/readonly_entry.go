package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ReadOnlyEntry shows selectable, copyable text that cannot be edited.
// Unlike a disabled Entry it keeps normal contrast.
type ReadOnlyEntry struct {
	widget.Entry
}

// NewReadOnlyText creates a wrapping multi-line entry holding text.
func NewReadOnlyText(text string) *ReadOnlyEntry {
	e := &ReadOnlyEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	e.SetText(text)
	return e
}

// TypedRune blocks all character input.
func (e *ReadOnlyEntry) TypedRune(_ rune) {}

// TypedKey allows cursor movement only.
func (e *ReadOnlyEntry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyLeft, fyne.KeyRight, fyne.KeyUp, fyne.KeyDown,
		fyne.KeyHome, fyne.KeyEnd, fyne.KeyPageUp, fyne.KeyPageDown:
		e.Entry.TypedKey(key)
	}
}

// TypedShortcut allows copy and select-all.
func (e *ReadOnlyEntry) TypedShortcut(shortcut fyne.Shortcut) {
	switch shortcut.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(shortcut)
	}
}
