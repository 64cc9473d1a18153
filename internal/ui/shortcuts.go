package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Cmd+Enter: Search
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyReturn,
		Modifier: fyne.KeyModifierSuper, // Cmd on macOS, Win on Windows
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: search")
		w.searchBar.Submit()
	})

	// Cmd+K: Focus search field
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyK,
		Modifier: fyne.KeyModifierSuper,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: focus search")
		canvas.Focus(w.searchBar.Entry())
	})

	// Cmd+E: Expand all discs
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyE,
		Modifier: fyne.KeyModifierSuper,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: expand all discs")
		w.view.ExpandAllDiscs()
	})

	// Cmd+Shift+E: Collapse all discs
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyE,
		Modifier: fyne.KeyModifierSuper | fyne.KeyModifierShift,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: collapse all discs")
		w.view.CollapseAllDiscs()
	})

	// Escape: Cancel the running search
	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			w.logger.Debug("keyboard shortcut: escape (cancel search)")
			w.handleCancel()
		}
	})

	w.logger.Info("keyboard shortcuts configured")
}

// handleCancel abandons the running search, keeping the displayed bag.
func (w *MainWindow) handleCancel() {
	if w.view.Cancel() {
		w.logger.Info("search cancelled by user")
		return
	}
	w.logger.Debug("no active search to cancel")
}
