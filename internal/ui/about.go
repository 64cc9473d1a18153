package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/discbag/internal/ui.Version=1.2.3"
var Version = "dev"

// shortcutList is listed by ShowShortcutDialog.
var shortcutList = []struct{ action, key string }{
	{"Search", "⌘ Return"},
	{"Focus Search", "⌘ K"},
	{"Expand All Discs", "⌘ E"},
	{"Collapse All Discs", "⌘ ⇧ E"},
	{"Cancel Search", "Escape"},
}

// ShowAboutDialog displays information about the discbag application.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("discbag", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Browse a disc golf bag by category"),
		widget.NewLabel("Version "+Version),
		widget.NewSeparator(),
		widget.NewLabel("Built with Fyne and Go"),
	)
	dialog.ShowCustom("About discbag", "Close", content, parent)
}

// ShowShortcutDialog displays a reference of all keyboard shortcuts.
func ShowShortcutDialog(parent fyne.Window) {
	grid := container.NewGridWithColumns(2)
	for _, s := range shortcutList {
		grid.Add(widget.NewLabel(s.action))
		grid.Add(widget.NewLabelWithStyle(s.key, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	}

	dialog.ShowCustom("Keyboard Shortcuts", "Close", container.NewVScroll(grid), parent)
}
