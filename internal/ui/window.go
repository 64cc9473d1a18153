package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/shhac/discbag/internal/domain"
	"github.com/shhac/discbag/internal/model"
	"github.com/shhac/discbag/internal/storage"
	"github.com/shhac/discbag/internal/ui/bag"
	uierrors "github.com/shhac/discbag/internal/ui/errors"
	"github.com/shhac/discbag/internal/ui/history"
	"github.com/shhac/discbag/internal/ui/search"
)

// recentLimit caps the identifiers offered by the search dropdown.
const recentLimit = 10

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	BagView() *model.BagView
	LookupState() *model.LookupUIState
	Storage() storage.Repository
	Logger() *slog.Logger
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	window fyne.Window
	logger *slog.Logger
	app    AppController

	view        *model.BagView
	lookupState *model.LookupUIState

	// Panel widgets
	searchBar    *search.SearchBar
	bagPanel     *bag.BagPanel
	historyPanel *history.HistoryPanel
	statusBar    *uierrors.StatusBar
}

// NewMainWindow creates a new main window with the application layout.
// The window is split horizontally with:
//   - Left side: lookup history
//   - Right side: Search Bar (top), Bag Panel (middle), Status Bar (bottom)
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("discbag")

	mw := &MainWindow{
		window:      window,
		logger:      app.Logger(),
		app:         app,
		view:        app.BagView(),
		lookupState: app.LookupState(),
	}

	mw.searchBar = search.NewSearchBar(mw.lookupState)
	mw.bagPanel = bag.NewBagPanel(mw.view, mw.lookupState)
	mw.historyPanel = history.NewHistoryPanel(app.Storage(), mw.logger, window)
	mw.statusBar = uierrors.NewStatusBar(mw.lookupState)

	mw.wireCallbacks()
	mw.SetContent()
	mw.setupMainMenu(fyneApp)
	mw.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(1000, 720))

	return mw
}

// wireCallbacks sets up all the event handlers and connects components
func (w *MainWindow) wireCallbacks() {
	// Typing only updates the pending identifier
	w.searchBar.SetOnChanged(func(input string) {
		w.view.SetSearchTerm(input)
	})

	w.searchBar.SetOnSearch(func() {
		w.handleSearch()
	})

	w.historyPanel.SetOnReplay(func(entry domain.LookupEntry) {
		w.searchFor(entry.Identifier)
	})

	w.statusBar.SetOnDetails(func() {
		snap := w.view.Snapshot()
		if snap.Err == nil {
			return
		}
		uierrors.ShowLookupError(snap.Err, w.window, func() {
			w.searchFor(snap.SearchedTerm)
		})
	})

	// Bindings are only touched on the UI goroutine
	w.view.AddListener(func() {
		snap := w.view.Snapshot()
		fyne.Do(func() {
			w.applySnapshot(snap)
		})
	})

	w.refreshRecent()
}

// handleSearch runs a lookup for the pending identifier off the UI goroutine.
func (w *MainWindow) handleSearch() {
	term := w.view.SearchTerm()
	w.logger.Debug("search requested", slog.String("identifier", term))

	go func() {
		outcome := w.view.Search(context.Background())
		w.logger.Debug("search finished",
			slog.String("identifier", term),
			slog.String("outcome", outcome.String()),
		)
	}()
}

// searchFor puts identifier back in the search field and looks it up.
func (w *MainWindow) searchFor(identifier string) {
	w.searchBar.SetText(identifier)
	w.handleSearch()
}

// applySnapshot pushes view state into the bindings and, once a search
// completes, refreshes the history it produced.
func (w *MainWindow) applySnapshot(snap model.Snapshot) {
	w.lookupState.Apply(snap)
	if snap.Loading || !snap.Searched {
		return
	}
	w.historyPanel.Refresh()
	w.refreshRecent()
}

func (w *MainWindow) refreshRecent() {
	ids, err := w.app.Storage().RecentIdentifiers(recentLimit)
	if err != nil {
		w.logger.Warn("failed to load recent identifiers", slog.Any("error", err))
		return
	}
	w.searchBar.SetRecent(ids)
}

// setupMainMenu installs the View and Help menus.
func (w *MainWindow) setupMainMenu(fyneApp fyne.App) {
	view := fyne.NewMenu("View",
		fyne.NewMenuItem("Expand All Discs", w.view.ExpandAllDiscs),
		fyne.NewMenuItem("Collapse All Discs", w.view.CollapseAllDiscs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open All Categories", w.view.ExpandAllCategories),
		fyne.NewMenuItem("Close All Categories", w.view.CollapseAllCategories),
		fyne.NewMenuItemSeparator(),
		themeMenu(fyneApp),
	)
	help := fyne.NewMenu("Help",
		fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
		fyne.NewMenuItem("About discbag", func() { ShowAboutDialog(w.window) }),
	)
	w.window.SetMainMenu(fyne.NewMainMenu(view, help))
}

// SetContent builds and sets the main window layout.
// Layout structure:
//
//	┌─────────────────┬──────────────────────────────┐
//	│                 │      Search Bar              │
//	│  Lookup         ├──────────────────────────────┤
//	│  History        │      Bag Panel               │
//	│                 ├──────────────────────────────┤
//	│                 │      Status Bar              │
//	└─────────────────┴──────────────────────────────┘
func (w *MainWindow) SetContent() {
	rightPanel := container.NewBorder(
		w.searchBar, // top
		w.statusBar, // bottom
		nil,         // left
		nil,         // right
		w.bagPanel,  // center
	)

	mainSplit := container.NewHSplit(
		w.historyPanel,
		rightPanel,
	)

	// 25% for history, 75% for the bag
	mainSplit.SetOffset(0.25)

	w.window.SetContent(mainSplit)
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
