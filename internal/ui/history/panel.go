package history

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/discbag/internal/domain"
	"github.com/shhac/discbag/internal/storage"
)

// HistoryPanel lists the lookups made this session and lets the user
// repeat one
type HistoryPanel struct {
	widget.BaseWidget

	storage storage.Repository
	logger  *slog.Logger
	window  fyne.Window

	// UI components
	historyList binding.UntypedList
	listWidget  *widget.List
	clearButton *widget.Button
	statusLabel *widget.Label

	// Filter state
	mu           sync.Mutex
	filterEntry  *widget.Entry
	filterQuery  string
	statusFilter string // "" (all), "success", or "error"
	allEntries   []domain.LookupEntry
	shown        []domain.LookupEntry

	onReplay func(entry domain.LookupEntry)

	content *fyne.Container
}

// NewHistoryPanel creates a new history panel
func NewHistoryPanel(storage storage.Repository, logger *slog.Logger, window fyne.Window) *HistoryPanel {
	p := &HistoryPanel{
		storage:     storage,
		logger:      logger,
		window:      window,
		historyList: binding.NewUntypedList(),
	}

	p.ExtendBaseWidget(p)
	p.buildUI()
	p.Refresh()

	return p
}

// buildUI creates the panel UI
func (p *HistoryPanel) buildUI() {
	p.statusLabel = widget.NewLabel("History (0)")

	p.clearButton = widget.NewButton("Clear All", func() {
		p.handleClearAll()
	})

	p.filterEntry = widget.NewEntry()
	p.filterEntry.SetPlaceHolder("Filter history...")
	p.filterEntry.OnChanged = func(query string) {
		p.mu.Lock()
		p.filterQuery = strings.ToLower(query)
		p.mu.Unlock()
		p.applyFilter()
	}

	statusSelect := widget.NewSelect([]string{"All", "Success", "Error"}, func(selected string) {
		p.SetStatusFilter(selected)
	})
	statusSelect.SetSelected("All")

	p.listWidget = widget.NewListWithData(
		p.historyList,
		func() fyne.CanvasObject {
			timeLabel := widget.NewLabel("")
			identifierLabel := widget.NewLabel("")
			identifierLabel.TextStyle = fyne.TextStyle{Bold: true}
			statusLabel := widget.NewLabel("")
			detailLabel := widget.NewLabel("")
			replayButton := widget.NewButtonWithIcon("", theme.SearchIcon(), nil)
			deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)

			return container.NewBorder(
				nil, // top
				nil, // bottom
				nil, // left
				container.NewHBox(replayButton, deleteButton), // right
				container.NewVBox(
					container.NewHBox(timeLabel, statusLabel, detailLabel),
					identifierLabel,
				),
			)
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			val, err := item.(binding.Untyped).Get()
			if err != nil {
				p.logger.Error("failed to get lookup entry", slog.Any("error", err))
				return
			}

			entry, ok := val.(domain.LookupEntry)
			if !ok {
				p.logger.Error("invalid lookup entry type")
				return
			}

			border := obj.(*fyne.Container)
			centerBox := border.Objects[0].(*fyne.Container)
			rightBox := border.Objects[1].(*fyne.Container)
			topRow := centerBox.Objects[0].(*fyne.Container)

			topRow.Objects[0].(*widget.Label).SetText(entry.Timestamp.Format("15:04:05"))
			topRow.Objects[1].(*widget.Label).SetText(statusMark(entry.Status))
			topRow.Objects[2].(*widget.Label).SetText(FormatDetail(entry))
			centerBox.Objects[1].(*widget.Label).SetText(FormatIdentifier(entry.Identifier))

			rightBox.Objects[0].(*widget.Button).OnTapped = func() {
				if p.onReplay != nil {
					p.onReplay(entry)
				}
			}

			entryID := entry.ID
			rightBox.Objects[1].(*widget.Button).OnTapped = func() {
				if err := p.storage.DeleteLookup(entryID); err != nil {
					p.logger.Error("failed to delete lookup entry", slog.Any("error", err))
					return
				}
				p.Refresh()
			}
		},
	)

	// Tapping a row repeats the lookup
	p.listWidget.OnSelected = func(id widget.ListItemID) {
		p.Replay(id)
		// Deselect so the same item can be tapped again
		p.listWidget.UnselectAll()
	}

	headerRow := container.NewBorder(
		nil,           // top
		nil,           // bottom
		p.statusLabel, // left
		p.clearButton, // right
		nil,           // center
	)

	filterRow := container.NewBorder(
		nil, nil, nil,
		statusSelect,
		p.filterEntry,
	)

	p.content = container.NewBorder(
		container.NewVBox(headerRow, filterRow), // top
		nil,                                     // bottom
		nil,                                     // left
		nil,                                     // right
		p.listWidget,                            // center
	)
}

// CreateRenderer implements the fyne.Widget interface
func (p *HistoryPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// Refresh reloads history from storage and applies any active filter
func (p *HistoryPanel) Refresh() {
	entries, err := p.storage.GetLookups(0)
	if err != nil {
		p.logger.Error("failed to load history", slog.Any("error", err))
		p.statusLabel.SetText("History (error)")
		return
	}

	p.mu.Lock()
	p.allEntries = entries
	p.mu.Unlock()
	p.applyFilter()
	p.logger.Debug("history refreshed", slog.Int("count", len(entries)))
}

// SetStatusFilter limits the list to "Success" or "Error" entries; any
// other value shows everything.
func (p *HistoryPanel) SetStatusFilter(selected string) {
	p.mu.Lock()
	switch selected {
	case "Success":
		p.statusFilter = domain.LookupSuccess
	case "Error":
		p.statusFilter = domain.LookupError
	default:
		p.statusFilter = ""
	}
	p.mu.Unlock()
	p.applyFilter()
}

// applyFilter filters allEntries by text query and status, then updates the list
func (p *HistoryPanel) applyFilter() {
	p.mu.Lock()
	query := p.filterQuery
	status := p.statusFilter
	total := len(p.allEntries)

	filtered := []domain.LookupEntry{}
	for _, entry := range p.allEntries {
		if status != "" && entry.Status != status {
			continue
		}
		// Text filter: match against identifier and error message
		if query != "" &&
			!strings.Contains(strings.ToLower(entry.Identifier), query) &&
			!strings.Contains(strings.ToLower(entry.Error), query) {
			continue
		}
		filtered = append(filtered, entry)
	}
	p.shown = filtered
	p.mu.Unlock()

	items := make([]interface{}, len(filtered))
	for i, entry := range filtered {
		items[i] = entry
	}

	if err := p.historyList.Set(items); err != nil {
		p.logger.Error("failed to set history list", slog.Any("error", err))
		return
	}

	if query != "" || status != "" {
		p.statusLabel.SetText(fmt.Sprintf("History (%d of %d)", len(filtered), total))
	} else {
		p.statusLabel.SetText(fmt.Sprintf("History (%d)", total))
	}
}

// Shown returns the entries currently listed.
func (p *HistoryPanel) Shown() []domain.LookupEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.LookupEntry(nil), p.shown...)
}

// Replay repeats the lookup at row id of the filtered list.
func (p *HistoryPanel) Replay(id widget.ListItemID) {
	if p.onReplay == nil {
		return
	}
	p.mu.Lock()
	if id < 0 || id >= len(p.shown) {
		p.mu.Unlock()
		return
	}
	entry := p.shown[id]
	p.mu.Unlock()

	p.onReplay(entry)
}

// SetOnReplay sets the callback when the user repeats a lookup
func (p *HistoryPanel) SetOnReplay(fn func(entry domain.LookupEntry)) {
	p.onReplay = fn
}

// handleClearAll clears all history after user confirmation
func (p *HistoryPanel) handleClearAll() {
	dialog.ShowConfirm("Clear History",
		"Are you sure you want to clear all history entries?",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := p.ClearHistory(); err != nil {
				p.logger.Error("failed to clear history", slog.Any("error", err))
				return
			}
			p.logger.Info("history cleared")
		},
		p.window,
	)
}

// ClearHistory clears all history entries
func (p *HistoryPanel) ClearHistory() error {
	if err := p.storage.ClearLookups(); err != nil {
		return err
	}
	p.Refresh()
	return nil
}

// FormatIdentifier names the bag an identifier refers to.
func FormatIdentifier(identifier string) string {
	if identifier == "" {
		return "My bag"
	}
	return "User " + identifier
}

// FormatDetail summarizes the outcome of a lookup.
func FormatDetail(entry domain.LookupEntry) string {
	ms := entry.Duration.Milliseconds()
	if entry.Status == domain.LookupError {
		return fmt.Sprintf("failed, %dms", ms)
	}
	return fmt.Sprintf("%d discs, %dms", entry.DiscCount, ms)
}

func statusMark(status string) string {
	if status == domain.LookupSuccess {
		return "✓"
	}
	return "✗"
}
