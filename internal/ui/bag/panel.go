package bag

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/discbag/internal/domain"
	"github.com/shhac/discbag/internal/model"
	"github.com/shhac/discbag/internal/ui/components"
)

// BagPanel renders the bag as one collapsible section per category, with
// a card per disc and bulk expand/collapse controls.
type BagPanel struct {
	widget.BaseWidget

	view  *model.BagView
	state *model.LookupUIState

	sections    map[domain.Category]*components.CollapsibleSection
	errorLabel  *widget.Label
	loadingBar  *widget.ProgressBarInfinite
	expandAll   *widget.Button
	collapseAll *widget.Button
	openAll     *widget.Button
	closeAll    *widget.Button

	content fyne.CanvasObject
}

// NewBagPanel creates a panel that re-renders whenever view changes.
func NewBagPanel(view *model.BagView, state *model.LookupUIState) *BagPanel {
	p := &BagPanel{
		view:     view,
		state:    state,
		sections: make(map[domain.Category]*components.CollapsibleSection, len(domain.Categories)),
	}
	p.ExtendBaseWidget(p)
	p.buildUI()
	p.setupBindings()
	p.Render(view.Snapshot())

	view.AddListener(func() {
		fyne.Do(func() {
			p.Render(p.view.Snapshot())
		})
	})
	return p
}

func (p *BagPanel) buildUI() {
	p.errorLabel = widget.NewLabel("")
	p.errorLabel.Wrapping = fyne.TextWrapWord
	p.errorLabel.Importance = widget.DangerImportance
	p.errorLabel.Hide()

	p.loadingBar = widget.NewProgressBarInfinite()
	p.loadingBar.Stop()
	p.loadingBar.Hide()

	p.expandAll = widget.NewButtonWithIcon("Expand All", theme.ZoomInIcon(), p.view.ExpandAllDiscs)
	p.collapseAll = widget.NewButtonWithIcon("Collapse All", theme.ZoomOutIcon(), p.view.CollapseAllDiscs)
	p.openAll = widget.NewButton("Open Categories", p.view.ExpandAllCategories)
	p.closeAll = widget.NewButton("Close Categories", p.view.CollapseAllCategories)

	list := container.NewVBox()
	for _, category := range domain.Categories {
		section := components.NewCollapsibleSection(string(category))
		section.OnToggle = func() {
			p.view.ToggleCategory(category)
		}
		p.sections[category] = section
		list.Add(section)
	}

	toolbar := container.NewHBox(p.expandAll, p.collapseAll, widget.NewSeparator(), p.openAll, p.closeAll)
	p.content = container.NewBorder(
		container.NewVBox(p.errorLabel, toolbar), // top
		p.loadingBar,                             // bottom
		nil,
		nil,
		container.NewVScroll(list),
	)
}

// setupBindings mirrors the lookup state's error and loading values.
func (p *BagPanel) setupBindings() {
	p.state.Error.AddListener(binding.NewDataListener(func() {
		msg, _ := p.state.Error.Get()
		p.errorLabel.SetText(msg)
		if msg == "" {
			p.errorLabel.Hide()
		} else {
			p.errorLabel.Show()
		}
	}))

	p.state.Loading.AddListener(binding.NewDataListener(func() {
		loading, _ := p.state.Loading.Get()
		if loading {
			p.loadingBar.Start()
			p.loadingBar.Show()
		} else {
			p.loadingBar.Stop()
			p.loadingBar.Hide()
		}
	}))
}

// Render draws snap. Call it on the UI goroutine.
func (p *BagPanel) Render(snap model.Snapshot) {
	for _, category := range domain.Categories {
		discs := snap.Bag.Discs(category)
		section := p.sections[category]

		cards := make([]fyne.CanvasObject, 0, len(discs))
		for _, disc := range discs {
			cards = append(cards, p.discCard(disc, snap.DiscExpanded[disc.ID]))
		}
		if len(cards) == 0 {
			empty := widget.NewLabel("No discs")
			empty.Importance = widget.LowImportance
			cards = append(cards, empty)
		}

		section.SetCount(len(discs))
		section.SetContent(cards...)
		section.SetOpen(snap.CategoryExpanded[category])
	}

	hasDiscs := snap.Bag.Count() > 0
	setEnabled(p.expandAll, hasDiscs)
	setEnabled(p.collapseAll, len(snap.DiscExpanded) > 0)
}

// discCard shows the disc name and, when expanded, its brand and flight
// numbers.
func (p *BagPanel) discCard(disc domain.Disc, expanded bool) *widget.Card {
	id := disc.ID
	toggle := widget.NewButtonWithIcon("Details", theme.MenuExpandIcon(), func() {
		p.view.ToggleDiscDetail(id)
	})
	toggle.Importance = widget.LowImportance

	if !expanded {
		return widget.NewCard(disc.Name, "", toggle)
	}

	toggle.SetText("Hide")
	toggle.SetIcon(theme.MenuDropDownIcon())

	if !disc.HasDetails() {
		none := widget.NewLabel("No details recorded")
		none.Importance = widget.LowImportance
		return widget.NewCard(disc.Name, string(disc.Category), container.NewVBox(none, toggle))
	}

	details := widget.NewForm()
	if disc.Brand != "" {
		details.Append("Brand", widget.NewLabel(disc.Brand))
	}
	details.Append("Flight", widget.NewLabelWithStyle(disc.FlightNumbers(), fyne.TextAlignLeading, fyne.TextStyle{Monospace: true}))

	return widget.NewCard(disc.Name, string(disc.Category), container.NewVBox(details, toggle))
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

// CreateRenderer implements fyne.Widget.
func (p *BagPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}
