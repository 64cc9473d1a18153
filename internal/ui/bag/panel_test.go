package bag

import (
	"context"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/discbag/internal/domain"
	"github.com/shhac/discbag/internal/logging"
	"github.com/shhac/discbag/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedFetcher struct {
	bag domain.Bag
}

func (f fixedFetcher) FetchBag(context.Context, string) (domain.Bag, error) {
	return f.bag, nil
}

func newTestPanel(t *testing.T) (*BagPanel, *model.BagView) {
	t.Helper()
	bag := domain.Bag{
		domain.DistanceDrivers: {
			{ID: 1, Name: "Destroyer", Brand: "Innova", Speed: "12", Glide: "5", Turn: "-1", Fade: "3", Category: domain.DistanceDrivers},
		},
		domain.PuttApproach: {
			{ID: 2, Name: "Aviar", Category: domain.PuttApproach},
			{ID: 3, Name: "Luna", Category: domain.PuttApproach},
		},
	}
	view := model.NewBagView(fixedFetcher{bag: bag}, logging.NewNopLogger())
	panel := NewBagPanel(view, model.NewLookupUIState())
	require.Equal(t, model.OutcomeApplied, view.Search(context.Background()))
	panel.Render(view.Snapshot())
	return panel, view
}

func TestNewBagPanel_EmptyBag(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := model.NewBagView(fixedFetcher{}, logging.NewNopLogger())
	panel := NewBagPanel(view, model.NewLookupUIState())

	require.Len(t, panel.sections, 4)
	for _, c := range domain.Categories {
		assert.Equal(t, string(c)+"  (0)", panel.sections[c].HeaderText())
		assert.False(t, panel.sections[c].IsOpen())
	}
	assert.True(t, panel.expandAll.Disabled())
	assert.True(t, panel.collapseAll.Disabled())
}

func TestBagPanel_RendersCounts(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	panel, _ := newTestPanel(t)

	assert.Equal(t, "Distance Drivers  (1)", panel.sections[domain.DistanceDrivers].HeaderText())
	assert.Equal(t, "Putt/Approach  (2)", panel.sections[domain.PuttApproach].HeaderText())
	assert.Equal(t, "Mid-Ranges  (0)", panel.sections[domain.MidRanges].HeaderText())
	assert.False(t, panel.expandAll.Disabled())
}

func TestBagPanel_CategoryToggleFollowsView(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	panel, view := newTestPanel(t)

	panel.sections[domain.PuttApproach].Tap()
	assert.True(t, view.IsCategoryExpanded(domain.PuttApproach))

	panel.Render(view.Snapshot())
	assert.True(t, panel.sections[domain.PuttApproach].IsOpen())
	assert.False(t, panel.sections[domain.DistanceDrivers].IsOpen())
}

func TestBagPanel_DiscCardExpansion(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	panel, view := newTestPanel(t)

	collapsed := panel.discCard(view.Bag()[domain.DistanceDrivers][0], false)
	assert.Equal(t, "Destroyer", collapsed.Title)
	_, isButton := collapsed.Content.(*widget.Button)
	assert.True(t, isButton, "collapsed card only shows the toggle")

	test.Tap(collapsed.Content.(*widget.Button))
	assert.True(t, view.IsDiscExpanded(1))

	expanded := panel.discCard(view.Bag()[domain.DistanceDrivers][0], true)
	assert.Equal(t, string(domain.DistanceDrivers), expanded.Subtitle)
	body := expanded.Content.(*fyne.Container)
	_, isForm := body.Objects[0].(*widget.Form)
	assert.True(t, isForm, "flight numbers shown for a disc with details")
}

func TestBagPanel_NameOnlyDiscSkipsFlightRow(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	panel, view := newTestPanel(t)

	aviar := view.Bag()[domain.PuttApproach][0]
	require.False(t, aviar.HasDetails())

	card := panel.discCard(aviar, true)
	body := card.Content.(*fyne.Container)
	label, ok := body.Objects[0].(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, "No details recorded", label.Text)
}

func TestBagPanel_BulkButtons(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	panel, view := newTestPanel(t)

	test.Tap(panel.expandAll)
	for _, id := range []int{1, 2, 3} {
		assert.True(t, view.IsDiscExpanded(id))
	}

	panel.Render(view.Snapshot())
	assert.False(t, panel.collapseAll.Disabled())
	test.Tap(panel.collapseAll)
	assert.Empty(t, view.Snapshot().DiscExpanded)

	test.Tap(panel.openAll)
	for _, c := range domain.Categories {
		assert.True(t, view.IsCategoryExpanded(c))
	}
	test.Tap(panel.closeAll)
	assert.Empty(t, view.Snapshot().CategoryExpanded)
}
