package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/discbag/internal/errors"
	"github.com/shhac/discbag/internal/ui/components"
)

var dialogSize = fyne.NewSize(480, 360)

// ShowLookupError explains a failed bag lookup: what went wrong, what the
// user can try and the raw error. Failures that are not fatal get a Retry
// button calling onRetry.
func ShowLookupError(err error, window fyne.Window, onRetry func()) {
	uiErr := apperrors.ClassifyError(err)
	if uiErr == nil {
		return
	}

	content := lookupErrorContent(uiErr)

	var d dialog.Dialog
	if onRetry != nil && uiErr.Severity != apperrors.SeverityFatal {
		d = dialog.NewCustomConfirm(uiErr.Title, "Retry", "Close", content, func(retry bool) {
			if retry {
				onRetry()
			}
		}, window)
	} else {
		d = dialog.NewCustom(uiErr.Title, "Close", content, window)
	}
	d.Resize(dialogSize)
	d.Show()
}

// lookupErrorContent lays out the message, recovery hints and details.
func lookupErrorContent(uiErr *apperrors.UIError) *fyne.Container {
	message := widget.NewLabel(uiErr.Message)
	message.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(message)

	if len(uiErr.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabelWithStyle("Try:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		for _, hint := range uiErr.Recovery {
			line := widget.NewLabel("• " + hint)
			line.Wrapping = fyne.TextWrapWord
			content.Add(line)
		}
	}

	if uiErr.Details != "" {
		content.Add(widget.NewAccordion(
			widget.NewAccordionItem("Technical Details", components.NewReadOnlyText(uiErr.Details)),
		))
	}
	return content
}
