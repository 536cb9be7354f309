package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// TopBar is a screen header with an optional back control and a centered
// bold title.
type TopBar struct {
	*fyne.Container

	title string

	backBtn    *widget.Button
	titleLabel *widget.Label
}

// NewTopBar creates a top bar. When onBack is nil the back control is hidden
// and the bar shows the title alone.
func NewTopBar(title string, onBack func()) *TopBar {
	backBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), onBack)
	backBtn.Importance = widget.LowImportance
	if onBack == nil {
		backBtn.Hide()
	}

	titleLabel := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	titleLabel.Truncation = fyne.TextTruncateEllipsis

	bar := container.NewStack(container.NewHBox(backBtn), titleLabel)
	return &TopBar{
		Container:  bar,
		title:      title,
		backBtn:    backBtn,
		titleLabel: titleLabel,
	}
}

// Title returns the current title.
func (tb *TopBar) Title() string {
	return tb.title
}

// SetTitle updates the displayed title.
func (tb *TopBar) SetTitle(title string) {
	tb.title = title
	tb.titleLabel.SetText(title)
}
