package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tunedeck/tunedeck/internal/fetch"
	"github.com/tunedeck/tunedeck/internal/model"
)

// TrackRow is a compact list row for one track: artwork thumbnail, bold
// title, and subtitle, each on a single truncated line. Tracks without
// artwork render no thumbnail region at all.
type TrackRow struct {
	widget.BaseWidget

	track   model.Track
	fetcher fetch.Fetcher

	art           *ArtworkImage
	titleLabel    *widget.Label
	subtitleLabel *widget.Label

	onTapped func(model.Track)
}

// NewTrackRow creates a row for the given track.
func NewTrackRow(track model.Track, fetcher fetch.Fetcher) *TrackRow {
	tr := &TrackRow{
		track:   track,
		fetcher: fetcher,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

// SetOnTapped sets the row tap callback.
func (tr *TrackRow) SetOnTapped(callback func(model.Track)) {
	tr.onTapped = callback
}

// Track returns the row's track.
func (tr *TrackRow) Track() model.Track {
	return tr.track
}

// SetTrack updates the row with new track data. List widgets reuse rows, so
// the artwork source swap must discard any stale in-flight fetch.
func (tr *TrackRow) SetTrack(track model.Track) {
	tr.track = track
	tr.titleLabel.SetText(track.Title)
	tr.subtitleLabel.SetText(track.Subtitle)

	if track.Artwork.Kind == model.ArtworkNone {
		tr.art = nil
	} else if tr.art == nil {
		tr.art = NewArtworkImage(track.Artwork, tr.fetcher, fyne.NewSquareSize(ListArtworkSize))
	} else {
		tr.art.SetSource(track.Artwork)
	}
	tr.Refresh()
}

// Tapped invokes the row callback.
func (tr *TrackRow) Tapped(_ *fyne.PointEvent) {
	if tr.onTapped != nil {
		tr.onTapped(tr.track)
	}
}

func (tr *TrackRow) createUI() {
	tr.titleLabel = widget.NewLabel(tr.track.Title)
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	tr.titleLabel.Wrapping = fyne.TextWrapOff

	tr.subtitleLabel = widget.NewLabel(tr.track.Subtitle)
	tr.subtitleLabel.Truncation = fyne.TextTruncateEllipsis
	tr.subtitleLabel.Wrapping = fyne.TextWrapOff

	if tr.track.Artwork.Kind != model.ArtworkNone {
		tr.art = NewArtworkImage(tr.track.Artwork, tr.fetcher, fyne.NewSquareSize(ListArtworkSize))
	}
}

// CreateRenderer creates the widget renderer.
func (tr *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	return &trackRowRenderer{row: tr}
}

type trackRowRenderer struct {
	row    *TrackRow
	layout *fyne.Container
}

func (r *trackRowRenderer) createLayout() {
	tr := r.row

	labels := container.NewVBox(tr.titleLabel, tr.subtitleLabel)

	var left fyne.CanvasObject
	if tr.art != nil {
		left = container.NewCenter(tr.art)
	}
	main := container.NewBorder(nil, nil, left, nil, labels)

	r.layout = container.NewVBox(main, widget.NewSeparator())
}

// Layout arranges the components.
func (r *trackRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size.
func (r *trackRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	min := r.layout.MinSize()
	if min.Height < MinTouchTargetSize {
		min.Height = MinTouchTargetSize
	}
	return min
}

// Refresh rebuilds the row layout.
func (r *trackRowRenderer) Refresh() {
	r.layout = nil
	r.createLayout()
	r.layout.Resize(r.row.Size())
	r.layout.Refresh()
}

// Objects returns the container objects.
func (r *trackRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer.
func (r *trackRowRenderer) Destroy() {}
