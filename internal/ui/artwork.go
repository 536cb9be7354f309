package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/tunedeck/tunedeck/internal/fetch"
	"github.com/tunedeck/tunedeck/internal/model"
)

// ArtworkImage renders a track's artwork inside a fixed box with rounded
// corners. Local sources draw immediately; remote sources walk the
// empty -> success|failure phase machine driven by the fetch collaborator.
// The widget only maps phase to visual: it never retries and never caches.
type ArtworkImage struct {
	widget.BaseWidget

	source  model.ArtworkSource
	fetcher fetch.Fetcher
	boxSize fyne.Size

	phase model.ArtworkPhase
	image fyne.Resource

	// gen invalidates in-flight deliveries when the source changes or the
	// widget unmounts. All access happens on the UI thread.
	gen    uint64
	cancel func()
}

// NewArtworkImage creates an artwork widget for the given source. The fetch
// starts when the widget is first mounted, so a fresh mount of a remote
// source always begins at the Empty phase.
func NewArtworkImage(source model.ArtworkSource, fetcher fetch.Fetcher, boxSize fyne.Size) *ArtworkImage {
	a := &ArtworkImage{
		source:  source,
		fetcher: fetcher,
		boxSize: boxSize,
		phase:   model.ArtworkEmpty,
	}
	a.ExtendBaseWidget(a)
	return a
}

// SetSource replaces the artwork source. Any pending fetch for the previous
// source is cancelled and its late result ignored; a new remote source
// restarts at Empty.
func (a *ArtworkImage) SetSource(source model.ArtworkSource) {
	if source == a.source {
		return
	}

	a.gen++
	a.cancelPending()

	a.source = source
	a.phase = model.ArtworkEmpty
	a.image = nil

	a.subscribe()
	a.Refresh()
}

// Phase returns the current load phase. Local and absent sources stay Empty.
func (a *ArtworkImage) Phase() model.ArtworkPhase {
	return a.phase
}

// Resource returns the fetched image, or nil before Success.
func (a *ArtworkImage) Resource() fyne.Resource {
	return a.image
}

func (a *ArtworkImage) subscribe() {
	if a.fetcher == nil || a.source.Kind != model.ArtworkRemote {
		return
	}

	// A pre-mount SetSource may already hold a live subscription; only one
	// fetch may be active per widget at a time.
	a.cancelPending()

	gen := a.gen
	a.cancel = a.fetcher.Subscribe(a.source.URL, func(phase model.ArtworkPhase, img fyne.Resource) {
		a.applyPhase(gen, phase, img)
	})
}

// applyPhase drops deliveries that belong to an older source or to an
// unmounted widget, so a re-purposed instance never shows stale artwork.
func (a *ArtworkImage) applyPhase(gen uint64, phase model.ArtworkPhase, img fyne.Resource) {
	if gen != a.gen {
		return
	}
	// The widget is constructed at Empty and the Empty phase arrives
	// synchronously inside Subscribe. Refreshing on that delivery while the
	// renderer is still being created would re-enter CreateRenderer.
	if phase == a.phase && img == a.image {
		return
	}
	a.phase = phase
	a.image = img
	a.Refresh()
}

func (a *ArtworkImage) cancelPending() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// CreateRenderer creates the widget renderer and starts the remote fetch.
func (a *ArtworkImage) CreateRenderer() fyne.WidgetRenderer {
	a.subscribe()

	r := &artworkRenderer{art: a}
	r.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	r.background.CornerRadius = ArtworkCornerRadius
	r.rebuild()
	return r
}

// artworkRenderer maps the source and phase to one of four visuals: a direct
// image, the placeholder glyph, the fetched image, or the failure glyph.
type artworkRenderer struct {
	art        *ArtworkImage
	background *canvas.Rectangle
	content    fyne.CanvasObject
	root       *fyne.Container
}

func (r *artworkRenderer) rebuild() {
	a := r.art

	switch {
	case a.source.Kind == model.ArtworkLocal:
		r.content = r.scaledImage(a.source.Image)
	case a.source.Kind == model.ArtworkRemote && a.phase == model.ArtworkSuccess:
		r.content = r.scaledImage(a.image)
	case a.source.Kind == model.ArtworkRemote && a.phase == model.ArtworkFailure:
		// Must stay visually distinct from the Empty placeholder.
		r.content = widget.NewIcon(theme.BrokenImageIcon())
	default:
		r.content = widget.NewIcon(theme.MediaMusicIcon())
	}

	r.root = container.NewStack(r.background, r.content)
}

func (r *artworkRenderer) scaledImage(res fyne.Resource) fyne.CanvasObject {
	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(r.art.boxSize)
	return img
}

// Layout arranges the components.
func (r *artworkRenderer) Layout(size fyne.Size) {
	r.root.Resize(size)
}

// MinSize returns the fixed artwork box size.
func (r *artworkRenderer) MinSize() fyne.Size {
	return r.art.boxSize
}

// Refresh rebuilds the visual for the current source and phase.
func (r *artworkRenderer) Refresh() {
	r.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.rebuild()
	r.root.Resize(r.art.Size())
	r.root.Refresh()
}

// Objects returns the container objects.
func (r *artworkRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.root}
}

// Destroy cancels any pending fetch; a result arriving afterwards must not
// touch a re-purposed widget instance.
func (r *artworkRenderer) Destroy() {
	r.art.gen++
	r.art.cancelPending()
}
