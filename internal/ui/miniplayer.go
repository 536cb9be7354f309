package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/tunedeck/tunedeck/internal/fetch"
	"github.com/tunedeck/tunedeck/internal/model"
)

// MiniPlayer is a two-mode presentation of the current track. The collapsed
// bar shows a thumbnail, title, subtitle, and the inline transport controls;
// the expanded sheet adds a close control, large artwork, the full control
// row, and any extra content inside a scroll region.
//
// Expansion state lives only in the configuration's shared binding. The
// widget toggles it on tap-to-expand and tap-to-close and re-renders when the
// host flips it out of band; it keeps no private shadow of the value. All
// playback intent leaves through the configured action handlers: tapping a
// control changes nothing in the widget itself until the host supplies a
// fresh configuration via SetConfig.
type MiniPlayer struct {
	widget.BaseWidget

	cfg      PlayerConfig
	listener binding.DataListener

	// Collapsed and expanded artwork resolve independently, at their own
	// target sizes. Nil when the track has no artwork.
	artThumb   *ArtworkImage
	artLarge   *ArtworkImage
	artFetcher fetch.Fetcher
}

// NewMiniPlayer creates a mini player from the given configuration.
func NewMiniPlayer(cfg PlayerConfig) *MiniPlayer {
	p := &MiniPlayer{cfg: cfg}
	p.ExtendBaseWidget(p)
	p.updateArtwork()
	return p
}

// Config returns the current configuration value.
func (p *MiniPlayer) Config() PlayerConfig {
	return p.cfg
}

// SetConfig replaces the configuration. This is how hosts reflect toggled
// action state, track changes, or scheme switches.
func (p *MiniPlayer) SetConfig(cfg PlayerConfig) {
	if p.cfg.expanded != cfg.expanded && p.listener != nil {
		if p.cfg.expanded != nil {
			p.cfg.expanded.RemoveListener(p.listener)
		}
		if cfg.expanded != nil {
			cfg.expanded.AddListener(p.listener)
		}
	}

	p.cfg = cfg
	p.updateArtwork()
	p.Refresh()
}

// IsExpanded reads the shared binding. The host may have changed it at any
// time, so the value is never cached.
func (p *MiniPlayer) IsExpanded() bool {
	if p.cfg.expanded == nil {
		return false
	}
	expanded, err := p.cfg.expanded.Get()
	if err != nil {
		log.Printf("Warning: reading expansion binding failed: %v", err)
		return false
	}
	return expanded
}

// VisibleActions returns the action kinds the current mode renders, in
// left-to-right order. Absent slots are omitted entirely, never disabled.
func (p *MiniPlayer) VisibleActions() []model.ActionKind {
	if p.IsExpanded() {
		return p.cfg.VisibleActions(model.AllActionKinds())
	}
	return p.cfg.VisibleActions(model.CollapsedActionKinds())
}

// Tapped expands the player when collapsed. This is the only internal
// collapsed-to-expanded trigger; the expanded surface collapses through the
// close control alone.
func (p *MiniPlayer) Tapped(_ *fyne.PointEvent) {
	if p.IsExpanded() {
		return
	}
	p.setExpanded(true)
}

// setExpanded flips the shared binding behind an eased size transition.
func (p *MiniPlayer) setExpanded(expanded bool) {
	if p.cfg.expanded == nil {
		return
	}
	if p.IsExpanded() == expanded {
		return
	}

	start := p.Size()
	endHeight := CollapsedPlayerHeight
	if expanded {
		endHeight = ExpandedPlayerHeight
	}
	anim := canvas.NewSizeAnimation(start, fyne.NewSize(start.Width, endHeight),
		ExpandAnimationDuration, func(size fyne.Size) {
			p.Resize(size)
		})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()

	if err := p.cfg.expanded.Set(expanded); err != nil {
		log.Printf("Warning: setting expansion binding failed: %v", err)
	}
}

func (p *MiniPlayer) updateArtwork() {
	src := p.cfg.track.Artwork
	if src.Kind == model.ArtworkNone {
		// Layout collapses: no blank space is reserved for artwork.
		p.artThumb = nil
		p.artLarge = nil
		return
	}

	if p.artThumb == nil || p.artFetcher != p.cfg.fetcher {
		p.artFetcher = p.cfg.fetcher
		p.artThumb = NewArtworkImage(src, p.cfg.fetcher, fyne.NewSquareSize(CollapsedArtworkSize))
		p.artLarge = NewArtworkImage(src, p.cfg.fetcher, fyne.NewSquareSize(ExpandedArtworkSize))
		return
	}

	p.artThumb.SetSource(src)
	p.artLarge.SetSource(src)
}

// CreateRenderer creates the widget renderer and attaches the expansion
// listener so host-side flips re-render the player.
func (p *MiniPlayer) CreateRenderer() fyne.WidgetRenderer {
	if p.listener == nil {
		p.listener = binding.NewDataListener(func() {
			p.Refresh()
		})
	}
	if p.cfg.expanded != nil {
		p.cfg.expanded.AddListener(p.listener)
	}

	r := &miniPlayerRenderer{player: p}
	r.background = canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	r.background.CornerRadius = ArtworkCornerRadius
	r.rebuild()
	return r
}

// miniPlayerRenderer rebuilds the collapsed or expanded layout on every
// refresh, depending on the binding's current value.
type miniPlayerRenderer struct {
	player     *MiniPlayer
	background *canvas.Rectangle
	root       *fyne.Container

	// buttons holds the rendered action controls keyed by kind; absent
	// kinds have no entry.
	buttons  map[model.ActionKind]*widget.Button
	closeBtn *widget.Button
}

func (r *miniPlayerRenderer) rebuild() {
	p := r.player

	var body fyne.CanvasObject
	if p.IsExpanded() {
		body = r.buildExpanded()
	} else {
		body = r.buildCollapsed()
	}

	// The scheme threads through every child label and icon.
	themed := container.NewThemeOverride(body, newSchemeTheme(p.cfg.scheme))
	r.root = container.NewStack(r.background, themed)
}

func (r *miniPlayerRenderer) buildCollapsed() fyne.CanvasObject {
	p := r.player

	title := widget.NewLabel(p.cfg.track.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis
	title.Wrapping = fyne.TextWrapOff

	subtitle := widget.NewLabel(p.cfg.track.Subtitle)
	subtitle.Truncation = fyne.TextTruncateEllipsis
	subtitle.Wrapping = fyne.TextWrapOff

	labels := container.NewVBox(title, subtitle)

	controls := r.buildControls(model.CollapsedActionKinds())

	var left fyne.CanvasObject
	if p.artThumb != nil {
		left = container.NewCenter(p.artThumb)
	}
	return container.NewBorder(nil, nil, left, controls, labels)
}

func (r *miniPlayerRenderer) buildExpanded() fyne.CanvasObject {
	p := r.player

	r.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		p.setExpanded(false)
	})
	r.closeBtn.Importance = widget.LowImportance
	closeRow := container.NewBorder(nil, nil, nil, r.closeBtn)

	title := widget.NewLabelWithStyle(p.cfg.track.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.Truncation = fyne.TextTruncateEllipsis
	subtitle := widget.NewLabelWithStyle(p.cfg.track.Subtitle, fyne.TextAlignCenter, fyne.TextStyle{})
	subtitle.Truncation = fyne.TextTruncateEllipsis

	items := make([]fyne.CanvasObject, 0, 6)
	if p.artLarge != nil {
		items = append(items, container.NewCenter(p.artLarge))
	}
	items = append(items, title, subtitle, container.NewCenter(r.buildControls(model.AllActionKinds())))

	// Extra content is an expanded-only capability, appended after the
	// controls inside the scroll region.
	if p.cfg.extra != nil {
		items = append(items, p.cfg.extra)
	}

	sheet := container.NewScroll(container.NewVBox(items...))
	return container.NewBorder(closeRow, nil, nil, nil, sheet)
}

// buildControls renders one button per present slot, walking order and
// skipping absent kinds.
func (r *miniPlayerRenderer) buildControls(order []model.ActionKind) fyne.CanvasObject {
	p := r.player
	r.buttons = make(map[model.ActionKind]*widget.Button)

	row := container.NewHBox()
	for _, kind := range order {
		slot, ok := p.cfg.Slot(kind)
		if !ok {
			continue
		}

		kind := kind
		btn := widget.NewButtonWithIcon("", actionIcon(kind, slot.Toggled), func() {
			// Look up the slot at tap time: the host may have supplied a
			// fresh configuration since this button was built.
			current, present := p.cfg.Slot(kind)
			if !present || current.Handler == nil {
				log.Printf("Warning: %s tapped with no handler attached", kind)
				return
			}
			current.Handler()
		})
		if slot.Toggled {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}

		r.buttons[kind] = btn
		row.Add(btn)
	}
	return row
}

// actionIcon maps an action kind and its toggle state to a theme icon.
func actionIcon(kind model.ActionKind, toggled bool) fyne.Resource {
	switch kind {
	case model.ActionRepeatTrack:
		return theme.MediaReplayIcon()
	case model.ActionPreviousTrack:
		return theme.MediaSkipPreviousIcon()
	case model.ActionPlayPause:
		if toggled {
			return theme.MediaPauseIcon()
		}
		return theme.MediaPlayIcon()
	case model.ActionNextTrack:
		return theme.MediaSkipNextIcon()
	case model.ActionAutoPlay:
		return theme.MediaFastForwardIcon()
	default:
		return theme.MediaPlayIcon()
	}
}

// Layout arranges the components.
func (r *miniPlayerRenderer) Layout(size fyne.Size) {
	r.root.Resize(size)
}

// MinSize returns the minimum size for the current mode.
func (r *miniPlayerRenderer) MinSize() fyne.Size {
	height := CollapsedPlayerHeight
	if r.player.IsExpanded() {
		height = ExpandedPlayerHeight
	}
	min := r.root.MinSize()
	if min.Width < PlayerMinWidth {
		min.Width = PlayerMinWidth
	}
	if min.Height < height {
		min.Height = height
	}
	return min
}

// Refresh rebuilds the layout for the binding's current value.
func (r *miniPlayerRenderer) Refresh() {
	r.background.FillColor = theme.Color(theme.ColorNameOverlayBackground)
	r.rebuild()
	r.root.Resize(r.player.Size())
	r.root.Refresh()
}

// Objects returns the container objects.
func (r *miniPlayerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.root}
}

// Destroy detaches the expansion listener.
func (r *miniPlayerRenderer) Destroy() {
	p := r.player
	if p.cfg.expanded != nil && p.listener != nil {
		p.cfg.expanded.RemoveListener(p.listener)
	}
}
