package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"

	"github.com/tunedeck/tunedeck/internal/fetch"
	"github.com/tunedeck/tunedeck/internal/model"
)

// PlayerConfig is the mini player's entire customization surface. It is an
// immutable value: every With method returns a copy with exactly one field
// replaced, so one base configuration can seed many independent players.
// Field-disjoint With calls commute; repeated calls to the same method keep
// the last value.
type PlayerConfig struct {
	track    model.Track
	expanded binding.Bool
	scheme   ColorScheme
	extra    fyne.CanvasObject
	fetcher  fetch.Fetcher
	slots    map[model.ActionKind]model.ActionSlot
}

// NewPlayerConfig creates a configuration for the given track. The expanded
// binding is shared with the host screen, which keeps ownership: the widget
// reads and toggles it but never assumes exclusive access.
func NewPlayerConfig(track model.Track, expanded binding.Bool) PlayerConfig {
	return PlayerConfig{
		track:    track,
		expanded: expanded,
		scheme:   SchemeDark,
	}
}

// WithColorScheme returns a copy using the given scheme.
func (c PlayerConfig) WithColorScheme(scheme ColorScheme) PlayerConfig {
	c.scheme = scheme
	return c
}

// WithExtraContent returns a copy carrying extra content. It is appended
// after the controls in the expanded view only.
func (c PlayerConfig) WithExtraContent(content fyne.CanvasObject) PlayerConfig {
	c.extra = content
	return c
}

// WithImageFetcher returns a copy using the given artwork fetcher. Remote
// artwork stays on its placeholder when no fetcher is configured.
func (c PlayerConfig) WithImageFetcher(fetcher fetch.Fetcher) PlayerConfig {
	c.fetcher = fetcher
	return c
}

// WithPlayPause returns a copy with the play/pause slot attached. The
// toggled flag reports whether playback is running and selects the icon.
func (c PlayerConfig) WithPlayPause(playing bool, handler func()) PlayerConfig {
	return c.withSlot(model.ActionPlayPause, model.ActionSlot{Toggled: playing, Handler: handler})
}

// WithNextTrack returns a copy with the next-track slot attached.
func (c PlayerConfig) WithNextTrack(handler func()) PlayerConfig {
	return c.withSlot(model.ActionNextTrack, model.ActionSlot{Handler: handler})
}

// WithPreviousTrack returns a copy with the previous-track slot attached.
func (c PlayerConfig) WithPreviousTrack(handler func()) PlayerConfig {
	return c.withSlot(model.ActionPreviousTrack, model.ActionSlot{Handler: handler})
}

// WithRepeatTrack returns a copy with the repeat slot attached.
func (c PlayerConfig) WithRepeatTrack(toggled bool, handler func()) PlayerConfig {
	return c.withSlot(model.ActionRepeatTrack, model.ActionSlot{Toggled: toggled, Handler: handler})
}

// WithAutoPlay returns a copy with the autoplay slot attached.
func (c PlayerConfig) WithAutoPlay(toggled bool, handler func()) PlayerConfig {
	return c.withSlot(model.ActionAutoPlay, model.ActionSlot{Toggled: toggled, Handler: handler})
}

// withSlot clones the slot map before writing so previously issued
// configurations are never affected.
func (c PlayerConfig) withSlot(kind model.ActionKind, slot model.ActionSlot) PlayerConfig {
	clone := make(map[model.ActionKind]model.ActionSlot, len(c.slots)+1)
	for k, v := range c.slots {
		clone[k] = v
	}
	clone[kind] = slot
	c.slots = clone
	return c
}

// Track returns the track identity.
func (c PlayerConfig) Track() model.Track {
	return c.track
}

// Expanded returns the shared expansion binding.
func (c PlayerConfig) Expanded() binding.Bool {
	return c.expanded
}

// ColorScheme returns the configured scheme.
func (c PlayerConfig) ColorScheme() ColorScheme {
	return c.scheme
}

// ExtraContent returns the attached extra content, or nil.
func (c PlayerConfig) ExtraContent() fyne.CanvasObject {
	return c.extra
}

// Fetcher returns the configured artwork fetcher, or nil.
func (c PlayerConfig) Fetcher() fetch.Fetcher {
	return c.fetcher
}

// Slot returns the payload for kind and whether the slot is present.
func (c PlayerConfig) Slot(kind model.ActionKind) (model.ActionSlot, bool) {
	slot, ok := c.slots[kind]
	return slot, ok
}

// VisibleActions filters order down to the kinds whose slot is present,
// preserving order.
func (c PlayerConfig) VisibleActions(order []model.ActionKind) []model.ActionKind {
	visible := make([]model.ActionKind, 0, len(order))
	for _, kind := range order {
		if _, ok := c.slots[kind]; ok {
			visible = append(visible, kind)
		}
	}
	return visible
}
