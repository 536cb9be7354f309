package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/tunedeck/tunedeck/internal/ui"
)

// Settings keys for Fyne preferences
const (
	KeyColorScheme      = "color_scheme"
	KeyAutoPlay         = "auto_play"
	KeyArtworkTimeoutMS = "artwork_timeout_ms"
)

// Default values
const (
	DefaultColorScheme      = ui.SchemeDark
	DefaultAutoPlay         = false
	DefaultArtworkTimeoutMS = 15000

	MinArtworkTimeoutMS = 1000
	MaxArtworkTimeoutMS = 60000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetColorScheme returns the preferred widget color scheme.
func (s *Settings) GetColorScheme() ui.ColorScheme {
	value := s.app.Preferences().String(KeyColorScheme)
	switch value {
	case "light":
		return ui.SchemeLight
	case "dark":
		return ui.SchemeDark
	case "":
		s.SetColorScheme(DefaultColorScheme)
		return DefaultColorScheme
	default:
		return DefaultColorScheme
	}
}

// SetColorScheme sets the preferred widget color scheme.
func (s *Settings) SetColorScheme(scheme ui.ColorScheme) {
	value := "dark"
	if scheme == ui.SchemeLight {
		value = "light"
	}
	s.app.Preferences().SetString(KeyColorScheme, value)
}

// GetAutoPlay returns whether autoplay starts enabled.
func (s *Settings) GetAutoPlay() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoPlay, DefaultAutoPlay)
}

// SetAutoPlay sets the autoplay default.
func (s *Settings) SetAutoPlay(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoPlay, enabled)
}

// GetArtworkTimeout returns the artwork fetch timeout, clamped to a sane
// range.
func (s *Settings) GetArtworkTimeout() time.Duration {
	ms := s.app.Preferences().Int(KeyArtworkTimeoutMS)
	if ms <= 0 {
		s.SetArtworkTimeout(DefaultArtworkTimeoutMS * time.Millisecond)
		return DefaultArtworkTimeoutMS * time.Millisecond
	}
	// The store may hold a value written out of band, so the read path
	// clamps too.
	if ms < MinArtworkTimeoutMS {
		ms = MinArtworkTimeoutMS
	}
	if ms > MaxArtworkTimeoutMS {
		ms = MaxArtworkTimeoutMS
	}
	return time.Duration(ms) * time.Millisecond
}

// SetArtworkTimeout sets the artwork fetch timeout.
func (s *Settings) SetArtworkTimeout(timeout time.Duration) {
	ms := int(timeout / time.Millisecond)
	if ms < MinArtworkTimeoutMS {
		ms = MinArtworkTimeoutMS
	}
	if ms > MaxArtworkTimeoutMS {
		ms = MaxArtworkTimeoutMS
	}
	s.app.Preferences().SetInt(KeyArtworkTimeoutMS, ms)
}
