package model

import "strings"

// Track identifies what the mini player is showing. It is immutable for the
// lifetime of a widget: changing tracks means building a new configuration.
type Track struct {
	Title    string
	Subtitle string
	Artwork  ArtworkSource
}

// NewTrack creates a track with cleaned display strings.
func NewTrack(title, subtitle string, artwork ArtworkSource) Track {
	return Track{
		Title:    cleanDisplayText(title),
		Subtitle: cleanDisplayText(subtitle),
		Artwork:  artwork,
	}
}

// GetDisplayTitle returns the title, falling back to the subtitle when the
// title is empty.
func (t Track) GetDisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Subtitle
}

// cleanDisplayText strips control whitespace that breaks single-line labels.
func cleanDisplayText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}
