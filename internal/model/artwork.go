package model

import "fyne.io/fyne/v2"

// ArtworkKind discriminates the source of a track's artwork.
type ArtworkKind int

const (
	// ArtworkNone means the track has no artwork; layouts must not reserve
	// space for it.
	ArtworkNone ArtworkKind = iota

	// ArtworkLocal means the artwork is an in-memory resource, rendered
	// directly with no asynchrony.
	ArtworkLocal

	// ArtworkRemote means the artwork must be fetched by URL and goes
	// through the three-phase load state machine.
	ArtworkRemote
)

// ArtworkSource is the union of the three artwork origins. Exactly one of
// Image or URL is meaningful, selected by Kind.
type ArtworkSource struct {
	Kind  ArtworkKind
	Image fyne.Resource
	URL   string
}

// NoArtwork returns the absent artwork source.
func NoArtwork() ArtworkSource {
	return ArtworkSource{Kind: ArtworkNone}
}

// LocalArtwork returns a source rendering the given resource directly.
func LocalArtwork(img fyne.Resource) ArtworkSource {
	return ArtworkSource{Kind: ArtworkLocal, Image: img}
}

// RemoteArtwork returns a source fetched asynchronously from url.
func RemoteArtwork(url string) ArtworkSource {
	return ArtworkSource{Kind: ArtworkRemote, URL: url}
}

// ArtworkPhase is the state of a remote artwork load. It is derived per
// mount and never persisted: a fresh mount of a remote source always starts
// at ArtworkEmpty.
type ArtworkPhase int

const (
	// ArtworkEmpty means no terminal event has arrived yet; a neutral
	// placeholder glyph is shown.
	ArtworkEmpty ArtworkPhase = iota

	// ArtworkSuccess means the image was fetched and decoded.
	ArtworkSuccess

	// ArtworkFailure means the fetch failed; a fallback glyph distinct from
	// the placeholder is shown.
	ArtworkFailure
)

// String returns the string representation of ArtworkPhase.
func (p ArtworkPhase) String() string {
	switch p {
	case ArtworkEmpty:
		return "Empty"
	case ArtworkSuccess:
		return "Success"
	case ArtworkFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true once the load has either succeeded or failed.
func (p ArtworkPhase) IsTerminal() bool {
	return p == ArtworkSuccess || p == ArtworkFailure
}
