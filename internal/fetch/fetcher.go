package fetch

import (
	"fyne.io/fyne/v2"

	"github.com/tunedeck/tunedeck/internal/model"
)

// PhaseFunc receives artwork load phase transitions. The resource is non-nil
// only for model.ArtworkSuccess.
type PhaseFunc func(phase model.ArtworkPhase, img fyne.Resource)

// Fetcher defines the interface for the artwork loading service.
//
// Subscribe must invoke onPhase with model.ArtworkEmpty before returning,
// then deliver exactly one terminal phase on the UI thread. The returned
// cancel function discards any pending delivery; calling it more than once
// is harmless.
type Fetcher interface {
	Subscribe(url string, onPhase PhaseFunc) (cancel func())
}
