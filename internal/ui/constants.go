package ui

import "time"

// UI-wide constants to avoid magic numbers scattered across the widget kit.

// Artwork sizing
const (
	CollapsedArtworkSize float32 = 48
	ExpandedArtworkSize  float32 = 200
	ListArtworkSize      float32 = 40
	ArtworkCornerRadius  float32 = 6
)

// Mini player sizing
const (
	CollapsedPlayerHeight float32 = 64
	ExpandedPlayerHeight  float32 = 420
	PlayerMinWidth        float32 = 280

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Animation behavior
const (
	ExpandAnimationDuration = 250 * time.Millisecond
)

// Tab selector sizing
const (
	TabBarHeight float32 = 56
)
