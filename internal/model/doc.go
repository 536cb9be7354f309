package model

// Package model defines domain data structures shared across the widget kit:
// track identity, artwork sources and load phases, and the closed set of
// player action kinds. Structures are designed for direct use by the UI and
// explicit state transitions.
