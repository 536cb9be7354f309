package ui

// Package ui contains the Fyne-based widget kit: the two-mode mini player
// with its immutable configuration builder, the generic tab container, and
// the supporting top bar, track row, and artwork widgets. Widgets issue user
// intents through callbacks and never own playback or navigation logic.
