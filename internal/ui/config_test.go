package ui

import (
	"testing"

	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/tunedeck/tunedeck/internal/model"
)

func testTrack() model.Track {
	return model.NewTrack("Golden Hour", "Field Recordings", model.NoArtwork())
}

// configsEqual compares every configuration field except handler identity,
// which Go functions do not support comparing.
func configsEqual(a, b PlayerConfig) bool {
	if a.Track() != b.Track() || a.Expanded() != b.Expanded() ||
		a.ColorScheme() != b.ColorScheme() || a.ExtraContent() != b.ExtraContent() ||
		a.Fetcher() != b.Fetcher() {
		return false
	}
	for _, kind := range model.AllActionKinds() {
		slotA, okA := a.Slot(kind)
		slotB, okB := b.Slot(kind)
		if okA != okB || slotA.Toggled != slotB.Toggled {
			return false
		}
	}
	return true
}

func TestPlayerConfig_Defaults(t *testing.T) {
	expanded := binding.NewBool()
	cfg := NewPlayerConfig(testTrack(), expanded)

	if cfg.ColorScheme() != SchemeDark {
		t.Errorf("default scheme = %s, expected Dark", cfg.ColorScheme())
	}
	if cfg.Expanded() != expanded {
		t.Error("config should keep the shared expansion binding")
	}
	if got := cfg.VisibleActions(model.AllActionKinds()); len(got) != 0 {
		t.Errorf("new config should have no action slots, got %v", got)
	}
}

func TestPlayerConfig_DisjointBuilderCallsCommute(t *testing.T) {
	base := NewPlayerConfig(testTrack(), binding.NewBool())
	extra := widget.NewLabel("lyrics")
	handler := func() {}

	tests := []struct {
		name string
		ab   PlayerConfig
		ba   PlayerConfig
	}{
		{
			"scheme x extra content",
			base.WithColorScheme(SchemeLight).WithExtraContent(extra),
			base.WithExtraContent(extra).WithColorScheme(SchemeLight),
		},
		{
			"play/pause x repeat",
			base.WithPlayPause(true, handler).WithRepeatTrack(false, handler),
			base.WithRepeatTrack(false, handler).WithPlayPause(true, handler),
		},
		{
			"next x scheme",
			base.WithNextTrack(handler).WithColorScheme(SchemeLight),
			base.WithColorScheme(SchemeLight).WithNextTrack(handler),
		},
		{
			"previous x autoplay",
			base.WithPreviousTrack(handler).WithAutoPlay(true, handler),
			base.WithAutoPlay(true, handler).WithPreviousTrack(handler),
		},
	}

	for _, test := range tests {
		if !configsEqual(test.ab, test.ba) {
			t.Errorf("%s: builder order changed the resulting configuration", test.name)
		}
	}
}

func TestPlayerConfig_LastWriteWins(t *testing.T) {
	base := NewPlayerConfig(testTrack(), binding.NewBool())

	cfg := base.WithColorScheme(SchemeDark).WithColorScheme(SchemeLight)
	if cfg.ColorScheme() != SchemeLight {
		t.Errorf("scheme = %s, expected the later Light", cfg.ColorScheme())
	}

	cfg = base.WithPlayPause(false, func() {}).WithPlayPause(true, func() {})
	slot, ok := cfg.Slot(model.ActionPlayPause)
	if !ok {
		t.Fatal("play/pause slot should be present")
	}
	if !slot.Toggled {
		t.Error("play/pause toggled state should keep the later value")
	}
}

func TestPlayerConfig_ValueSemantics(t *testing.T) {
	base := NewPlayerConfig(testTrack(), binding.NewBool())

	withPlay := base.WithPlayPause(true, func() {})
	withAuto := base.WithAutoPlay(true, func() {})

	if _, ok := base.Slot(model.ActionPlayPause); ok {
		t.Error("building a derived config must not mutate the base")
	}
	if _, ok := withPlay.Slot(model.ActionAutoPlay); ok {
		t.Error("sibling configs derived from one base must stay independent")
	}
	if _, ok := withAuto.Slot(model.ActionPlayPause); ok {
		t.Error("sibling configs derived from one base must stay independent")
	}

	// Extending one derivation must not leak into an earlier one.
	extended := withPlay.WithRepeatTrack(false, func() {})
	if _, ok := withPlay.Slot(model.ActionRepeatTrack); ok {
		t.Error("extending a config must not mutate its ancestor")
	}
	if _, ok := extended.Slot(model.ActionPlayPause); !ok {
		t.Error("extension should keep previously attached slots")
	}
}

func TestPlayerConfig_VisibleActionsOrder(t *testing.T) {
	cfg := NewPlayerConfig(testTrack(), binding.NewBool()).
		WithAutoPlay(false, func() {}).
		WithPlayPause(false, func() {}).
		WithRepeatTrack(false, func() {})

	expected := []model.ActionKind{model.ActionRepeatTrack, model.ActionPlayPause, model.ActionAutoPlay}
	got := cfg.VisibleActions(model.AllActionKinds())
	if len(got) != len(expected) {
		t.Fatalf("VisibleActions returned %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("VisibleActions[%d] = %s, expected %s", i, got[i], expected[i])
		}
	}

	collapsed := cfg.VisibleActions(model.CollapsedActionKinds())
	if len(collapsed) != 1 || collapsed[0] != model.ActionPlayPause {
		t.Errorf("collapsed VisibleActions = %v, expected only PlayPause", collapsed)
	}
}
