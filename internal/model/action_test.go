package model

import "testing"

func TestActionKind_String(t *testing.T) {
	tests := []struct {
		kind     ActionKind
		expected string
	}{
		{ActionRepeatTrack, "RepeatTrack"},
		{ActionPreviousTrack, "PreviousTrack"},
		{ActionPlayPause, "PlayPause"},
		{ActionNextTrack, "NextTrack"},
		{ActionAutoPlay, "AutoPlay"},
		{ActionKind(99), "Unknown"},
	}

	for _, test := range tests {
		if got := test.kind.String(); got != test.expected {
			t.Errorf("String() for kind %d = %s, expected %s", int(test.kind), got, test.expected)
		}
	}
}

func TestAllActionKinds_RenderOrder(t *testing.T) {
	expected := []ActionKind{
		ActionRepeatTrack,
		ActionPreviousTrack,
		ActionPlayPause,
		ActionNextTrack,
		ActionAutoPlay,
	}

	got := AllActionKinds()
	if len(got) != len(expected) {
		t.Fatalf("AllActionKinds() returned %d kinds, expected %d", len(got), len(expected))
	}
	for i, kind := range expected {
		if got[i] != kind {
			t.Errorf("AllActionKinds()[%d] = %s, expected %s", i, got[i], kind)
		}
	}
}

func TestCollapsedActionKinds_Subset(t *testing.T) {
	expected := []ActionKind{ActionPreviousTrack, ActionPlayPause, ActionNextTrack}

	got := CollapsedActionKinds()
	if len(got) != len(expected) {
		t.Fatalf("CollapsedActionKinds() returned %d kinds, expected %d", len(got), len(expected))
	}
	for i, kind := range expected {
		if got[i] != kind {
			t.Errorf("CollapsedActionKinds()[%d] = %s, expected %s", i, got[i], kind)
		}
	}
}
