package model

import "testing"

func TestNewTrack_CleansDisplayText(t *testing.T) {
	tests := []struct {
		title    string
		subtitle string
		expTitle string
		expSub   string
	}{
		{"Plain Title", "Artist", "Plain Title", "Artist"},
		{"  padded  ", "tab\there", "padded", "tab here"},
		{"line\nbreak", "cr\rhere", "line break", "cr here"},
		{"", "", "", ""},
	}

	for _, test := range tests {
		track := NewTrack(test.title, test.subtitle, NoArtwork())
		if track.Title != test.expTitle {
			t.Errorf("NewTrack title %q = %q, expected %q", test.title, track.Title, test.expTitle)
		}
		if track.Subtitle != test.expSub {
			t.Errorf("NewTrack subtitle %q = %q, expected %q", test.subtitle, track.Subtitle, test.expSub)
		}
	}
}

func TestTrack_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		subtitle string
		expected string
	}{
		{"Song", "Artist", "Song"},
		{"", "Artist", "Artist"},
		{"", "", ""},
	}

	for _, test := range tests {
		track := Track{Title: test.title, Subtitle: test.subtitle}
		if got := track.GetDisplayTitle(); got != test.expected {
			t.Errorf("GetDisplayTitle() with title=%q subtitle=%q = %q, expected %q",
				test.title, test.subtitle, got, test.expected)
		}
	}
}
