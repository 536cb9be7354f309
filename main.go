package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/tunedeck/tunedeck/internal/config"
	"github.com/tunedeck/tunedeck/internal/fetch"
	"github.com/tunedeck/tunedeck/internal/model"
	"github.com/tunedeck/tunedeck/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.tunedeck.tunedeck"
	AppName = "TuneDeck"

	WindowWidth  = 360
	WindowHeight = 640
)

// playback is the demo host's playback state. The player widget holds none of
// this; every change flows back in as a fresh configuration.
type playback struct {
	tracks  []model.Track
	current int
	playing bool
	repeat  bool
	auto    bool
}

func demoTracks() []model.Track {
	return []model.Track{
		model.NewTrack("Golden Hour", "Field Recordings",
			model.RemoteArtwork("https://picsum.photos/seed/golden/400")),
		model.NewTrack("Night Drive", "City Loops",
			model.RemoteArtwork("https://picsum.photos/seed/night/400")),
		model.NewTrack("Morning Static", "Unknown Artist", model.NoArtwork()),
		model.NewTrack("Low Tide", "Coastal Sessions",
			model.RemoteArtwork("https://picsum.photos/seed/tide/400")),
	}
}

func main() {
	// Log version information
	fmt.Printf("TuneDeck v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewAppTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	fetcher := fetch.NewHTTPFetcherWithTimeout(settings.GetArtworkTimeout())

	state := &playback{
		tracks: demoTracks(),
		auto:   settings.GetAutoPlay(),
	}
	expanded := binding.NewBool()

	var player *ui.MiniPlayer

	// apply rebuilds the player configuration from the host state. The
	// configuration is an immutable value, so a fresh one is built on every
	// state change.
	var apply func()
	buildConfig := func() ui.PlayerConfig {
		cfg := ui.NewPlayerConfig(state.tracks[state.current], expanded).
			WithColorScheme(settings.GetColorScheme()).
			WithImageFetcher(fetcher).
			WithPlayPause(state.playing, func() {
				state.playing = !state.playing
				apply()
			}).
			WithPreviousTrack(func() {
				state.current = (state.current + len(state.tracks) - 1) % len(state.tracks)
				apply()
			}).
			WithNextTrack(func() {
				state.current = (state.current + 1) % len(state.tracks)
				apply()
			}).
			WithRepeatTrack(state.repeat, func() {
				state.repeat = !state.repeat
				apply()
			}).
			WithAutoPlay(state.auto, func() {
				state.auto = !state.auto
				settings.SetAutoPlay(state.auto)
				apply()
			})
		return cfg
	}
	apply = func() {
		player.SetConfig(buildConfig())
	}

	player = ui.NewMiniPlayer(buildConfig())

	// Library tab: a tappable track list.
	rows := make([]fyne.CanvasObject, len(state.tracks))
	for i, track := range state.tracks {
		index := i
		row := ui.NewTrackRow(track, fetcher)
		row.SetOnTapped(func(model.Track) {
			state.current = index
			state.playing = true
			apply()
		})
		rows[i] = row
	}
	library := container.NewBorder(
		ui.NewTopBar("Library", nil), nil, nil, nil,
		container.NewVScroll(container.NewVBox(rows...)),
	)

	// Settings tab: scheme and autoplay preferences feed straight back into
	// the player configuration.
	schemeSelect := widget.NewRadioGroup([]string{"Dark", "Light"}, func(value string) {
		scheme := ui.SchemeDark
		if value == "Light" {
			scheme = ui.SchemeLight
		}
		settings.SetColorScheme(scheme)
		apply()
	})
	schemeSelect.SetSelected(settings.GetColorScheme().String())

	autoCheck := widget.NewCheck("Autoplay next track", func(checked bool) {
		state.auto = checked
		settings.SetAutoPlay(checked)
		apply()
	})
	autoCheck.SetChecked(state.auto)

	prefs := container.NewBorder(
		ui.NewTopBar("Settings", nil), nil, nil, nil,
		container.NewVBox(
			widget.NewLabel("Appearance"),
			schemeSelect,
			widget.NewSeparator(),
			autoCheck,
		),
	)

	tabs, err := ui.NewTabContainer(
		ui.StaticTab{Text: "Library", IconResource: theme.MediaMusicIcon(), Body: library},
		ui.StaticTab{Text: "Settings", IconResource: theme.SettingsIcon(), Body: prefs},
	)
	if err != nil {
		fmt.Printf("failed to build tabs: %v\n", err)
		return
	}

	myWindow.SetContent(container.NewBorder(nil, player, nil, nil, tabs))

	// Show and run
	myWindow.ShowAndRun()
}
