package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"

	"github.com/tunedeck/tunedeck/internal/fetch"
	"github.com/tunedeck/tunedeck/internal/model"
	"github.com/tunedeck/tunedeck/internal/ui"
)

// Minimal embedding example: one player over one track, with the host driving
// play/pause through fresh configurations.
func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.tunedeck.tunedeck")
	myWindow := myApp.NewWindow("TuneDeck")
	myWindow.Resize(fyne.NewSize(360, 640))

	track := model.NewTrack("Golden Hour", "Field Recordings",
		model.RemoteArtwork("https://picsum.photos/seed/golden/400"))
	expanded := binding.NewBool()
	fetcher := fetch.NewHTTPFetcher()

	var player *ui.MiniPlayer
	playing := false
	var apply func()
	buildConfig := func() ui.PlayerConfig {
		return ui.NewPlayerConfig(track, expanded).
			WithImageFetcher(fetcher).
			WithPlayPause(playing, func() {
				playing = !playing
				apply()
			})
	}
	apply = func() { player.SetConfig(buildConfig()) }
	player = ui.NewMiniPlayer(buildConfig())

	myWindow.SetContent(container.NewBorder(nil, player, nil, nil,
		container.NewStack()))

	// Show and run
	myWindow.ShowAndRun()
}
