package main

import (
	"log"
	"time"

	"github.com/golangdaddy/rush80/pkg/config"
	"github.com/golangdaddy/rush80/pkg/game"
	"github.com/golangdaddy/rush80/pkg/models"
	"github.com/golangdaddy/rush80/pkg/sfx"
	"github.com/golangdaddy/rush80/pkg/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	settings, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	store, err := storage.OpenFileStore(settings.SavePath)
	if store == nil {
		log.Fatal(err)
	}
	if err != nil {
		log.Printf("Warning: %v, starting a fresh profile", err)
	}
	progress := models.LoadProgress(store, settings.Rules.StartHearts, settings.Rules.CheckpointScore)

	sounds := sfx.NewPlayer(0.4)
	defer sounds.Close()

	log.Printf("Starting %s mode, save file %s", settings.Rules.Name, store.Path())

	g := game.NewGame(settings, store, progress, sounds)

	ebiten.SetWindowSize(480, 800)
	ebiten.SetWindowTitle("Rush 80")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
