package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/rush80/pkg/config"
	"github.com/golangdaddy/rush80/pkg/models"
	"github.com/golangdaddy/rush80/pkg/sfx"
	"github.com/golangdaddy/rush80/pkg/sim"
	"github.com/golangdaddy/rush80/pkg/storage"
	"github.com/golangdaddy/rush80/pkg/term"
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

	// The screen owns the terminal, keep the log out of it
	if logFile, err := os.OpenFile("rush80-term.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	sounds := sfx.NewPlayer(0.4)
	defer sounds.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting %s mode in the terminal, save file %s", settings.Rules.Name, store.Path())

	state := sim.New(settings.Rules, progress, settings.Seed)
	if err := term.New(screen, state, store, sounds).Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("Terminal client stopped: %v", err)
	}
}
