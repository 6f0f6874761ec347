//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torlife/internal/app"
	"torlife/internal/core"
	"torlife/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := core.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	session := engine.NewSession(cfg)
	defer session.Close()

	game := app.New(session)

	ebiten.SetWindowTitle("torlife")
	ebiten.SetWindowSize(cfg.Width*cfg.CellSize, cfg.Height*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
