//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"isocity/internal/app"
	"isocity/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	ter, err := terrain.New(cfg.TerrainParams())
	if err != nil {
		log.Fatalf("terrain: %v", err)
	}
	reg, err := cfg.Registry(ter)
	if err != nil {
		log.Fatalf("tiles: %v", err)
	}

	game := app.New(cfg, ter, reg, osfs.New(cfg.Assets))
	defer game.Close()

	ebiten.SetWindowTitle("isocity")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
