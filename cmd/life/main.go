//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	grid, err := core.New(cfg.Width, cfg.Height, core.WithWorkers(cfg.Workers))
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}
	if cfg.Density > 0 {
		grid.Randomize(cfg.Seed, cfg.Density)
	}

	game := app.New(grid, cfg)
	sw, sh := cfg.ScreenSize()

	ebiten.SetWindowTitle(fmt.Sprintf("lifegrid — %dx%d", cfg.Width, cfg.Height))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(sw, sh)

	log.Printf("lifegrid: %dx%d cells, tick %s, %d worker(s), %d live", cfg.Width, cfg.Height, cfg.Tick, cfg.Workers, grid.Population())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
