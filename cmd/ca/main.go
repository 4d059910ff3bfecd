//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"lifefade/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

const title = "lifefade"

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	game, err := app.New(cfg, title, logger)
	if err != nil {
		logger.Error("init failed", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)

	err = ebiten.RunGame(game)
	game.Report()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}
