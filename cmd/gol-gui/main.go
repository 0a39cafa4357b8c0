//go:build ebiten

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/controller"
	"github.com/sheikhrachel/go-gol/gui"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, _, err := utils.ParseArgs("gol-gui", args)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "[run] invalid log level: %+v", config.LogLevel)
	}
	// a window leaves stderr free for logs
	logger := &log.Logger{Handler: text.New(os.Stderr), Level: level}

	grid, err := model.NewGrid(config.Size)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(config.Seed, 0))
	if err = model.Populate(grid, config.Pattern, config.RandomDensity, rng); err != nil {
		return errors.Wrapf(err, "[run] failed to place pattern: %+v", config.Pattern)
	}
	ctrl := controller.New(grid, config, logger)
	if config.AutoStart {
		ctrl.Start()
	}

	game := gui.New(ctrl, config.CellPixels, rng, config.RandomDensity, logger)
	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(game.Canvas(), game.Canvas())

	ctx, cancel := context.WithCancel(context.Background())
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return ctrl.Run(ctx)
	})

	// ebiten must own the main goroutine
	err = ebiten.RunGame(game)
	cancel()
	if waitErr := eg.Wait(); waitErr != nil {
		return waitErr
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.WithField("generation", ctrl.Generation()).Info("window closed")
	return nil
}
