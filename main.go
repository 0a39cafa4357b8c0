package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/terminal"
	"github.com/sheikhrachel/go-gol/utils"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, _, err := utils.ParseArgs("go-gol", args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(config)
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl, rng, err := initializeGame(config, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.Clear()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := terminal.NewApp(screen, ctrl, rng, config.RandomDensity, logger)
	eg, ctx := errgroup.WithContext(ctx)
	ctx, quit := context.WithCancel(ctx)
	eg.Go(func() error {
		return ctrl.Run(ctx)
	})
	eg.Go(func() error {
		defer quit()
		return app.Run(ctx)
	})
	err = eg.Wait()

	logger.WithFields(log.Fields{
		"generation": ctrl.Generation(),
		"population": ctrl.Stats().Population,
	}).Info("shutting down")
	return err
}
