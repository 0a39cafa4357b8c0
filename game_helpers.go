package main

import (
	"math/rand/v2"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/text"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/controller"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

// newLogger builds the application logger. The terminal belongs to the UI, so
// entries go to the configured file or nowhere; closeFn releases the file.
func newLogger(config utils.Config) (logger *log.Logger, closeFn func(), err error) {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[newLogger] invalid log level: %+v", config.LogLevel)
	}
	if config.LogFile == "" {
		return &log.Logger{Handler: discard.New(), Level: level}, func() {}, nil
	}
	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[newLogger] failed to open log file: %+v", config.LogFile)
	}
	return &log.Logger{Handler: text.New(f), Level: level}, func() { _ = f.Close() }, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, logger log.Interface) (*controller.Controller, *rand.Rand, error) {
	grid, err := model.NewGrid(config.Size)
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewPCG(config.Seed, 0))
	if err = model.Populate(grid, config.Pattern, config.RandomDensity, rng); err != nil {
		return nil, nil, errors.Wrapf(err, "[initializeGame] failed to place pattern: %+v", config.Pattern)
	}

	ctrl := controller.New(grid, config, logger)
	logger.WithFields(log.Fields{
		"size":       config.Size,
		"pattern":    config.Pattern,
		"population": grid.CountLivingCells(),
		"interval":   ctrl.Interval(),
	}).Info("game initialized")

	if config.AutoStart {
		ctrl.Start()
	}
	return ctrl, rng, nil
}
