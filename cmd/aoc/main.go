// Command aoc runs a puzzle solver selected by its day number.
//
// Usage:
//
//	aoc [-config aoc.yaml] [-day 8] [-input-dir ./inputs] [-threshold 1000]
//	    [-workers 0] [-log-level info] [-profile cpu|mem]
//
// The input for day N is read from <input-dir>/dayN.txt. Flags override values
// from the YAML config file, which in turn override the built-in defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/aoc2025/circuits"
	"github.com/katalvlaran/aoc2025/config"
	"github.com/katalvlaran/aoc2025/puzzle"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "aoc:", err)
		return 2
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "aoc:", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	reg, err := newRegistry(cfg, logger)
	if err != nil {
		logger.Error("register solvers", zap.Error(err))
		return 2
	}
	logger.Info("solving",
		zap.Int("day", cfg.Day),
		zap.String("input", puzzle.InputPath(cfg.InputDir, cfg.Day)),
	)
	ans, err := puzzle.Run(reg, cfg.Day, cfg.InputDir)
	if err != nil {
		logger.Error("solve failed", zap.Int("day", cfg.Day), zap.Error(err))
		return 1
	}

	fmt.Fprintf(stdout, "=== Day %d ===\n", cfg.Day)
	fmt.Fprintf(stdout, "Part 1: %s\n", ans.Part1)
	fmt.Fprintf(stdout, "Part 2: %s\n", ans.Part2)

	return 0
}

// loadConfig resolves defaults, the optional YAML file and explicitly set flags, then validates.
func loadConfig(args []string, stderr io.Writer) (config.Config, error) {
	def := config.Default()

	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("config", "", "YAML configuration file")
	day := fs.Int("day", def.Day, "puzzle day to run")
	inputDir := fs.String("input-dir", def.InputDir, "directory holding dayN.txt inputs")
	threshold := fs.Int("threshold", def.Threshold, "edges processed before the part 1 snapshot (day 8)")
	workers := fs.Int("workers", def.Workers, "pair-ranking workers, 0 for sequential (day 8)")
	level := fs.String("log-level", def.LogLevel, "debug, info, warn or error")
	prof := fs.String("profile", def.Profile, "write a cpu or mem profile")
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "day":
			cfg.Day = *day
		case "input-dir":
			cfg.InputDir = *inputDir
		case "threshold":
			cfg.Threshold = *threshold
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.LogLevel = *level
		case "profile":
			cfg.Profile = *prof
		}
	})

	return cfg, cfg.Validate()
}

// solverFactory builds the solver for one day from the run configuration.
type solverFactory struct {
	day   int
	build func(config.Config, *zap.Logger) puzzle.Solver
}

// solvers lists every implemented day.
var solvers = []solverFactory{
	{day: circuits.Day, build: func(cfg config.Config, logger *zap.Logger) puzzle.Solver {
		return circuits.NewSolver(
			circuits.WithThreshold(cfg.Threshold),
			circuits.WithWorkers(cfg.Workers),
			circuits.WithLogger(logger.Named("circuits")),
		)
	}},
}

// newRegistry binds every factory in list to its day.
// A duplicate or out-of-range day is reported rather than dropped.
func newRegistry(cfg config.Config, logger *zap.Logger, list ...solverFactory) (*puzzle.Registry, error) {
	if len(list) == 0 {
		list = solvers
	}
	reg := puzzle.NewRegistry()
	for _, f := range list {
		if err := reg.Register(f.day, f.build(cfg, logger)); err != nil {
			return nil, fmt.Errorf("register day %d: %w", f.day, err)
		}
	}

	return reg, nil
}

// newLogger builds a console logger writing to w at the named level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)

	return zap.New(core), nil
}
