// chess plays a game of chess between two players at one terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/console"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/movement"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/snapshot"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	setupLogFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	tables := movement.NewTables()

	var code int
	if *checkOnly {
		code = runCheck(ctx, cfg, tables, flag.Args())
	} else {
		code = runGame(ctx, cfg, tables, os.Stdin)
	}
	stop()
	os.Exit(code)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(exitFailure)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(exitFailure)
		}
		cfg.SetLog(file)
	}
}

// newGame starts a standard game or resumes the configured snapshot.
func newGame(cfg *config.Config, tables *movement.Tables) (*engine.Game, error) {
	rules := engine.RulesFromConfig(cfg.Rules)
	if cfg.Session.LoadFile == "" {
		return engine.NewGame(tables, rules), nil
	}
	g, err := snapshot.LoadFile(cfg.Session.LoadFile, tables, rules)
	if err != nil {
		return nil, err
	}
	cfg.Logf(1, "Resumed %s at ply %d\n", cfg.Session.LoadFile, g.Ply())
	return g, nil
}

// runGame plays one game with answers read from in and returns the exit
// code. A save request writes the snapshot and exits successfully.
func runGame(ctx context.Context, cfg *config.Config, tables *movement.Tables, in io.Reader) int {
	g, err := newGame(cfg, tables)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	chooser := console.NewChooser(in, cfg.OutputFile)
	defer chooser.Close()
	session := engine.NewSession(g, chooser, output.NewReporter(cfg), cfg)
	_, err = session.Run(ctx)
	switch {
	case err == nil:
		return exitOK

	case errors.Is(err, chesserrors.ErrSaveRequested):
		if err := snapshot.SaveFile(cfg.Session.SaveFile, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitFailure
		}
		cfg.Logf(1, "Saved %s at ply %d\n", cfg.Session.SaveFile, g.Ply())
		fmt.Fprintf(cfg.OutputFile, "Game saved to %s\n", cfg.Session.SaveFile)
		return exitOK

	case errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		fmt.Fprintf(cfg.OutputFile, "Game abandoned at ply %d\n", g.Ply())
		return exitFailure
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitFailure
}

// runCheck loads every snapshot in paths in parallel and reports each one.
// It fails if any snapshot is invalid.
func runCheck(ctx context.Context, cfg *config.Config, tables *movement.Tables, paths []string) int {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -check needs at least one snapshot file")
		return exitUsage
	}

	process := worker.LoadSnapshot(tables, engine.RulesFromConfig(cfg.Rules))
	results := worker.CheckSnapshots(ctx, paths, cfg.Workers, process)

	var reports output.GameWriter
	if cfg.Output.JSON {
		reports = output.NewJSONWriter(cfg.OutputFile, cfg)
	}

	var detector *hashing.DuplicateDetector
	if cfg.Duplicate.Report {
		detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch)
	}

	invalid := 0
	for _, r := range results {
		if r.Err != nil {
			invalid++
			fmt.Fprintf(cfg.OutputFile, "%s: invalid: %v\n", r.Path, r.Err)
			continue
		}
		var note string
		if detector != nil {
			if original, dup := detector.CheckAndAdd(r.Path, r.Game); dup {
				note = " (duplicate of " + original + ")"
				cfg.Logf(2, "%s duplicates %s\n", r.Path, original)
			}
		}
		if reports != nil {
			if err := reports.WriteGame(r.Path, r.Game); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return exitFailure
			}
			continue
		}
		fmt.Fprintf(cfg.OutputFile, "%s: ok, ply %d, %v%s\n", r.Path, r.Game.Ply(), r.Game.Outcome(), note)
	}
	if reports != nil {
		if err := reports.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitFailure
		}
	}

	cfg.Logf(1, "%d snapshot(s) checked, %d invalid.\n", len(results), invalid)
	if detector != nil {
		cfg.Logf(1, "%d duplicate(s), %d unique game(s).\n", detector.DuplicateCount(), detector.UniqueCount())
	}
	if invalid > 0 {
		return exitFailure
	}
	return exitOK
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n")
	fmt.Fprintf(os.Stderr, "       chess -check [options] snapshot-files...\n\n")
	fmt.Fprintf(os.Stderr, "Play chess at the terminal, or check saved games.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nDuring a game, answer each prompt with one of the offered options:\n")
	fmt.Fprintf(os.Stderr, "  e2      select the piece on a square, then its destination\n")
	fmt.Fprintf(os.Stderr, "  save    save the game to the -save file and exit\n")
	fmt.Fprintf(os.Stderr, "  resign  give up the game\n")
	fmt.Fprintf(os.Stderr, "  draw    propose a draw; both players must answer yes\n")
}
