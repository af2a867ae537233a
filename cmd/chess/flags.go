// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Board and report output
	unicodeBoard = flag.Bool("unicode", false, "Draw pieces as Unicode chess symbols")
	colorBoard   = flag.Bool("color", false, "Shade light and dark squares with ANSI colours")
	noCoords     = flag.Bool("nocoords", false, "Don't print file and rank labels")
	showFEN      = flag.Bool("fen", false, "Print the FEN of each position")
	showMoves    = flag.Bool("moves", false, "Print the move list when the game ends")
	jsonOutput   = flag.Bool("J", false, "Write game reports in JSON format")
	lineLength   = flag.Int("w", 80, "Maximum line length of move lists")
	noCheckWarn  = flag.Bool("nocheckwarn", false, "Don't announce the pieces giving check")

	// Draw rules
	halfmoveLimit    = flag.Int("halfmoves", 100, "Plies without a pawn move or capture that draw the game")
	repetitionStride = flag.Int("stride", 2, "Plies between positions compared for repetition (4 = legacy)")

	// Session
	saveFile = flag.String("save", "chess-save.json", "Snapshot file written when a player saves")
	loadFile = flag.String("load", "", "Resume the game saved in this snapshot file")

	// Snapshot checking
	checkOnly = flag.Bool("check", false, "Check the snapshot files given as arguments and exit")
	workers   = flag.Int("workers", 0, "Parallel workers for -check (0 = one per CPU)")
	dupReport = flag.Bool("D", false, "With -check, report snapshots that repeat an earlier game's final position")
	dupExact  = flag.Bool("Dexact", false, "With -D, also require the same moves")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 game events, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyRulesFlags(cfg)
	applySessionFlags(cfg)
	applyDuplicateFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.Workers = *workers
}

// applyOutputFlags configures board rendering and game reports.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Unicode = *unicodeBoard
	cfg.Output.Color = *colorBoard
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.JSON = *jsonOutput
	cfg.Output.MaxLineLength = *lineLength
}

// applyRulesFlags configures the automatic draw rules.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.HalfmoveLimit = *halfmoveLimit
	cfg.Rules.RepetitionStride = *repetitionStride
}

// applySessionFlags configures saving, loading and announcements.
func applySessionFlags(cfg *config.Config) {
	cfg.Session.SaveFile = *saveFile
	cfg.Session.LoadFile = *loadFile
	cfg.Session.CheckWarnings = !*noCheckWarn
	cfg.Session.ShowMoveList = *showMoves
}

// applyDuplicateFlags configures duplicate snapshot detection.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Report = *dupReport || *dupExact
	cfg.Duplicate.ExactMatch = *dupExact
}
