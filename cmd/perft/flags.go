// flags.go - Command-line flag definitions
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var (
	fen       = flag.String("fen", engine.InitialFEN, "Position to count from")
	depth     = flag.Int("depth", 4, "Plies to search")
	divide    = flag.Bool("divide", false, "Print the node count below each root move")
	workers   = flag.Int("workers", 0, "Parallel workers (0 = one per CPU)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 counts only, 1 timing")
	help      = flag.Bool("h", false, "Show help")
)
