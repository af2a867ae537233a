// perft counts the legal move tree below a position to verify the move
// generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/movement"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfigBuilder().
		WithVerbosity(*verbosity).
		WithWorkers(*workers).
		Build()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg, *fen, *depth, *divide)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run counts the nodes depth plies below the position and writes the total
// to cfg.OutputFile, preceded by per-move counts when divide is set.
func run(ctx context.Context, cfg *config.Config, fen string, depth int, divide bool) error {
	pos, _, _, err := engine.ParseFEN(fen)
	if err != nil {
		return err
	}
	tables := movement.NewTables()

	start := time.Now()
	results, err := perft.Divide(ctx, pos, tables, depth, cfg.Workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	if divide {
		writeDivide(cfg.OutputFile, results)
	}
	fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", total)

	nps := float64(total) / elapsed.Seconds()
	cfg.Logf(1, "depth %d: %d nodes in %v (%.0f nodes/s)\n", depth, total, elapsed.Round(time.Millisecond), nps)
	return nil
}

// writeDivide writes "move: nodes" lines sorted by move.
func writeDivide(w io.Writer, results []perft.Result) {
	sorted := make([]perft.Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Move.String() < sorted[j].Move.String()
	})
	for _, r := range sorted {
		fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
	}
	fmt.Fprintln(w)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Count the positions reachable from a FEN position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
