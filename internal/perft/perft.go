// Package perft counts the leaf nodes of the legal move tree. Comparing the
// counts with published values verifies the move generator, including
// castling, en passant and promotion.
package perft

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/movement"
)

// Result is the node count below one root move.
type Result struct {
	Move  chess.Move
	Nodes uint64
}

// Count returns the number of leaf nodes depth plies below pos. Depth 0
// counts pos itself. pos is not modified apart from its Legal caches.
func Count(ctx context.Context, pos *chess.Position, t *movement.Tables, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	moves := engine.AllLegalMoves(pos, t, pos.ToMove)
	if depth == 1 {
		return uint64(len(moves)), nil
	}
	var nodes uint64
	for _, m := range moves {
		child := pos.Clone()
		Play(child, m)
		n, err := Count(ctx, child, t, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Play applies a legal move to pos and passes the turn. It bypasses the game
// state machine: no clocks, no FEN log, no draw detection.
func Play(pos *chess.Position, m chess.Move) {
	id := pos.Board.At(m.From)
	if effect := engine.Execute(pos, id, m.To); effect.PromotionPending {
		engine.Promote(pos, id, m.Promotion)
	}
	pos.ToMove = pos.ToMove.Opposite()
}

// Divide counts the nodes below each root move of pos, depth plies deep in
// total, splitting the root moves over workers goroutines. workers <= 0
// means one per CPU. Results are in move generation order.
func Divide(ctx context.Context, pos *chess.Position, t *movement.Tables, depth, workers int) ([]Result, error) {
	if depth < 1 {
		return nil, fmt.Errorf("perft depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	root := pos.Clone()
	moves := engine.AllLegalMoves(root, t, root.ToMove)
	results := make([]Result, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	indices := make(chan int)

	g.Go(func() error {
		defer close(indices)
		for i := range moves {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case indices <- i:
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indices {
				child := root.Clone()
				Play(child, moves[i])
				n, err := Count(ctx, child, t, depth-1)
				if err != nil {
					return err
				}
				results[i] = Result{Move: moves[i], Nodes: n}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Perft returns the total node count of Divide.
func Perft(ctx context.Context, pos *chess.Position, t *movement.Tables, depth, workers int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	results, err := Divide(ctx, pos, t, depth, workers)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total, nil
}
