// Package movement holds the geometric move templates of every piece type:
// the squares a piece could reach from each origin on an empty board, and
// the directional rays sliding pieces walk along.
package movement

import (
	"iter"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Direction is a unit step along a file, rank or diagonal.
type Direction struct {
	DF, DR int
}

// The eight ray directions.
var (
	Up        = Direction{0, 1}
	Down      = Direction{0, -1}
	Left      = Direction{-1, 0}
	Right     = Direction{1, 0}
	UpLeft    = Direction{-1, 1}
	UpRight   = Direction{1, 1}
	DownLeft  = Direction{-1, -1}
	DownRight = Direction{1, -1}
)

var (
	straight = []Direction{Up, Down, Left, Right}
	diagonal = []Direction{UpLeft, UpRight, DownLeft, DownRight}
	all      = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}
)

// Directions returns the rays a sliding piece moves along, or nil for
// pieces that do not slide.
func Directions(pt chess.PieceType) []Direction {
	switch pt {
	case chess.Rook:
		return straight
	case chess.Bishop:
		return diagonal
	case chess.Queen:
		return all
	}
	return nil
}

// Ray lazily yields the squares outward from (not including) from in the
// given direction until the edge of the board. Callers stop ranging when
// they reach an occupied square.
func Ray(from chess.Square, dir Direction) iter.Seq[chess.Square] {
	return func(yield func(chess.Square) bool) {
		sq, ok := from.Offset(dir.DF, dir.DR)
		for ok {
			if !yield(sq) {
				return
			}
			sq, ok = sq.Offset(dir.DF, dir.DR)
		}
	}
}

var (
	knightSteps = []Direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = all
)

// Tables is the precomputed template graph. It is immutable once built and
// safe to share between games and goroutines.
type Tables struct {
	targets [chess.NumColours][chess.NumPieceTypes][chess.NumSquares][]chess.Square
}

// NewTables builds the templates for every piece type. Each table is laid
// out by a breadth-first walk from a seed square, visiting every square the
// piece can ever stand on exactly once.
func NewTables() *Tables {
	t := &Tables{}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		t.layOut(chess.Knight, c, chess.B1)
		t.layOut(chess.King, c, chess.A1)
		t.layOut(chess.Rook, c, chess.A1)
		t.layOut(chess.Bishop, c, chess.A1, chess.H1)
		t.layOut(chess.Queen, c, chess.A1)

		var seeds []chess.Square
		for file := 0; file < chess.BoardSize; file++ {
			sq, _ := chess.NewSquare(file, chess.PawnRank(c))
			seeds = append(seeds, sq)
		}
		t.layOut(chess.Pawn, c, seeds...)
	}
	return t
}

// layOut fills one table by breadth-first closure from the seeds.
func (t *Tables) layOut(pt chess.PieceType, c chess.Colour, seeds ...chess.Square) {
	var visited [chess.NumSquares]bool
	queue := make([]chess.Square, 0, chess.NumSquares)
	for _, s := range seeds {
		if !visited[s] {
			visited[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		sq := queue[0]
		queue = queue[1:]

		reach := geometry(pt, c, sq)
		t.targets[c][pt][sq] = reach
		for _, next := range reach {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
}

// Targets returns the squares a piece of the given type and colour could
// reach from an origin on an empty board. Pawn targets include the double
// step and both diagonals. The slice is shared and must not be modified.
func (t *Tables) Targets(pt chess.PieceType, c chess.Colour, from chess.Square) []chess.Square {
	if pt == chess.NoPieceType || pt >= chess.NumPieceTypes || from >= chess.NumSquares {
		return nil
	}
	return t.targets[c][pt][from]
}

// Contains reports whether to is in the template of a piece standing on
// from.
func (t *Tables) Contains(pt chess.PieceType, c chess.Colour, from, to chess.Square) bool {
	for _, sq := range t.Targets(pt, c, from) {
		if sq == to {
			return true
		}
	}
	return false
}

func geometry(pt chess.PieceType, c chess.Colour, from chess.Square) []chess.Square {
	var out []chess.Square
	switch pt {
	case chess.Knight:
		out = steps(from, knightSteps)
	case chess.King:
		out = steps(from, kingSteps)
	case chess.Rook, chess.Bishop, chess.Queen:
		for _, dir := range Directions(pt) {
			for sq := range Ray(from, dir) {
				out = append(out, sq)
			}
		}
	case chess.Pawn:
		dr := chess.ColourOffset(c)
		if sq, ok := from.Offset(0, dr); ok {
			out = append(out, sq)
			if from.Rank() == chess.PawnRank(c) {
				if sq2, ok := sq.Offset(0, dr); ok {
					out = append(out, sq2)
				}
			}
		}
		for _, df := range []int{-1, 1} {
			if sq, ok := from.Offset(df, dr); ok {
				out = append(out, sq)
			}
		}
	}
	return out
}

func steps(from chess.Square, deltas []Direction) []chess.Square {
	var out []chess.Square
	for _, d := range deltas {
		if sq, ok := from.Offset(d.DF, d.DR); ok {
			out = append(out, sq)
		}
	}
	return out
}
