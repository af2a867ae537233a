package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/movement"
)

// pawnMoves generates pushes, captures and en passant captures.
func pawnMoves(pos *chess.Position, t *movement.Tables, pc *chess.Piece) []chess.Square {
	var moves []chess.Square
	from := pc.Square
	for _, to := range t.Targets(chess.Pawn, pc.Colour, from) {
		if to.File() == from.File() {
			if !pos.Board.IsEmpty(to) {
				continue
			}
			if abs(to.Rank()-from.Rank()) == 2 {
				mid, _ := from.Offset(0, chess.ColourOffset(pc.Colour))
				if !pos.Board.IsEmpty(mid) {
					continue
				}
			}
			moves = append(moves, to)
			continue
		}

		if occupant := pos.PieceAt(to); occupant != nil {
			if occupant.Colour != pc.Colour {
				moves = append(moves, to)
			}
			continue
		}
		if enPassantVictim(pos, pc, to) != nil {
			moves = append(moves, to)
		}
	}
	return moves
}

// pawnAttacks returns the diagonal squares a pawn attacks, whether or not
// anything stands on them.
func pawnAttacks(t *movement.Tables, pc *chess.Piece) []chess.Square {
	var out []chess.Square
	for _, to := range t.Targets(chess.Pawn, pc.Colour, pc.Square) {
		if to.File() != pc.Square.File() {
			out = append(out, to)
		}
	}
	return out
}

// enPassantVictim returns the enemy pawn a pawn would capture by moving
// diagonally onto the empty square to, or nil. The victim must stand beside
// the capturing pawn, have made exactly one move, a double step over to,
// and be the last piece its player moved.
func enPassantVictim(pos *chess.Position, pc *chess.Piece, to chess.Square) *chess.Piece {
	if pc.Type != chess.Pawn {
		return nil
	}
	beside, ok := chess.NewSquare(to.File(), pc.Square.Rank())
	if !ok {
		return nil
	}
	victim := pos.PieceAt(beside)
	if victim == nil || victim.Type != chess.Pawn || victim.Colour == pc.Colour {
		return nil
	}
	if len(victim.History) != 2 {
		return nil
	}
	if pos.Players[victim.Colour].LastMoved() != victim.ID {
		return nil
	}
	passed, ok := doubleStepSquare(victim)
	if !ok || passed != to {
		return nil
	}
	return victim
}

// doubleStepSquare returns the square a pawn passed over if its last move
// was a two-square advance.
func doubleStepSquare(pc *chess.Piece) (chess.Square, bool) {
	n := len(pc.History)
	if pc.Type != chess.Pawn || n < 2 {
		return 0, false
	}
	from, to := pc.History[n-2], pc.History[n-1]
	if from.File() != to.File() || abs(to.Rank()-from.Rank()) != 2 {
		return 0, false
	}
	return chess.NewSquare(from.File(), (from.Rank()+to.Rank())/2)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
