package engine

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/movement"
)

// Attacks returns the squares a piece attacks: its pseudo-legal moves
// without castling, except that a pawn attacks both forward diagonals and
// none of the squares it pushes to.
func Attacks(pos *chess.Position, t *movement.Tables, pc *chess.Piece) []chess.Square {
	if pc.Type == chess.Pawn {
		return pawnAttacks(t, pc)
	}
	return pseudoLegal(pos, t, pc, false)
}

// IsAttacked reports whether any piece of colour by attacks sq.
func IsAttacked(pos *chess.Position, t *movement.Tables, sq chess.Square, by chess.Colour) bool {
	return len(Attackers(pos, t, sq, by)) > 0
}

// Attackers returns the pieces of colour by that attack sq.
func Attackers(pos *chess.Position, t *movement.Tables, sq chess.Square, by chess.Colour) []*chess.Piece {
	var out []*chess.Piece
	for _, pc := range pos.Pieces(by) {
		if slices.Contains(Attacks(pos, t, pc), sq) {
			out = append(out, pc)
		}
	}
	return out
}

// IsInCheck returns true if the given colour's king is attacked. A side
// without a king is never in check.
func IsInCheck(pos *chess.Position, t *movement.Tables, colour chess.Colour) bool {
	king := pos.King(colour)
	if king == nil {
		return false
	}
	return IsAttacked(pos, t, king.Square, colour.Opposite())
}

// Checkers returns the enemy pieces giving check to colour's king.
func Checkers(pos *chess.Position, t *movement.Tables, colour chess.Colour) []*chess.Piece {
	king := pos.King(colour)
	if king == nil {
		return nil
	}
	return Attackers(pos, t, king.Square, colour.Opposite())
}

// filterSelfCheck keeps the candidate destinations after which the piece's
// own king is not attacked. Every candidate is played out on its own copy
// of the position, so the live position is never touched.
func filterSelfCheck(pos *chess.Position, t *movement.Tables, pc *chess.Piece, candidates []chess.Square) []chess.Square {
	var legal []chess.Square
	for _, to := range candidates {
		sim := pos.Clone()
		Execute(sim, pc.ID, to)
		if !IsInCheck(sim, t, pc.Colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// LeavesKingAttacked reports whether moving a piece to a square would leave
// its own king attacked.
func LeavesKingAttacked(pos *chess.Position, t *movement.Tables, id chess.PieceID, to chess.Square) bool {
	pc := pos.Piece(id)
	return len(filterSelfCheck(pos, t, pc, []chess.Square{to})) == 0
}
