// Package engine implements the rules of chess on top of the position model:
// move generation, check detection, move execution, FEN and the game state
// machine.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/movement"
)

// PseudoLegalMoves returns the squares a piece may attempt to move to,
// before removing the moves that would leave its own king attacked.
func PseudoLegalMoves(pos *chess.Position, t *movement.Tables, pc *chess.Piece) []chess.Square {
	return pseudoLegal(pos, t, pc, true)
}

// pseudoLegal generates a piece's pseudo-legal destinations. Castling is
// left out when withCastling is false, which is how attack sets are built.
func pseudoLegal(pos *chess.Position, t *movement.Tables, pc *chess.Piece, withCastling bool) []chess.Square {
	switch pc.Type {
	case chess.Rook, chess.Bishop, chess.Queen:
		return slidingMoves(pos, pc)
	case chess.Knight:
		return stepMoves(pos, t, pc)
	case chess.King:
		moves := stepMoves(pos, t, pc)
		if withCastling {
			moves = append(moves, castlingMoves(pos, t, pc)...)
		}
		return moves
	case chess.Pawn:
		return pawnMoves(pos, t, pc)
	}
	panic("engine: piece with no type")
}

// slidingMoves walks every ray of a rook, bishop or queen, stopping before
// a friendly piece and on an enemy one.
func slidingMoves(pos *chess.Position, pc *chess.Piece) []chess.Square {
	var moves []chess.Square
	for _, dir := range movement.Directions(pc.Type) {
		for sq := range movement.Ray(pc.Square, dir) {
			occupant := pos.PieceAt(sq)
			if occupant == nil {
				moves = append(moves, sq)
				continue
			}
			if occupant.Colour != pc.Colour {
				moves = append(moves, sq)
			}
			break
		}
	}
	return moves
}

// stepMoves filters a knight or king template down to empty and enemy
// squares.
func stepMoves(pos *chess.Position, t *movement.Tables, pc *chess.Piece) []chess.Square {
	var moves []chess.Square
	for _, sq := range t.Targets(pc.Type, pc.Colour, pc.Square) {
		if occupant := pos.PieceAt(sq); occupant == nil || occupant.Colour != pc.Colour {
			moves = append(moves, sq)
		}
	}
	return moves
}

// LegalMoves returns the legal destinations of a piece and stores them in
// the piece's Legal cache.
func LegalMoves(pos *chess.Position, t *movement.Tables, pc *chess.Piece) []chess.Square {
	pc.Legal = filterSelfCheck(pos, t, pc, pseudoLegal(pos, t, pc, true))
	return pc.Legal
}

// MovablePieces computes the legal moves of every piece of a colour and
// returns the pieces that have at least one, in the player's order.
func MovablePieces(pos *chess.Position, t *movement.Tables, c chess.Colour) []*chess.Piece {
	var movable []*chess.Piece
	for _, pc := range pos.Pieces(c) {
		if len(LegalMoves(pos, t, pc)) > 0 {
			movable = append(movable, pc)
		}
	}
	return movable
}

// AllLegalMoves lists every legal move of a colour, expanding promotions
// into one move per promotion piece.
func AllLegalMoves(pos *chess.Position, t *movement.Tables, c chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, pc := range MovablePieces(pos, t, c) {
		for _, to := range pc.Legal {
			if pc.Type == chess.Pawn && to.Rank() == chess.PromotionRank(c) {
				for _, pt := range chess.PromotionTypes {
					moves = append(moves, chess.Move{From: pc.Square, To: to, Promotion: pt})
				}
				continue
			}
			moves = append(moves, chess.Move{From: pc.Square, To: to})
		}
	}
	return moves
}
