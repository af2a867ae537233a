package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveEffect describes what Execute did besides relocating the piece.
type MoveEffect struct {
	Piece    chess.PieceID
	From, To chess.Square

	// Captured is the piece taken off the board, or Empty.
	Captured chess.PieceID

	// CastleRook is the rook relocated by a castling move, or Empty.
	CastleRook chess.PieceID

	EnPassant bool

	// PromotionPending is set when a pawn reached its last rank; the caller
	// must follow up with Promote.
	PromotionPending bool
}

// IsCapture reports whether the move took a piece.
func (e MoveEffect) IsCapture() bool {
	return e.Captured != chess.Empty
}

// Execute moves a piece to a square on the live position and applies the
// side effects of en passant and castling. It does not check legality.
func Execute(pos *chess.Position, id chess.PieceID, to chess.Square) MoveEffect {
	pc := pos.Piece(id)
	if pc.Removed {
		panic(fmt.Sprintf("engine: executing removed piece %d", id))
	}
	from := pc.Square
	effect := MoveEffect{Piece: id, From: from, To: to}

	switch {
	case pc.Type == chess.Pawn && to.File() != from.File() && pos.Board.IsEmpty(to):
		victim := enPassantVictim(pos, pc, to)
		if victim == nil {
			panic(fmt.Sprintf("engine: diagonal pawn move %s%s onto an empty square", from, to))
		}
		effect.Captured = victim.ID
		effect.EnPassant = true
		pos.RemovePiece(victim.ID)

	case pc.Type == chess.King && abs(to.File()-from.File()) == 2:
		rook := castlingRook(pos, pc, to)
		if rook == nil {
			panic(fmt.Sprintf("engine: castling %s%s without a rook", from, to))
		}
		rookTo, _ := from.Offset(sign(to.File()-from.File()), 0)
		effect.CastleRook = rook.ID
		Execute(pos, rook.ID, rookTo)
	}

	if occupant := pos.Board.At(to); occupant != chess.Empty {
		if pos.Piece(occupant).Colour == pc.Colour {
			panic(fmt.Sprintf("engine: %v captures its own piece on %s", pc, to))
		}
		effect.Captured = occupant
		pos.RemovePiece(occupant)
	}

	pos.Board.Clear(from)
	pos.Board.Set(to, id)
	pc.Square = to
	pc.History = append(pc.History, to)
	pos.Players[pc.Colour].MovedLog = append(pos.Players[pc.Colour].MovedLog, id)

	effect.PromotionPending = pc.Type == chess.Pawn && to.Rank() == chess.PromotionRank(pc.Colour)
	return effect
}

// Promote replaces a pawn on its last rank with a new piece of the chosen
// type on the same square and returns the new piece's id.
func Promote(pos *chess.Position, id chess.PieceID, pt chess.PieceType) chess.PieceID {
	pawn := pos.Piece(id)
	if pawn.Type != chess.Pawn || pawn.Square.Rank() != chess.PromotionRank(pawn.Colour) {
		panic(fmt.Sprintf("engine: cannot promote %v", pawn))
	}
	switch pt {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		panic(fmt.Sprintf("engine: cannot promote to %v", pt))
	}
	sq, colour := pawn.Square, pawn.Colour
	pos.RemovePiece(id)
	return pos.AddPiece(pt, colour, sq)
}
