package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/movement"
)

// castlingMoves returns the castling destinations of a king. Castling toward
// a rook requires that:
//   - the king has never moved
//   - the rook has never moved and stands in a corner of the king's home rank
//   - every square strictly between them is empty
//   - the king is not in check
//   - neither the square the king crosses nor its destination is attacked
func castlingMoves(pos *chess.Position, t *movement.Tables, king *chess.Piece) []chess.Square {
	if !king.Unmoved() || king.Square.Rank() != chess.HomeRank(king.Colour) {
		return nil
	}
	enemy := king.Colour.Opposite()

	var moves []chess.Square
	inCheck := false
	checked := false
	for _, rook := range castlingRooks(pos, king) {
		if !pathClear(pos, king.Square, rook.Square) {
			continue
		}
		if !checked {
			inCheck = IsAttacked(pos, t, king.Square, enemy)
			checked = true
		}
		if inCheck {
			return nil
		}
		dir := sign(rook.Square.File() - king.Square.File())
		transit, ok1 := king.Square.Offset(dir, 0)
		dest, ok2 := king.Square.Offset(2*dir, 0)
		if !ok1 || !ok2 {
			continue
		}
		if IsAttacked(pos, t, transit, enemy) || IsAttacked(pos, t, dest, enemy) {
			continue
		}
		moves = append(moves, dest)
	}
	return moves
}

// castlingRooks returns the unmoved friendly rooks in the corners of the
// king's home rank.
func castlingRooks(pos *chess.Position, king *chess.Piece) []*chess.Piece {
	var rooks []*chess.Piece
	rank := chess.HomeRank(king.Colour)
	for _, file := range []int{0, chess.BoardSize - 1} {
		sq, _ := chess.NewSquare(file, rank)
		rook := pos.PieceAt(sq)
		if rook != nil && rook.Type == chess.Rook && rook.Colour == king.Colour && rook.Unmoved() {
			rooks = append(rooks, rook)
		}
	}
	return rooks
}

// castlingRook returns the rook that accompanies a king moving two files
// toward it.
func castlingRook(pos *chess.Position, king *chess.Piece, to chess.Square) *chess.Piece {
	dir := sign(to.File() - king.Square.File())
	for _, rook := range castlingRooks(pos, king) {
		if sign(rook.Square.File()-king.Square.File()) == dir {
			return rook
		}
	}
	return nil
}

// pathClear reports whether every square strictly between two squares on
// the same rank is empty.
func pathClear(pos *chess.Position, a, b chess.Square) bool {
	dir := sign(b.File() - a.File())
	for sq, ok := a.Offset(dir, 0); ok && sq != b; sq, ok = sq.Offset(dir, 0) {
		if !pos.Board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
