package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Zobrist keys are drawn from a fixed seed so hashes are stable between runs.
var (
	pieceKeys    [chess.NumColours][chess.NumPieceTypes][chess.NumSquares]uint64
	whiteKey     uint64
	castlingKeys [256]uint64 // indexed by the rights letter
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewPCG(0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9))
	for c := range pieceKeys {
		for pt := range pieceKeys[c] {
			for sq := range pieceKeys[c][pt] {
				pieceKeys[c][pt][sq] = r.Uint64()
			}
		}
	}
	whiteKey = r.Uint64()
	for _, l := range "KQkq" {
		castlingKeys[l] = r.Uint64()
	}
	for f := range epFileKeys {
		epFileKeys[f] = r.Uint64()
	}
}

// ZobristHash hashes everything the position's FEN records except the
// move counters: placement, side to move, castling rights and the en
// passant file.
func ZobristHash(pos *chess.Position) uint64 {
	var h uint64
	for c := range chess.NumColours {
		for _, p := range pos.Pieces(chess.Colour(c)) {
			h ^= pieceKeys[p.Colour][p.Type][p.Square]
		}
	}
	if pos.ToMove == chess.White {
		h ^= whiteKey
	}
	for _, l := range []byte(engine.CastlingRights(pos)) {
		h ^= castlingKeys[l]
	}
	if sq, ok := engine.EnPassantTarget(pos); ok {
		h ^= epFileKeys[sq.File()]
	}
	return h
}

// WeakHash is a cheap placement-only hash used as a second opinion when
// two Zobrist hashes collide.
func WeakHash(pos *chess.Position) uint64 {
	var h uint64
	for sq := range chess.NumSquares {
		if p := pos.PieceAt(chess.Square(sq)); p != nil {
			h = h*31 + uint64(sq)*uint64(p.Letter())
		}
	}
	return h
}
