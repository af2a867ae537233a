// Package chess provides the core chess types: colours, piece types, squares,
// the board and the piece/player arenas that make up a position.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of sides; Colour values index [NumColours] arrays.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour parses "white"/"black" (any case, or the FEN letters w/b).
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "white", "White", "WHITE", "w":
		return White, true
	case "black", "Black", "BLACK", "b":
		return Black, true
	}
	return Black, false
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceType is the tagged variant of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// The lookup tables below are keyed by PieceType so that adding a variant
// without a mapping shows up as a zero entry in TestPieceTypeTables.
var (
	pieceNames = [NumPieceTypes]string{
		NoPieceType: "None",
		Pawn:        "Pawn",
		Knight:      "Knight",
		Bishop:      "Bishop",
		Rook:        "Rook",
		Queen:       "Queen",
		King:        "King",
	}
	pieceLetters = [NumPieceTypes]byte{
		NoPieceType: ' ',
		Pawn:        'P',
		Knight:      'N',
		Bishop:      'B',
		Rook:        'R',
		Queen:       'Q',
		King:        'K',
	}
)

// PieceTypes lists every real piece type in ascending order.
var PieceTypes = []PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// PromotionTypes lists the piece types a pawn may promote to, in the order
// they are offered to a player.
var PromotionTypes = []PieceType{Queen, Rook, Bishop, Knight}

// String returns the name of the piece type ("Pawn", "Knight", ...).
func (p PieceType) String() string {
	if p < NumPieceTypes {
		return pieceNames[p]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of a piece type.
func (p PieceType) Letter() byte {
	if p < NumPieceTypes {
		return pieceLetters[p]
	}
	return '?'
}

// IsSlider reports whether the piece moves along rays.
func (p PieceType) IsSlider() bool {
	return p == Bishop || p == Rook || p == Queen
}

// ParsePieceType parses a piece type by name ("queen", "Queen") or by
// letter ("Q", "q").
func ParsePieceType(s string) (PieceType, bool) {
	if len(s) == 1 {
		c := s[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		for _, pt := range PieceTypes {
			if pieceLetters[pt] == c {
				return pt, true
			}
		}
		return NoPieceType, false
	}
	for _, pt := range PieceTypes {
		name := pieceNames[pt]
		if s == name || s == lower(name) {
			return pt, true
		}
	}
	return NoPieceType, false
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Square is one of the 64 squares, a1 = 0, b1 = 1, ..., h8 = 63.
type Square uint8

// The 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare returns the square at the zero-based file and rank, or false if
// either coordinate is off the board.
func NewSquare(file, rank int) (Square, bool) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return 0, false
	}
	return Square(rank*BoardSize + file), true
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	sq, _ := NewSquare(int(s[0]-'a'), int(s[1]-'1'))
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the zero-based file (0 = a).
func (s Square) File() int { return int(s) % BoardSize }

// Rank returns the zero-based rank (0 = rank 1).
func (s Square) Rank() int { return int(s) / BoardSize }

// Offset returns the square df files and dr ranks away, or false if it
// falls off the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	if s >= NumSquares {
		return fmt.Sprintf("Square(%d)", uint8(s))
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// HomeRank returns the zero-based back rank of a colour.
func HomeRank(c Colour) int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the zero-based rank a colour's pawns start on.
func PawnRank(c Colour) int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the zero-based rank on which a colour's pawns promote.
func PromotionRank(c Colour) int {
	return HomeRank(c.Opposite())
}

// Move is a piece relocation chosen by a player. Promotion is NoPieceType
// unless a pawn reaches its last rank.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(m.Promotion.Letter() + 'a' - 'A')
	}
	return s
}

// ParseMove parses long algebraic notation ("e2e4", "a7a8q").
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		pt, ok := ParsePieceType(s[4:])
		if !ok || pt == Pawn || pt == King {
			return Move{}, fmt.Errorf("promotion %q: %w", s[4:], errors.ErrUnknownPiece)
		}
		m.Promotion = pt
	}
	return m, nil
}
