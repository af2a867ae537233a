package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestPieceTypeTables checks that every piece type has a name and a letter.
func TestPieceTypeTables(t *testing.T) {
	seen := map[byte]PieceType{}
	for _, pt := range PieceTypes {
		if pieceNames[pt] == "" {
			t.Errorf("%d has no name", pt)
		}
		l := pieceLetters[pt]
		if l == 0 {
			t.Errorf("%v has no letter", pt)
		}
		if other, dup := seen[l]; dup {
			t.Errorf("%v and %v share letter %c", pt, other, l)
		}
		seen[l] = pt
	}
	if len(PieceTypes) != int(NumPieceTypes)-1 {
		t.Errorf("PieceTypes has %d entries; want %d", len(PieceTypes), NumPieceTypes-1)
	}
}

func TestParsePieceType(t *testing.T) {
	tests := []struct {
		in     string
		want   PieceType
		wantOK bool
	}{
		{"queen", Queen, true},
		{"Queen", Queen, true},
		{"q", Queen, true},
		{"N", Knight, true},
		{"knight", Knight, true},
		{"pawn", Pawn, true},
		{"king", King, true},
		{"dragon", NoPieceType, false},
		{"x", NoPieceType, false},
		{"", NoPieceType, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePieceType(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParsePieceType(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if ColourOffset(White) != 1 || ColourOffset(Black) != -1 {
		t.Error("ColourOffset() has the wrong sign")
	}
	for _, s := range []string{"white", "w", "White"} {
		if c, ok := ParseColour(s); !ok || c != White {
			t.Errorf("ParseColour(%q) = %v, %v", s, c, ok)
		}
	}
	if _, ok := ParseColour("green"); ok {
		t.Error(`ParseColour("green") succeeded`)
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		name       string
		sq         Square
		file, rank int
		light      bool
	}{
		{"a1", A1, 0, 0, false},
		{"h1", H1, 7, 0, true},
		{"e4", E4, 4, 3, true},
		{"d5", D5, 3, 4, true},
		{"h8", H8, 7, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sq.String() != tt.name {
				t.Errorf("String() = %q", tt.sq.String())
			}
			if tt.sq.File() != tt.file || tt.sq.Rank() != tt.rank {
				t.Errorf("File(), Rank() = %d, %d; want %d, %d", tt.sq.File(), tt.sq.Rank(), tt.file, tt.rank)
			}
			if tt.sq.IsLight() != tt.light {
				t.Errorf("IsLight() = %v", tt.sq.IsLight())
			}
			got, err := ParseSquare(tt.name)
			if err != nil || got != tt.sq {
				t.Errorf("ParseSquare(%q) = %v, %v", tt.name, got, err)
			}
		})
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "e", "e9", "i1", "E4", "e44"} {
		if _, err := ParseSquare(s); !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", s, err)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	if sq, ok := E4.Offset(1, 2); !ok || sq != F6 {
		t.Errorf("E4.Offset(1, 2) = %v, %v; want f6", sq, ok)
	}
	if _, ok := H8.Offset(1, 0); ok {
		t.Error("H8.Offset(1, 0) stayed on the board")
	}
	if _, ok := A1.Offset(0, -1); ok {
		t.Error("A1.Offset(0, -1) stayed on the board")
	}
}

func TestRanks(t *testing.T) {
	if HomeRank(White) != 0 || HomeRank(Black) != 7 {
		t.Error("HomeRank wrong")
	}
	if PawnRank(White) != 1 || PawnRank(Black) != 6 {
		t.Error("PawnRank wrong")
	}
	if PromotionRank(White) != 7 || PromotionRank(Black) != 0 {
		t.Error("PromotionRank wrong")
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{From: E2, To: E4}, "e2e4"},
		{Move{From: E7, To: E8, Promotion: Queen}, "e7e8q"},
		{Move{From: B2, To: A1, Promotion: Knight}, "b2a1n"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
			parsed, err := ParseMove(tt.want)
			if err != nil || parsed != tt.move {
				t.Errorf("ParseMove(%q) = %v, %v", tt.want, parsed, err)
			}
		})
	}
}

func TestParseMoveInvalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"e2", chesserrors.ErrInvalidSquare},
		{"e2e9", chesserrors.ErrInvalidSquare},
		{"e7e8k", chesserrors.ErrUnknownPiece},
		{"e7e8p", chesserrors.ErrUnknownPiece},
		{"e7e8z", chesserrors.ErrUnknownPiece},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if _, err := ParseMove(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("ParseMove(%q) error = %v; want %v", tt.in, err, tt.want)
			}
		})
	}
}
