package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPosition(t *testing.T) {
	pos := NewPosition()

	if pos.ToMove != White {
		t.Errorf("ToMove = %v; want White", pos.ToMove)
	}
	for sq := Square(0); sq < NumSquares; sq++ {
		if !pos.Board.IsEmpty(sq) {
			t.Errorf("square %s = %d; want Empty", sq, pos.Board.At(sq))
		}
	}
	if pos.NumPieces() != 0 {
		t.Errorf("NumPieces() = %d; want 0", pos.NumPieces())
	}
	for _, c := range []Colour{White, Black} {
		if got := pos.Players[c].Colour; got != c {
			t.Errorf("Players[%v].Colour = %v", c, got)
		}
	}
}

func TestNewInitialPosition(t *testing.T) {
	pos := NewInitialPosition()

	tests := []struct {
		sq     string
		pt     PieceType
		colour Colour
	}{
		{"a1", Rook, White},
		{"b1", Knight, White},
		{"c1", Bishop, White},
		{"d1", Queen, White},
		{"e1", King, White},
		{"f1", Bishop, White},
		{"g1", Knight, White},
		{"h1", Rook, White},
		{"e2", Pawn, White},
		{"a7", Pawn, Black},
		{"d8", Queen, Black},
		{"e8", King, Black},
		{"h8", Rook, Black},
	}
	for _, tt := range tests {
		t.Run(tt.sq, func(t *testing.T) {
			pc := pos.PieceAt(MustParseSquare(tt.sq))
			if pc == nil {
				t.Fatalf("PieceAt(%s) = nil", tt.sq)
			}
			if pc.Type != tt.pt || pc.Colour != tt.colour {
				t.Errorf("PieceAt(%s) = %v; want %v %v", tt.sq, pc, tt.colour, tt.pt)
			}
			if !pc.Unmoved() {
				t.Errorf("PieceAt(%s).History = %v; want single entry", tt.sq, pc.History)
			}
		})
	}

	t.Run("empty middle", func(t *testing.T) {
		for sq := A3; sq <= H6; sq++ {
			if !pos.Board.IsEmpty(sq) {
				t.Errorf("square %s occupied", sq)
			}
		}
	})

	t.Run("piece counts", func(t *testing.T) {
		for _, c := range []Colour{White, Black} {
			if n := len(pos.Players[c].Pieces); n != 16 {
				t.Errorf("%v has %d pieces; want 16", c, n)
			}
		}
	})

	t.Run("kings", func(t *testing.T) {
		if k := pos.King(White); k == nil || k.Square != E1 {
			t.Errorf("King(White) = %v; want e1", k)
		}
		if k := pos.King(Black); k == nil || k.Square != E8 {
			t.Errorf("King(Black) = %v; want e8", k)
		}
	})

	if err := pos.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() = %v", err)
	}
}

func TestAddPieceHistory(t *testing.T) {
	pos := NewPosition()
	id := pos.AddPiece(Pawn, Black, D5, D7, D5)

	pc := pos.Piece(id)
	if diff := cmp.Diff([]Square{D7, D5}, pc.History); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
	if pc.Unmoved() {
		t.Error("Unmoved() = true for a piece with two history entries")
	}
}

func TestAddPiecePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*Position)
	}{
		{"occupied square", func(p *Position) { p.AddPiece(Knight, White, E1) }},
		{"history ends elsewhere", func(p *Position) { p.AddPiece(Rook, White, A3, A1, A2) }},
		{"no piece type", func(p *Position) { p.AddPiece(NoPieceType, White, A3) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			pos := NewPosition()
			pos.AddPiece(King, White, E1)
			tt.fn(pos)
		})
	}
}

func TestPiecePanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Piece(Empty) did not panic")
		}
	}()
	NewPosition().Piece(Empty)
}

func TestRemovePiece(t *testing.T) {
	pos := NewInitialPosition()
	pc := pos.PieceAt(D7)
	id := pc.ID

	pos.RemovePiece(id)

	if !pos.Board.IsEmpty(D7) {
		t.Error("d7 still occupied after RemovePiece")
	}
	if !pos.Piece(id).Removed {
		t.Error("Removed = false after RemovePiece")
	}
	if pos.Players[Black].Owns(id) {
		t.Error("Black still owns the removed pawn")
	}
	if n := len(pos.Players[Black].Pieces); n != 15 {
		t.Errorf("Black has %d pieces; want 15", n)
	}
	// Removing twice is harmless.
	pos.RemovePiece(id)
	if n := len(pos.Players[Black].Pieces); n != 15 {
		t.Errorf("Black has %d pieces after double remove; want 15", n)
	}
	if err := pos.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() = %v", err)
	}
}

func TestLastMoved(t *testing.T) {
	pos := NewInitialPosition()
	if pos.LastMoved(White) != nil {
		t.Error("LastMoved(White) != nil before any move")
	}
	knight := pos.PieceAt(G1).ID
	pawn := pos.PieceAt(E2).ID
	pos.Players[White].MovedLog = append(pos.Players[White].MovedLog, knight, pawn)

	if got := pos.LastMoved(White); got == nil || got.ID != pawn {
		t.Errorf("LastMoved(White) = %v; want the e-pawn", got)
	}
}

func TestClone(t *testing.T) {
	original := NewInitialPosition()
	original.ToMove = Black
	original.Players[White].MovedLog = []PieceID{original.PieceAt(E2).ID}

	clone := original.Clone()

	// Mutate the clone thoroughly.
	pawn := clone.PieceAt(E2)
	clone.Board.Clear(E2)
	clone.Board.Set(E4, pawn.ID)
	pawn.Square = E4
	pawn.History = append(pawn.History, E4)
	clone.RemovePiece(clone.PieceAt(D7).ID)
	clone.Players[White].MovedLog = append(clone.Players[White].MovedLog, pawn.ID)
	clone.ToMove = White

	if original.ToMove != Black {
		t.Error("original ToMove changed")
	}
	if original.Board.IsEmpty(E2) || !original.Board.IsEmpty(E4) {
		t.Error("original board changed")
	}
	if got := original.PieceAt(E2).History; len(got) != 1 {
		t.Errorf("original history = %v; want single entry", got)
	}
	if original.PieceAt(D7) == nil {
		t.Error("original lost its d7 pawn")
	}
	if n := len(original.Players[Black].Pieces); n != 16 {
		t.Errorf("original Black has %d pieces; want 16", n)
	}
	if n := len(original.Players[White].MovedLog); n != 1 {
		t.Errorf("original MovedLog length = %d; want 1", n)
	}
	if err := clone.CheckInvariants(); err != nil {
		t.Errorf("clone CheckInvariants() = %v", err)
	}
}

func TestCheckInvariantsDetectsCorruption(t *testing.T) {
	pos := NewInitialPosition()
	pos.PieceAt(E2).Square = E4 // board still says e2

	if err := pos.CheckInvariants(); err == nil {
		t.Error("CheckInvariants() = nil for a piece that disagrees with the board")
	}
}

func TestPieceLetter(t *testing.T) {
	pos := NewInitialPosition()
	tests := []struct {
		sq   Square
		want byte
	}{
		{E1, 'K'},
		{D8, 'q'},
		{B1, 'N'},
		{A7, 'p'},
	}
	for _, tt := range tests {
		if got := pos.PieceAt(tt.sq).Letter(); got != tt.want {
			t.Errorf("Letter() on %s = %c; want %c", tt.sq, got, tt.want)
		}
	}
}
