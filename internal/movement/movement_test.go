package movement

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestTemplateCounts(t *testing.T) {
	tables := NewTables()

	tests := []struct {
		name string
		pt   chess.PieceType
		c    chess.Colour
		from chess.Square
		want int
	}{
		{"rook d4", chess.Rook, chess.White, chess.D4, 14},
		{"bishop d4", chess.Bishop, chess.White, chess.D4, 13},
		{"queen d4", chess.Queen, chess.White, chess.D4, 27},
		{"rook a1", chess.Rook, chess.Black, chess.A1, 14},
		{"bishop a1", chess.Bishop, chess.White, chess.A1, 7},
		{"bishop h1", chess.Bishop, chess.White, chess.H1, 7},
		{"queen a1", chess.Queen, chess.White, chess.A1, 21},
		{"knight a1", chess.Knight, chess.White, chess.A1, 2},
		{"knight d4", chess.Knight, chess.White, chess.D4, 8},
		{"knight b1", chess.Knight, chess.Black, chess.B1, 3},
		{"king a1", chess.King, chess.White, chess.A1, 3},
		{"king e4", chess.King, chess.White, chess.E4, 8},
		{"white pawn e2", chess.Pawn, chess.White, chess.E2, 4},
		{"white pawn a2", chess.Pawn, chess.White, chess.A2, 3},
		{"white pawn e4", chess.Pawn, chess.White, chess.E4, 3},
		{"white pawn e8", chess.Pawn, chess.White, chess.E8, 0},
		{"black pawn e7", chess.Pawn, chess.Black, chess.E7, 4},
		{"black pawn h5", chess.Pawn, chess.Black, chess.H5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tables.Targets(tt.pt, tt.c, tt.from)); got != tt.want {
				t.Errorf("len(Targets) = %d; want %d (%v)", got, tt.want, tables.Targets(tt.pt, tt.c, tt.from))
			}
		})
	}
}

// TestTemplateCompleteness checks every reachable origin has a template with
// only distinct, on-board squares, and the layout visited every square a
// piece can stand on.
func TestTemplateCompleteness(t *testing.T) {
	tables := NewTables()

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, pt := range chess.PieceTypes {
			for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
				targets := tables.Targets(pt, c, sq)
				seen := map[chess.Square]bool{}
				for _, to := range targets {
					if to >= chess.NumSquares {
						t.Errorf("%v %v from %s reaches off-board %d", c, pt, sq, to)
					}
					if to == sq {
						t.Errorf("%v %v from %s reaches its own square", c, pt, sq)
					}
					if seen[to] {
						t.Errorf("%v %v from %s lists %s twice", c, pt, sq, to)
					}
					seen[to] = true
				}

				if pt == chess.Pawn {
					continue
				}
				if len(targets) == 0 {
					t.Errorf("%v %v has no template on %s", c, pt, sq)
				}
			}
		}
	}
}

func TestPawnTemplate(t *testing.T) {
	tables := NewTables()

	got := slices.Clone(tables.Targets(chess.Pawn, chess.White, chess.E2))
	slices.Sort(got)
	want := []chess.Square{chess.D3, chess.E3, chess.F3, chess.E4}
	slices.Sort(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("white e2 pawn mismatch (-want +got):\n%s", diff)
	}

	// Pawns never stand on their own back rank.
	if got := tables.Targets(chess.Pawn, chess.White, chess.E1); got != nil {
		t.Errorf("white pawn on e1 has template %v; want nil", got)
	}
	if got := tables.Targets(chess.Pawn, chess.Black, chess.E8); got != nil {
		t.Errorf("black pawn on e8 has template %v; want nil", got)
	}
}

func TestTargetsInvalid(t *testing.T) {
	tables := NewTables()
	if got := tables.Targets(chess.NoPieceType, chess.White, chess.E4); got != nil {
		t.Errorf("Targets(NoPieceType) = %v; want nil", got)
	}
	if !tables.Contains(chess.Knight, chess.White, chess.G1, chess.F3) {
		t.Error("Contains(knight g1, f3) = false")
	}
	if tables.Contains(chess.Knight, chess.White, chess.G1, chess.G3) {
		t.Error("Contains(knight g1, g3) = true")
	}
}

func TestRay(t *testing.T) {
	tests := []struct {
		name string
		from chess.Square
		dir  Direction
		want []chess.Square
	}{
		{"up from e6", chess.E6, Up, []chess.Square{chess.E7, chess.E8}},
		{"left from c1", chess.C1, Left, []chess.Square{chess.B1, chess.A1}},
		{"down-right from f2", chess.F2, DownRight, []chess.Square{chess.G1}},
		{"up-left from a1", chess.A1, UpLeft, nil},
		{"up-right from e5", chess.E5, UpRight, []chess.Square{chess.F6, chess.G7, chess.H8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Ray(tt.from, tt.dir))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Ray mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRayStopsEarly(t *testing.T) {
	var got []chess.Square
	for sq := range Ray(chess.A1, Up) {
		got = append(got, sq)
		if sq == chess.A3 {
			break
		}
	}
	if diff := cmp.Diff([]chess.Square{chess.A2, chess.A3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDirections(t *testing.T) {
	if n := len(Directions(chess.Queen)); n != 8 {
		t.Errorf("queen has %d directions; want 8", n)
	}
	if n := len(Directions(chess.Rook)); n != 4 {
		t.Errorf("rook has %d directions; want 4", n)
	}
	if Directions(chess.Knight) != nil {
		t.Error("knight has ray directions")
	}
}
