package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

func TestTablesShared(t *testing.T) {
	if Tables() != Tables() {
		t.Error("Tables() returned different instances")
	}
}

func TestMustGameFromFEN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantSide chess.Colour
		wantPly  int
	}{
		{"initial", engine.InitialFEN, chess.White, 0},
		{"black to move", "4k3/8/8/8/8/8/8/4K3 b - - 0 40", chess.Black, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustGameFromFEN(t, tt.fen)
			AssertEqual(t, g.ToMove(), tt.wantSide)
			AssertEqual(t, g.Ply(), tt.wantPly)
		})
	}
}

func TestMustPlay(t *testing.T) {
	g := NewGame()
	MustPlay(t, g, "e2e4", "e7e5", "g1f3")

	AssertEqual(t, g.Ply(), 3)
	AssertEqual(t, g.ToMove(), chess.Black)
	AssertEqual(t, g.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
}

func TestSquares(t *testing.T) {
	AssertEqual(t, Squares("a1", "e4", "h8"), []chess.Square{chess.A1, chess.E4, chess.H8})
	AssertSameSquares(t, DestinationsOf(NewGame(), "g1"), Squares("f3", "h3"))
}
