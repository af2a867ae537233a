package engine_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestEnPassantWindow(t *testing.T) {
	g := testutil.NewGame()
	testutil.MustPlay(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	testutil.AssertSameSquares(t, testutil.DestinationsOf(g, "e5"), testutil.Squares("e6", "d6"))

	// Any other move closes the window for good.
	later := g.Clone()
	testutil.MustPlay(t, later, "h2h3", "h7h6")
	testutil.AssertSameSquares(t, testutil.DestinationsOf(later, "e5"), testutil.Squares("e6"))
	testutil.AssertContains(t, later.FEN(), "KQkq - 0 4")

	testutil.MustPlay(t, g, "e5d6")
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3")
	testutil.AssertEqual(t, len(g.Position().Pieces(chess.Black)), 15)
}

func TestEnPassantNeedsDoubleStep(t *testing.T) {
	// The black pawn reaches d5 in two single steps, so it cannot be taken
	// en passant even though it moved last.
	g := testutil.NewGame()
	testutil.MustPlay(t, g, "e2e4", "d7d6", "e4e5", "d6d5")

	testutil.AssertSameSquares(t, testutil.DestinationsOf(g, "e5"), testutil.Squares("e6"))
	testutil.AssertContains(t, g.FEN(), " w KQkq - ")
}

func TestEnPassantFromFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"white captures", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5", []string{"e6", "d6"}},
		{"black captures", "4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 1", "e4", []string{"e3", "d3"}},
		{"no target field", "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1", "e5", []string{"e6"}},
		{"capture would expose the king", "8/8/8/K2pP2r/8/8/8/4k3 w - d6 0 1", "e5", []string{"e6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGameFromFEN(t, tt.fen)
			testutil.AssertSameSquares(t, testutil.DestinationsOf(g, tt.from), testutil.Squares(tt.want...))
		})
	}
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	g := testutil.MustGameFromFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	victim := g.Position().PieceAt(chess.D5).ID

	testutil.MustPlay(t, g, "e5d6")

	testutil.AssertEqual(t, g.FEN(), "4k3/8/3P4/8/8/8/8/4K3 b - - 0 1")
	testutil.AssertTrue(t, g.Position().Piece(victim).Removed, "captured pawn marked removed")
	testutil.AssertEqual(t, g.HalfmoveClock(), 0)
}

func TestEnPassantTarget(t *testing.T) {
	pos := engine.MustParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	sq, ok := engine.EnPassantTarget(pos)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, sq, chess.D6)

	pos = engine.MustParseFEN(engine.InitialFEN)
	_, ok = engine.EnPassantTarget(pos)
	testutil.AssertFalse(t, ok)
}
