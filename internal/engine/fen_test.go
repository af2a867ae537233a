package engine_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestInitialPositionFEN(t *testing.T) {
	testutil.AssertEqual(t, engine.PositionToFEN(chess.NewInitialPosition(), 0, 1), engine.InitialFEN)
	testutil.AssertEqual(t, testutil.NewGame().FEN(), engine.InitialFEN)
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 17 42",
		"4k3/8/8/8/8/8/8/4K3 w - - 99 60",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos, halfmove, fullmove, err := engine.ParseFEN(fen)
			testutil.AssertNoError(t, err)
			testutil.AssertNoError(t, pos.CheckInvariants())
			testutil.AssertEqual(t, engine.PositionToFEN(pos, halfmove, fullmove), fen)
		})
	}
}

func TestParseFENFourFields(t *testing.T) {
	pos, halfmove, fullmove, err := engine.ParseFEN("4k3/8/8/8/8/8/8/4K3 b -  -")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos.ToMove, chess.Black)
	testutil.AssertEqual(t, halfmove, 0)
	testutil.AssertEqual(t, fullmove, 1)
}

func TestParseFENHistories(t *testing.T) {
	pos, _, _, err := engine.ParseFEN("r3k2r/8/8/8/4Pp2/8/8/R3K2R b Kq e3 0 1")
	testutil.AssertNoError(t, err)

	tests := []struct {
		sq      chess.Square
		unmoved bool
	}{
		{chess.E1, true},
		{chess.H1, true},
		{chess.A1, false},
		{chess.E8, true},
		{chess.A8, true},
		{chess.H8, false},
		{chess.F4, true},
		{chess.E4, false},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, pos.PieceAt(tt.sq).Unmoved(), tt.unmoved, "piece on %s", tt.sq)
	}
	testutil.AssertEqual(t, pos.PieceAt(chess.E4).History, []chess.Square{chess.E2, chess.E4})
	testutil.AssertEqual(t, pos.LastMoved(chess.White).Square, chess.E4)
	testutil.AssertEqual(t, engine.CastlingRights(pos), "Kq")
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few fields", "8/8/8/8/8/8/8/8 w"},
		{"five fields", "4k3/8/8/8/8/8/8/4K3 w - - 0"},
		{"seven ranks", "4k3/8/8/8/8/8/4K3 w - - 0 1"},
		{"rank too long", "4k4/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"rank too short", "4k2/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad piece letter", "4k3/8/8/8/8/8/8/4X3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling letter", "4k3/8/8/8/8/8/8/4K3 w X - 0 1"},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1"},
		{"castling with moved king", "4k3/8/8/8/8/8/8/R4K1R w Q - 0 1"},
		{"en passant wrong rank", "4k3/8/8/3pP3/8/8/8/4K3 w - d5 0 1"},
		{"en passant without pawn", "4k3/8/8/4P3/8/8/8/4K3 w - d6 0 1"},
		{"en passant bad square", "4k3/8/8/3pP3/8/8/8/4K3 w - z9 0 1"},
		{"negative halfmove", "4k3/8/8/8/8/8/8/4K3 w - - -1 1"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"missing white king", "4k3/8/8/8/8/8/8/8 w - - 0 1"},
		{"two black kings", "4k2k/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := engine.ParseFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestTrimFEN(t *testing.T) {
	testutil.AssertEqual(t, engine.TrimFEN(engine.InitialFEN), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	testutil.AssertEqual(t, engine.TrimFEN("4k3/8/8/8/8/8/8/4K3 b - -"), "4k3/8/8/8/8/8/8/4K3 b - -")
}

func TestFENLogRecordsEveryPosition(t *testing.T) {
	g := testutil.NewGame()
	testutil.MustPlay(t, g, "e2e4", "e7e5")

	testutil.AssertEqual(t, g.FENLog(), []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
	})
}
