package testutil

import (
	"sync"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/movement"
)

var (
	tablesOnce sync.Once
	tables     *movement.Tables
)

// Tables returns movement templates shared by every test in the process.
func Tables() *movement.Tables {
	tablesOnce.Do(func() { tables = movement.NewTables() })
	return tables
}

// NewGame starts a standard game with the default rules.
func NewGame() *engine.Game {
	return engine.NewGame(Tables(), engine.DefaultRules())
}

// MustGameFromFEN builds a game from a FEN string with the default rules.
// It calls t.Fatal if the FEN is invalid.
func MustGameFromFEN(t *testing.T, fen string) *engine.Game {
	t.Helper()
	return MustGameFromFENWithRules(t, fen, engine.DefaultRules())
}

// MustGameFromFENWithRules is MustGameFromFEN with explicit draw rules.
func MustGameFromFENWithRules(t *testing.T, fen string, rules engine.Rules) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen, Tables(), rules)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// MustPlay plays moves given in long algebraic notation ("e2e4", "e7e8q").
// It calls t.Fatal on the first move that fails to parse or is illegal.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := chess.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", s, err)
		}
		if err := g.Play(m); err != nil {
			t.Fatalf("Play(%s) at ply %d error: %v\nposition: %s", s, g.Ply()+1, err, g.FEN())
		}
	}
}

// Squares parses square names, panicking on a malformed one.
func Squares(names ...string) []chess.Square {
	out := make([]chess.Square, 0, len(names))
	for _, n := range names {
		out = append(out, chess.MustParseSquare(n))
	}
	return out
}

// DestinationsOf returns the legal destinations of the piece on sq.
func DestinationsOf(g *engine.Game, sq string) []chess.Square {
	return g.Destinations(chess.MustParseSquare(sq))
}
