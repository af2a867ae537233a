package engine

import (
	"fmt"
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/movement"
)

// Game is the state machine of one game: the live position, the clocks,
// the FEN log and the outcome. A Game is not safe for concurrent use; clone
// it to work on a copy.
type Game struct {
	pos    *chess.Position
	tables *movement.Tables
	rules  Rules

	halfmove int
	fullmove int

	fens  []string
	moves []chess.Move

	outcome Outcome
}

// NewGame starts a game from the standard starting position.
func NewGame(tables *movement.Tables, rules Rules) *Game {
	g := &Game{
		pos:      chess.NewInitialPosition(),
		tables:   tables,
		rules:    rules,
		fullmove: 1,
	}
	g.fens = []string{g.FEN()}
	g.evaluate()
	return g
}

// NewGameFromFEN starts a game from an arbitrary position. It exists for
// tests and analysis tools; sessions start from the standard position or a
// snapshot.
func NewGameFromFEN(fen string, tables *movement.Tables, rules Rules) (*Game, error) {
	pos, halfmove, fullmove, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		pos:      pos,
		tables:   tables,
		rules:    rules,
		halfmove: halfmove,
		fullmove: fullmove,
	}
	g.fens = []string{g.FEN()}
	g.evaluate()
	return g, nil
}

// State is everything needed to suspend and resume a game.
type State struct {
	Position *chess.Position
	Halfmove int
	Fullmove int
	FENLog   []string
	Moves    []chess.Move
}

// State returns a deep copy of the game's persistent state.
func (g *Game) State() State {
	return State{
		Position: g.pos.Clone(),
		Halfmove: g.halfmove,
		Fullmove: g.fullmove,
		FENLog:   slices.Clone(g.fens),
		Moves:    slices.Clone(g.moves),
	}
}

// NewGameFromState resumes a suspended game. An empty FEN log is started
// with the current position. The game's status is re-evaluated, so a
// state saved in a finished position comes back finished.
func NewGameFromState(s State, tables *movement.Tables, rules Rules) (*Game, error) {
	if s.Position == nil {
		return nil, fmt.Errorf("state without position: %w", errors.ErrInvalidSnapshot)
	}
	if err := s.Position.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidSnapshot)
	}
	if s.Halfmove < 0 || s.Fullmove < 1 {
		return nil, fmt.Errorf("clocks %d/%d: %w", s.Halfmove, s.Fullmove, errors.ErrInvalidSnapshot)
	}
	g := &Game{
		pos:      s.Position.Clone(),
		tables:   tables,
		rules:    rules,
		halfmove: s.Halfmove,
		fullmove: s.Fullmove,
		fens:     slices.Clone(s.FENLog),
		moves:    slices.Clone(s.Moves),
	}
	if len(g.fens) == 0 {
		g.fens = []string{g.FEN()}
	}
	g.evaluate()
	return g, nil
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.pos = g.pos.Clone()
	c.fens = slices.Clone(g.fens)
	c.moves = slices.Clone(g.moves)
	return &c
}

// Position returns the live position. Callers must not modify it.
func (g *Game) Position() *chess.Position { return g.pos }

// Tables returns the movement templates the game uses.
func (g *Game) Tables() *movement.Tables { return g.tables }

// Rules returns the draw rules in force.
func (g *Game) Rules() Rules { return g.rules }

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour { return g.pos.ToMove }

// HalfmoveClock returns the number of plies since the last pawn move or
// capture.
func (g *Game) HalfmoveClock() int { return g.halfmove }

// FullmoveNumber returns the move number, starting at 1 and advancing after
// Black moves.
func (g *Game) FullmoveNumber() int { return g.fullmove }

// Ply returns the number of moves played in this game.
func (g *Game) Ply() int { return len(g.moves) }

// FEN returns the record of the current position.
func (g *Game) FEN() string {
	return PositionToFEN(g.pos, g.halfmove, g.fullmove)
}

// FENLog returns the record of every position reached, oldest first.
func (g *Game) FENLog() []string { return slices.Clone(g.fens) }

// History returns the moves played, oldest first.
func (g *Game) History() []chess.Move { return slices.Clone(g.moves) }

// Outcome returns the current status of the game.
func (g *Game) Outcome() Outcome { return g.outcome }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.outcome.Status.Terminal() }

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return IsInCheck(g.pos, g.tables, g.pos.ToMove)
}

// Checkers returns the pieces giving check to the side to move.
func (g *Game) Checkers() []*chess.Piece {
	return Checkers(g.pos, g.tables, g.pos.ToMove)
}

// MovablePieces returns the pieces of the side to move that have a legal
// move, with their Legal caches filled in.
func (g *Game) MovablePieces() []*chess.Piece {
	if g.Over() {
		return nil
	}
	return MovablePieces(g.pos, g.tables, g.pos.ToMove)
}

// LegalMoves lists every legal move of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	if g.Over() {
		return nil
	}
	return AllLegalMoves(g.pos, g.tables, g.pos.ToMove)
}

// Destinations returns the legal destinations of the piece on sq, or nil if
// it is not a piece of the side to move.
func (g *Game) Destinations(sq chess.Square) []chess.Square {
	pc := g.pos.PieceAt(sq)
	if g.Over() || pc == nil || pc.Colour != g.pos.ToMove {
		return nil
	}
	return LegalMoves(g.pos, g.tables, pc)
}

// NeedsPromotion reports whether moving the piece on from to to would
// require a promotion choice.
func (g *Game) NeedsPromotion(from, to chess.Square) bool {
	pc := g.pos.PieceAt(from)
	return pc != nil && pc.Type == chess.Pawn && to.Rank() == chess.PromotionRank(pc.Colour)
}

// Play validates and applies a move for the side to move. A pawn reaching
// its last rank must name its promotion piece; no other move may.
func (g *Game) Play(m chess.Move) error {
	if g.Over() {
		return g.errorf(errors.ErrGameOver, m)
	}
	pc := g.pos.PieceAt(m.From)
	if pc == nil || pc.Colour != g.pos.ToMove {
		return g.errorf(errors.ErrIllegalMove, m)
	}
	if !slices.Contains(LegalMoves(g.pos, g.tables, pc), m.To) {
		return g.errorf(errors.ErrIllegalMove, m)
	}
	if g.NeedsPromotion(m.From, m.To) {
		if !slices.Contains(chess.PromotionTypes, m.Promotion) {
			return g.errorf(errors.ErrIllegalMove, m)
		}
	} else if m.Promotion != chess.NoPieceType {
		return g.errorf(errors.ErrIllegalMove, m)
	}

	g.apply(pc.ID, m)
	return nil
}

func (g *Game) errorf(err error, m chess.Move) error {
	return &errors.GameError{Err: err, Ply: g.Ply() + 1, Move: m.String()}
}

// apply executes a validated move and advances the state machine.
func (g *Game) apply(id chess.PieceID, m chess.Move) {
	mover := g.pos.ToMove
	pt := g.pos.Piece(id).Type

	effect := Execute(g.pos, id, m.To)
	if effect.PromotionPending {
		Promote(g.pos, id, m.Promotion)
	}

	g.halfmove = nextHalfmoveClock(g.halfmove, pt, effect.IsCapture())
	if mover == chess.Black {
		g.fullmove++
	}
	g.pos.ToMove = mover.Opposite()
	g.moves = append(g.moves, m)
	g.fens = append(g.fens, g.FEN())

	g.evaluate()
}

// evaluate settles the status for the side to move: checkmate or
// stalemate first, then the halfmove clock, then repetition.
func (g *Game) evaluate() {
	side := g.pos.ToMove
	g.outcome = Outcome{Status: AwaitingMove, ToMove: side}

	if len(MovablePieces(g.pos, g.tables, side)) == 0 {
		if g.InCheck() {
			g.outcome = Outcome{Status: Checkmate, Winner: side.Opposite(), ToMove: side}
		} else {
			g.outcome = Outcome{Status: Stalemate, ToMove: side}
		}
		return
	}
	if g.halfmove >= g.rules.HalfmoveLimit {
		g.outcome = Outcome{Status: DrawByHalfmoveClock, ToMove: side}
		return
	}
	if CountRepetitions(g.fens, g.rules.RepetitionStride) >= RepetitionCount {
		g.outcome = Outcome{Status: DrawByRepetition, ToMove: side}
	}
}

// Resign ends the game with side losing.
func (g *Game) Resign(side chess.Colour) error {
	if g.Over() {
		return &errors.GameError{Err: errors.ErrGameOver, Ply: g.Ply()}
	}
	g.outcome = Outcome{Status: Resigned, Winner: side.Opposite(), ToMove: g.pos.ToMove}
	return nil
}

// AgreeDraw ends the game in a draw both sides accepted.
func (g *Game) AgreeDraw() error {
	if g.Over() {
		return &errors.GameError{Err: errors.ErrGameOver, Ply: g.Ply()}
	}
	g.outcome = Outcome{Status: DrawByAgreement, ToMove: g.pos.ToMove}
	return nil
}
