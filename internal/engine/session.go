package engine

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Command tokens offered alongside the movable pieces.
const (
	SaveToken   = "save"
	ResignToken = "resign"
	DrawToken   = "draw"
)

// Chooser supplies a player's decisions. Every answer must be one of the
// offered options; a Chooser validates input but applies no rules.
type Chooser interface {
	// ChoosePiece picks the square of a piece to move, or a command token.
	ChoosePiece(ctx context.Context, side chess.Colour, options []string) (string, error)

	// ChooseDestination picks where the piece on from goes.
	ChooseDestination(ctx context.Context, side chess.Colour, from string, options []string) (string, error)

	// ChoosePromotion picks the piece a pawn promotes to.
	ChoosePromotion(ctx context.Context, side chess.Colour, options []string) (string, error)

	// ConfirmDraw asks side whether it agrees to a draw.
	ConfirmDraw(ctx context.Context, side chess.Colour) (bool, error)
}

// Reporter is told about the progress of a session. All methods are
// optional no-ops in NopReporter.
type Reporter interface {
	Turn(g *Game)
	Moved(g *Game, m chess.Move)
	Check(g *Game, checkers []*chess.Piece)
	DrawRefused(g *Game, side chess.Colour)
	Finished(g *Game)
}

// NopReporter ignores every event.
type NopReporter struct{}

func (NopReporter) Turn(*Game) {}
func (NopReporter) Moved(*Game, chess.Move) {}
func (NopReporter) Check(*Game, []*chess.Piece) {}
func (NopReporter) DrawRefused(*Game, chess.Colour) {}
func (NopReporter) Finished(*Game) {}

// Session drives a game turn by turn against a Chooser.
type Session struct {
	game     *Game
	chooser  Chooser
	reporter Reporter
	cfg      *config.Config
}

// NewSession creates a session for a game. A nil reporter reports nothing.
func NewSession(g *Game, chooser Chooser, reporter Reporter, cfg *config.Config) *Session {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Session{game: g, chooser: chooser, reporter: reporter, cfg: cfg}
}

// Game returns the game the session drives.
func (s *Session) Game() *Game { return s.game }

// Run plays turns until the game ends or a player asks to save. Saving
// returns errors.ErrSaveRequested with the game left exactly as it was
// before the turn, ready to be persisted.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	for !s.game.Over() {
		if err := ctx.Err(); err != nil {
			return s.game.Outcome(), err
		}
		if err := s.turn(ctx); err != nil {
			return s.game.Outcome(), err
		}
	}

	outcome := s.game.Outcome()
	s.cfg.Logf(1, "Game over after %d plies: %v (%s)\n", s.game.Ply(), outcome, outcome.Result())
	s.reporter.Finished(s.game)
	return outcome, nil
}

// turn asks the side to move for one decision and carries it out.
func (s *Session) turn(ctx context.Context) error {
	g := s.game
	side := g.ToMove()
	s.reporter.Turn(g)

	pieces := g.MovablePieces()
	options := make([]string, 0, len(pieces)+3)
	for _, pc := range pieces {
		options = append(options, pc.Square.String())
	}
	options = append(options, SaveToken, ResignToken, DrawToken)

	choice, err := s.chooser.ChoosePiece(ctx, side, options)
	if err != nil {
		return err
	}
	if !slices.Contains(options, choice) {
		return fmt.Errorf("piece choice %q not offered: %w", choice, errors.ErrIllegalMove)
	}

	switch choice {
	case SaveToken:
		s.cfg.Logf(1, "%v asks to save at ply %d\n", side, g.Ply())
		return errors.ErrSaveRequested
	case ResignToken:
		s.cfg.Logf(2, "%v resigns\n", side)
		return g.Resign(side)
	case DrawToken:
		return s.proposeDraw(ctx, side)
	}

	from := chess.MustParseSquare(choice)
	var destinations []string
	for _, sq := range g.Position().PieceAt(from).Legal {
		destinations = append(destinations, sq.String())
	}
	dest, err := s.chooser.ChooseDestination(ctx, side, choice, destinations)
	if err != nil {
		return err
	}
	if !slices.Contains(destinations, dest) {
		return fmt.Errorf("destination %q not offered: %w", dest, errors.ErrIllegalMove)
	}

	move := chess.Move{From: from, To: chess.MustParseSquare(dest)}
	if g.NeedsPromotion(move.From, move.To) {
		if move.Promotion, err = s.choosePromotion(ctx, side); err != nil {
			return err
		}
	}

	if err := g.Play(move); err != nil {
		return err
	}
	s.cfg.Logf(2, "%d. %v %s -> %s\n", g.Ply(), side, move, g.FEN())
	s.reporter.Moved(g, move)

	if !g.Over() && s.cfg.Session.CheckWarnings {
		if checkers := g.Checkers(); len(checkers) > 0 {
			s.reporter.Check(g, checkers)
		}
	}
	return nil
}

func (s *Session) choosePromotion(ctx context.Context, side chess.Colour) (chess.PieceType, error) {
	options := make([]string, 0, len(chess.PromotionTypes))
	for _, pt := range chess.PromotionTypes {
		options = append(options, strings.ToLower(pt.String()))
	}
	choice, err := s.chooser.ChoosePromotion(ctx, side, options)
	if err != nil {
		return chess.NoPieceType, err
	}
	pt, ok := chess.ParsePieceType(choice)
	if !ok || !slices.Contains(chess.PromotionTypes, pt) {
		return chess.NoPieceType, fmt.Errorf("promotion %q: %w", choice, errors.ErrUnknownPiece)
	}
	return pt, nil
}

// proposeDraw ends the game only when the proposer confirms and the
// opponent accepts.
func (s *Session) proposeDraw(ctx context.Context, side chess.Colour) error {
	for _, c := range []chess.Colour{side, side.Opposite()} {
		ok, err := s.chooser.ConfirmDraw(ctx, c)
		if err != nil {
			return err
		}
		if !ok {
			s.cfg.Logf(2, "draw refused by %v\n", c)
			s.reporter.DrawRefused(s.game, c)
			return nil
		}
	}
	return s.game.AgreeDraw()
}
