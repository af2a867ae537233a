package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Reporter prints a session to a terminal: the board before each turn,
// check warnings and the final result.
type Reporter struct {
	w     io.Writer
	cfg   *config.Config
	games GameWriter
}

var _ engine.Reporter = (*Reporter)(nil)

// NewReporter creates a reporter writing to cfg.OutputFile.
func NewReporter(cfg *config.Config) *Reporter {
	return &Reporter{
		w:     cfg.OutputFile,
		cfg:   cfg,
		games: NewGameWriter(cfg.OutputFile, cfg),
	}
}

// Turn draws the board and names the side to move.
func (r *Reporter) Turn(g *engine.Game) {
	fmt.Fprintln(r.w)
	RenderBoard(r.w, g.Position(), r.cfg.Output)
	if r.cfg.Output.ShowFEN {
		fmt.Fprintf(r.w, "FEN: %s\n", g.FEN())
	}
	if g.InCheck() {
		fmt.Fprintf(r.w, "%v to move, in check\n", g.ToMove())
	} else {
		fmt.Fprintf(r.w, "%v to move\n", g.ToMove())
	}
}

// Moved echoes the move just played.
func (r *Reporter) Moved(g *engine.Game, m chess.Move) {
	fmt.Fprintf(r.w, "%v plays %s\n", g.ToMove().Opposite(), m)
}

// Check lists the pieces attacking the king of the side to move.
func (r *Reporter) Check(g *engine.Game, checkers []*chess.Piece) {
	names := make([]string, len(checkers))
	for i, pc := range checkers {
		names[i] = pc.String()
	}
	fmt.Fprintf(r.w, "CHECK WARNING: %v king attacked by %s\n", g.ToMove(), strings.Join(names, ", "))
}

// DrawRefused reports a declined draw proposal.
func (r *Reporter) DrawRefused(_ *engine.Game, side chess.Colour) {
	fmt.Fprintf(r.w, "%v declines the draw\n", side)
}

// Finished draws the final board and the result. The game report follows
// when a move list or JSON output is configured.
func (r *Reporter) Finished(g *engine.Game) {
	fmt.Fprintln(r.w)
	RenderBoard(r.w, g.Position(), r.cfg.Output)
	outcome := g.Outcome()
	fmt.Fprintf(r.w, "*** %s: %v ***\n", outcome.Result(), outcome)

	if !r.cfg.Session.ShowMoveList && !r.cfg.Output.JSON {
		return
	}
	if err := r.games.WriteGame("", g); err != nil {
		r.cfg.Logf(1, "writing game report: %v\n", err)
	}
	if err := r.games.Flush(); err != nil {
		r.cfg.Logf(1, "writing game report: %v\n", err)
	}
}
