// Package output renders boards, move lists and game reports.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoveList writes the moves of a game in long algebraic form with move
// numbers, followed by the result, wrapping lines at maxLineLength:
//
//	1. e2e4 e7e5 2. g1f3 b8c6 *
//
// Numbering continues from the position the game started in, so a game
// begun with Black to move opens with "N...".
func WriteMoveList(w io.Writer, g *engine.Game, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)

	moveNum, toMove := startingMove(g)
	for i, m := range g.History() {
		if toMove == chess.White {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(m.String())

		if toMove == chess.Black {
			moveNum++
		}
		toMove = toMove.Opposite()
	}

	ow.Write(g.Outcome().Result())
	ow.NewLine()
}

// startingMove returns the fullmove number and side to move of the first
// position in the game's FEN log.
func startingMove(g *engine.Game) (int, chess.Colour) {
	log := g.FENLog()
	if len(log) == 0 {
		return g.FullmoveNumber(), g.ToMove()
	}
	pos, _, fullmove, err := engine.ParseFEN(log[0])
	if err != nil {
		return 1, chess.White
	}
	return fullmove, pos.ToMove
}
