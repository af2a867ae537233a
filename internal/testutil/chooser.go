package testutil

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ScriptedChooser answers a session from fixed scripts. Piece, destination
// and promotion answers share one queue, consumed in call order; draw
// confirmations have their own. It records the options it was offered.
type ScriptedChooser struct {
	Answers []string
	Draws   []bool

	Offered [][]string
}

// NewScriptedChooser creates a chooser that gives answers in order.
func NewScriptedChooser(answers ...string) *ScriptedChooser {
	return &ScriptedChooser{Answers: answers}
}

func (c *ScriptedChooser) next(options []string) (string, error) {
	c.Offered = append(c.Offered, options)
	if len(c.Answers) == 0 {
		return "", fmt.Errorf("script exhausted; offered %v", options)
	}
	a := c.Answers[0]
	c.Answers = c.Answers[1:]
	return a, nil
}

func (c *ScriptedChooser) ChoosePiece(_ context.Context, _ chess.Colour, options []string) (string, error) {
	return c.next(options)
}

func (c *ScriptedChooser) ChooseDestination(_ context.Context, _ chess.Colour, _ string, options []string) (string, error) {
	return c.next(options)
}

func (c *ScriptedChooser) ChoosePromotion(_ context.Context, _ chess.Colour, options []string) (string, error) {
	return c.next(options)
}

func (c *ScriptedChooser) ConfirmDraw(_ context.Context, side chess.Colour) (bool, error) {
	if len(c.Draws) == 0 {
		return false, fmt.Errorf("no draw answer scripted for %v", side)
	}
	ok := c.Draws[0]
	c.Draws = c.Draws[1:]
	return ok, nil
}
