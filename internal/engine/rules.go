package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Default draw-rule parameters.
const (
	// DefaultHalfmoveLimit is the 50-move rule expressed in plies.
	DefaultHalfmoveLimit = 100

	// DefaultRepetitionStride compares every earlier position with the same
	// side to move.
	DefaultRepetitionStride = 2

	// LegacyRepetitionStride compares positions four plies apart only.
	LegacyRepetitionStride = 4

	// RepetitionCount is the number of equal positions that draws the game.
	RepetitionCount = 3
)

// Rules holds the tunable parameters of the automatic draw rules.
type Rules struct {
	// HalfmoveLimit ends the game in a draw once this many plies pass
	// without a pawn move or capture.
	HalfmoveLimit int

	// RepetitionStride is the ply distance between compared position
	// records.
	RepetitionStride int
}

// DefaultRules returns the standard draw rules.
func DefaultRules() Rules {
	return Rules{
		HalfmoveLimit:    DefaultHalfmoveLimit,
		RepetitionStride: DefaultRepetitionStride,
	}
}

// RulesFromConfig converts the configured draw rules.
func RulesFromConfig(cfg *config.RulesConfig) Rules {
	if cfg == nil {
		return DefaultRules()
	}
	return Rules{
		HalfmoveLimit:    cfg.HalfmoveLimit,
		RepetitionStride: cfg.RepetitionStride,
	}
}

// Status is the state of the game state machine.
type Status int

const (
	AwaitingMove Status = iota
	Checkmate
	Stalemate
	DrawByHalfmoveClock
	DrawByRepetition
	DrawByAgreement
	Resigned
)

var statusNames = [...]string{
	AwaitingMove:        "awaiting move",
	Checkmate:           "checkmate",
	Stalemate:           "stalemate",
	DrawByHalfmoveClock: "draw by the 50-move rule",
	DrawByRepetition:    "draw by threefold repetition",
	DrawByAgreement:     "draw by agreement",
	Resigned:            "resignation",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	return s != AwaitingMove
}

// Decisive reports whether the status has a winner.
func (s Status) Decisive() bool {
	return s == Checkmate || s == Resigned
}

// Outcome is the status of a game together with its winner when decisive,
// or the side to move while the game is in progress.
type Outcome struct {
	Status Status
	Winner chess.Colour
	ToMove chess.Colour
}

// Result returns the PGN-style result: "1-0", "0-1", "1/2-1/2" or "*".
func (o Outcome) Result() string {
	switch {
	case !o.Status.Terminal():
		return "*"
	case !o.Status.Decisive():
		return "1/2-1/2"
	case o.Winner == chess.White:
		return "1-0"
	}
	return "0-1"
}

func (o Outcome) String() string {
	switch {
	case !o.Status.Terminal():
		return fmt.Sprintf("%v to move", o.ToMove)
	case o.Status == Checkmate:
		return fmt.Sprintf("checkmate, %v wins", o.Winner)
	case o.Status == Resigned:
		return fmt.Sprintf("%v resigns, %v wins", o.Winner.Opposite(), o.Winner)
	}
	return o.Status.String()
}

// nextHalfmoveClock resets the clock on a pawn move or capture and
// otherwise advances it.
func nextHalfmoveClock(clock int, pt chess.PieceType, capture bool) int {
	if pt == chess.Pawn || capture {
		return 0
	}
	return clock + 1
}

// CountRepetitions returns how many records in the log, the last one
// included, equal the last record once the clocks are stripped, looking
// back in steps of stride plies.
func CountRepetitions(log []string, stride int) int {
	if len(log) == 0 || stride <= 0 {
		return 0
	}
	last := len(log) - 1
	current := TrimFEN(log[last])
	n := 1
	for i := last - stride; i >= 0; i -= stride {
		if TrimFEN(log[i]) == current {
			n++
		}
	}
	return n
}
