package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONGame represents a game report in JSON format.
type JSONGame struct {
	Name       string     `json:"name,omitempty"`
	Result     string     `json:"result"`
	Status     string     `json:"status"`
	Winner     string     `json:"winner,omitempty"`
	ToMove     string     `json:"toMove,omitempty"`
	PlyCount   int        `json:"plyCount"`
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Moves      []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON writes a single game report as indented JSON.
func OutputGameJSON(w io.Writer, name string, g *engine.Game, cfg *config.Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(name, g, cfg))
}

// GameToJSON converts a game to its JSON report. The FEN after each move is
// included when cfg.Output.ShowFEN is set.
func GameToJSON(name string, g *engine.Game, cfg *config.Config) *JSONGame {
	outcome := g.Outcome()
	log := g.FENLog()

	jg := &JSONGame{
		Name:     name,
		Result:   outcome.Result(),
		Status:   outcome.Status.String(),
		PlyCount: g.Ply(),
		FinalFEN: g.FEN(),
	}
	if len(log) > 0 {
		jg.InitialFEN = log[0]
	}
	switch {
	case outcome.Status.Decisive():
		jg.Winner = strings.ToLower(outcome.Winner.String())
	case !outcome.Status.Terminal():
		jg.ToMove = strings.ToLower(outcome.ToMove.String())
	}

	showFEN := cfg != nil && cfg.Output != nil && cfg.Output.ShowFEN
	moveNum, toMove := startingMove(g)
	for i, m := range g.History() {
		jm := JSONMove{
			MoveNumber: moveNum,
			Color:      strings.ToLower(toMove.String()),
			UCI:        m.String(),
			From:       m.From.String(),
			To:         m.To.String(),
		}
		if m.Promotion != chess.NoPieceType {
			jm.Promotion = strings.ToLower(m.Promotion.String())
		}
		if showFEN && i+1 < len(log) {
			jm.FEN = log[i+1]
		}
		jg.Moves = append(jg.Moves, jm)

		if toMove == chess.Black {
			moveNum++
		}
		toMove = toMove.Opposite()
	}
	return jg
}
