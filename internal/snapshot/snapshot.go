// Package snapshot saves and restores suspended games as JSON.
//
// A snapshot records the whole board square by square, every piece ever
// created with its full move history, each player's moved log, the clocks
// and the FEN log. Restoring rebuilds the pieces with identical histories,
// so castling rights, the en passant window and repetition detection behave
// exactly as they would have in the uninterrupted game.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/movement"
)

// Version is the snapshot format written by Save.
const Version = 1

// Snapshot is the JSON form of a suspended game.
type Snapshot struct {
	Version int `json:"version"`

	// Board maps every square name to the piece on it, or null.
	Board map[string]*PieceRecord `json:"board"`

	// Captured lists pieces no longer on the board, so that moved logs
	// referring to them stay resolvable.
	Captured []PieceRecord `json:"captured,omitempty"`

	Players  []PlayerRecord `json:"players"`
	Turn     string         `json:"turn"`
	Halfmove int            `json:"halfmove"`
	Fullmove int            `json:"fullmove"`
	FENLog   []string       `json:"fenLog,omitempty"`
	Moves    []string       `json:"moves,omitempty"`
}

// PieceRecord describes one piece.
type PieceRecord struct {
	ID      int      `json:"id"`
	Type    string   `json:"type"`
	Colour  string   `json:"colour"`
	Square  string   `json:"square"`
	Legal   []string `json:"legal,omitempty"`
	History []string `json:"history"`
}

// PlayerRecord holds a player's moved log as piece ids, oldest first.
type PlayerRecord struct {
	Colour   string `json:"colour"`
	MovedLog []int  `json:"movedLog"`
}

// FromGame captures the state of a game.
func FromGame(g *engine.Game) *Snapshot {
	state := g.State()
	pos := state.Position

	s := &Snapshot{
		Version:  Version,
		Board:    make(map[string]*PieceRecord, chess.NumSquares),
		Turn:     pos.ToMove.String(),
		Halfmove: state.Halfmove,
		Fullmove: state.Fullmove,
		FENLog:   state.FENLog,
	}
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		s.Board[sq.String()] = nil
	}
	for id := 1; id <= pos.NumPieces(); id++ {
		pc := pos.Piece(chess.PieceID(id))
		rec := pieceRecord(pc)
		if pc.Removed {
			s.Captured = append(s.Captured, rec)
		} else {
			s.Board[pc.Square.String()] = &rec
		}
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		pr := PlayerRecord{Colour: c.String(), MovedLog: []int{}}
		for _, id := range pos.Players[c].MovedLog {
			pr.MovedLog = append(pr.MovedLog, int(id))
		}
		s.Players = append(s.Players, pr)
	}
	for _, m := range state.Moves {
		s.Moves = append(s.Moves, m.String())
	}
	return s
}

func pieceRecord(pc *chess.Piece) PieceRecord {
	return PieceRecord{
		ID:      int(pc.ID),
		Type:    pc.Type.String(),
		Colour:  pc.Colour.String(),
		Square:  pc.Square.String(),
		Legal:   squareNames(pc.Legal),
		History: squareNames(pc.History),
	}
}

func squareNames(squares []chess.Square) []string {
	if len(squares) == 0 {
		return nil
	}
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}

// Save writes a game as indented JSON.
func Save(w io.Writer, g *engine.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FromGame(g))
}

// Load reads a snapshot and resumes the game it describes.
func Load(r io.Reader, tables *movement.Tables, rules engine.Rules) (*engine.Game, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, &errors.ParseError{Err: errors.ErrInvalidSnapshot, Got: err.Error()}
	}
	return s.Game(tables, rules)
}

// Game validates the snapshot and rebuilds the game. Every inconsistency is
// reported as a *errors.ParseError wrapping errors.ErrInvalidSnapshot, or
// errors.ErrUnknownPiece for an unrecognised piece type.
func (s *Snapshot) Game(tables *movement.Tables, rules engine.Rules) (*engine.Game, error) {
	if s.Version != Version {
		return nil, invalid("version", strconv.Itoa(Version), strconv.Itoa(s.Version))
	}

	records, err := s.pieceRecords()
	if err != nil {
		return nil, err
	}

	pos := chess.NewPosition()
	if pos.ToMove, err = parseColour("turn", s.Turn); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := addPiece(pos, r); err != nil {
			return nil, err
		}
	}
	if err := s.restoreMovedLogs(pos); err != nil {
		return nil, err
	}
	if err := engine.ValidateKings(pos); err != nil {
		return nil, invalid("board", "one king per side", err.Error())
	}

	moves := make([]chess.Move, 0, len(s.Moves))
	for i, text := range s.Moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			return nil, invalid(fmt.Sprintf("moves[%d]", i), "long algebraic move", text)
		}
		moves = append(moves, m)
	}

	g, err := engine.NewGameFromState(engine.State{
		Position: pos,
		Halfmove: s.Halfmove,
		Fullmove: s.Fullmove,
		FENLog:   s.FENLog,
		Moves:    moves,
	}, tables, rules)
	if err != nil {
		return nil, &errors.ParseError{Err: err, Field: "state"}
	}

	if n := len(s.FENLog); n > 0 {
		if n != len(moves)+1 {
			return nil, invalid("fenLog", fmt.Sprintf("%d records", len(moves)+1), strconv.Itoa(n))
		}
		if engine.TrimFEN(s.FENLog[n-1]) != engine.TrimFEN(g.FEN()) {
			return nil, invalid("fenLog", g.FEN(), s.FENLog[n-1])
		}
	}
	return g, nil
}

// liveRecord is a piece record with the board square it was found on.
type liveRecord struct {
	PieceRecord
	live bool
}

// pieceRecords checks the board covers all 64 squares and returns every
// piece, live and captured, in id order. Ids must run from 1 without gaps.
func (s *Snapshot) pieceRecords() ([]liveRecord, error) {
	if len(s.Board) != chess.NumSquares {
		return nil, invalid("board", "64 squares", strconv.Itoa(len(s.Board)))
	}
	var records []liveRecord
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		rec, ok := s.Board[sq.String()]
		if !ok {
			return nil, invalid("board", "square "+sq.String(), "nothing")
		}
		if rec == nil {
			continue
		}
		if rec.Square != sq.String() {
			return nil, invalid("board."+sq.String()+".square", sq.String(), rec.Square)
		}
		records = append(records, liveRecord{PieceRecord: *rec, live: true})
	}
	for _, rec := range s.Captured {
		records = append(records, liveRecord{PieceRecord: rec})
	}
	if len(records) > chess.MaxPieces {
		return nil, invalid("pieces", fmt.Sprintf("at most %d", chess.MaxPieces), strconv.Itoa(len(records)))
	}

	slices.SortFunc(records, func(a, b liveRecord) int { return a.ID - b.ID })
	for i, r := range records {
		if r.ID != i+1 {
			return nil, invalid("pieces", fmt.Sprintf("id %d", i+1), fmt.Sprintf("id %d", r.ID))
		}
	}
	return records, nil
}

// addPiece recreates one piece in the position's arena.
func addPiece(pos *chess.Position, r liveRecord) error {
	field := fmt.Sprintf("pieces[%d]", r.ID)

	pt, ok := chess.ParsePieceType(r.Type)
	if !ok || len(r.Type) == 1 {
		return &errors.ParseError{Err: errors.ErrUnknownPiece, Field: field + ".type", Got: r.Type}
	}
	colour, err := parseColour(field+".colour", r.Colour)
	if err != nil {
		return err
	}
	history, err := parseSquares(field+".history", r.History)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return invalid(field+".history", "at least one square", "none")
	}
	legal, err := parseSquares(field+".legal", r.Legal)
	if err != nil {
		return err
	}
	sq, err := chess.ParseSquare(r.Square)
	if err != nil {
		return invalid(field+".square", "square", r.Square)
	}
	if history[len(history)-1] != sq {
		return invalid(field+".history", "to end at "+r.Square, history[len(history)-1].String())
	}

	var id chess.PieceID
	if r.live {
		id = pos.AddPiece(pt, colour, sq, history...)
	} else {
		id = pos.AddRemovedPiece(pt, colour, history...)
	}
	pos.Piece(id).Legal = legal
	return nil
}

// restoreMovedLogs copies the players' moved logs after checking each entry
// names a piece of that player.
func (s *Snapshot) restoreMovedLogs(pos *chess.Position) error {
	seen := [chess.NumColours]bool{}
	for i, pr := range s.Players {
		field := fmt.Sprintf("players[%d]", i)
		c, err := parseColour(field+".colour", pr.Colour)
		if err != nil {
			return err
		}
		if seen[c] {
			return invalid(field+".colour", "one record per player", "duplicate "+pr.Colour)
		}
		seen[c] = true
		for _, id := range pr.MovedLog {
			if id < 1 || id > pos.NumPieces() || pos.Piece(chess.PieceID(id)).Colour != c {
				return invalid(field+".movedLog", "a piece of "+pr.Colour, strconv.Itoa(id))
			}
			pos.Players[c].MovedLog = append(pos.Players[c].MovedLog, chess.PieceID(id))
		}
	}
	if !seen[chess.White] || !seen[chess.Black] {
		return invalid("players", "White and Black", strconv.Itoa(len(s.Players))+" records")
	}
	return nil
}

func parseColour(field, s string) (chess.Colour, error) {
	c, ok := chess.ParseColour(s)
	if !ok {
		return chess.White, invalid(field, "White or Black", s)
	}
	return c, nil
}

func parseSquares(field string, names []string) ([]chess.Square, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]chess.Square, len(names))
	for i, n := range names {
		sq, err := chess.ParseSquare(n)
		if err != nil {
			return nil, invalid(field, "square", n)
		}
		out[i] = sq
	}
	return out, nil
}

func invalid(field, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidSnapshot, Field: field, Expected: expected, Got: got}
}
