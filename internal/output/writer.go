package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// GameWriter is the interface for writing game reports to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes the report of a single game. name identifies the
	// game, typically the snapshot it was loaded from, and may be empty.
	WriteGame(name string, g *engine.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by cfg.Output.JSON. JSON
// reports are written one document per game.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSON {
		return NewJSONWriterSingle(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes a result line and the move list of each game.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game as text.
func (tw *TextWriter) WriteGame(name string, g *engine.Game) error {
	if name != "" {
		if _, err := fmt.Fprintf(tw.w, "%s\n", name); err != nil {
			return err
		}
	}
	outcome := g.Outcome()
	if _, err := fmt.Fprintf(tw.w, "Result: %s (%v)\n", outcome.Result(), outcome); err != nil {
		return err
	}
	if tw.cfg.Output.ShowFEN {
		if _, err := fmt.Fprintf(tw.w, "FEN: %s\n", g.FEN()); err != nil {
			return err
		}
	}
	WriteMoveList(tw.w, g, tw.cfg.Output.MaxLineLength)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single
// mode). The report is taken when WriteGame is called, so later moves on
// g do not change buffered output.
func (jw *JSONWriter) WriteGame(name string, g *engine.Game) error {
	if jw.single {
		return OutputGameJSON(jw.w, name, g, jw.cfg)
	}
	jw.games = append(jw.games, GameToJSON(name, g, jw.cfg))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
