// Package console implements engine.Chooser over a line-based terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Chooser reads one answer per line. An answer that is not among the
// offered options, including an empty line, is refused with the list of
// options and asked again. Answers are case-insensitive.
//
// Input is read by a background goroutine so that a blocked read can be
// abandoned when the context is cancelled. A line typed after a cancelled
// read is kept for the next prompt. The goroutine lives until the reader
// reaches EOF or fails, or until Close.
type Chooser struct {
	in  io.Reader
	out io.Writer

	start   sync.Once
	lines   chan string
	err     error // read error, valid once lines is closed
	done    chan struct{}
	closeOnce sync.Once
}

// ErrClosed is returned by a Chooser after Close.
var ErrClosed = errors.New("console: chooser closed")

var _ engine.Chooser = (*Chooser)(nil)

// NewChooser creates a Chooser reading answers from r and writing prompts
// to w.
func NewChooser(r io.Reader, w io.Writer) *Chooser {
	return &Chooser{in: r, out: w, lines: make(chan string), done: make(chan struct{})}
}

// Close stops delivering input. A background read blocked in the
// underlying reader returns once that reader yields a line, EOF or an
// error.
func (c *Chooser) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

func (c *Chooser) read() {
	defer close(c.lines)
	sc := bufio.NewScanner(c.in)
	for sc.Scan() {
		select {
		case <-c.done:
			return
		default:
		}
		select {
		case c.lines <- sc.Text():
		case <-c.done:
			return
		}
	}
	c.err = sc.Err()
}

// readLine waits for the next input line.
func (c *Chooser) readLine(ctx context.Context) (string, error) {
	select {
	case <-c.done:
		return "", ErrClosed
	default:
	}
	c.start.Do(func() { go c.read() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.done:
		return "", ErrClosed
	case line, ok := <-c.lines:
		if !ok {
			if c.err != nil {
				return "", fmt.Errorf("reading answer: %w", c.err)
			}
			return "", fmt.Errorf("reading answer: %w", io.EOF)
		}
		return line, nil
	}
}

// ask prompts until the answer is one of options.
func (c *Chooser) ask(ctx context.Context, prompt string, options []string) (string, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine(ctx)
		if err != nil {
			fmt.Fprintln(c.out)
			return "", err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "" && slices.Contains(options, answer) {
			return answer, nil
		}
		fmt.Fprintf(c.out, "Available options: %s\n", strings.Join(options, ", "))
	}
}

// ChoosePiece asks for the square of a piece to move or a command.
func (c *Chooser) ChoosePiece(ctx context.Context, side chess.Colour, options []string) (string, error) {
	return c.ask(ctx, fmt.Sprintf("%v, select a piece: ", side), options)
}

// ChooseDestination asks where the selected piece goes.
func (c *Chooser) ChooseDestination(ctx context.Context, side chess.Colour, from string, options []string) (string, error) {
	return c.ask(ctx, fmt.Sprintf("%v, move %s to: ", side, from), options)
}

// ChoosePromotion asks which piece a pawn becomes.
func (c *Chooser) ChoosePromotion(ctx context.Context, side chess.Colour, options []string) (string, error) {
	return c.ask(ctx, fmt.Sprintf("%v, promote to (%s): ", side, strings.Join(options, "/")), options)
}

// ConfirmDraw asks a yes/no question. "y" and "n" are accepted.
func (c *Chooser) ConfirmDraw(ctx context.Context, side chess.Colour) (bool, error) {
	answer, err := c.ask(ctx, fmt.Sprintf("%v, agree to a draw? (yes/no): ", side), []string{"yes", "no", "y", "n"})
	if err != nil {
		return false, err
	}
	return answer == "yes" || answer == "y", nil
}
