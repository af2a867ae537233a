package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var foolsMate = []string{"f2f3", "e7e5", "g2g4", "d8h4"}

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	ow.Write("aaaa")
	ow.Write("bbbb")
	ow.Write("cccc")
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "aaaa bbbb\ncccc\n")
}

func TestOutputWriter_DefaultWidth(t *testing.T) {
	ow := NewOutputWriter(&bytes.Buffer{}, 0)
	testutil.AssertEqual(t, ow.maxLineLength, 80)
}

func TestWriteMoveList(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		width int
		want  string
	}{
		{
			name:  "fool's mate",
			fen:   engine.InitialFEN,
			moves: foolsMate,
			width: 80,
			want:  "1. f2f3 e7e5 2. g2g4 d8h4 0-1\n",
		},
		{
			name:  "wrapped",
			fen:   engine.InitialFEN,
			moves: foolsMate,
			width: 20,
			want:  "1. f2f3 e7e5 2. g2g4\nd8h4 0-1\n",
		},
		{
			name:  "black starts",
			fen:   "4k3/8/8/8/8/8/8/4K3 b - - 0 7",
			moves: []string{"e8d8", "e1d1"},
			width: 80,
			want:  "7... e8d8 8. e1d1 *\n",
		},
		{
			name:  "promotion",
			fen:   "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			moves: []string{"a7a8q"},
			width: 80,
			want:  "1. a7a8q *\n",
		},
		{
			name:  "no moves",
			fen:   engine.InitialFEN,
			width: 80,
			want:  "*\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGameFromFEN(t, tt.fen)
			testutil.MustPlay(t, g, tt.moves...)

			var buf bytes.Buffer
			WriteMoveList(&buf, g, tt.width)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestRenderBoard_ASCII(t *testing.T) {
	var buf bytes.Buffer
	RenderBoard(&buf, chess.NewInitialPosition(), config.NewOutputConfig())

	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestRenderBoard_Unicode(t *testing.T) {
	cfg := config.NewConfigBuilder().WithUnicode(true).WithCoordinates(false).Build()
	var buf bytes.Buffer
	RenderBoard(&buf, chess.NewInitialPosition(), cfg.Output)

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, len(lines), 9)
	testutil.AssertEqual(t, lines[0], "♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜")
	testutil.AssertEqual(t, lines[7], "♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖")
	testutil.AssertEqual(t, lines[4], ". . . . . . . .")
}

func TestRenderBoard_Color(t *testing.T) {
	cfg := config.NewConfigBuilder().WithColor(true).Build()
	var buf bytes.Buffer
	RenderBoard(&buf, chess.NewInitialPosition(), cfg.Output)
	out := buf.String()

	testutil.AssertEqual(t, strings.Count(out, ansiReset), chess.NumSquares)
	testutil.AssertEqual(t, strings.Count(out, ansiLight), chess.NumSquares/2)
	testutil.AssertContains(t, out, "1 "+ansiDark+" R "+ansiReset+ansiLight+" N "+ansiReset)
	testutil.AssertContains(t, out, "\n   a  b  c  d  e  f  g  h \n")
}

func TestRenderBoard_NilConfig(t *testing.T) {
	var buf bytes.Buffer
	RenderBoard(&buf, chess.NewInitialPosition(), nil)
	testutil.AssertContains(t, buf.String(), "1 R N B Q K B N R\n")
}
