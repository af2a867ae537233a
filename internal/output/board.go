package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// ANSI escapes used when square colouring is enabled.
const (
	ansiLight = "\x1b[48;5;180m"
	ansiDark  = "\x1b[48;5;137m"
	ansiReset = "\x1b[0m"
)

// glyphs maps FEN letters to chess symbols.
var glyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

// RenderBoard writes the board with rank 8 at the top.
func RenderBoard(w io.Writer, pos *chess.Position, cfg *config.OutputConfig) {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if cfg.Coordinates {
			fmt.Fprintf(&sb, "%d ", rank+1)
		}
		for file := 0; file < chess.BoardSize; file++ {
			sq, _ := chess.NewSquare(file, rank)
			writeSquare(&sb, pos, sq, cfg, file == 0)
		}
		sb.WriteByte('\n')
	}
	if cfg.Coordinates {
		sb.WriteString("  ")
		for file := 0; file < chess.BoardSize; file++ {
			switch {
			case cfg.Color:
				fmt.Fprintf(&sb, " %c ", 'a'+file)
			case file == 0:
				sb.WriteByte(byte('a' + file))
			default:
				fmt.Fprintf(&sb, " %c", 'a'+file)
			}
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

// writeSquare writes one cell. Plain cells are separated by a space;
// coloured cells are padded to three columns and abut each other.
func writeSquare(sb *strings.Builder, pos *chess.Position, sq chess.Square, cfg *config.OutputConfig, first bool) {
	symbol := squareSymbol(pos, sq, cfg.Unicode)
	if !cfg.Color {
		if !first {
			sb.WriteByte(' ')
		}
		sb.WriteString(symbol)
		return
	}
	if symbol == "." {
		symbol = " "
	}
	bg := ansiDark
	if sq.IsLight() {
		bg = ansiLight
	}
	sb.WriteString(bg + " " + symbol + " " + ansiReset)
}

func squareSymbol(pos *chess.Position, sq chess.Square, unicode bool) string {
	pc := pos.PieceAt(sq)
	if pc == nil {
		return "."
	}
	if unicode {
		return glyphs[pc.Letter()]
	}
	return string(pc.Letter())
}
