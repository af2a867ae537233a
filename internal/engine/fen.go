package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// PositionToFEN serialises a position and its clocks to a FEN string.
// Castling rights and the en passant target are derived from the piece
// histories, not stored.
func PositionToFEN(pos *chess.Position, halfmove, fullmove int) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", halfmove, fullmove)

	return sb.String()
}

// TrimFEN drops the halfmove clock and fullmove number, leaving the part of
// a record that identifies a position for repetition.
func TrimFEN(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

// writePiecePositions writes the piece placement, rank 8 first.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			sq, _ := chess.NewSquare(file, rank)
			pc := pos.PieceAt(sq)
			if pc == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes KQkq for every unmoved king and corner rook
// pair, or '-'.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	rights := CastlingRights(pos)
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
}

// CastlingRights returns the castling availability letters (a subset of
// "KQkq" in that order) for a position.
func CastlingRights(pos *chess.Position) string {
	var sb strings.Builder
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		king := pos.King(c)
		if king == nil || !king.Unmoved() || king.Square.Rank() != chess.HomeRank(c) {
			continue
		}
		kingside, queenside := false, false
		for _, rook := range castlingRooks(pos, king) {
			if rook.Square.File() > king.Square.File() {
				kingside = true
			} else {
				queenside = true
			}
		}
		k, q := byte('K'), byte('Q')
		if c == chess.Black {
			k, q = 'k', 'q'
		}
		if kingside {
			sb.WriteByte(k)
		}
		if queenside {
			sb.WriteByte(q)
		}
	}
	return sb.String()
}

// writeEnPassant writes the square passed over by a pawn that double-stepped
// on the previous move, or '-'.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if sq, ok := EnPassantTarget(pos); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}

// EnPassantTarget returns the square behind a pawn that the side not to
// move has just advanced two squares.
func EnPassantTarget(pos *chess.Position) (chess.Square, bool) {
	last := pos.LastMoved(pos.ToMove.Opposite())
	if last == nil || last.Removed || len(last.History) != 2 {
		return 0, false
	}
	return doubleStepSquare(last)
}

// ParseFEN builds a position from a FEN string and returns it with the
// halfmove clock and fullmove number. Piece histories are synthesised so
// that the castling and en passant fields mean the same thing to the move
// generator: a king or corner rook keeps its castling right by having a
// one-entry history, and the en passant pawn is given its double step and
// made its player's last moved piece.
func ParseFEN(fen string) (pos *chess.Position, halfmove, fullmove int, err error) {
	parts := strings.Fields(fen)
	if len(parts) != 4 && len(parts) != 6 {
		return nil, 0, 0, fmt.Errorf("%q has %d fields: %w", fen, len(parts), errors.ErrInvalidFEN)
	}

	placement, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, 0, 0, err
	}

	toMove, ok := chess.ParseColour(parts[1])
	if !ok || len(parts[1]) != 1 {
		return nil, 0, 0, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}

	rights, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, 0, 0, err
	}

	halfmove, fullmove = 0, 1
	if len(parts) == 6 {
		if halfmove, err = strconv.Atoi(parts[4]); err != nil || halfmove < 0 {
			return nil, 0, 0, fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		if fullmove, err = strconv.Atoi(parts[5]); err != nil || fullmove < 1 {
			return nil, 0, 0, fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
	}

	pos = chess.NewPosition()
	pos.ToMove = toMove

	epPawn, epOrigin, err := parseEnPassant(placement, parts[3], toMove)
	if err != nil {
		return nil, 0, 0, err
	}

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		p := placement[sq]
		if p.pt == chess.NoPieceType {
			continue
		}
		var history []chess.Square
		switch {
		case sq == epPawn && parts[3] != "-":
			history = []chess.Square{epOrigin, sq}
		case p.pt == chess.King || p.pt == chess.Rook:
			if !rights.keeps(p, sq) {
				history = []chess.Square{sq, sq}
			}
		}
		id := pos.AddPiece(p.pt, p.colour, sq, history...)
		if sq == epPawn && parts[3] != "-" {
			pos.Players[p.colour].MovedLog = append(pos.Players[p.colour].MovedLog, id)
		}
	}

	if err := ValidateKings(pos); err != nil {
		return nil, 0, 0, err
	}
	if err := rights.validate(pos); err != nil {
		return nil, 0, 0, err
	}
	return pos, halfmove, fullmove, nil
}

type placedPiece struct {
	pt     chess.PieceType
	colour chess.Colour
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(field string) ([chess.NumSquares]placedPiece, error) {
	var placement [chess.NumSquares]placedPiece
	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return placement, fmt.Errorf("placement has %d ranks: %w", len(ranks), errors.ErrInvalidFEN)
	}
	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pt, ok := chess.ParsePieceType(string(c))
			if !ok {
				return placement, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq, ok := chess.NewSquare(file, rank)
			if !ok {
				return placement, fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			placement[sq] = placedPiece{pt: pt, colour: colour}
			file++
		}
		if file != chess.BoardSize {
			return placement, fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return placement, nil
}

// castlingRightsField is the parsed castling field, indexed by colour and
// side (0 = queenside, 1 = kingside).
type castlingRightsField [chess.NumColours][2]bool

func parseCastlingRights(field string) (castlingRightsField, error) {
	var r castlingRightsField
	if field == "-" {
		return r, nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			r[chess.White][1] = true
		case 'Q':
			r[chess.White][0] = true
		case 'k':
			r[chess.Black][1] = true
		case 'q':
			r[chess.Black][0] = true
		default:
			return r, fmt.Errorf("invalid castling rights: %s: %w", field, errors.ErrInvalidFEN)
		}
	}
	return r, nil
}

// keeps reports whether a king or rook on sq should be left unmoved.
func (r castlingRightsField) keeps(p placedPiece, sq chess.Square) bool {
	home := chess.HomeRank(p.colour)
	if sq.Rank() != home {
		return false
	}
	switch p.pt {
	case chess.King:
		return sq.File() == 4 && (r[p.colour][0] || r[p.colour][1])
	case chess.Rook:
		switch sq.File() {
		case 0:
			return r[p.colour][0]
		case chess.BoardSize - 1:
			return r[p.colour][1]
		}
	}
	return false
}

// validate checks that every claimed right is backed by pieces on their
// original squares.
func (r castlingRightsField) validate(pos *chess.Position) error {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for side, claimed := range r[c] {
			if !claimed {
				continue
			}
			king := pos.King(c)
			cornerFile := 0
			if side == 1 {
				cornerFile = chess.BoardSize - 1
			}
			corner, _ := chess.NewSquare(cornerFile, chess.HomeRank(c))
			rook := pos.PieceAt(corner)
			if king == nil || !king.Unmoved() || rook == nil || rook.Type != chess.Rook || rook.Colour != c {
				return fmt.Errorf("castling right without king and rook in place for %v: %w", c, errors.ErrInvalidFEN)
			}
		}
	}
	return nil
}

// parseEnPassant validates the en passant field and returns the square of
// the pawn that double-stepped and the square it came from.
func parseEnPassant(placement [chess.NumSquares]placedPiece, field string, toMove chess.Colour) (pawn, origin chess.Square, err error) {
	if field == "-" {
		return 0, 0, nil
	}
	target, err := chess.ParseSquare(field)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid en passant square: %s: %w", field, errors.ErrInvalidFEN)
	}
	mover := toMove.Opposite()
	dir := chess.ColourOffset(mover)
	if target.Rank() != chess.PawnRank(mover)+dir {
		return 0, 0, fmt.Errorf("en passant square %s on wrong rank: %w", field, errors.ErrInvalidFEN)
	}
	pawn, _ = target.Offset(0, dir)
	origin, _ = target.Offset(0, -dir)
	p := placement[pawn]
	if p.pt != chess.Pawn || p.colour != mover || placement[target].pt != chess.NoPieceType || placement[origin].pt != chess.NoPieceType {
		return 0, 0, fmt.Errorf("no pawn passed over %s: %w", field, errors.ErrInvalidFEN)
	}
	return pawn, origin, nil
}

// ValidateKings requires exactly one king per side.
func ValidateKings(pos *chess.Position) error {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		n := 0
		for _, pc := range pos.Pieces(c) {
			if pc.Type == chess.King {
				n++
			}
		}
		if n != 1 {
			return fmt.Errorf("%v has %d kings: %w", c, n, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// MustParseFEN is like ParseFEN but panics on error. It is meant for
// fixed positions in tests and tools.
func MustParseFEN(fen string) *chess.Position {
	pos, _, _, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}
