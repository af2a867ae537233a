package chess

import (
	"fmt"
	"slices"
)

// PieceID identifies a piece in a Position's arena. Empty (0) is never a
// valid piece and marks an empty square on the Board.
type PieceID uint8

// Empty is the occupant of a square that holds no piece.
const Empty PieceID = 0

// MaxPieces bounds the arena: 32 starting pieces plus one new piece per
// promotion fits comfortably.
const MaxPieces = 255

// Board maps every square to its occupant. Being a fixed array, no square can
// ever be missing.
type Board [NumSquares]PieceID

// At returns the occupant of a square.
func (b *Board) At(sq Square) PieceID {
	return b[sq]
}

// Set places an occupant on a square.
func (b *Board) Set(sq Square, id PieceID) {
	b[sq] = id
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b[sq] = Empty
}

// IsEmpty reports whether a square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b[sq] == Empty
}

// Piece is one piece instance. Only Square, History and Legal change during
// its lifetime; Removed is set once when it is captured or promoted away.
type Piece struct {
	ID     PieceID
	Type   PieceType
	Colour Colour // also the id of the owning player

	// Square is the current square.
	Square Square

	// History lists every square the piece has stood on, starting with the
	// square it was created on.
	History []Square

	// Legal is the last computed legal-move set.
	Legal []Square

	Removed bool
}

// Unmoved reports whether the piece has never left its initial square.
func (p *Piece) Unmoved() bool {
	return len(p.History) == 1
}

// String returns a short description such as "White Knight at g1".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s at %s", p.Colour, p.Type, p.Square)
}

// Letter returns the FEN letter of the piece: uppercase for White.
func (p *Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// Player owns the live pieces of one colour and the log of pieces it moved.
type Player struct {
	Colour Colour

	// Pieces lists the player's live pieces.
	Pieces []PieceID

	// MovedLog lists the pieces the player moved, in move order. A piece
	// appears once per move it made.
	MovedLog []PieceID
}

// LastMoved returns the piece the player moved most recently, or Empty.
func (p *Player) LastMoved() PieceID {
	if len(p.MovedLog) == 0 {
		return Empty
	}
	return p.MovedLog[len(p.MovedLog)-1]
}

// Owns reports whether id is one of the player's live pieces.
func (p *Player) Owns(id PieceID) bool {
	return slices.Contains(p.Pieces, id)
}

func (p *Player) remove(id PieceID) {
	if i := slices.Index(p.Pieces, id); i >= 0 {
		p.Pieces = slices.Delete(p.Pieces, i, i+1)
	}
}

// Position is a board together with the piece and player arenas it refers
// to. Pieces reference their owner by colour and players reference their
// pieces by id, so a Position has no internal pointers and Clone is a plain
// structural copy.
type Position struct {
	Board   Board
	Players [NumColours]Player
	ToMove  Colour

	pieces []Piece // arena; piece id N lives at index N-1
}

// NewPosition creates an empty position with White to move.
func NewPosition() *Position {
	return &Position{
		Players: [NumColours]Player{
			Black: {Colour: Black},
			White: {Colour: White},
		},
		ToMove: White,
	}
}

// backRank is the standard arrangement of pieces on the first rank.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialPosition creates the standard starting position.
func NewInitialPosition() *Position {
	pos := NewPosition()
	for _, c := range []Colour{White, Black} {
		for file := 0; file < BoardSize; file++ {
			sq, _ := NewSquare(file, PawnRank(c))
			pos.AddPiece(Pawn, c, sq)
		}
		for file, pt := range backRank {
			sq, _ := NewSquare(file, HomeRank(c))
			pos.AddPiece(pt, c, sq)
		}
	}
	return pos
}

// AddPiece creates a piece, places it on sq and hands it to its player.
// history, if given, replaces the default single-entry history and must end
// at sq. Placing a piece on an occupied square is a programming error.
func (p *Position) AddPiece(pt PieceType, c Colour, sq Square, history ...Square) PieceID {
	if pt == NoPieceType || pt >= NumPieceTypes {
		panic(fmt.Sprintf("chess: AddPiece with invalid piece type %d", pt))
	}
	if !p.Board.IsEmpty(sq) {
		panic(fmt.Sprintf("chess: AddPiece on occupied square %s", sq))
	}
	if len(p.pieces) >= MaxPieces {
		panic("chess: piece arena exhausted")
	}
	if len(history) == 0 {
		history = []Square{sq}
	} else if history[len(history)-1] != sq {
		panic(fmt.Sprintf("chess: history of piece on %s ends at %s", sq, history[len(history)-1]))
	}

	id := PieceID(len(p.pieces) + 1)
	p.pieces = append(p.pieces, Piece{
		ID:      id,
		Type:    pt,
		Colour:  c,
		Square:  sq,
		History: slices.Clone(history),
	})
	p.Board.Set(sq, id)
	p.Players[c].Pieces = append(p.Players[c].Pieces, id)
	return id
}

// AddRemovedPiece appends a piece that is already off the board, such as a
// captured piece restored from storage, so that moved logs referring to it
// stay resolvable.
func (p *Position) AddRemovedPiece(pt PieceType, c Colour, history ...Square) PieceID {
	if len(history) == 0 {
		panic("chess: removed piece without history")
	}
	if len(p.pieces) >= MaxPieces {
		panic("chess: piece arena exhausted")
	}
	id := PieceID(len(p.pieces) + 1)
	p.pieces = append(p.pieces, Piece{
		ID:      id,
		Type:    pt,
		Colour:  c,
		Square:  history[len(history)-1],
		History: slices.Clone(history),
		Removed: true,
	})
	return id
}

// Piece resolves a piece id. Resolving Empty or an unknown id is a
// programming error and panics.
func (p *Position) Piece(id PieceID) *Piece {
	if id == Empty || int(id) > len(p.pieces) {
		panic(fmt.Sprintf("chess: no piece with id %d", id))
	}
	return &p.pieces[id-1]
}

// PieceAt returns the piece on a square, or nil if the square is empty.
func (p *Position) PieceAt(sq Square) *Piece {
	id := p.Board.At(sq)
	if id == Empty {
		return nil
	}
	return p.Piece(id)
}

// RemovePiece takes a piece off the board and out of its owner's live set.
// The arena slot is kept so ids stay stable and moved logs stay resolvable.
func (p *Position) RemovePiece(id PieceID) {
	pc := p.Piece(id)
	if pc.Removed {
		return
	}
	if p.Board.At(pc.Square) == id {
		p.Board.Clear(pc.Square)
	}
	pc.Removed = true
	pc.Legal = nil
	p.Players[pc.Colour].remove(id)
}

// Pieces returns the live pieces of a colour in the player's order.
func (p *Position) Pieces(c Colour) []*Piece {
	ids := p.Players[c].Pieces
	out := make([]*Piece, 0, len(ids))
	for _, id := range ids {
		out = append(out, p.Piece(id))
	}
	return out
}

// NumPieces returns the size of the arena, live and removed pieces included.
func (p *Position) NumPieces() int {
	return len(p.pieces)
}

// King returns the king of a colour, or nil if there is none.
func (p *Position) King(c Colour) *Piece {
	for _, id := range p.Players[c].Pieces {
		if pc := p.Piece(id); pc.Type == King {
			return pc
		}
	}
	return nil
}

// LastMoved returns the piece a colour moved most recently, or nil.
func (p *Position) LastMoved(c Colour) *Piece {
	id := p.Players[c].LastMoved()
	if id == Empty {
		return nil
	}
	return p.Piece(id)
}

// Clone returns a deep copy that shares no mutable state with p.
func (p *Position) Clone() *Position {
	c := &Position{
		Board:  p.Board,
		ToMove: p.ToMove,
		pieces: make([]Piece, len(p.pieces)),
	}
	for i, pc := range p.pieces {
		pc.History = slices.Clone(pc.History)
		pc.Legal = slices.Clone(pc.Legal)
		c.pieces[i] = pc
	}
	for i, pl := range p.Players {
		c.Players[i] = Player{
			Colour:   pl.Colour,
			Pieces:   slices.Clone(pl.Pieces),
			MovedLog: slices.Clone(pl.MovedLog),
		}
	}
	return c
}

// CheckInvariants verifies that the board and the arenas agree: every live
// piece stands on its square, every occupied square holds a live piece of
// the player that lists it. It returns the first inconsistency found.
func (p *Position) CheckInvariants() error {
	for sq := Square(0); sq < NumSquares; sq++ {
		id := p.Board.At(sq)
		if id == Empty {
			continue
		}
		if int(id) > len(p.pieces) {
			return fmt.Errorf("square %s holds unknown piece %d", sq, id)
		}
		pc := p.Piece(id)
		if pc.Removed {
			return fmt.Errorf("square %s holds removed piece %d", sq, id)
		}
		if pc.Square != sq {
			return fmt.Errorf("piece %d on %s believes it is on %s", id, sq, pc.Square)
		}
		if !p.Players[pc.Colour].Owns(id) {
			return fmt.Errorf("piece %d on %s is not owned by %s", id, sq, pc.Colour)
		}
	}
	for c := range p.Players {
		for _, id := range p.Players[c].Pieces {
			pc := p.Piece(id)
			if pc.Removed || p.Board.At(pc.Square) != id {
				return fmt.Errorf("live piece %d of %s is not on the board", id, Colour(c))
			}
			if len(pc.History) == 0 || pc.History[len(pc.History)-1] != pc.Square {
				return fmt.Errorf("history of piece %d does not end at %s", id, pc.Square)
			}
		}
	}
	return nil
}
