package chess

import (
	"sort"
	"strings"
)

// Board is a sparse mapping from squares to the pieces on them.
// A square with no entry is empty. Each square holds at most one piece.
type Board struct {
	squares map[Coordinate]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{squares: make(map[Coordinate]Piece)}
}

// SetupInitialPosition clears the board and places the standard 32 pieces.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		b.Insert(mustCoordinate(0, col), W(kind))
		b.Insert(mustCoordinate(1, col), W(Pawn))
		b.Insert(mustCoordinate(6, col), B(Pawn))
		b.Insert(mustCoordinate(7, col), B(kind))
	}
}

// OccupiedAt reports whether a piece stands on c.
func (b *Board) OccupiedAt(c Coordinate) bool {
	_, ok := b.squares[c]
	return ok
}

// PieceAt returns the piece on c, and false if the square is empty.
func (b *Board) PieceAt(c Coordinate) (Piece, bool) {
	p, ok := b.squares[c]
	return p, ok
}

// Insert places a piece on c, replacing any existing occupant.
// Inserting at the null coordinate is ignored.
func (b *Board) Insert(c Coordinate, p Piece) {
	if c.IsNull() {
		return
	}
	b.ensureSquares()
	b.squares[c] = p
}

// Erase removes whatever stands on c. Erasing an empty square is a no-op.
func (b *Board) Erase(c Coordinate) {
	delete(b.squares, c)
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.squares = make(map[Coordinate]Piece)
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.squares)
}

// Coordinates returns the occupied squares in row-major order.
func (b *Board) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, len(b.squares))
	for c := range b.squares {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}

// PathBlocked reports whether any square strictly between source and
// destination is occupied. The walk uses MinimalStep, so adjacent squares
// have no interior and are never blocked. Callers must not use this for
// knight moves.
func (b *Board) PathBlocked(source, destination Coordinate) bool {
	step := MinimalStep(source, destination)
	if step == (Delta{}) {
		return false
	}
	for c, ok := source.Offset(step); ok && c != destination; c, ok = c.Offset(step) {
		if b.OccupiedAt(c) {
			return true
		}
	}
	return false
}

// KingLocation returns the square of the colour's king, or NullCoordinate
// if there is none. With several kings the first in row-major order wins.
func (b *Board) KingLocation(colour Colour) Coordinate {
	for _, c := range b.Coordinates() {
		if p := b.squares[c]; p.Kind == King && p.Colour == colour {
			return c
		}
	}
	return NullCoordinate
}

// Count returns how many pieces of the given colour and kind are on the board.
func (b *Board) Count(colour Colour, kind Kind) int {
	n := 0
	for _, p := range b.squares {
		if p.Colour == colour && p.Kind == kind {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{squares: make(map[Coordinate]Piece, len(b.squares))}
	for c, p := range b.squares {
		newBoard.squares[c] = p.Clone()
	}
	return newBoard
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if len(b.squares) != len(other.squares) {
		return false
	}
	for c, p := range b.squares {
		if q, ok := other.squares[c]; !ok || q != p {
			return false
		}
	}
	return true
}

// String renders the board rank 8 first, one rank per line, using piece
// letters and '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := MaxIndex; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			if p, ok := b.squares[mustCoordinate(row, col)]; ok {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) ensureSquares() {
	if b.squares == nil {
		b.squares = make(map[Coordinate]Piece)
	}
}

// mustCoordinate builds a coordinate from indices known to be in range.
func mustCoordinate(row, col int) Coordinate {
	c, err := NewCoordinate(row, col)
	if err != nil {
		panic(err)
	}
	return c
}
