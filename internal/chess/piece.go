package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Piece is a coloured chess piece. Pieces are immutable values: promotion
// places a new piece rather than changing an existing one.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// ParsePiece converts a piece letter to a piece: uppercase for White,
// lowercase for Black.
func ParsePiece(letter byte) (Piece, error) {
	var kind Kind
	switch unicode.ToUpper(rune(letter)) {
	case 'P':
		kind = Pawn
	case 'B':
		kind = Bishop
	case 'N':
		kind = Knight
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return Piece{}, &errors.ParseError{
			Err:      errors.ErrMalformedNotation,
			Input:    string(letter),
			Expected: "one of PBNRQK (uppercase White, lowercase Black)",
			Got:      fmt.Sprintf("%q", letter),
		}
	}
	if unicode.IsLower(rune(letter)) {
		return B(kind), nil
	}
	return W(kind), nil
}

// Letter returns the display code: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		return byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Clone returns an independent piece with identical colour and kind.
func (p Piece) Clone() Piece {
	return Piece{Colour: p.Colour, Kind: p.Kind}
}

// ShapeAllows reports whether the piece's geometry permits moving from
// source to destination, ignoring every other square on the board.
// enPassantTarget is the square of a pawn that has just double-stepped
// (NullCoordinate if none). isDirectCapture is true when destination holds
// a piece.
func (p Piece) ShapeAllows(source, destination, enPassantTarget Coordinate, isDirectCapture bool) bool {
	if source.IsNull() || destination.IsNull() || source == destination {
		return false
	}

	switch p.Kind {
	case Pawn:
		return p.pawnShapeAllows(source, destination, enPassantTarget, isDirectCapture)
	case Bishop:
		return IsDiagonal(source, destination)
	case Knight:
		return IsKnightMove(source, destination)
	case Rook:
		return IsHorizontal(source, destination) || IsVertical(source, destination)
	case Queen:
		return IsDiagonal(source, destination) ||
			IsHorizontal(source, destination) ||
			IsVertical(source, destination)
	case King:
		d := DeltaBetween(source, destination)
		if max(abs(d.Row), abs(d.Column)) == 1 {
			return true
		}
		return IsCastlingShape(p.Colour, source, destination)
	}
	return false
}

func (p Piece) pawnShapeAllows(source, destination, enPassantTarget Coordinate, isDirectCapture bool) bool {
	d := DeltaBetween(source, destination)
	forward := p.Colour.Forward()

	if IsVertical(source, destination) {
		if isDirectCapture {
			return false
		}
		switch d.Row {
		case forward:
			return true
		case 2 * forward:
			return source.Row() == p.Colour.PawnRow()
		}
		return false
	}

	if d.Row != forward || abs(d.Column) != 1 {
		return false
	}
	if isDirectCapture {
		return true
	}
	// En passant: the double-stepped pawn sits beside the source.
	if enPassantTarget.IsNull() {
		return false
	}
	passed, err := NewCoordinate(source.Row(), destination.Column())
	return err == nil && passed == enPassantTarget
}

// IsCastlingShape reports whether source→destination is a king move of
// exactly two columns along the colour's home row from the king's home square.
func IsCastlingShape(colour Colour, source, destination Coordinate) bool {
	if source.IsNull() || destination.IsNull() {
		return false
	}
	d := DeltaBetween(source, destination)
	return d.Row == 0 && abs(d.Column) == 2 && source == KingHome(colour)
}

// KingHome returns the king's starting square for the colour (E1 or E8).
func KingHome(colour Colour) Coordinate {
	c, _ := NewCoordinate(colour.HomeRow(), 4)
	return c
}
