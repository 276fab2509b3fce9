// Package chess provides the core chess value types: coordinates, pieces,
// the board and the game aggregate.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the pawn row direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRow returns the row holding the colour's king and rooks at the start.
func (c Colour) HomeRow() int {
	if c == White {
		return 0
	}
	return MaxIndex
}

// PawnRow returns the starting row of the colour's pawns.
func (c Colour) PawnRow() int {
	if c == White {
		return 1
	}
	return MaxIndex - 1
}

// BackRank returns the row on which the colour's pawns promote.
func (c Colour) BackRank() int {
	return c.Opposite().HomeRow()
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Bishop
	Knight
	Rook
	Queen
	King
)

// Kinds lists every piece kind in declaration order.
var Kinds = []Kind{Pawn, Bishop, Knight, Rook, Queen, King}

// PromotionKinds lists the kinds a pawn may promote to.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Bishop", "Knight", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter representation of a kind.
func (k Kind) Letter() byte {
	letters := []byte{'P', 'B', 'N', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsMinor reports whether the kind is a bishop or knight.
func (k Kind) IsMinor() bool {
	return k == Bishop || k == Knight
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	MaxIndex  = BoardSize - 1

	FileBase = 'A'
	RankBase = '1'
)
