package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Coordinate is a square on the board, addressed by row (rank 1 = row 0)
// and column (file A = column 0).
// The zero value is NullCoordinate, meaning "no square".
type Coordinate struct {
	row   int8
	col   int8
	valid bool
}

// NullCoordinate is the absence of a square.
var NullCoordinate = Coordinate{}

// Delta is the signed row/column difference between two coordinates.
type Delta struct {
	Row    int
	Column int
}

// NewCoordinate creates a coordinate from zero-based row and column indices.
func NewCoordinate(row, col int) (Coordinate, error) {
	if row < 0 || row > MaxIndex || col < 0 || col > MaxIndex {
		return NullCoordinate, fmt.Errorf("row %d, column %d: %w", row, col, errors.ErrOutOfRange)
	}
	return Coordinate{row: int8(row), col: int8(col), valid: true}, nil
}

// ParseCoordinate parses two-character file/rank notation such as "E4".
// Lowercase files are accepted.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return NullCoordinate, &errors.ParseError{
			Err:      errors.ErrMalformedNotation,
			Input:    s,
			Expected: "two characters (file A-H, rank 1-8)",
		}
	}
	file := s[0]
	if file >= 'a' && file <= 'h' {
		file -= 'a' - 'A'
	}
	if file < FileBase || file > FileBase+MaxIndex {
		return NullCoordinate, &errors.ParseError{
			Err:      errors.ErrMalformedNotation,
			Input:    s,
			Expected: "file A-H",
			Got:      fmt.Sprintf("%q", s[0]),
		}
	}
	rank := s[1]
	if rank < RankBase || rank > RankBase+MaxIndex {
		return NullCoordinate, &errors.ParseError{
			Err:      errors.ErrMalformedNotation,
			Input:    s,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", rank),
		}
	}
	return Coordinate{row: int8(rank - RankBase), col: int8(file - FileBase), valid: true}, nil
}

// MustParseCoordinate is like ParseCoordinate but panics on malformed input.
// It is intended for fixed squares known at compile time.
func MustParseCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsNull reports whether c is the null coordinate.
func (c Coordinate) IsNull() bool {
	return !c.valid
}

// Row returns the zero-based row index (rank 1 is row 0).
func (c Coordinate) Row() int {
	return int(c.row)
}

// Column returns the zero-based column index (file A is column 0).
func (c Coordinate) Column() int {
	return int(c.col)
}

// String returns the notation form of the coordinate, or "-" for null.
func (c Coordinate) String() string {
	if !c.valid {
		return "-"
	}
	return string([]byte{byte(FileBase + c.col), byte(RankBase + c.row)})
}

// Equal reports whether c and other name the same square (or are both null).
func (c Coordinate) Equal(other Coordinate) bool {
	return c == other
}

// Less orders coordinates row-major. The null coordinate sorts first.
func (c Coordinate) Less(other Coordinate) bool {
	if c.valid != other.valid {
		return !c.valid
	}
	if c.row != other.row {
		return c.row < other.row
	}
	return c.col < other.col
}

// Next returns the row-major successor of c. It wraps from column H to
// column A of the next row. The successor of H8 is NullCoordinate.
func (c Coordinate) Next() Coordinate {
	if !c.valid {
		return NullCoordinate
	}
	if c.col < MaxIndex {
		return Coordinate{row: c.row, col: c.col + 1, valid: true}
	}
	if c.row < MaxIndex {
		return Coordinate{row: c.row + 1, col: 0, valid: true}
	}
	return NullCoordinate
}

// Offset returns c moved by d, and false if the result is off the board.
func (c Coordinate) Offset(d Delta) (Coordinate, bool) {
	if !c.valid {
		return NullCoordinate, false
	}
	next, err := NewCoordinate(int(c.row)+d.Row, int(c.col)+d.Column)
	if err != nil {
		return NullCoordinate, false
	}
	return next, true
}

// AllCoordinates returns the 64 squares in row-major order (A1, B1, ... H8).
func AllCoordinates() []Coordinate {
	all := make([]Coordinate, 0, BoardSize*BoardSize)
	for c := (Coordinate{valid: true}); !c.IsNull(); c = c.Next() {
		all = append(all, c)
	}
	return all
}

// DeltaBetween returns destination minus source.
func DeltaBetween(source, destination Coordinate) Delta {
	return Delta{
		Row:    int(destination.row) - int(source.row),
		Column: int(destination.col) - int(source.col),
	}
}

// IsVertical reports whether the move changes row only.
func IsVertical(source, destination Coordinate) bool {
	d := DeltaBetween(source, destination)
	return d.Row != 0 && d.Column == 0
}

// IsHorizontal reports whether the move changes column only.
func IsHorizontal(source, destination Coordinate) bool {
	d := DeltaBetween(source, destination)
	return d.Row == 0 && d.Column != 0
}

// IsDiagonal reports whether the move changes row and column equally.
func IsDiagonal(source, destination Coordinate) bool {
	d := DeltaBetween(source, destination)
	return d.Row != 0 && abs(d.Row) == abs(d.Column)
}

// IsKnightMove reports whether the move is a knight's (1,2) or (2,1) offset.
func IsKnightMove(source, destination Coordinate) bool {
	d := DeltaBetween(source, destination)
	r, c := abs(d.Row), abs(d.Column)
	return (r == 1 && c == 2) || (r == 2 && c == 1)
}

// MinimalStep returns the smallest whole-square step that repeated from
// source lands exactly on destination: both deltas divided by their gcd.
// An axis-aligned delta reduces to a unit step; equal squares give {0, 0}.
func MinimalStep(source, destination Coordinate) Delta {
	d := DeltaBetween(source, destination)
	switch {
	case d.Row == 0 && d.Column == 0:
		return Delta{}
	case d.Row == 0:
		return Delta{Column: sign(d.Column)}
	case d.Column == 0:
		return Delta{Row: sign(d.Row)}
	}
	g := gcd(abs(d.Row), abs(d.Column))
	return Delta{Row: d.Row / g, Column: d.Column / g}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
