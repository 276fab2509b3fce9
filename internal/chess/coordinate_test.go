package chess

import (
	"errors"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		row     int
		col     int
		want    string
		wantErr bool
	}{
		{"a1", 0, 0, "A1", false},
		{"e4", 3, 4, "E4", false},
		{"h8", 7, 7, "H8", false},
		{"row too high", 8, 0, "", true},
		{"column negative", 0, -1, "", true},
		{"both out", 9, 9, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCoordinate(tt.row, tt.col)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrOutOfRange) {
					t.Errorf("NewCoordinate(%d, %d) error = %v, want ErrOutOfRange", tt.row, tt.col, err)
				}
				if !c.IsNull() {
					t.Errorf("NewCoordinate(%d, %d) = %v, want null", tt.row, tt.col, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCoordinate(%d, %d) unexpected error: %v", tt.row, tt.col, err)
			}
			if got := c.String(); got != tt.want {
				t.Errorf("NewCoordinate(%d, %d) = %s, want %s", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		input   string
		wantRow int
		wantCol int
		wantErr bool
	}{
		{"A1", 0, 0, false},
		{"E4", 3, 4, false},
		{"e4", 3, 4, false},
		{"H8", 7, 7, false},
		{"", 0, 0, true},
		{"E", 0, 0, true},
		{"E44", 0, 0, true},
		{"I1", 0, 0, true},
		{"A0", 0, 0, true},
		{"A9", 0, 0, true},
		{"4E", 0, 0, true},
		{"EE", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseCoordinate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrMalformedNotation) {
					t.Errorf("ParseCoordinate(%q) error = %v, want ErrMalformedNotation", tt.input, err)
				}
				var parseErr *chesserrors.ParseError
				if !errors.As(err, &parseErr) {
					t.Errorf("ParseCoordinate(%q) error is not a ParseError", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoordinate(%q) unexpected error: %v", tt.input, err)
			}
			if c.Row() != tt.wantRow || c.Column() != tt.wantCol {
				t.Errorf("ParseCoordinate(%q) = (%d, %d), want (%d, %d)",
					tt.input, c.Row(), c.Column(), tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	all := AllCoordinates()
	if len(all) != BoardSize*BoardSize {
		t.Fatalf("AllCoordinates() returned %d squares, want 64", len(all))
	}
	for _, c := range all {
		parsed, err := ParseCoordinate(c.String())
		if err != nil {
			t.Errorf("ParseCoordinate(%q) unexpected error: %v", c, err)
			continue
		}
		if parsed != c {
			t.Errorf("ParseCoordinate(%q) = %v, want %v", c, parsed, c)
		}

		// Lowercase files parse to the same square; String stays uppercase.
		lower := strings.ToLower(c.String())
		if parsed, err := ParseCoordinate(lower); err != nil || parsed != c {
			t.Errorf("ParseCoordinate(%q) = %v, %v; want %v", lower, parsed, err, c)
		}
	}
}

func TestCoordinateOrder(t *testing.T) {
	all := AllCoordinates()
	for i := 1; i < len(all); i++ {
		if !all[i-1].Less(all[i]) {
			t.Errorf("%v.Less(%v) = false, want true", all[i-1], all[i])
		}
		if all[i].Less(all[i-1]) {
			t.Errorf("%v.Less(%v) = true, want false", all[i], all[i-1])
		}
	}
	if !NullCoordinate.Less(MustParseCoordinate("A1")) {
		t.Error("null coordinate should sort before A1")
	}
}

func TestCoordinateNext(t *testing.T) {
	tests := []struct {
		from string
		want string
	}{
		{"A1", "B1"},
		{"G1", "H1"},
		{"H1", "A2"},
		{"H7", "A8"},
		{"H8", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			if got := MustParseCoordinate(tt.from).Next().String(); got != tt.want {
				t.Errorf("%s.Next() = %s, want %s", tt.from, got, tt.want)
			}
		})
	}
}

func TestNullCoordinate(t *testing.T) {
	var zero Coordinate
	if !zero.IsNull() {
		t.Error("zero Coordinate should be null")
	}
	if zero != NullCoordinate {
		t.Error("zero Coordinate should equal NullCoordinate")
	}
	if got := NullCoordinate.String(); got != "-" {
		t.Errorf("NullCoordinate.String() = %q, want %q", got, "-")
	}
	if _, ok := NullCoordinate.Offset(Delta{Row: 1}); ok {
		t.Error("NullCoordinate.Offset() should fail")
	}
}

func TestMoveClassification(t *testing.T) {
	tests := []struct {
		name       string
		src, dst   string
		vertical   bool
		horizontal bool
		diagonal   bool
		knight     bool
	}{
		{"up the file", "E2", "E4", true, false, false, false},
		{"along the rank", "A1", "H1", false, true, false, false},
		{"long diagonal", "A1", "H8", false, false, true, false},
		{"anti diagonal", "H1", "A8", false, false, true, false},
		{"knight", "G1", "F3", false, false, false, true},
		{"knight reversed", "F3", "G1", false, false, false, true},
		{"irregular", "A1", "C4", false, false, false, false},
		{"same square", "D4", "D4", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst := MustParseCoordinate(tt.src), MustParseCoordinate(tt.dst)
			if got := IsVertical(src, dst); got != tt.vertical {
				t.Errorf("IsVertical(%s, %s) = %v, want %v", tt.src, tt.dst, got, tt.vertical)
			}
			if got := IsHorizontal(src, dst); got != tt.horizontal {
				t.Errorf("IsHorizontal(%s, %s) = %v, want %v", tt.src, tt.dst, got, tt.horizontal)
			}
			if got := IsDiagonal(src, dst); got != tt.diagonal {
				t.Errorf("IsDiagonal(%s, %s) = %v, want %v", tt.src, tt.dst, got, tt.diagonal)
			}
			if got := IsKnightMove(src, dst); got != tt.knight {
				t.Errorf("IsKnightMove(%s, %s) = %v, want %v", tt.src, tt.dst, got, tt.knight)
			}
		})
	}
}

func TestMinimalStep(t *testing.T) {
	tests := []struct {
		src, dst string
		want     Delta
	}{
		{"A1", "A8", Delta{Row: 1}},
		{"A8", "A1", Delta{Row: -1}},
		{"A1", "H1", Delta{Column: 1}},
		{"H8", "A1", Delta{Row: -1, Column: -1}},
		{"B1", "E4", Delta{Row: 1, Column: 1}},
		{"G1", "F3", Delta{Row: 2, Column: -1}},
		{"A1", "C5", Delta{Row: 2, Column: 1}},
		{"D4", "D4", Delta{}},
	}

	for _, tt := range tests {
		t.Run(tt.src+tt.dst, func(t *testing.T) {
			got := MinimalStep(MustParseCoordinate(tt.src), MustParseCoordinate(tt.dst))
			if got != tt.want {
				t.Errorf("MinimalStep(%s, %s) = %+v, want %+v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}
