package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfRange", ErrOutOfRange, ErrOutOfRange},
		{"ErrMalformedNotation", ErrMalformedNotation, ErrMalformedNotation},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidPosition", ErrInvalidPosition, ErrInvalidPosition},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrGameOver) {
		t.Error("ErrIllegalMove should not match ErrGameOver")
	}
	if errors.Is(ErrOutOfRange, ErrMalformedNotation) {
		t.Error("ErrOutOfRange should not match ErrMalformedNotation")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:         ErrIllegalMove,
				Source:      "A1",
				Destination: "A8",
				Reason:      "Path blocked",
			},
			contains: []string{"A1-A8", "path blocked", "illegal move"},
		},
		{
			name:     "game over",
			err:      &MoveError{Err: ErrGameOver, Reason: "Game is over"},
			contains: []string{"game is over"},
		},
		{
			name:     "no context",
			err:      &MoveError{},
			contains: []string{"rejected move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:         ErrIllegalMove,
		Source:      "E1",
		Destination: "G1",
		Reason:      "Invalid castling attempt",
	}

	wrapped := fmt.Errorf("submit failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Reason != "Invalid castling attempt" {
		t.Errorf("extracted.Reason = %q, want %q", extracted.Reason, "Invalid castling attempt")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		contains []string
	}{
		{
			name: "expected and got",
			err: &ParseError{
				Err:      ErrMalformedNotation,
				Input:    "I9",
				Expected: "file A-H",
				Got:      "'I'",
			},
			contains: []string{`"I9"`, "expected file A-H, got 'I'", "malformed notation"},
		},
		{
			name:     "expected only",
			err:      &ParseError{Input: "E", Expected: "two characters"},
			contains: []string{"expected two characters"},
		},
		{
			name:     "got only",
			err:      &ParseError{Got: "x"},
			contains: []string{"unexpected x"},
		},
		{
			name:     "empty",
			err:      &ParseError{},
			contains: []string{"parse error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Err: ErrInvalidFEN, Input: "8/8/8"}

	if !errors.Is(parseErr, ErrInvalidFEN) {
		t.Error("errors.Is(parseErr, ErrInvalidFEN) = false, want true")
	}
}

func TestPositionError(t *testing.T) {
	posErr := &PositionError{Err: ErrInvalidPosition, WhiteKings: 2, BlackKings: 0}

	msg := posErr.Error()
	for _, s := range []string{"2 white", "0 black", "invalid position"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
		}
	}

	var extracted *PositionError
	if !errors.As(Wrap(posErr, "manual setup"), &extracted) {
		t.Fatal("errors.As() could not extract PositionError")
	}
	if extracted.WhiteKings != 2 {
		t.Errorf("extracted.WhiteKings = %d, want 2", extracted.WhiteKings)
	}
	if !errors.Is(posErr, ErrInvalidPosition) {
		t.Error("errors.Is(posErr, ErrInvalidPosition) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrGameNotFound, "game %q", "abc")

	if !errors.Is(wrapped, ErrGameNotFound) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, `game "abc"`) {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
