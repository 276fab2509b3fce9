package testutil

import (
	"fmt"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// Only the passing paths can be exercised without a fake *testing.T.

func TestAssertionsPass(t *testing.T) {
	AssertEqual(t, []string{"E2-E4"}, []string{"E2-E4"})
	AssertEqual(t, 64, 64, "square count")
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("loading: %w", chesserrors.ErrInvalidFEN), chesserrors.ErrInvalidFEN)
	AssertContains(t, "White: played E2-E4", "played")
	AssertTrue(t, true)
	AssertFalse(t, false, "castling after %s", "H1-H2")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"move %s", "E2-E4"}, "move E2-E4"},
		{"format multiple", []interface{}{"%s to %s after %d", "E1", "G1", 3}, "E1 to G1 after 3"},
		{"non-string first", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
