package testutil

import (
	"io"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// QuietConfig returns a default config that discards output and logs.
func QuietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.SetOutput(io.Discard)
	cfg.SetLog(io.Discard)
	cfg.Verbosity = 0
	return cfg
}

// MustGame loads a FEN position. It calls t.Fatal if the FEN is rejected.
func MustGame(t testing.TB, fen string) *chess.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// MustCoordinate parses a square name such as "E4".
func MustCoordinate(t testing.TB, s string) chess.Coordinate {
	t.Helper()
	c, err := chess.ParseCoordinate(s)
	if err != nil {
		t.Fatalf("ParseCoordinate(%q) error: %v", s, err)
	}
	return c
}

// MustController creates a quiet controller for fen.
func MustController(t testing.TB, fen string) *engine.Controller {
	t.Helper()
	c, err := engine.NewControllerFromFEN(QuietConfig(), fen)
	if err != nil {
		t.Fatalf("NewControllerFromFEN(%q) error: %v", fen, err)
	}
	return c
}

// MustPlay submits each move in "E2-E4" or "E7-E8=Q" form and fails the
// test on the first rejection.
func MustPlay(t testing.TB, c *engine.Controller, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", s, err)
		}
		if err := c.SubmitMove(m); err != nil {
			t.Fatalf("SubmitMove(%s) error: %v", s, err)
		}
	}
}

// ParseMove parses "E2-E4" or "E7-E8=Q". The promotion letter takes its
// case from the side: "q" is a black queen.
func ParseMove(s string) (chess.MoveRequest, error) {
	from, to, promotion := s, "", ""
	if len(s) >= 5 && s[2] == '-' {
		from, to = s[:2], s[3:5]
		if len(s) == 7 && s[5] == '=' {
			promotion = s[6:]
		}
	}
	return chess.ParseMoveRequest(from, to, promotion)
}
