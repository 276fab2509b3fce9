package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustGame loads a FEN position or fails the test.
func mustGame(t *testing.T, fen string) *chess.Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

func sq(s string) chess.Coordinate {
	return chess.MustParseCoordinate(s)
}

func mv(from, to string) chess.MoveRequest {
	return chess.NewMoveRequest(sq(from), sq(to))
}

func promo(from, to string, p chess.Piece) chess.MoveRequest {
	return mv(from, to).WithPromotion(p)
}

// pieceAt returns the letter of the piece on s, or '.' when empty.
func pieceAt(g *chess.Game, s string) byte {
	p, ok := g.Board.PieceAt(sq(s))
	if !ok {
		return '.'
	}
	return p.Letter()
}
