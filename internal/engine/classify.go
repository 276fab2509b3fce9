package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Classification summarises a position for batch reporting.
type Classification struct {
	State      chess.GameState
	ToMove     chess.Colour
	InCheck    bool
	LegalMoves int
}

// Classify reports the state of g, whether the side to move is in check
// and how many legal moves it has. g is not modified.
func (r Rules) Classify(g *chess.Game) Classification {
	return Classification{
		State:      r.CalculateGameState(g),
		ToMove:     g.ToMove,
		InCheck:    r.InCheck(g, g.ToMove),
		LegalMoves: len(r.LegalMoves(g, g.ToMove)),
	}
}
