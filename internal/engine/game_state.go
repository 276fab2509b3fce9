package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CalculateGameState returns the state of g for the side to move.
// Insufficient material only ends a game in which a move is still
// available. Without a legal move the side to move is mated when in check
// and stalemated otherwise.
func (r Rules) CalculateGameState(g *chess.Game) chess.GameState {
	if r.ThereExistsValidMove(g, g.ToMove) {
		if HasInsufficientMaterial(g.Board) {
			return chess.Draw
		}
		return chess.InProgress
	}
	if r.InCheck(g, g.ToMove) {
		return chess.WinFor(g.ToMove.Opposite())
	}
	return chess.Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (r Rules) IsCheckmate(g *chess.Game) bool {
	return r.InCheck(g, g.ToMove) && !r.ThereExistsValidMove(g, g.ToMove)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (r Rules) IsStalemate(g *chess.Game) bool {
	return !r.InCheck(g, g.ToMove) && !r.ThereExistsValidMove(g, g.ToMove)
}
