package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// InCheck returns true if colour's king is attacked. A side without a
// king is never in check.
func (r Rules) InCheck(g *chess.Game, colour chess.Colour) bool {
	king := g.Board.KingLocation(colour)
	if king.IsNull() {
		return false
	}
	return r.IsSquareAttacked(g, king, colour.Opposite())
}

// IsSquareAttacked returns true if some piece of byColour could capture on
// target. Each candidate runs through the same pseudo-legality checks as a
// real move, so blocked lines do not attack.
func (r Rules) IsSquareAttacked(g *chess.Game, target chess.Coordinate, byColour chess.Colour) bool {
	for _, c := range g.Board.Coordinates() {
		p, _ := g.Board.PieceAt(c)
		if p.Colour != byColour {
			continue
		}
		if r.pseudoLegal(g, byColour, c, target, nil, true).Valid {
			return true
		}
	}
	return false
}

// MoveLeavesMoverInCheck plays m on a copy of g and reports whether
// mover's king is attacked afterwards. g itself is not modified.
func (r Rules) MoveLeavesMoverInCheck(g *chess.Game, mover chess.Colour, m chess.MoveRequest) bool {
	sim := g.Copy()
	ApplyMove(sim, m.Source, m.Destination, m.Promotion)
	return r.InCheck(sim, mover)
}
