package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// ThereExistsValidMove returns true if colour has at least one legal move.
func (r Rules) ThereExistsValidMove(g *chess.Game, colour chess.Colour) bool {
	found := false
	r.eachLegalMove(g, colour, chess.NullCoordinate, true, func(chess.MoveRequest) bool {
		found = true
		return false
	})
	return found
}

// LegalMoves returns every legal move for colour, ordered by source then
// destination. A promoting pawn move appears once per promotion kind.
func (r Rules) LegalMoves(g *chess.Game, colour chess.Colour) []chess.MoveRequest {
	var moves []chess.MoveRequest
	r.eachLegalMove(g, colour, chess.NullCoordinate, false, func(m chess.MoveRequest) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on source. The piece
// must belong to the side to move.
func (r Rules) LegalMovesFrom(g *chess.Game, source chess.Coordinate) []chess.MoveRequest {
	var moves []chess.MoveRequest
	r.eachLegalMove(g, g.ToMove, source, false, func(m chess.MoveRequest) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// eachLegalMove calls fn for each legal move of colour until fn returns
// false. A non-null only restricts the search to that source square. With
// anyPromotion set, only the first promotion kind is tried: the choice
// cannot change whether the mover's king ends up attacked.
func (r Rules) eachLegalMove(g *chess.Game, colour chess.Colour, only chess.Coordinate, anyPromotion bool, fn func(chess.MoveRequest) bool) {
	destinations := chess.AllCoordinates()
	for _, source := range g.Board.Coordinates() {
		if !only.IsNull() && source != only {
			continue
		}
		piece, _ := g.Board.PieceAt(source)
		if piece.Colour != colour {
			continue
		}
		for _, destination := range destinations {
			promotions := promotionCandidates(piece, destination)
			if anyPromotion {
				promotions = promotions[:1]
			}
			for _, promotion := range promotions {
				if !r.CalcMoveValidity(g, colour, source, destination, promotion).Valid {
					break
				}
				m := chess.MoveRequest{Source: source, Destination: destination, Promotion: promotion}
				if r.MoveLeavesMoverInCheck(g, colour, m) {
					break
				}
				if !fn(m) {
					return
				}
			}
		}
	}
}
