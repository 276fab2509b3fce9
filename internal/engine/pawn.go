package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// reachesBackRank reports whether piece is a pawn landing on its
// promotion row.
func reachesBackRank(piece chess.Piece, destination chess.Coordinate) bool {
	return piece.Kind == chess.Pawn && destination.Row() == piece.Colour.BackRank()
}

// checkPromotion requires a promotion piece exactly when a pawn reaches
// the back rank. The piece must be the mover's colour and neither a king
// nor a pawn.
func checkPromotion(piece chess.Piece, destination chess.Coordinate, promotion *chess.Piece) MoveValidity {
	if reachesBackRank(piece, destination) {
		if promotion == nil ||
			promotion.Colour != piece.Colour ||
			promotion.Kind == chess.King ||
			promotion.Kind == chess.Pawn {
			return invalid(ReasonInvalidPromotion)
		}
		return valid
	}
	if promotion != nil {
		return invalid(ReasonUnneededPromotion)
	}
	return valid
}

// enPassantVictim returns the square of the pawn captured en passant by
// piece moving source→destination, and false if the move is not an en
// passant capture. It must be called before the move is applied.
func enPassantVictim(g *chess.Game, piece chess.Piece, source, destination chess.Coordinate) (chess.Coordinate, bool) {
	if piece.Kind != chess.Pawn || g.EnPassantTarget.IsNull() {
		return chess.NullCoordinate, false
	}
	if !chess.IsDiagonal(source, destination) || g.Board.OccupiedAt(destination) {
		return chess.NullCoordinate, false
	}
	victim := square(source.Row(), destination.Column())
	if victim != g.EnPassantTarget {
		return chess.NullCoordinate, false
	}
	return victim, true
}

// nextEnPassantTarget is the destination of a pawn double step, otherwise
// NullCoordinate.
func nextEnPassantTarget(piece chess.Piece, source, destination chess.Coordinate) chess.Coordinate {
	if piece.Kind == chess.Pawn && abs(chess.DeltaBetween(source, destination).Row) == 2 {
		return destination
	}
	return chess.NullCoordinate
}

// promotionCandidates returns the promotion choices to try for a move:
// one per promotion kind when piece reaches the back rank, otherwise nil.
func promotionCandidates(piece chess.Piece, destination chess.Coordinate) []*chess.Piece {
	if !reachesBackRank(piece, destination) {
		return []*chess.Piece{nil}
	}
	out := make([]*chess.Piece, 0, len(chess.PromotionKinds))
	for _, kind := range chess.PromotionKinds {
		p := chess.Piece{Colour: piece.Colour, Kind: kind}
		out = append(out, &p)
	}
	return out
}
