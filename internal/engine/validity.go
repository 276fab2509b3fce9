package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Reasons reported for rejected moves.
const (
	ReasonNoPiece            = "No piece at source square"
	ReasonWrongColour        = "Moving wrong colour piece"
	ReasonOwnPiece           = "Can't take your own piece"
	ReasonBadShape           = "Piece can't move that way"
	ReasonPathBlocked        = "Path blocked"
	ReasonInvalidCastling    = "Invalid castling attempt"
	ReasonInvalidPromotion   = "Invalid promotion piece"
	ReasonUnneededPromotion  = "Move includes promotion piece but can't promote"
	ReasonLeavesMoverInCheck = "Move leaves mover in check"
	ReasonGameOver           = "Game is over"
)

// MoveValidity is the outcome of a legality check. Reason is empty when
// Valid is true.
type MoveValidity struct {
	Valid  bool
	Reason string
}

var valid = MoveValidity{Valid: true}

func invalid(reason string) MoveValidity {
	return MoveValidity{Reason: reason}
}

// CalcMoveValidity checks whether player may move source→destination,
// ignoring whether the move exposes player's own king. The checks run in
// a fixed order and the first failure is reported.
func (r Rules) CalcMoveValidity(g *chess.Game, player chess.Colour, source, destination chess.Coordinate, promotion *chess.Piece) MoveValidity {
	return r.pseudoLegal(g, player, source, destination, promotion, false)
}

// pseudoLegal implements CalcMoveValidity. With attack set, destination is
// treated as occupied, castling never counts and promotion is not checked:
// this is the form used to decide whether a square is attacked.
func (r Rules) pseudoLegal(g *chess.Game, player chess.Colour, source, destination chess.Coordinate, promotion *chess.Piece, attack bool) MoveValidity {
	board := g.Board

	piece, ok := board.PieceAt(source)
	if !ok {
		return invalid(ReasonNoPiece)
	}
	if piece.Colour != player {
		return invalid(ReasonWrongColour)
	}

	target, occupied := board.PieceAt(destination)
	if occupied && target.Colour == player {
		return invalid(ReasonOwnPiece)
	}

	if !piece.ShapeAllows(source, destination, g.EnPassantTarget, occupied || attack) {
		return invalid(ReasonBadShape)
	}

	if !pathClear(board, piece, source, destination) {
		return invalid(ReasonPathBlocked)
	}

	if piece.Kind == chess.King && chess.IsCastlingShape(player, source, destination) {
		if attack || !r.castlingAllowed(g, player, source, destination) {
			return invalid(ReasonInvalidCastling)
		}
	}

	if attack {
		return valid
	}
	return checkPromotion(piece, destination, promotion)
}
