package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Castling files.
const (
	queenRookCol = 0
	knightCol    = 1
	kingRookCol  = chess.MaxIndex
)

// castlingAllowed checks the castling-specific conditions for a
// castling-shaped king move. The king's own path was already tested.
func (r Rules) castlingAllowed(g *chess.Game, colour chess.Colour, source, destination chess.Coordinate) bool {
	kingSide := destination.Column() > source.Column()
	rights := g.Castling(colour)
	if (kingSide && !rights.KingSide) || (!kingSide && !rights.QueenSide) {
		return false
	}

	row := colour.HomeRow()
	rookCol := kingRookCol
	if !kingSide {
		rookCol = queenRookCol
		// The queenside knight square is not on the king's path.
		if g.Board.OccupiedAt(square(row, knightCol)) {
			return false
		}
	}

	rook, ok := g.Board.PieceAt(square(row, rookCol))
	if !ok || rook != (chess.Piece{Colour: colour, Kind: chess.Rook}) {
		return false
	}
	if g.Board.OccupiedAt(destination) {
		return false
	}

	if r.StrictCastling {
		crossed := square(row, (source.Column()+destination.Column())/2)
		if r.IsSquareAttacked(g, source, colour.Opposite()) ||
			r.IsSquareAttacked(g, crossed, colour.Opposite()) {
			return false
		}
	}
	return true
}

// castlingRookMove returns the rook's source and destination for a
// castling king move.
func castlingRookMove(source, destination chess.Coordinate) (from, to chess.Coordinate) {
	row := source.Row()
	if destination.Column() > source.Column() {
		return square(row, kingRookCol), square(row, destination.Column()-1)
	}
	return square(row, queenRookCol), square(row, destination.Column()+1)
}

// updateCastlingRights clears rights after piece moved source→destination,
// capturing captured (if any). Rights are never restored.
func updateCastlingRights(g *chess.Game, piece chess.Piece, source chess.Coordinate, captured *chess.Piece, destination chess.Coordinate) {
	if piece.Kind == chess.King {
		*g.Castling(piece.Colour) = chess.CastlingRights{}
	}
	if piece.Kind == chess.Rook {
		updateCastlingRightsForRook(g, piece.Colour, source)
	}
	if captured != nil && captured.Kind == chess.Rook {
		updateCastlingRightsForRook(g, captured.Colour, destination)
	}
}

// updateCastlingRightsForRook removes castling rights when a rook leaves
// or is captured on its home corner.
func updateCastlingRightsForRook(g *chess.Game, colour chess.Colour, c chess.Coordinate) {
	if c.Row() != colour.HomeRow() {
		return
	}
	rights := g.Castling(colour)
	switch c.Column() {
	case kingRookCol:
		rights.KingSide = false
	case queenRookCol:
		rights.QueenSide = false
	}
}

// deriveCastlingRights grants each right whose king and rook stand on
// their home squares.
func deriveCastlingRights(board *chess.Board, colour chess.Colour) chess.CastlingRights {
	king, ok := board.PieceAt(chess.KingHome(colour))
	if !ok || king != (chess.Piece{Colour: colour, Kind: chess.King}) {
		return chess.CastlingRights{}
	}
	rook := chess.Piece{Colour: colour, Kind: chess.Rook}
	row := colour.HomeRow()
	kingSide, _ := board.PieceAt(square(row, kingRookCol))
	queenSide, _ := board.PieceAt(square(row, queenRookCol))
	return chess.CastlingRights{
		KingSide:  board.OccupiedAt(square(row, kingRookCol)) && kingSide == rook,
		QueenSide: board.OccupiedAt(square(row, queenRookCol)) && queenSide == rook,
	}
}
