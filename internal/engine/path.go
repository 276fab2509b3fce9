package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pathClear reports whether the squares between source and destination
// are empty. Knights jump, so their path is always clear.
func pathClear(board *chess.Board, piece chess.Piece, source, destination chess.Coordinate) bool {
	if piece.Kind == chess.Knight {
		return true
	}
	return !board.PathBlocked(source, destination)
}
