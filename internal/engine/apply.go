package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ApplyMove moves the piece on source to destination on g's board and
// resolves at most one special effect: an en passant capture, the rook
// half of castling, or promotion. It changes nothing but the board and
// does not check legality.
func ApplyMove(g *chess.Game, source, destination chess.Coordinate, promotion *chess.Piece) {
	board := g.Board
	piece, ok := board.PieceAt(source)
	if !ok {
		return
	}
	victim, isEnPassant := enPassantVictim(g, piece, source, destination)

	board.Erase(destination)
	board.Erase(source)
	board.Insert(destination, piece)

	switch {
	case isEnPassant:
		board.Erase(victim)
	case piece.Kind == chess.King && chess.IsCastlingShape(piece.Colour, source, destination):
		from, to := castlingRookMove(source, destination)
		if rook, ok := board.PieceAt(from); ok {
			board.Erase(from)
			board.Insert(to, rook)
		}
	case promotion != nil:
		board.Insert(destination, promotion.Clone())
	}
}

// Play validates m for the side to move and, if it is legal, commits it:
// board update, castling rights, en passant target, turn change and game
// state. A rejected move leaves g unchanged.
func (r Rules) Play(g *chess.Game, m chess.MoveRequest) MoveValidity {
	if g.State.IsTerminal() {
		return invalid(ReasonGameOver)
	}
	mover := g.ToMove
	if v := r.CalcMoveValidity(g, mover, m.Source, m.Destination, m.Promotion); !v.Valid {
		return v
	}
	if r.MoveLeavesMoverInCheck(g, mover, m) {
		return invalid(ReasonLeavesMoverInCheck)
	}
	r.commit(g, m)
	return valid
}

// commit applies an already validated move to the live game.
func (r Rules) commit(g *chess.Game, m chess.MoveRequest) {
	piece, _ := g.Board.PieceAt(m.Source)
	var captured *chess.Piece
	if p, ok := g.Board.PieceAt(m.Destination); ok {
		captured = &p
	}

	ApplyMove(g, m.Source, m.Destination, m.Promotion)
	updateCastlingRights(g, piece, m.Source, captured, m.Destination)
	g.EnPassantTarget = nextEnPassantTarget(piece, m.Source, m.Destination)
	g.ToMove = g.ToMove.Opposite()
	g.State = r.CalculateGameState(g)
}
