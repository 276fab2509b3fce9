// Package engine provides chess move validation, move application and
// game state computation.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Rules evaluates and applies moves. The zero value implements the
// standard rules with the relaxed castling check.
type Rules struct {
	// StrictCastling additionally rejects castling out of check and
	// across an attacked square.
	StrictCastling bool
}

// DefaultRules is used by the package-level helpers.
var DefaultRules = Rules{}

// NewRules creates Rules from configuration. A nil config yields DefaultRules.
func NewRules(cfg *config.RulesConfig) Rules {
	if cfg == nil {
		return DefaultRules
	}
	return Rules{StrictCastling: cfg.StrictCastling}
}

// material is the non-king piece count of one side.
type material struct {
	bishops int
	knights int
	heavy   int // pawns, rooks and queens
}

func (m material) minors() int {
	return m.bishops + m.knights
}

// countMaterial tallies both sides' material.
func countMaterial(board *chess.Board) (white, black material) {
	for _, c := range board.Coordinates() {
		p, _ := board.PieceAt(c)
		side := &white
		if p.Colour == chess.Black {
			side = &black
		}
		switch p.Kind {
		case chess.Bishop:
			side.bishops++
		case chess.Knight:
			side.knights++
		case chess.Pawn, chess.Rook, chess.Queen:
			side.heavy++
		}
	}
	return white, black
}

// HasInsufficientMaterial returns true if the position is classified as a
// draw by material:
// - any pawn, rook or queen on the board means sufficient material
// - one minor piece each is a draw
// - more than two minor pieces for either side is never a draw
// - a side with no minors draws against none, one, or exactly two knights
// - one minor against two draws unless the two are a bishop pair
func HasInsufficientMaterial(board *chess.Board) bool {
	white, black := countMaterial(board)
	if white.heavy > 0 || black.heavy > 0 {
		return false
	}

	w, b := white.minors(), black.minors()
	if w == 1 && b == 1 {
		return true
	}
	if w > 2 || b > 2 {
		return false
	}

	if w == 0 || b == 0 {
		other := white
		if w == 0 {
			other = black
		}
		switch other.minors() {
		case 0, 1:
			return true
		case 2:
			return other.knights == 2
		}
		return false
	}

	if w+b == 3 {
		pair := white
		if b == 2 {
			pair = black
		}
		return pair.bishops != 2
	}

	return false
}

// CalcMoveValidity runs the pseudo-legality checks with DefaultRules.
func CalcMoveValidity(g *chess.Game, player chess.Colour, source, destination chess.Coordinate, promotion *chess.Piece) MoveValidity {
	return DefaultRules.CalcMoveValidity(g, player, source, destination, promotion)
}

// InCheck reports with DefaultRules whether colour's king is attacked.
func InCheck(g *chess.Game, colour chess.Colour) bool {
	return DefaultRules.InCheck(g, colour)
}

// LegalMoves lists colour's legal moves with DefaultRules.
func LegalMoves(g *chess.Game, colour chess.Colour) []chess.MoveRequest {
	return DefaultRules.LegalMoves(g, colour)
}

// CalculateGameState computes the game state with DefaultRules.
func CalculateGameState(g *chess.Game) chess.GameState {
	return DefaultRules.CalculateGameState(g)
}
