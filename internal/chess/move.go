package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveRequest is a proposed move. Promotion is required when a pawn reaches
// the back rank and must be nil otherwise.
type MoveRequest struct {
	Source      Coordinate
	Destination Coordinate
	Promotion   *Piece
}

// NewMoveRequest builds a move request without promotion.
func NewMoveRequest(source, destination Coordinate) MoveRequest {
	return MoveRequest{Source: source, Destination: destination}
}

// WithPromotion returns a copy of m promoting to p.
func (m MoveRequest) WithPromotion(p Piece) MoveRequest {
	m.Promotion = &p
	return m
}

// ParseMoveRequest parses source and destination notation plus an optional
// promotion letter (empty for none).
func ParseMoveRequest(from, to, promotion string) (MoveRequest, error) {
	source, err := ParseCoordinate(from)
	if err != nil {
		return MoveRequest{}, err
	}
	destination, err := ParseCoordinate(to)
	if err != nil {
		return MoveRequest{}, err
	}
	m := NewMoveRequest(source, destination)
	if promotion == "" {
		return m, nil
	}
	if len(promotion) != 1 {
		return MoveRequest{}, &errors.ParseError{
			Err:      errors.ErrMalformedNotation,
			Input:    promotion,
			Expected: "a single piece letter",
		}
	}
	p, err := ParsePiece(promotion[0])
	if err != nil {
		return MoveRequest{}, err
	}
	return m.WithPromotion(p), nil
}

// String returns e.g. "E7-E8=Q" (promotion letter uppercase for White).
func (m MoveRequest) String() string {
	s := fmt.Sprintf("%s-%s", m.Source, m.Destination)
	if m.Promotion != nil {
		s += "=" + string(m.Promotion.Letter())
	}
	return s
}

// Placement is one piece placed during manual setup.
type Placement struct {
	Square Coordinate
	Piece  Piece
}
