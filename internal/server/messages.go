package server

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// MessageType is the kind of a websocket message.
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeMoveResult MessageType = "moveResult"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeError      MessageType = "error"
)

// Message is the websocket envelope.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// CreateRequest optionally starts a game from a FEN position.
type CreateRequest struct {
	FEN string `json:"fen"`
}

// CreateResponse returns the new game's id and position.
type CreateResponse struct {
	ID       string               `json:"id"`
	Snapshot *output.JSONSnapshot `json:"snapshot"`
}

// MoveRequest is a move in square names, e.g. {"from":"E7","to":"E8","promotion":"Q"}.
type MoveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// Parse converts the request to an engine move.
func (r MoveRequest) Parse() (chess.MoveRequest, error) {
	return chess.ParseMoveRequest(r.From, r.To, r.Promotion)
}

// PlacementRequest puts one piece, given as a FEN letter, on a square.
type PlacementRequest struct {
	Square string `json:"square"`
	Piece  string `json:"piece"`
}

// SetupRequest replaces a game's position.
type SetupRequest struct {
	Placements []PlacementRequest `json:"placements"`
	ToMove     string             `json:"toMove"`
}

// Parse converts the request to engine placements and the side to move.
func (r SetupRequest) Parse() ([]chess.Placement, chess.Colour, error) {
	toMove, err := parseColour(r.ToMove)
	if err != nil {
		return nil, toMove, err
	}
	placements := make([]chess.Placement, 0, len(r.Placements))
	for _, p := range r.Placements {
		square, err := chess.ParseCoordinate(p.Square)
		if err != nil {
			return nil, toMove, err
		}
		if len(p.Piece) != 1 {
			return nil, toMove, &errors.ParseError{
				Err:      errors.ErrMalformedNotation,
				Input:    p.Piece,
				Expected: "a single piece letter",
			}
		}
		piece, err := chess.ParsePiece(p.Piece[0])
		if err != nil {
			return nil, toMove, err
		}
		placements = append(placements, chess.Placement{Square: square, Piece: piece})
	}
	return placements, toMove, nil
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func parseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, &errors.ParseError{
		Err:      errors.ErrMalformedNotation,
		Input:    s,
		Expected: `"white" or "black"`,
	}
}

// newMessage builds an envelope around payload.
func newMessage(t MessageType, payload interface{}) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("encoding %s payload: %w", t, err)
	}
	return Message{Type: t, Payload: data}, nil
}
