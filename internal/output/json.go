package output

import (
	"errors"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// JSONSnapshot is a board snapshot in JSON format.
type JSONSnapshot struct {
	Squares   []JSONSquare `json:"squares"`
	ToMove    string       `json:"toMove"` // "white" or "black"
	State     string       `json:"state"`
	InCheck   bool         `json:"inCheck"`
	EnPassant string       `json:"enPassant,omitempty"`
	Castling  JSONCastling `json:"castling"`
	FEN       string       `json:"fen,omitempty"`
}

// JSONSquare is one square of a snapshot. Piece is empty for an empty square.
type JSONSquare struct {
	Square string `json:"square"`
	Piece  string `json:"piece,omitempty"` // FEN letter, e.g. "P" or "k"
	Colour string `json:"colour,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// JSONCastling holds both sides' castling rights.
type JSONCastling struct {
	White JSONCastlingRights `json:"white"`
	Black JSONCastlingRights `json:"black"`
}

// JSONCastlingRights is one side's castling rights.
type JSONCastlingRights struct {
	KingSide  bool `json:"kingSide"`
	QueenSide bool `json:"queenSide"`
}

// JSONMoveResult reports the outcome of a submitted move.
type JSONMoveResult struct {
	Valid    bool          `json:"valid"`
	Reason   string        `json:"reason,omitempty"`
	Snapshot *JSONSnapshot `json:"snapshot,omitempty"`
}

// JSONLegalMoves lists the legal moves from one square.
type JSONLegalMoves struct {
	From         string   `json:"from"`
	Destinations []string `json:"destinations"`
	Moves        []string `json:"moves"`
}

// JSONClassification is one batch classification result.
type JSONClassification struct {
	Index      int    `json:"index"`
	FEN        string `json:"fen"`
	State      string `json:"state,omitempty"`
	ToMove     string `json:"toMove,omitempty"`
	InCheck    bool   `json:"inCheck"`
	LegalMoves int    `json:"legalMoves"`
	Error      string `json:"error,omitempty"`
}

// SnapshotToJSON converts an engine snapshot to JSON format.
func SnapshotToJSON(s engine.Snapshot, fen string) *JSONSnapshot {
	js := &JSONSnapshot{
		Squares: make([]JSONSquare, 0, len(s.Squares)),
		ToMove:  colourName(s.ToMove),
		State:   s.State.String(),
		InCheck: s.InCheck,
		Castling: JSONCastling{
			White: castlingToJSON(s.WhiteCastling),
			Black: castlingToJSON(s.BlackCastling),
		},
		FEN: fen,
	}
	if !s.EnPassantTarget.IsNull() {
		js.EnPassant = s.EnPassantTarget.String()
	}
	for _, sq := range s.Squares {
		js.Squares = append(js.Squares, squareToJSON(sq))
	}
	return js
}

// ControllerToJSON snapshots the controller's live game.
func ControllerToJSON(c *engine.Controller) *JSONSnapshot {
	return SnapshotToJSON(c.Snapshot(), c.FEN())
}

// MoveResultToJSON reports a submitted move. A nil err means the move was
// accepted and snapshot shows the new position. A rejected move carries the
// engine's reason, or the error text when there is none.
func MoveResultToJSON(snapshot *JSONSnapshot, err error) *JSONMoveResult {
	if err == nil {
		return &JSONMoveResult{Valid: true, Snapshot: snapshot}
	}
	result := &JSONMoveResult{Reason: err.Error(), Snapshot: snapshot}
	var moveErr *chesserrors.MoveError
	if errors.As(err, &moveErr) && moveErr.Reason != "" {
		result.Reason = moveErr.Reason
	}
	return result
}

// LegalMovesToJSON lists moves from one square. Destinations hold each
// target square once even when a pawn can promote to several kinds.
func LegalMovesToJSON(from chess.Coordinate, moves []chess.MoveRequest) *JSONLegalMoves {
	jl := &JSONLegalMoves{
		From:         from.String(),
		Destinations: []string{},
		Moves:        make([]string, 0, len(moves)),
	}
	seen := make(map[chess.Coordinate]bool, len(moves))
	for _, m := range moves {
		jl.Moves = append(jl.Moves, m.String())
		if !seen[m.Destination] {
			seen[m.Destination] = true
			jl.Destinations = append(jl.Destinations, m.Destination.String())
		}
	}
	return jl
}

// ClassificationToJSON converts a worker result to JSON format.
func ClassificationToJSON(r worker.Result) *JSONClassification {
	jc := &JSONClassification{Index: r.Index, FEN: r.FEN}
	if r.Err != nil {
		jc.Error = r.Err.Error()
		return jc
	}
	c := r.Classification
	jc.State = c.State.String()
	jc.ToMove = colourName(c.ToMove)
	jc.InCheck = c.InCheck
	jc.LegalMoves = c.LegalMoves
	return jc
}

func squareToJSON(sq engine.Square) JSONSquare {
	js := JSONSquare{Square: sq.Coordinate.String()}
	if sq.Piece != nil {
		js.Piece = string(sq.Piece.Letter())
		js.Colour = colourName(sq.Piece.Colour)
		js.Kind = strings.ToLower(sq.Piece.Kind.String())
	}
	return js
}

func castlingToJSON(r chess.CastlingRights) JSONCastlingRights {
	return JSONCastlingRights{KingSide: r.KingSide, QueenSide: r.QueenSide}
}

// colourName returns "white" or "black".
func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}
