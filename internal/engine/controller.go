package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is one entry of a board snapshot. Piece is nil for an empty square.
type Square struct {
	Coordinate chess.Coordinate
	Piece      *chess.Piece
}

// Snapshot is everything a presentation layer needs to draw a position.
type Snapshot struct {
	Squares         []Square // all 64 squares, A1 to H8 row by row
	ToMove          chess.Colour
	State           chess.GameState
	InCheck         bool
	EnPassantTarget chess.Coordinate
	WhiteCastling   chess.CastlingRights
	BlackCastling   chess.CastlingRights
}

// Controller owns one live game and is the only way to change it.
// It is not safe for concurrent use.
type Controller struct {
	cfg   *config.Config
	rules Rules
	game  *chess.Game
}

// NewController creates a controller for a game in the standard starting
// position.
func NewController(cfg *config.Config) *Controller {
	return NewControllerWithGame(cfg, chess.NewGame())
}

// NewControllerWithGame creates a controller that takes ownership of g.
// The game state is recomputed under the configured rules.
func NewControllerWithGame(cfg *config.Config, g *chess.Game) *Controller {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	c := &Controller{cfg: cfg, rules: NewRules(cfg.Rules), game: g}
	c.game.State = c.rules.CalculateGameState(c.game)
	return c
}

// NewControllerFromFEN creates a controller for the position in fen.
func NewControllerFromFEN(cfg *config.Config, fen string) (*Controller, error) {
	g, err := NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewControllerWithGame(cfg, g), nil
}

// Rules returns the rules the controller judges moves by.
func (c *Controller) Rules() Rules {
	return c.rules
}

// SubmitMove plays m for the side to move. An illegal move returns a
// *errors.MoveError carrying the reason and leaves the game unchanged.
func (c *Controller) SubmitMove(m chess.MoveRequest) error {
	mover := c.game.ToMove
	v := c.rules.Play(c.game, m)
	if !v.Valid {
		sentinel := errors.ErrIllegalMove
		if v.Reason == ReasonGameOver {
			sentinel = errors.ErrGameOver
		}
		c.cfg.Logf(2, "%s: rejected %s: %s", mover, m, v.Reason)
		return &errors.MoveError{
			Err:         sentinel,
			Source:      m.Source.String(),
			Destination: m.Destination.String(),
			Reason:      v.Reason,
		}
	}

	c.cfg.Logf(2, "%s: played %s", mover, m)
	if c.game.State.IsTerminal() {
		c.cfg.Logf(1, "game over: %s", c.game.State)
	}
	return nil
}

// ManualSetup replaces the game with the given placements and side to
// move. Later placements on the same square overwrite earlier ones. The
// position must have exactly one king per colour; otherwise a
// *errors.PositionError is returned and the current game is kept.
// Castling rights are granted for kings and rooks on their home squares.
func (c *Controller) ManualSetup(placements []chess.Placement, toMove chess.Colour) error {
	pending := chess.NewEmptyGame()
	for _, p := range placements {
		pending.Board.Insert(p.Square, p.Piece)
	}
	if err := checkKings(pending.Board); err != nil {
		c.cfg.Logf(1, "manual setup rejected: %v", err)
		return err
	}

	pending.White, pending.Black = c.game.White, c.game.Black
	pending.ToMove = toMove
	pending.WhiteCastling = deriveCastlingRights(pending.Board, chess.White)
	pending.BlackCastling = deriveCastlingRights(pending.Board, chess.Black)
	pending.State = c.rules.CalculateGameState(pending)

	c.game = pending
	c.cfg.Logf(2, "manual setup accepted: %d pieces, %s to move, state %s",
		pending.Board.Len(), toMove, pending.State)
	return nil
}

// State returns the current game state.
func (c *Controller) State() chess.GameState {
	return c.game.State
}

// ActivePlayer returns the player whose turn it is.
func (c *Controller) ActivePlayer() chess.Player {
	return c.game.ActivePlayer()
}

// InCheck reports whether the side to move is in check.
func (c *Controller) InCheck() bool {
	return c.rules.InCheck(c.game, c.game.ToMove)
}

// LegalMovesFrom returns the legal moves of the piece on source, or nil
// if it is empty or belongs to the side not on move.
func (c *Controller) LegalMovesFrom(source chess.Coordinate) []chess.MoveRequest {
	if c.game.State.IsTerminal() {
		return nil
	}
	return c.rules.LegalMovesFrom(c.game, source)
}

// LegalMoves returns every legal move of the side to move.
func (c *Controller) LegalMoves() []chess.MoveRequest {
	if c.game.State.IsTerminal() {
		return nil
	}
	return c.rules.LegalMoves(c.game, c.game.ToMove)
}

// Game returns a deep copy of the live game.
func (c *Controller) Game() *chess.Game {
	return c.game.Copy()
}

// FEN returns the current position in FEN.
func (c *Controller) FEN() string {
	return ToFEN(c.game)
}

// Snapshot returns the position for display.
func (c *Controller) Snapshot() Snapshot {
	return TakeSnapshot(c.rules, c.game)
}

// TakeSnapshot builds a snapshot of g.
func TakeSnapshot(r Rules, g *chess.Game) Snapshot {
	s := Snapshot{
		Squares:         make([]Square, 0, chess.BoardSize*chess.BoardSize),
		ToMove:          g.ToMove,
		State:           g.State,
		InCheck:         r.InCheck(g, g.ToMove),
		EnPassantTarget: g.EnPassantTarget,
		WhiteCastling:   g.WhiteCastling,
		BlackCastling:   g.BlackCastling,
	}
	for _, coord := range chess.AllCoordinates() {
		sq := Square{Coordinate: coord}
		if p, ok := g.Board.PieceAt(coord); ok {
			sq.Piece = &p
		}
		s.Squares = append(s.Squares, sq)
	}
	return s
}
