package chess

// GameState is the outcome tag of a game.
type GameState int

const (
	InProgress GameState = iota
	Draw
	Stalemate
	WhiteWin
	BlackWin
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Draw:
		return "Draw"
	case Stalemate:
		return "Stalemate"
	case WhiteWin:
		return "WhiteWin"
	case BlackWin:
		return "BlackWin"
	}
	return "Unknown"
}

// IsTerminal reports whether the game has finished.
func (s GameState) IsTerminal() bool {
	return s != InProgress
}

// WinFor returns the winning state for the given colour.
func WinFor(colour Colour) GameState {
	if colour == White {
		return WhiteWin
	}
	return BlackWin
}

// CastlingRights records which castling moves a colour may still make.
// Rights only ever go from true to false.
type CastlingRights struct {
	KingSide  bool
	QueenSide bool
}

// Player is a participant in a game.
type Player struct {
	Colour Colour
	Name   string
}

// Game is the full state of a chess game.
type Game struct {
	Board *Board

	White Player
	Black Player

	// Colour whose turn it is.
	ToMove Colour

	// Square of a pawn that has just advanced two squares, or NullCoordinate.
	EnPassantTarget Coordinate

	WhiteCastling CastlingRights
	BlackCastling CastlingRights

	State GameState
}

// NewGame creates a game in the standard starting position, White to move,
// with full castling rights.
func NewGame() *Game {
	g := NewEmptyGame()
	g.Board.SetupInitialPosition()
	g.WhiteCastling = CastlingRights{KingSide: true, QueenSide: true}
	g.BlackCastling = CastlingRights{KingSide: true, QueenSide: true}
	return g
}

// NewEmptyGame creates a game with an empty board and no castling rights.
func NewEmptyGame() *Game {
	return &Game{
		Board:  NewBoard(),
		White:  Player{Colour: White, Name: "White"},
		Black:  Player{Colour: Black, Name: "Black"},
		ToMove: White,
		State:  InProgress,
	}
}

// Copy creates a deep copy of the game. The copy shares no board storage
// with the original.
func (g *Game) Copy() *Game {
	newGame := &Game{}
	*newGame = *g
	newGame.Board = g.Board.Copy()
	return newGame
}

// ActivePlayer returns the player whose turn it is.
func (g *Game) ActivePlayer() Player {
	return g.PlayerFor(g.ToMove)
}

// Opponent returns the player who is not on move.
func (g *Game) Opponent() Player {
	return g.PlayerFor(g.ToMove.Opposite())
}

// PlayerFor returns the player of the given colour.
func (g *Game) PlayerFor(colour Colour) Player {
	if colour == White {
		return g.White
	}
	return g.Black
}

// Castling returns the castling rights of the given colour for update.
func (g *Game) Castling(colour Colour) *CastlingRights {
	if colour == White {
		return &g.WhiteCastling
	}
	return &g.BlackCastling
}
