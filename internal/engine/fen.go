package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string using DefaultRules to
// compute its state.
func NewGameFromFEN(fen string) (*chess.Game, error) {
	return DefaultRules.NewGameFromFEN(fen)
}

// NewGameFromFEN creates a game from a FEN string. The position must have
// exactly one king per colour. The FEN en passant field names the skipped
// square; the game stores the square of the pawn that double-stepped.
// Clock fields are accepted but not kept.
func (r Rules) NewGameFromFEN(fen string) (*chess.Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	g := chess.NewEmptyGame()

	if err := parsePiecePositions(g.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := checkKings(g.Board); err != nil {
		return nil, fmt.Errorf("%q: %w: %w", parts[0], errors.ErrInvalidFEN, err)
	}
	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(g, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(g, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(parts); err != nil {
		return nil, err
	}

	g.State = r.CalculateGameState(g)
	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Expected: "8 ranks",
			Got:      strconv.Itoa(len(ranks)),
		}
	}

	for i, rank := range ranks {
		row := chess.MaxIndex - i
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			default:
				piece, err := chess.ParsePiece(byte(c))
				if err != nil {
					return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
				}
				if col > chess.MaxIndex {
					return fmt.Errorf("rank %d overflows: %w", row+1, errors.ErrInvalidFEN)
				}
				board.Insert(square(row, col), piece)
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", row+1, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// checkKings requires exactly one king per colour.
func checkKings(board *chess.Board) error {
	white := board.Count(chess.White, chess.King)
	black := board.Count(chess.Black, chess.King)
	if white != 1 || black != 1 {
		return &errors.PositionError{Err: errors.ErrInvalidPosition, WhiteKings: white, BlackKings: black}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *chess.Game, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.ToMove = chess.White
	case "b":
		g.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(g *chess.Game, parts []string) error {
	g.WhiteCastling = chess.CastlingRights{}
	g.BlackCastling = chess.CastlingRights{}

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			g.WhiteCastling.KingSide = true
		case 'Q':
			g.WhiteCastling.QueenSide = true
		case 'k':
			g.BlackCastling.KingSide = true
		case 'q':
			g.BlackCastling.QueenSide = true
		default:
			return fmt.Errorf("invalid castling flag %q: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant field and converts the skipped
// square to the square of the pawn that can be captured.
func parseEnPassant(g *chess.Game, parts []string) error {
	g.EnPassantTarget = chess.NullCoordinate
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	skipped, err := chess.ParseCoordinate(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square: %w: %w", errors.ErrInvalidFEN, err)
	}
	// The pawn that double-stepped belongs to the side not on move.
	pawnColour := g.ToMove.Opposite()
	target, ok := skipped.Offset(chess.Delta{Row: pawnColour.Forward()})
	if !ok || skipped.Row() != pawnColour.PawnRow()+pawnColour.Forward() {
		return fmt.Errorf("en passant square %s on wrong rank: %w", parts[3], errors.ErrInvalidFEN)
	}
	if p, ok := g.Board.PieceAt(target); !ok || p != (chess.Piece{Colour: pawnColour, Kind: chess.Pawn}) {
		return fmt.Errorf("en passant square %s has no %s pawn in front of it: %w",
			parts[3], strings.ToLower(pawnColour.String()), errors.ErrInvalidFEN)
	}
	g.EnPassantTarget = target
	return nil
}

// parseClocks checks the halfmove clock and fullmove number fields.
func parseClocks(parts []string) error {
	for _, field := range parts[min(len(parts), 4):] {
		if _, err := strconv.Atoi(field); err != nil {
			return fmt.Errorf("invalid clock field %q: %w", field, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// ToFEN converts a game to a FEN string. Clock fields are always "0 1".
func ToFEN(g *chess.Game) string {
	var sb strings.Builder

	writePiecePositions(&sb, g.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, g)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, g)
	sb.WriteByte(' ')
	writeEnPassant(&sb, g)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.MaxIndex; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.PieceAt(square(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, g *chess.Game) {
	if g.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, g *chess.Game) {
	hasCastling := false
	if g.WhiteCastling.KingSide {
		sb.WriteByte('K')
		hasCastling = true
	}
	if g.WhiteCastling.QueenSide {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if g.BlackCastling.KingSide {
		sb.WriteByte('k')
		hasCastling = true
	}
	if g.BlackCastling.QueenSide {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the skipped square behind the en passant target.
func writeEnPassant(sb *strings.Builder, g *chess.Game) {
	if g.EnPassantTarget.IsNull() {
		sb.WriteByte('-')
		return
	}
	pawnColour := g.ToMove.Opposite()
	if p, ok := g.Board.PieceAt(g.EnPassantTarget); ok {
		pawnColour = p.Colour
	}
	skipped, ok := g.EnPassantTarget.Offset(chess.Delta{Row: -pawnColour.Forward()})
	if !ok {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(strings.ToLower(skipped.String()))
}
