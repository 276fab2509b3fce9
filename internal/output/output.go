// Package output formats positions, moves and classification results as
// text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoves writes moves separated by spaces, wrapping at maxLineLength.
func WriteMoves(w io.Writer, moves []chess.MoveRequest, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
}

// WriteBoard writes a diagram of the snapshot, rank 8 first, followed by
// the side to move and the game state.
func WriteBoard(w io.Writer, s engine.Snapshot) {
	letters := make(map[chess.Coordinate]byte, len(s.Squares))
	for _, sq := range s.Squares {
		if sq.Piece != nil {
			letters[sq.Coordinate] = sq.Piece.Letter()
		}
	}

	for row := chess.MaxIndex; row >= 0; row-- {
		var sb strings.Builder
		sb.WriteByte(byte(chess.RankBase + row))
		sb.WriteByte(' ')
		for col := 0; col < chess.BoardSize; col++ {
			c, _ := chess.NewCoordinate(row, col)
			letter, ok := letters[c]
			if !ok {
				letter = '.'
			}
			sb.WriteByte(' ')
			sb.WriteByte(letter)
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w, "   A B C D E F G H")

	status := fmt.Sprintf("%s to move, %s", s.ToMove, s.State)
	if s.InCheck {
		status += ", check"
	}
	fmt.Fprintln(w, status)
}

// FormatClassification returns a one-line, tab-separated text form of a
// classification result.
func FormatClassification(r worker.Result) string {
	if r.Err != nil {
		return fmt.Sprintf("%d\terror\t%v\t%s", r.Index+1, r.Err, r.FEN)
	}
	c := r.Classification
	check := "-"
	if c.InCheck {
		check = "check"
	}
	return fmt.Sprintf("%d\t%s\t%s\t%s\t%d\t%s",
		r.Index+1, c.State, c.ToMove, check, c.LegalMoves, r.FEN)
}
