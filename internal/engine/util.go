package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// square returns the coordinate for indices known to be on the board.
func square(row, col int) chess.Coordinate {
	c, err := chess.NewCoordinate(row, col)
	if err != nil {
		panic(err)
	}
	return c
}
