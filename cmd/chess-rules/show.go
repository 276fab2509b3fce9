// show.go - Single position display
package main

import (
	"encoding/json"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// runShow writes a diagram of the position in fen followed by its legal
// moves, or the JSON snapshot when cfg.Batch.JSONFormat is set.
func runShow(cfg *config.Config, fen string, maxLineLength int) error {
	c, err := engine.NewControllerFromFEN(cfg, fen)
	if err != nil {
		return err
	}

	if cfg.Batch.JSONFormat {
		enc := json.NewEncoder(cfg.OutputFile)
		enc.SetIndent("", "  ")
		return enc.Encode(output.ControllerToJSON(c))
	}

	output.WriteBoard(cfg.OutputFile, c.Snapshot())
	moves := c.LegalMoves()
	fmt.Fprintf(cfg.OutputFile, "%d legal move(s)\n", len(moves))
	if len(moves) > 0 {
		output.WriteMoves(cfg.OutputFile, moves, maxLineLength)
	}
	return nil
}
