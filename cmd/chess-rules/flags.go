// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Modes
	serve        = flag.Bool("serve", false, "Serve games over HTTP and websockets")
	classifyFile = flag.String("classify", "", "Classify the FEN positions in this file, one per line (- for stdin)")
	showFEN      = flag.String("show", "", "Print the board and legal moves of this FEN position")

	// Server options
	addr    = flag.String("addr", ":3000", "Listen address for -serve")
	origins = flag.String("origins", "*", "Allowed CORS origins for -serve")

	// Batch options
	workers    = flag.Int("workers", 0, "Number of classification workers (0 = number of CPUs)")
	bufferSize = flag.Int("buffer", 10, "Work queue size for -classify")
	jsonOutput = flag.Bool("J", false, "Write classification results as JSON lines")

	// Rules
	strictCastling = flag.Bool("strict", false, "Reject castling out of check or across attacked squares")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	lineLength = flag.Int("w", 80, "Maximum line length for -show move lists")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=silent, 1=summary, 2=running commentary")
	quiet      = flag.Bool("s", false, "Silent mode: no diagnostics")

	// Informational
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// configFromFlags builds the program configuration from the parsed flags.
func configFromFlags() *config.Config {
	level := *verbosity
	if *quiet {
		level = 0
	}
	return config.NewConfigBuilder().
		WithStrictCastling(*strictCastling).
		WithAddr(*addr).
		WithAllowOrigins(*origins).
		WithWorkers(*workers).
		WithBufferSize(*bufferSize).
		WithJSONOutput(*jsonOutput).
		WithVerbosity(level).
		Build()
}
