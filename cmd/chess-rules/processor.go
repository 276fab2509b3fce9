// processor.go - Batch FEN classification
package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// readFENs returns the positions in r, one per line. Blank lines and lines
// starting with # are skipped.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading positions")
	}
	return fens, nil
}

// classifyPositions classifies fens on a worker pool sized by cfg.Batch.
// Results come back in input order.
func classifyPositions(ctx context.Context, cfg *config.Config, fens []string) []worker.Result {
	numWorkers := cfg.Batch.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	rules := engine.NewRules(cfg.Rules)
	pool := worker.NewPool(numWorkers, cfg.Batch.BufferSize, worker.Classifier(rules))
	cfg.Logf(2, "classifying %d position(s) with %d worker(s)", len(fens), numWorkers)
	return pool.Run(ctx, fens)
}

// newResultWriter picks the text or JSON-lines writer for cfg.
func newResultWriter(cfg *config.Config) output.ResultWriter {
	if cfg.Batch.JSONFormat {
		return output.NewJSONLinesWriter(cfg.OutputFile)
	}
	return output.NewTextWriter(cfg.OutputFile)
}

// runClassify classifies every position in the named file ("-" for stdin)
// and writes the results to cfg.OutputFile. It returns the number of
// positions that could not be loaded.
func runClassify(ctx context.Context, cfg *config.Config, filename string) (int, error) {
	var in io.Reader = os.Stdin
	if filename != "-" {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return 0, errors.Wrapf(err, "opening %s", filename)
		}
		defer file.Close()
		in = file
	}
	return classifyStream(ctx, cfg, in)
}

// classifyStream does the work of runClassify on an open reader.
func classifyStream(ctx context.Context, cfg *config.Config, in io.Reader) (int, error) {
	fens, err := readFENs(in)
	if err != nil {
		return 0, err
	}

	results := classifyPositions(ctx, cfg, fens)
	if err := output.WriteAll(newResultWriter(cfg), results); err != nil {
		return 0, errors.Wrap(err, "writing results")
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	cfg.Logf(1, "%d position(s) classified, %d rejected.", len(results)-failed, failed)
	return failed, nil
}
