// chess-rules serves chess games over HTTP and classifies chess positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/server"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := configFromFlags()
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *serve:
		if err := runServer(ctx, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *classifyFile != "":
		failed, err := runClassify(ctx, cfg, *classifyFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if failed > 0 {
			os.Exit(1)
		}
	case *showFEN != "":
		if err := runShow(cfg, *showFEN, *lineLength); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

// runServer serves until ctx is cancelled.
func runServer(ctx context.Context, cfg *config.Config) error {
	srv := server.New(cfg, session.NewManager(cfg))

	go func() {
		<-ctx.Done()
		cfg.Logf(1, "shutting down")
		srv.Shutdown() //nolint:errcheck,gosec // G104: best effort on exit
	}()

	return srv.Listen()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules -serve [options]\n")
	fmt.Fprintf(os.Stderr, "       chess-rules -classify positions.fen [options]\n")
	fmt.Fprintf(os.Stderr, "       chess-rules -show FEN [options]\n\n")
	fmt.Fprintf(os.Stderr, "A chess rules engine with an HTTP/websocket front end and a batch position classifier.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nClassification output columns (text):\n")
	fmt.Fprintf(os.Stderr, "  line  state  to-move  check  legal-moves  fen\n")
}
