package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

var testFENs = []string{
	engine.InitialFEN,
	"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	"k7/2Q5/1K6/8/8/8/8/8 b - - 0 1",
	"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
	"not a fen",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
}

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) Result {
		return Result{FEN: item.FEN, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) Result {
		atomic.AddInt32(counter, 1)
		return Result{FEN: item.FEN, Index: item.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(4, 10, countingProcessFunc(&processed))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{FEN: engine.InitialFEN, Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(2, 10, noopProcessFunc())
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
	pool.Close()
}

func TestPoolNumWorkers(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid workers", 4, 4},
		{"minimum workers", 1, 1},
		{"zero defaults to 1", 0, 1},
		{"negative defaults to 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.input, 10, noopProcessFunc())
			if got := pool.NumWorkers(); got != tt.expected {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.expected)
			}
		})
	}
}

func TestNewPoolWithOptions(t *testing.T) {
	pool := NewPoolWithOptions(noopProcessFunc())
	if pool.NumWorkers() != 1 || pool.bufferSize != 10 {
		t.Errorf("defaults = %d workers, buffer %d; want 1, 10", pool.NumWorkers(), pool.bufferSize)
	}

	pool = NewPoolWithOptions(noopProcessFunc(), WithWorkers(8), WithBufferSize(100))
	if pool.NumWorkers() != 8 || pool.bufferSize != 100 {
		t.Errorf("options = %d workers, buffer %d; want 8, 100", pool.NumWorkers(), pool.bufferSize)
	}

	pool = NewPoolWithOptions(noopProcessFunc(), WithWorkers(0), WithBufferSize(-5))
	if pool.NumWorkers() != 1 || pool.bufferSize != 10 {
		t.Errorf("invalid options = %d workers, buffer %d; want defaults", pool.NumWorkers(), pool.bufferSize)
	}
}

func TestRunPreservesOrder(t *testing.T) {
	slowEvens := func(item WorkItem) Result {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return Result{FEN: item.FEN, Index: item.Index}
	}

	fens := make([]string, 20)
	for i := range fens {
		fens[i] = engine.InitialFEN
	}
	results := NewPool(4, 5, slowEvens).Run(context.Background(), fens)

	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d", i, r.Index)
		}
	}
}

func TestClassifier(t *testing.T) {
	results := NewPool(1, 1, Classifier(engine.DefaultRules)).Run(context.Background(), testFENs)

	want := []chess.GameState{chess.InProgress, chess.BlackWin, chess.Stalemate, chess.Draw}
	for i, state := range want {
		if results[i].Err != nil {
			t.Fatalf("results[%d].Err = %v", i, results[i].Err)
		}
		if got := results[i].Classification.State; got != state {
			t.Errorf("results[%d].State = %v, want %v", i, got, state)
		}
	}
	if !errors.Is(results[4].Err, chesserrors.ErrInvalidFEN) {
		t.Errorf("results[4].Err = %v, want ErrInvalidFEN", results[4].Err)
	}
	if got := results[5].Classification.LegalMoves; got != 48 {
		t.Errorf("kiwipete legal moves = %d, want 48", got)
	}
}

func TestClassificationIndependentOfWorkerCount(t *testing.T) {
	single := NewPool(1, 1, Classifier(engine.DefaultRules)).Run(context.Background(), testFENs)
	for _, workers := range []int{2, 4, 8} {
		many := NewPool(workers, 3, Classifier(engine.DefaultRules)).Run(context.Background(), testFENs)
		for i := range single {
			if single[i].Classification != many[i].Classification || (single[i].Err == nil) != (many[i].Err == nil) {
				t.Errorf("workers=%d: results[%d] = %+v, want %+v", workers, i, many[i], single[i])
			}
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := NewPool(2, 2, noopProcessFunc()).Run(ctx, testFENs)
	if len(results) != len(testFENs) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(testFENs))
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
		if r.FEN != testFENs[i] {
			t.Errorf("results[%d].FEN = %q", i, r.FEN)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(8, 50, countingProcessFunc(&counter))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{FEN: engine.InitialFEN, Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}
