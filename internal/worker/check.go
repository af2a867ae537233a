package worker

import (
	"context"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/movement"
	"github.com/lgbarn/chess-rules-go/internal/snapshot"
)

// LoadSnapshot returns a ProcessFunc that restores the snapshot named by
// each item. The tables are shared read-only between workers.
func LoadSnapshot(tables *movement.Tables, rules engine.Rules) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		g, err := snapshot.LoadFile(item.Path, tables, rules)
		return ProcessResult{Index: item.Index, Path: item.Path, Game: g, Err: err}
	}
}

// CheckSnapshots runs process over paths with the given number of workers
// and returns one result per path, in input order. workers <= 0 means one
// per CPU. When ctx is cancelled the pool stops and paths not yet processed
// report ctx.Err().
func CheckSnapshots(ctx context.Context, paths []string, workers int, process ProcessFunc) []ProcessResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool := NewPoolWithOptions(process, WithWorkers(workers), WithBufferSize(len(paths)))
	pool.Start()

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-finished:
		}
	}()

	go func() {
		defer pool.Close()
		for i, path := range paths {
			if pool.IsStopped() {
				return
			}
			pool.Submit(WorkItem{Path: path, Index: i})
		}
	}()

	results := make([]ProcessResult, len(paths))
	done := make([]bool, len(paths))
	for r := range pool.Results() {
		results[r.Index] = r
		done[r.Index] = true
	}
	for i, ok := range done {
		if !ok {
			results[i] = ProcessResult{Index: i, Path: paths[i], Err: ctx.Err()}
		}
	}
	return results
}
