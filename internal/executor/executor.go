package executor

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/dag"
	"github.com/specialistvlad/aarpublish/internal/task"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the pool size used when none is configured.
const DefaultWorkers = 4

// Executor runs registered tasks in dependency order.
type Executor struct {
	tasks      *task.Container
	graph      *dag.Graph
	numWorkers int
}

// New creates an executor over a frozen task container and its graph.
func New(tasks *task.Container, graph *dag.Graph, workers int) *Executor {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Executor{tasks: tasks, graph: graph, numWorkers: workers}
}

// run is the shared scheduling state of one Run call.
type run struct {
	mu        sync.Mutex
	pending   map[string]int
	remaining int
	ready     chan string
	done      chan struct{}
}

// Run executes the goals and everything they depend on.
func (e *Executor) Run(ctx context.Context, goals ...string) error {
	logger := ctxlog.FromContext(ctx)

	names, err := e.graph.Closure(goals...)
	if err != nil {
		return fmt.Errorf("cannot resolve goals %v: %w", goals, err)
	}
	if len(names) == 0 {
		logger.Info("Nothing to do.")
		return nil
	}

	selected := make(map[string]bool, len(names))
	for _, n := range names {
		selected[n] = true
	}

	r := &run{
		pending:   make(map[string]int, len(names)),
		remaining: len(names),
		ready:     make(chan string, len(names)),
		done:      make(chan struct{}),
	}
	rootCount := 0
	for _, n := range names {
		deps, err := e.graph.Dependencies(n)
		if err != nil {
			return err
		}
		r.pending[n] = len(deps)
		if len(deps) == 0 {
			r.ready <- n
			rootCount++
		}
	}
	logger.Debug("Found root tasks.", "count", rootCount, "total", len(names))

	eg, egCtx := errgroup.WithContext(ctx)
	logger.Debug("Starting worker pool.", "workers", e.numWorkers)
	for i := 0; i < e.numWorkers; i++ {
		workerID := i
		eg.Go(func() error {
			return e.worker(egCtx, r, selected, workerID)
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Error("Execution failed.", "error", err)
		return err
	}
	logger.Info("All tasks completed.", "count", len(names))
	return nil
}

// worker is the core processing loop for a single concurrent worker.
func (e *Executor) worker(ctx context.Context, r *run, selected map[string]bool, workerID int) error {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")
	defer logger.Debug("Worker finished.")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.done:
			return nil
		case name := <-r.ready:
			if err := e.execute(ctx, name); err != nil {
				return err
			}
			if err := e.complete(r, selected, name); err != nil {
				return err
			}
		}
	}
}

func (e *Executor) execute(ctx context.Context, name string) error {
	t, ok := e.tasks.Get(name)
	if !ok {
		return fmt.Errorf("task '%s' is not registered", name)
	}
	logger := ctxlog.FromContext(ctx).With("task", name)
	if t.Action == nil {
		logger.Debug("Task has no action.")
		return nil
	}

	logger.Info("▶️ Running task")
	if err := t.Action(ctx); err != nil {
		return fmt.Errorf("task '%s' failed: %w", name, err)
	}
	logger.Debug("Task finished.")
	return nil
}

// complete unlocks the dependents of a finished task.
func (e *Executor) complete(r *run, selected map[string]bool, name string) error {
	dependents, err := e.graph.Dependents(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range dependents {
		if !selected[d] {
			continue
		}
		r.pending[d]--
		if r.pending[d] == 0 {
			r.ready <- d
		}
	}
	r.remaining--
	if r.remaining == 0 {
		close(r.done)
	}
	return nil
}
