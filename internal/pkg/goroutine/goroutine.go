// Package goroutine runs fire-and-forget work on a bounded set of goroutines
// that can be drained on shutdown.
package goroutine

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"github.com/shandysiswandi/eatelite/internal/pkg/stacktrace"
)

// DefaultMaxGoroutine is multiplied by NumCPU when NewManager receives a
// non-positive limit.
const DefaultMaxGoroutine int = 100

// DefaultTaskTimeout bounds a single task when no timeout is configured.
const DefaultTaskTimeout = 30 * time.Second

var (
	// ErrClosed is reported when a task is submitted after Wait.
	ErrClosed = errors.New("goroutine: manager is closed")
	// ErrSaturated is reported when every slot is busy.
	ErrSaturated = errors.New("goroutine: maximum goroutine limit reached")
)

// Manager runs tasks with a concurrency limit and collects their errors.
//
// Tasks outlive the request that scheduled them: each one receives a context
// that keeps the caller's values (trace span, correlation ID) but not its
// cancellation, bounded by the task timeout instead.
type Manager struct {
	timeout time.Duration
	sema    chan struct{}
	wg      sync.WaitGroup

	mu     sync.Mutex
	errs   []error
	closed bool
}

// NewManager creates a Manager allowing maxGoroutine concurrent tasks, each
// limited to timeout.
func NewManager(maxGoroutine int, timeout time.Duration) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = runtime.NumCPU() * DefaultMaxGoroutine
	}
	if timeout <= 0 {
		timeout = DefaultTaskTimeout
	}

	return &Manager{
		timeout: timeout,
		sema:    make(chan struct{}, maxGoroutine),
	}
}

// Go schedules f. It returns ErrClosed or ErrSaturated without running f when
// the task cannot be accepted; callers treat both as a dropped best-effort task.
func (g *Manager) Go(ctx context.Context, f func(ctx context.Context) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		slog.WarnContext(ctx, "goroutine manager is closed, skipping task")
		return ErrClosed
	}

	select {
	case g.sema <- struct{}{}:
	default:
		slog.WarnContext(ctx, "maximum goroutine limit reached, skipping task")
		return ErrSaturated
	}

	g.wg.Go(func() {
		defer func() { <-g.sema }()
		g.run(context.WithoutCancel(ctx), f)
	})

	return nil
}

func (g *Manager) run(ctx context.Context, f func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	defer func() {
		if rvr := recover(); rvr != nil {
			stack := debug.Stack()
			if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
				slog.ErrorContext(ctx, "panic occurred in goroutine", "because", rvr, "stack", paths)
			} else {
				slog.ErrorContext(ctx, "panic occurred in goroutine", "because", rvr, "stack", string(stack))
			}
		}
	}()

	if err := f(ctx); err != nil {
		g.mu.Lock()
		g.errs = append(g.errs, err)
		g.mu.Unlock()
	}
}

// Wait stops accepting tasks, blocks until running ones finish and returns
// their joined errors.
func (g *Manager) Wait() error {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}
