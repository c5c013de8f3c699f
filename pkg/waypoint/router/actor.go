package router

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/atomic"
)

// ErrActorClosed is returned once an Actor stopped accepting work.
var ErrActorClosed = errors.New("router actor closed")

// ErrActorRunning is returned by a second concurrent call to Run.
var ErrActorRunning = errors.New("router actor already running")

// Actor serialises access to a Tree. Every closure runs on the goroutine
// calling Run, in the order it was enqueued, so the tree keeps a single writer.
type Actor struct {
	tree    *Tree
	queue   chan func(*Tree)
	quit    chan struct{}
	once    sync.Once
	closed  atomic.Bool
	running atomic.Bool
}

// NewActor wraps tree. buffer sizes the queue; 0 makes Post wait for Run.
func NewActor(tree *Tree, buffer int) *Actor {
	return &Actor{
		tree:  tree,
		queue: make(chan func(*Tree), buffer),
		quit:  make(chan struct{}),
	}
}

// Run applies queued closures until ctx ends or Close is called.
// It returns nil after Close and ctx.Err() on cancellation. Either way the
// actor is closed when Run returns.
func (a *Actor) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrActorRunning
	}
	defer a.running.Store(false)
	defer a.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.quit:
			return nil
		case fn := <-a.queue:
			fn(a.tree)
		}
	}
}

// Do enqueues fn and waits until it ran.
func (a *Actor) Do(ctx context.Context, fn func(*Tree)) error {
	done := make(chan struct{})
	if err := a.enqueue(ctx, func(t *Tree) {
		defer close(done)
		fn(t)
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-a.quit:
		select {
		case <-done:
			return nil
		default:
			return ErrActorClosed
		}
	}
}

// Post enqueues fn without waiting for it to run.
func (a *Actor) Post(fn func(*Tree)) error {
	return a.enqueue(context.Background(), fn)
}

func (a *Actor) enqueue(ctx context.Context, fn func(*Tree)) error {
	if a.closed.Load() {
		return ErrActorClosed
	}
	select {
	case a.queue <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-a.quit:
		return ErrActorClosed
	}
}

// Close stops Run. Closures still queued are discarded.
// Pending and later Do and Post calls return ErrActorClosed.
func (a *Actor) Close() {
	a.once.Do(func() {
		a.closed.Store(true)
		close(a.quit)
	})
}

// Closed reports whether the actor stopped accepting work.
func (a *Actor) Closed() bool {
	return a.closed.Load()
}
