package router

import "go.uber.org/atomic"

// CompletionFunc receives the optional result of an undone navigation.
type CompletionFunc func(result any)

// Completion is a single-shot wrapper around a CompletionFunc.
// Fire invokes the callback at most once; Drop disarms it without invoking.
type Completion struct {
	fn   CompletionFunc
	done atomic.Bool
}

func newCompletion(fn CompletionFunc) *Completion {
	if fn == nil {
		return nil
	}
	return &Completion{fn: fn}
}

// Fire invokes the callback with result unless it already fired or was dropped.
// Reports whether the callback ran. Safe on a nil receiver.
func (c *Completion) Fire(result any) bool {
	if c == nil || !c.done.CompareAndSwap(false, true) {
		return false
	}
	c.fn(result)
	return true
}

// Drop disarms the completion so that it never fires.
func (c *Completion) Drop() {
	if c == nil {
		return
	}
	c.done.Store(true)
}

// Spent reports whether the completion fired or was dropped.
func (c *Completion) Spent() bool {
	return c == nil || c.done.Load()
}
