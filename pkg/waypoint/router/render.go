package router

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnmapped is returned when a Mapping has no function for a variant.
var ErrUnmapped = errors.New("no mapping for destination")

// Snapshot is the read side a renderer consumes. Stack carries the pushed
// destinations bottom to top, without completions.
type Snapshot struct {
	Key         NodeID
	Parent      NodeID
	ID          uuid.UUID
	Level       int
	Tab         Tab
	SelectedTab Tab
	Active      bool
	Stack       []Push
	Sheet       *HalfSheet
	FullScreen  *FullScreen
	Alert       *Alert
}

// Snapshot captures the node's current state.
func (r *Router) Snapshot() Snapshot {
	s := Snapshot{
		Key:         r.key,
		Parent:      r.parent,
		ID:          r.id,
		Level:       r.level,
		Tab:         r.tab,
		SelectedTab: r.selectedTab,
		Active:      r.active,
		Stack:       r.stack.Destinations(),
	}
	if d, ok := r.sheet.get(); ok {
		s.Sheet = &d
	}
	if d, ok := r.fullScreen.get(); ok {
		s.FullScreen = &d
	}
	if d, ok := r.alert.get(); ok {
		s.Alert = &d
	}
	return s
}

// Stack returns the pushed destinations bottom to top.
func (r *Router) Stack() []Push {
	return r.stack.Destinations()
}

// Sheet returns the presented sheet, if any.
func (r *Router) Sheet() (HalfSheet, bool) {
	return r.sheet.get()
}

// FullScreenCover returns the presented full-screen destination, if any.
func (r *Router) FullScreenCover() (FullScreen, bool) {
	return r.fullScreen.get()
}

// PresentedAlert returns the presented alert, if any.
func (r *Router) PresentedAlert() (Alert, bool) {
	return r.alert.get()
}

// Mapping turns destinations into caller content. Any field may be nil;
// rendering a variant without a function yields ErrUnmapped.
type Mapping[T any] struct {
	Tab        func(Tab) T
	Push       func(Push) T
	Sheet      func(HalfSheet) T
	FullScreen func(FullScreen) T
	Alert      func(Alert) T
}

// Render converts d with the matching function.
func (m Mapping[T]) Render(d Destination) (T, error) {
	var zero T
	switch v := d.(type) {
	case Tab:
		if m.Tab != nil {
			return m.Tab(v), nil
		}
	case Push:
		if m.Push != nil {
			return m.Push(v), nil
		}
	case HalfSheet:
		if m.Sheet != nil {
			return m.Sheet(v), nil
		}
	case FullScreen:
		if m.FullScreen != nil {
			return m.FullScreen(v), nil
		}
	case Alert:
		if m.Alert != nil {
			return m.Alert(v), nil
		}
	}
	return zero, fmt.Errorf("%w: %s", ErrUnmapped, destinationKind(d))
}

// RenderStack converts every stack entry of s, bottom to top.
func (m Mapping[T]) RenderStack(s Snapshot) ([]T, error) {
	out := make([]T, 0, len(s.Stack))
	for _, p := range s.Stack {
		v, err := m.Render(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
