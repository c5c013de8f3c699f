package router

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Router is one node of a navigation tree. It holds a back stack, one slot
// per modal kind (sheet, full-screen, alert) and an active flag.
//
// Routers are created by NewTree (the root) and ChildRouter. Operations on a
// released router are ignored.
type Router struct {
	tree   *Tree
	key    NodeID
	parent NodeID
	id     uuid.UUID

	level       int
	tab         Tab
	selectedTab Tab

	stack      *Stack
	sheet      slot[HalfSheet]
	fullScreen slot[FullScreen]
	alert      slot[Alert]

	active   bool
	released bool
}

// Key returns the node's arena key.
func (r *Router) Key() NodeID { return r.key }

// ParentKey returns the parent's arena key, or NoNode for the root.
func (r *Router) ParentKey() NodeID { return r.parent }

// ID returns the node's process-unique debugging id.
func (r *Router) ID() uuid.UUID { return r.id }

// Level returns the depth in the tree; the root is 0.
func (r *Router) Level() int { return r.level }

// TabIdentity returns the tab this node's subtree belongs to.
func (r *Router) TabIdentity() Tab { return r.tab }

// SelectedTab returns the selected tab. Only meaningful at level 0.
func (r *Router) SelectedTab() Tab { return r.selectedTab }

// IsActive reports whether this node is the one on screen.
func (r *Router) IsActive() bool { return r.active }

// Released reports whether the node was torn down.
func (r *Router) Released() bool { return r.released }

// Tree returns the tree owning this node.
func (r *Router) Tree() *Tree { return r.tree }

func (r *Router) String() string {
	return fmt.Sprintf("Router[%s - %s - Level: %d]", r.id.String()[:8], r.tab, r.level)
}

func (r *Router) logger() *slog.Logger {
	return r.tree.logger
}

func (r *Router) usable(op string) bool {
	if r.released {
		r.logger().Debug("ignoring operation on released router", "router", r.String(), "op", op)
		return false
	}
	return true
}

// ChildRouter creates a node one level deeper whose parent is r. An empty tab
// inherits r's tab identity. r itself is not modified.
//
// On a released r the returned node is already released: it is not part of
// the tree and ignores every operation.
func (r *Router) ChildRouter(tab Tab) *Router {
	if tab == NoTab {
		tab = r.tab
	}
	if !r.usable("childRouter") {
		return &Router{
			tree:     r.tree,
			key:      NoNode,
			parent:   r.key,
			id:       uuid.New(),
			level:    r.level + 1,
			tab:      tab,
			stack:    NewStack(),
			released: true,
		}
	}
	child := r.tree.add(r.level+1, tab, r.key)
	r.logger().Debug("child router created", "parent", r.String(), "router", child.String())
	return child
}

// SetActive makes r the only active node in its tree.
func (r *Router) SetActive() {
	if !r.usable("setActive") {
		return
	}
	r.tree.activate(r.key)
}

// ResignActive clears r's active flag. If r was active, its parent becomes
// active. The root never resigns.
func (r *Router) ResignActive() {
	if !r.usable("resignActive") {
		return
	}
	r.tree.resign(r.key)
}

// Release tears down r and its subtree when their container unmounts.
// Pending completions are dropped. Releasing the root does nothing.
func (r *Router) Release() {
	if !r.usable("release") {
		return
	}
	r.tree.release(r.key)
}

// Navigate dispatches on the destination variant.
func (r *Router) Navigate(to Destination) {
	switch d := to.(type) {
	case Tab:
		r.SelectTab(d)
	case Push:
		r.Push(d, nil)
	case HalfSheet:
		r.PresentSheet(d, nil)
	case FullScreen:
		r.PresentFullScreen(d, nil)
	case Alert:
		r.PresentAlert(d, nil)
	}
}

// SelectTab selects tab at the root. Below the root, r and its non-root
// ancestors also lose their stack and presentations, without completions.
func (r *Router) SelectTab(tab Tab) {
	if !r.usable("selectTab") {
		return
	}
	r.tree.selectTab(r, tab)
}

// Push appends d to the stack. completion fires when the entry is popped.
func (r *Router) Push(d Push, completion CompletionFunc) {
	if !r.usable("push") {
		return
	}
	r.stack.Push(d, newCompletion(completion))
	r.logger().Debug("push", "router", r.String(), "tag", d.Tag, "depth", r.stack.Len())
}

// PresentSheet shows d in the sheet slot.
func (r *Router) PresentSheet(d HalfSheet, completion CompletionFunc) {
	if !r.usable("presentSheet") {
		return
	}
	if r.sheet.occupied && !r.tree.admit(r, SlotSheet) {
		return
	}
	r.logger().Debug("present sheet", "router", r.String(), "sheet", d.ID)
	if prev, had := r.sheet.set(d, newCompletion(completion)); had {
		r.tree.replaced(r, SlotSheet, prev)
	}
}

// PresentFullScreen shows d in the full-screen slot.
func (r *Router) PresentFullScreen(d FullScreen, completion CompletionFunc) {
	if !r.usable("presentFullScreen") {
		return
	}
	if r.fullScreen.occupied && !r.tree.admit(r, SlotFullScreen) {
		return
	}
	r.logger().Debug("present full screen", "router", r.String(), "full_screen", d.ID)
	if prev, had := r.fullScreen.set(d, newCompletion(completion)); had {
		r.tree.replaced(r, SlotFullScreen, prev)
	}
}

// PresentAlert shows d in the alert slot.
func (r *Router) PresentAlert(d Alert, completion CompletionFunc) {
	if !r.usable("presentAlert") {
		return
	}
	if r.alert.occupied && !r.tree.admit(r, SlotAlert) {
		return
	}
	r.logger().Debug("present alert", "router", r.String(), "message", d.Message)
	if prev, had := r.alert.set(d, newCompletion(completion)); had {
		r.tree.replaced(r, SlotAlert, prev)
	}
}

// Dismiss clears every occupied slot, then fires their completions with
// result in the order sheet, full-screen, alert.
func (r *Router) Dismiss(result any) {
	if !r.usable("dismiss") {
		return
	}
	var fired []*Completion
	if c, ok := r.sheet.take(); ok {
		fired = append(fired, c)
	}
	if c, ok := r.fullScreen.take(); ok {
		fired = append(fired, c)
	}
	if c, ok := r.alert.take(); ok {
		fired = append(fired, c)
	}
	r.logger().Debug("dismiss", "router", r.String(), "cleared", len(fired))
	for _, c := range fired {
		c.Fire(result)
	}
}

// Pop removes the top entry and fires its completion with result.
// Does nothing on an empty stack.
func (r *Router) Pop(result any) {
	if !r.usable("pop") {
		return
	}
	entry := r.stack.Pop()
	if entry == nil {
		return
	}
	r.logger().Debug("pop", "router", r.String(), "tag", entry.Destination.Tag, "depth", r.stack.Len())
	entry.Completion.Fire(result)
}

// PopToRoot empties the stack, firing completions top to bottom.
func (r *Router) PopToRoot(result any) {
	if !r.usable("popToRoot") {
		return
	}
	r.popWhile(func(Push) bool { return true }, result)
}

// PopUntil pops entries until the top has target's tag. A missing target
// empties the stack.
func (r *Router) PopUntil(target Push, result any) {
	if !r.usable("popUntil") {
		return
	}
	r.popWhile(func(p Push) bool { return !p.Equal(target) }, result)
}

// PopUntilEntry is PopUntil matching on tag and instance.
func (r *Router) PopUntilEntry(target Push, result any) {
	if !r.usable("popUntilEntry") {
		return
	}
	r.popWhile(func(p Push) bool { return !p.SameEntry(target) }, result)
}

// popWhile removes entries from the top while cond holds, then fires the
// removed completions top to bottom.
func (r *Router) popWhile(cond func(Push) bool, result any) {
	var removed []*Completion
	for top := r.stack.Peek(); top != nil && cond(top.Destination); top = r.stack.Peek() {
		removed = append(removed, r.stack.Pop().Completion)
	}
	r.logger().Debug("pop entries", "router", r.String(), "removed", len(removed), "depth", r.stack.Len())
	for _, c := range removed {
		c.Fire(result)
	}
}

// SetStackPath reconciles the stack with the path a renderer reports after a
// system back gesture. Entries past the common prefix are popped (completions
// fire with nil, top to bottom); extra path entries are pushed without
// completions.
func (r *Router) SetStackPath(path []Push) {
	if !r.usable("setStackPath") {
		return
	}
	current := r.stack.Destinations()
	common := 0
	for common < len(current) && common < len(path) && current[common].SameEntry(path[common]) {
		common++
	}
	var removed []*Completion
	for r.stack.Len() > common {
		removed = append(removed, r.stack.Pop().Completion)
	}
	for _, p := range path[common:] {
		r.stack.Push(p, nil)
	}
	r.logger().Debug("stack path set", "router", r.String(), "removed", len(removed), "depth", r.stack.Len())
	for _, c := range removed {
		c.Fire(nil)
	}
}

// ClearSheet empties the sheet slot after an interactive dismissal.
// The completion is dropped.
func (r *Router) ClearSheet() {
	if r.usable("clearSheet") {
		r.sheet.discard()
	}
}

// ClearFullScreen empties the full-screen slot. The completion is dropped.
func (r *Router) ClearFullScreen() {
	if r.usable("clearFullScreen") {
		r.fullScreen.discard()
	}
}

// ClearAlert empties the alert slot after the user closed it and fires its
// completion with nil. Sheet and full-screen slots are left alone.
func (r *Router) ClearAlert() {
	if !r.usable("clearAlert") {
		return
	}
	c, ok := r.alert.take()
	if !ok {
		return
	}
	r.logger().Debug("alert closed", "router", r.String())
	c.Fire(nil)
}

func (r *Router) resetContent() {
	r.stack.Clear()
	r.sheet.discard()
	r.fullScreen.discard()
	r.alert.discard()
	r.logger().Debug("content reset", "router", r.String())
}
