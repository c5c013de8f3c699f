package router

import (
	"log/slog"

	"github.com/google/uuid"
)

// NodeID addresses a node in its tree's arena. IDs are never reused.
type NodeID int

// NoNode is the parent key of the root.
const NoNode NodeID = -1

// Config configures a Tree.
type Config struct {
	// Logger receives debug lines for every operation. Nil discards them.
	Logger *slog.Logger
	// ReplacePolicy applies when a presentation lands on an occupied slot.
	ReplacePolicy ReplacePolicy
	// OnPolicyError is called with a *ReplacedError when ReplaceReject refuses
	// a presentation. May be nil.
	OnPolicyError func(error)
}

// Tree owns every Router node of one navigation hierarchy.
//
// Nodes live in an arena and refer to their parent by NodeID, so no node
// keeps another alive. The tree performs all cross-node effects: activation,
// tab selection and teardown.
//
// A Tree is not safe for concurrent use; wrap it in an Actor when more than
// one goroutine navigates.
type Tree struct {
	cfg    Config
	logger *slog.Logger
	nodes  []*Router
	live   int
	active NodeID
}

// NewTree creates a tree holding an active root at level 0.
func NewTree(cfg Config) *Tree {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	t := &Tree{
		cfg:    cfg,
		logger: logger,
	}
	root := t.add(0, NoTab, NoNode)
	root.active = true
	t.active = root.key
	t.logger.Debug("router tree created", "root", root.String(), "replace_policy", cfg.ReplacePolicy.String())
	return t
}

func (t *Tree) add(level int, tab Tab, parent NodeID) *Router {
	r := &Router{
		tree:   t,
		key:    NodeID(len(t.nodes)),
		id:     uuid.New(),
		level:  level,
		tab:    tab,
		parent: parent,
		stack:  NewStack(),
	}
	t.nodes = append(t.nodes, r)
	t.live++
	return r
}

// Root returns the level 0 node.
func (t *Tree) Root() *Router {
	return t.nodes[0]
}

// Lookup returns the live node with the given id, or nil.
func (t *Tree) Lookup(id NodeID) *Router {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Active returns the single active node.
func (t *Tree) Active() *Router {
	return t.Lookup(t.active)
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return t.live
}

// Walk visits live nodes in creation order, parents before children,
// until fn returns false.
func (t *Tree) Walk(fn func(*Router) bool) {
	for _, r := range t.nodes {
		if r == nil {
			continue
		}
		if !fn(r) {
			return
		}
	}
}

// Children returns the live direct children of id in creation order.
func (t *Tree) Children(id NodeID) []*Router {
	var out []*Router
	for _, r := range t.nodes {
		if r != nil && r.parent == id {
			out = append(out, r)
		}
	}
	return out
}

// activate makes id the only active node.
func (t *Tree) activate(id NodeID) {
	if prev := t.Lookup(t.active); prev != nil && prev.key != id {
		prev.active = false
		t.logger.Debug("resign active", "router", prev.String())
	}
	next := t.nodes[id]
	next.active = true
	t.active = id
	t.logger.Debug("set active", "router", next.String())
}

// resign clears id's flag. When id held activity it falls back to the
// parent. The root never resigns.
func (t *Tree) resign(id NodeID) {
	r := t.nodes[id]
	if r.parent == NoNode {
		t.logger.Debug("root keeps active flag", "router", r.String())
		return
	}
	wasActive := r.active
	r.active = false
	t.logger.Debug("resign active", "router", r.String())
	if wasActive && t.active == id {
		t.activate(t.parentOf(r))
	}
}

// parentOf returns the key activity falls back to when r leaves the screen.
// Releasing a node releases its subtree, so a live node's parent is live.
func (t *Tree) parentOf(r *Router) NodeID {
	if r.parent == NoNode || t.nodes[r.parent] == nil {
		return 0
	}
	return r.parent
}

// selectTab sets the root's selected tab and resets every non-root node on
// the path from the caller up to the root.
func (t *Tree) selectTab(from *Router, tab Tab) {
	root := t.Root()
	root.selectedTab = tab
	t.logger.Debug("select tab", "router", root.String(), "tab", tab.String(), "requested_by", from.String())

	for r := from; r != nil && r.parent != NoNode; r = t.Lookup(r.parent) {
		r.resetContent()
	}
}

// release tears down id and its subtree. Pending completions are dropped.
func (t *Tree) release(id NodeID) {
	r := t.nodes[id]
	if r.parent == NoNode {
		t.logger.Debug("root cannot be released", "router", r.String())
		return
	}

	activeReleased := false
	var drop func(n *Router)
	drop = func(n *Router) {
		for _, child := range t.Children(n.key) {
			drop(child)
		}
		if n.key == t.active {
			activeReleased = true
		}
		n.resetContent()
		n.active = false
		n.released = true
		t.nodes[n.key] = nil
		t.live--
		t.logger.Debug("router released", "router", n.String())
	}
	drop(r)

	if activeReleased {
		t.activate(t.parentOf(r))
	}
}

// replaced applies the replace policy to the completion a presentation displaced.
func (t *Tree) replaced(r *Router, kind SlotKind, prev *Completion) {
	switch t.cfg.ReplacePolicy {
	case ReplaceResolve:
		t.logger.Debug("resolving replaced presentation", "router", r.String(), "slot", kind)
		prev.Fire(nil)
	default:
		if !prev.Spent() {
			t.logger.Warn("replaced presentation dropped its completion", "router", r.String(), "slot", kind)
		}
		prev.Drop()
	}
}

// admit reports whether a presentation may overwrite an occupied slot.
func (t *Tree) admit(r *Router, kind SlotKind) bool {
	if t.cfg.ReplacePolicy != ReplaceReject {
		return true
	}
	err := &ReplacedError{Node: r.String(), Slot: kind}
	t.logger.Error("presentation rejected", "router", r.String(), "slot", kind, "error", err)
	if t.cfg.OnPolicyError != nil {
		t.cfg.OnPolicyError(err)
	}
	return false
}
