package replay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

var (
	ErrUnknownOp    = errors.New("unknown op")
	ErrUnknownKind  = errors.New("unknown destination kind")
	ErrUnknownNode  = errors.New("unknown node alias")
	ErrAliasInUse   = errors.New("node alias already in use")
	ErrMissingField = errors.New("missing field")
)

// RootAlias is the alias of the tree's root.
const RootAlias = "root"

// Fired records a completion that ran during a step.
type Fired struct {
	Step   int
	Name   string
	Result any
}

// Engine applies steps to one tree.
type Engine struct {
	tree  *router.Tree
	nodes map[string]*router.Router
	fired []Fired
	step  int
}

// NewEngine wraps tree. Its root is reachable as "root".
func NewEngine(tree *router.Tree) *Engine {
	return &Engine{
		tree:  tree,
		nodes: map[string]*router.Router{RootAlias: tree.Root()},
	}
}

// Tree returns the tree the engine drives.
func (e *Engine) Tree() *router.Tree {
	return e.tree
}

// Node resolves an alias.
func (e *Engine) Node(alias string) (*router.Router, error) {
	if alias == "" {
		alias = RootAlias
	}
	r, ok := e.nodes[alias]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, alias)
	}
	return r, nil
}

// Fired returns every completion that ran so far, in order.
func (e *Engine) Fired() []Fired {
	return e.fired
}

// Run applies all steps. after, when non-nil, is called after each step with
// the completions that step fired.
func (e *Engine) Run(s Script, after func(index int, step Step, fired []Fired) error) error {
	for i, step := range s.Steps {
		start := len(e.fired)
		if err := e.Apply(i, step); err != nil {
			return err
		}
		if after != nil {
			if err := after(i, step, e.fired[start:]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Apply runs one step.
func (e *Engine) Apply(index int, step Step) error {
	e.step = index
	if err := e.apply(step); err != nil {
		return fmt.Errorf("step %d (%s): %w", index+1, step.Op, err)
	}
	return nil
}

func (e *Engine) apply(step Step) error {
	r, err := e.Node(step.Node)
	if err != nil {
		return err
	}

	switch step.Op {
	case OpChild:
		if step.As == "" {
			return fmt.Errorf("%w: as", ErrMissingField)
		}
		if _, taken := e.nodes[step.As]; taken {
			return fmt.Errorf("%w: %q", ErrAliasInUse, step.As)
		}
		e.nodes[step.As] = r.ChildRouter(router.Tab(step.Tab))
	case OpActivate:
		r.SetActive()
	case OpResign:
		r.ResignActive()
	case OpRelease:
		r.Release()
		e.forgetReleased()
	case OpNavigate, OpDeepLink:
		d, err := destination(step)
		if err != nil {
			return err
		}
		if step.Op == OpDeepLink {
			r.DeepLinkOpen(d)
		} else {
			r.Navigate(d)
		}
	case OpTab:
		r.SelectTab(router.Tab(step.Tab))
	case OpPush:
		r.Push(router.Push{Tag: step.Tag, Instance: step.Instance}, e.completion(step))
	case OpSheet:
		r.PresentSheet(router.HalfSheet{ID: step.ID}, e.completion(step))
	case OpFullScreen:
		r.PresentFullScreen(router.FullScreen{ID: step.ID}, e.completion(step))
	case OpAlert:
		r.PresentAlert(alert(step), e.completion(step))
	case OpDismiss:
		r.Dismiss(result(step))
	case OpPop:
		r.Pop(result(step))
	case OpPopToRoot:
		r.PopToRoot(result(step))
	case OpPopUntil:
		r.PopUntil(router.Push{Tag: step.Tag}, result(step))
	case OpPopUntilEntry:
		r.PopUntilEntry(router.Push{Tag: step.Tag, Instance: step.Instance}, result(step))
	case OpBack:
		path := make([]router.Push, len(step.Path))
		for i, entry := range step.Path {
			tag, instance, _ := strings.Cut(entry, "#")
			path[i] = router.Push{Tag: tag, Instance: instance}
		}
		r.SetStackPath(path)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	return nil
}

// completion reports under step.Notify; steps without it attach none.
func (e *Engine) completion(step Step) router.CompletionFunc {
	if step.Notify == "" {
		return nil
	}
	name := step.Notify
	return func(res any) {
		e.fired = append(e.fired, Fired{Step: e.step, Name: name, Result: res})
	}
}

func (e *Engine) forgetReleased() {
	for alias, r := range e.nodes {
		if r.Released() {
			delete(e.nodes, alias)
		}
	}
}

func destination(step Step) (router.Destination, error) {
	switch step.Kind {
	case KindTab:
		return router.Tab(step.Tab), nil
	case KindPush:
		return router.Push{Tag: step.Tag, Instance: step.Instance}, nil
	case KindSheet:
		return router.HalfSheet{ID: step.ID}, nil
	case KindFullScreen:
		return router.FullScreen{ID: step.ID}, nil
	case KindAlert:
		return alert(step), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, step.Kind)
	}
}

func alert(step Step) router.Alert {
	var primary, secondary *router.AlertAction
	if step.Primary != "" {
		primary = &router.AlertAction{Title: step.Primary}
	}
	if step.Secondary != "" {
		secondary = &router.AlertAction{Title: step.Secondary}
	}
	return router.NewAlert(step.Message, primary, secondary)
}

func result(step Step) any {
	if step.Result == "" {
		return nil
	}
	return step.Result
}
