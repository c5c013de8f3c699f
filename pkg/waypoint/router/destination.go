package router

import "github.com/google/uuid"

// Destination describes where to go. It is a closed set: Tab, Push,
// HalfSheet, FullScreen and Alert are the only implementations.
type Destination interface {
	isDestination()
}

// Tab identifies one of the fixed top-level destinations.
// The zero value means "no tab".
type Tab string

// NoTab is the empty tab identity.
const NoTab Tab = ""

func (t Tab) isDestination() {}

// String returns the tab name, or "No Tab" for the zero value.
func (t Tab) String() string {
	if t == NoTab {
		return "No Tab"
	}
	return string(t)
}

// Push is a destination placed on a node's back-navigable stack.
//
// Tag names the kind of screen. Two pushes are Equal when their tags match,
// whatever their payloads carry, so PopUntil treats every instance of a
// screen kind as the same entry. Callers that need to tell instances apart
// set Instance and use SameEntry / PopUntilEntry.
type Push struct {
	Tag      string
	Instance string
	Payload  any
}

func (p Push) isDestination() {}

// Equal reports whether both pushes share a tag. Payload and Instance are ignored.
func (p Push) Equal(other Push) bool {
	return p.Tag == other.Tag
}

// SameEntry reports whether both pushes share tag and instance.
func (p Push) SameEntry(other Push) bool {
	return p.Tag == other.Tag && p.Instance == other.Instance
}

// HalfSheet is a modal sheet presentation.
type HalfSheet struct {
	ID      string
	Payload any
}

func (s HalfSheet) isDestination() {}

// FullScreen is a modal full-screen cover.
type FullScreen struct {
	ID      string
	Payload any
}

func (f FullScreen) isDestination() {}

// AlertAction is a labeled alert button. Action may be nil.
type AlertAction struct {
	Title   string
	Action  func()
	Default bool // synthesized acknowledgement, Title is left to the renderer
}

// Alert surfaces a message with up to two actions. It never sits on a stack.
type Alert struct {
	ID        string
	Message   string
	Primary   *AlertAction
	Secondary *AlertAction
}

func (a Alert) isDestination() {}

// NewAlert builds an alert with a fresh id.
func NewAlert(message string, primary, secondary *AlertAction) Alert {
	return Alert{
		ID:        uuid.NewString(),
		Message:   message,
		Primary:   primary,
		Secondary: secondary,
	}
}

// Actions returns the buttons a renderer should show. With neither action set
// a single default acknowledgement is returned; it carries no result.
func (a Alert) Actions() []AlertAction {
	var actions []AlertAction
	if a.Primary != nil {
		actions = append(actions, *a.Primary)
	}
	if a.Secondary != nil {
		actions = append(actions, *a.Secondary)
	}
	if len(actions) == 0 {
		actions = append(actions, AlertAction{Default: true})
	}
	return actions
}
