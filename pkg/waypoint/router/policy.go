package router

import (
	"errors"
	"fmt"
	"strings"
)

// ReplacePolicy decides what happens when a presentation lands on a slot that
// is already occupied.
type ReplacePolicy int

const (
	// ReplaceDrop replaces the old presentation and drops its completion.
	// A warning is logged.
	ReplaceDrop ReplacePolicy = iota
	// ReplaceReject keeps the old presentation and refuses the new one.
	// ErrPresentationReplaced is reported through Config.OnPolicyError.
	ReplaceReject
	// ReplaceResolve fires the old completion with a nil result, then replaces it.
	ReplaceResolve
)

// ErrPresentationReplaced is reported when ReplaceReject refuses a presentation.
var ErrPresentationReplaced = errors.New("presentation slot already occupied")

func (p ReplacePolicy) String() string {
	switch p {
	case ReplaceDrop:
		return "drop"
	case ReplaceReject:
		return "reject"
	case ReplaceResolve:
		return "resolve"
	default:
		return fmt.Sprintf("ReplacePolicy(%d)", int(p))
	}
}

// ParseReplacePolicy maps "drop", "reject" or "resolve" to a policy.
// The empty string yields ReplaceDrop.
func ParseReplacePolicy(raw string) (ReplacePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "drop":
		return ReplaceDrop, nil
	case "reject", "fail":
		return ReplaceReject, nil
	case "resolve":
		return ReplaceResolve, nil
	default:
		return ReplaceDrop, fmt.Errorf("unknown replace policy %q", raw)
	}
}

// UnmarshalText lets policies be decoded from TOML and flags.
func (p *ReplacePolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseReplacePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (p ReplacePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// SlotKind names one of a node's presentation slots.
type SlotKind string

const (
	SlotSheet      SlotKind = "sheet"
	SlotFullScreen SlotKind = "fullScreen"
	SlotAlert      SlotKind = "alert"
)

// ReplacedError carries the node and slot a rejected presentation targeted.
type ReplacedError struct {
	Node string
	Slot SlotKind
}

func (e *ReplacedError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Node, e.Slot, ErrPresentationReplaced)
}

func (e *ReplacedError) Unwrap() error {
	return ErrPresentationReplaced
}
