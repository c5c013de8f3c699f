// Package replay applies scripted navigation steps to a router tree. Scripts
// are TOML files; each [[step]] names an operation and the node alias it
// targets. The root is always aliased "root".
package replay

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Op names a script operation.
type Op string

const (
	OpChild         Op = "child"
	OpActivate      Op = "activate"
	OpResign        Op = "resign"
	OpRelease       Op = "release"
	OpNavigate      Op = "navigate"
	OpDeepLink      Op = "deeplink"
	OpTab           Op = "tab"
	OpPush          Op = "push"
	OpSheet         Op = "sheet"
	OpFullScreen    Op = "fullscreen"
	OpAlert         Op = "alert"
	OpDismiss       Op = "dismiss"
	OpPop           Op = "pop"
	OpPopToRoot     Op = "pop_to_root"
	OpPopUntil      Op = "pop_until"
	OpPopUntilEntry Op = "pop_until_entry"
	OpBack          Op = "back"
)

// Kind names a destination variant for navigate and deeplink steps.
type Kind string

const (
	KindTab        Kind = "tab"
	KindPush       Kind = "push"
	KindSheet      Kind = "sheet"
	KindFullScreen Kind = "fullscreen"
	KindAlert      Kind = "alert"
)

// Script is a decoded replay file.
type Script struct {
	Name  string `toml:"name"`
	Steps []Step `toml:"step"`
}

// Step is one scripted operation.
//
//	[[step]]
//	op = "push"
//	node = "home"
//	tag = "formView"
//	notify = "form closed"
type Step struct {
	Op        Op       `toml:"op"`
	Node      string   `toml:"node"`
	As        string   `toml:"as"`        // child: alias of the new node
	Kind      Kind     `toml:"kind"`      // navigate, deeplink
	Tab       string   `toml:"tab"`       // child, tab
	Tag       string   `toml:"tag"`       // push, pop_until
	Instance  string   `toml:"instance"`  // push, pop_until_entry
	ID        string   `toml:"id"`        // sheet, fullscreen
	Message   string   `toml:"message"`   // alert
	Primary   string   `toml:"primary"`   // alert
	Secondary string   `toml:"secondary"` // alert
	Notify    string   `toml:"notify"`    // name reported when the completion fires
	Result    string   `toml:"result"`    // pop, dismiss
	Path      []string `toml:"path"`      // back: surviving entries as "tag" or "tag#instance"
}

// ParseScript decodes TOML text.
func ParseScript(data string) (Script, error) {
	var s Script
	if _, err := toml.Decode(data, &s); err != nil {
		return s, fmt.Errorf("decode script: %w", err)
	}
	return s, nil
}

// LoadScript decodes the TOML file at path.
func LoadScript(path string) (Script, error) {
	var s Script
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return s, fmt.Errorf("decode script %s: %w", path, err)
	}
	return s, nil
}
