// Package render draws a router tree as styled text. It is the reference
// render collaborator: it only reads snapshots and never mutates nodes.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/locale"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

var (
	ColorActive = lipgloss.Color("#10B981")
	ColorMuted  = lipgloss.Color("#6B7280")
	ColorModal  = lipgloss.Color("#7C3AED")
	ColorAlert  = lipgloss.Color("#F59E0B")

	NodeStyle = lipgloss.NewStyle().Bold(true)

	ActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorActive)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
			Foreground(ColorModal)

	AlertStyle = lipgloss.NewStyle().
			Foreground(ColorAlert)
)

// DefaultMapping names destinations by kind and identity.
func DefaultMapping() router.Mapping[string] {
	return router.Mapping[string]{
		Tab: func(t router.Tab) string { return "tab " + t.String() },
		Push: func(p router.Push) string {
			if p.Instance != "" {
				return fmt.Sprintf("%s#%s", p.Tag, p.Instance)
			}
			return p.Tag
		},
		Sheet:      func(s router.HalfSheet) string { return "sheet " + s.ID },
		FullScreen: func(f router.FullScreen) string { return "fullScreen " + f.ID },
		Alert:      func(a router.Alert) string { return fmt.Sprintf("alert %q", a.Message) },
	}
}

// Text renders trees with a caller mapping. Localizer labels default alert
// actions; nil leaves them as "OK".
type Text struct {
	Mapping   router.Mapping[string]
	Localizer *locale.Localizer
	Indent    string
}

// NewText returns a renderer using DefaultMapping.
func NewText(localizer *locale.Localizer) *Text {
	return &Text{
		Mapping:   DefaultMapping(),
		Localizer: localizer,
		Indent:    "  ",
	}
}

// Tree renders every live node, children indented under their parent.
func (t *Text) Tree(tree *router.Tree) (string, error) {
	var b strings.Builder
	if err := t.node(&b, tree, tree.Root(), 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (t *Text) node(b *strings.Builder, tree *router.Tree, r *router.Router, depth int) error {
	if err := t.Node(b, r.Snapshot(), depth); err != nil {
		return err
	}
	for _, child := range tree.Children(r.Key()) {
		if err := t.node(b, tree, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Node writes one snapshot at the given depth.
func (t *Text) Node(b *strings.Builder, s router.Snapshot, depth int) error {
	pad := strings.Repeat(t.Indent, depth)

	header := NodeStyle.Render(fmt.Sprintf("#%d %s level=%d", s.Key, s.Tab, s.Level))
	if s.Active {
		header += " " + ActiveStyle.Render("[active]")
	}
	if s.Level == 0 && s.SelectedTab != router.NoTab {
		header += " " + MutedStyle.Render("selected="+string(s.SelectedTab))
	}
	fmt.Fprintf(b, "%s%s\n", pad, header)

	stack, err := t.Mapping.RenderStack(s)
	if err != nil {
		return err
	}
	if len(stack) > 0 {
		fmt.Fprintf(b, "%s%sstack: %s\n", pad, t.Indent, strings.Join(stack, " > "))
	}

	if s.Sheet != nil {
		if err := t.modal(b, pad, *s.Sheet, ModalStyle); err != nil {
			return err
		}
	}
	if s.FullScreen != nil {
		if err := t.modal(b, pad, *s.FullScreen, ModalStyle); err != nil {
			return err
		}
	}
	if s.Alert != nil {
		if err := t.modal(b, pad, *s.Alert, AlertStyle); err != nil {
			return err
		}
		fmt.Fprintf(b, "%s%s%sactions: %s\n", pad, t.Indent, t.Indent, strings.Join(t.ActionLabels(*s.Alert), " | "))
	}
	return nil
}

func (t *Text) modal(b *strings.Builder, pad string, d router.Destination, style lipgloss.Style) error {
	line, err := t.Mapping.Render(d)
	if err != nil {
		return err
	}
	fmt.Fprintf(b, "%s%s%s\n", pad, t.Indent, style.Render(line))
	return nil
}

// ActionLabels returns the button titles of an alert.
func (t *Text) ActionLabels(a router.Alert) []string {
	actions := a.Actions()
	labels := make([]string, 0, len(actions))
	for _, action := range actions {
		switch {
		case t.Localizer != nil:
			labels = append(labels, t.Localizer.ActionLabel(action))
		case action.Default || action.Title == "":
			labels = append(labels, "OK")
		default:
			labels = append(labels, action.Title)
		}
	}
	return labels
}
