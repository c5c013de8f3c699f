package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/locale"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/render"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

func TestTextTree(t *testing.T) {
	t.Parallel()

	tree := router.NewTree(router.Config{})
	tree.Root().SelectTab("home")
	home := tree.Root().ChildRouter("home")
	home.SetActive()
	home.Push(router.Push{Tag: "countrySelection"}, nil)
	home.Push(router.Push{Tag: "formView", Instance: "2"}, nil)
	home.PresentSheet(router.HalfSheet{ID: "languagePicker"}, nil)
	home.PresentAlert(router.NewAlert("Submission failed", nil, nil), nil)

	out, err := render.NewText(nil).Tree(tree)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "#0 No Tab level=0")
	assert.Contains(t, lines[0], "selected=home")
	assert.NotContains(t, lines[0], "[active]")
	assert.Contains(t, lines[1], "#1 home level=1")
	assert.Contains(t, lines[1], "[active]")
	assert.True(t, strings.HasPrefix(lines[1], "  "))
	assert.Contains(t, lines[2], "stack: countrySelection > formView#2")
	assert.Contains(t, lines[3], "sheet languagePicker")
	assert.Contains(t, lines[4], `alert "Submission failed"`)
	assert.Contains(t, lines[5], "actions: OK")
}

func TestActionLabelsLocalized(t *testing.T) {
	t.Parallel()

	l, err := locale.New("ar")
	require.NoError(t, err)

	text := render.NewText(l)
	alert := router.NewAlert("x", nil, nil)
	assert.Equal(t, []string{"حسناً"}, text.ActionLabels(alert))

	alert = router.NewAlert("x", &router.AlertAction{Title: "Retry"}, &router.AlertAction{Title: "Cancel"})
	assert.Equal(t, []string{"Retry", "Cancel"}, text.ActionLabels(alert))
}

func TestTextUnmappedVariant(t *testing.T) {
	t.Parallel()

	tree := router.NewTree(router.Config{})
	tree.Root().PresentFullScreen(router.FullScreen{ID: "camera"}, nil)

	text := render.NewText(nil)
	text.Mapping.FullScreen = nil

	_, err := text.Tree(tree)
	assert.ErrorIs(t, err, router.ErrUnmapped)
}
