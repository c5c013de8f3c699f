package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/waypoint/internal/replay"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
)

func TestRunScript(t *testing.T) {
	t.Parallel()

	session, err := waypoint.Init(waypoint.Options{Language: "en"})
	require.NoError(t, err)

	script, err := replay.ParseScript(`
[[step]]
op = "child"
as = "home"
tab = "home"

[[step]]
op = "push"
node = "home"
tag = "formView"
notify = "form"

[[step]]
op = "pop"
node = "home"
result = "saved"
`)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runScript(&out, session, script, false))

	assert.Contains(t, out.String(), "step 1: child root")
	assert.Contains(t, out.String(), "stack: formView")
	assert.Contains(t, out.String(), "completion form fired with saved")

	var final bytes.Buffer
	require.NoError(t, runScript(&final, session, replay.Script{}, true))
	assert.Contains(t, final.String(), "#1 home level=1")
	assert.NotContains(t, final.String(), "step")
}
