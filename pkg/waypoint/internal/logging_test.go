package internal

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw      string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSetLogOutputReplacesConsole(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)

	GetLogger().Info("navigation tree ready")
	GetRouterLogger().Error("presentation rejected")

	assert.Contains(t, buf.String(), `"msg":"navigation tree ready"`)
	assert.Contains(t, buf.String(), `"component":"router"`)
}
