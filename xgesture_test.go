package xgesture_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"deedles.dev/xgesture"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultSilent(t *testing.T) {
	xgesture.SetLogger(nil)
	require.False(t, xgesture.Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	defer xgesture.SetLogger(nil)

	var buf bytes.Buffer
	xgesture.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	xgesture.Logger().Debug("hello", "edges", "right")
	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "edges=right")
}
