package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColoredHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewColoredHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("session created", "session_id", "abc123")
	output := buf.String()

	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, "session created")
	assert.Contains(t, output, `session_id`)
	assert.Contains(t, output, `"abc123"`)
}

func TestColoredHandler_RequestIDPulledForward(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewColoredHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Warn("backend slow", "request_id", "req-42")
	output := buf.String()

	assert.Contains(t, output, "[req-42]")
	assert.Contains(t, output, "WARN")
}

func TestColoredHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	handler := NewColoredHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	require.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	require.True(t, handler.Enabled(context.Background(), slog.LevelError))

	logger := slog.New(handler)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestColoredHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewColoredHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.With("component", "chat").Info("ready")
	// Attrs added via With travel through the wrapped handler; the line
	// itself still renders.
	assert.Contains(t, buf.String(), "ready")
}
