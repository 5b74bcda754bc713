package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContextAddsRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	prev := defaultLogger
	defaultLogger = slog.New(slog.NewJSONHandler(&buf, nil))
	t.Cleanup(func() { defaultLogger = prev })

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithUserID(ctx, "user-1")
	InfoContext(ctx, "task created", "task_id", "t-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "task created", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "user-1", entry["user_id"])
	assert.Equal(t, "t-1", entry["task_id"])
	assert.Equal(t, "req-1", GetRequestID(ctx))
}

func TestInitWritesRotatingFile(t *testing.T) {
	prev := defaultLogger
	prevDefault := slog.Default()
	t.Cleanup(func() {
		defaultLogger = prev
		slog.SetDefault(prevDefault)
	})

	cfg := DefaultConfig()
	cfg.Output = "file"
	cfg.FilePath = filepath.Join(t.TempDir(), "nested", "app.log")
	require.NoError(t, Init(cfg))

	Info("hello")
	assert.FileExists(t, cfg.FilePath)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
