package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/growlkit/pkg/growl"
	"github.com/dmitrymomot/growlkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("skipped")
		assert.Empty(t, buf.String())

		log = logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"))
		log.Debug("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("unknown level name keeps default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("loud"))
		log.Debug("skipped")
		assert.Empty(t, buf.String())
	})

	t.Run("default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("service", "demo")))
		log.Info("msg")
		assert.Equal(t, "demo", decode(t, buf)["service"])
	})

	t.Run("context value", func(t *testing.T) {
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", key{}))
		ctx := context.WithValue(context.Background(), key{}, "req-1")
		log.With(logger.Component("test")).InfoContext(ctx, "msg")
		entry := decode(t, buf)
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "test", entry["component"])
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	err := errors.New("boom")
	assert.Equal(t, err, logger.Error(err).Value.Any())

	assert.Equal(t, "widget_id", logger.WidgetID("w0").Key)
	assert.Equal(t, "repeating", logger.Mode(growl.ModeRepeating).Value.String())
	assert.True(t, logger.Mode(nil).Equal(slog.Attr{}))
	assert.Equal(t, "/poll", logger.URL("/poll").Value.String())
	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
	assert.Equal(t, "r1", logger.RequestID("r1").Value.Any())
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	assert.False(t, logger.Discard().Enabled(context.Background(), slog.LevelError))
}
