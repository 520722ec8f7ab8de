package logger

import (
	"bytes"
	"context"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := NewLogger(TestConfig())
		ctx := ContextWithLogger(t.Context(), expected)

		actual := FromContext(ctx)

		require.NotNil(t, actual)
		assert.Equal(t, expected, actual)
	})

	t.Run("Should return default logger when no logger in context", func(t *testing.T) {
		log := FromContext(t.Context())

		require.NotNil(t, log)
		log.Info("test message from default logger")
	})

	t.Run("Should return default logger when wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(t.Context(), LoggerCtxKey, "not a logger")

		log := FromContext(ctx)

		require.NotNil(t, log)
		log.Info("test message from fallback logger")
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should write structured output to the configured writer", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: charmlog.DebugLevel, Output: &buf})

		log.Info("version resolved", "version", "1.11.0")

		assert.Contains(t, buf.String(), "version resolved")
		assert.Contains(t, buf.String(), "1.11.0")
	})

	t.Run("Should respect the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: charmlog.WarnLevel, Output: &buf})

		log.Info("hidden")
		log.Warn("visible")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("Should emit JSON when configured", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: charmlog.InfoLevel, Output: &buf, JSON: true})

		log.Info("stamped", "path", "version.props")

		assert.Contains(t, buf.String(), `"msg":"stamped"`)
	})

	t.Run("Should carry fields added with With", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: charmlog.InfoLevel, Output: &buf})

		log.With("tag", "v1.0.0").Info("resolved")

		assert.Contains(t, buf.String(), "v1.0.0")
	})
}

func TestParseLevel(t *testing.T) {
	t.Run("Should map known levels and default unknown ones to info", func(t *testing.T) {
		assert.Equal(t, charmlog.DebugLevel, ParseLevel("debug"))
		assert.Equal(t, charmlog.InfoLevel, ParseLevel("info"))
		assert.Equal(t, charmlog.WarnLevel, ParseLevel("warn"))
		assert.Equal(t, charmlog.ErrorLevel, ParseLevel("error"))
		assert.Equal(t, charmlog.InfoLevel, ParseLevel("nonsense"))
	})
}
