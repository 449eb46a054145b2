package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger with proper configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("test message",
			slog.String("component", "test"),
			slog.Int("count", 42))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"component":"test"`)
		assert.Contains(t, output, `"count":42`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name        string
		development bool
		verbose     bool
		contains    string
		debug       bool
	}{
		{name: "development uses text", development: true, contains: `msg="loaded file"`},
		{name: "production uses JSON", development: false, contains: `"msg":"loaded file"`},
		{name: "verbose enables debug", development: true, verbose: true, contains: `msg="loaded file"`, debug: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tc.development, tc.verbose)

			logger.Info("loaded file")
			logger.Debug("row detail")

			assert.Contains(t, buf.String(), tc.contains)
			assert.Equal(t, tc.debug, bytes.Contains(buf.Bytes(), []byte("row detail")))
		})
	}
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError creates structured error log", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "failed to read file", assert.AnError,
			slog.String("file", "AllCarriers.csv"),
			slog.String("stage", "load"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to read file"`)
		assert.Contains(t, output, `"file":"AllCarriers.csv"`)
		assert.Contains(t, output, `"stage":"load"`)
		assert.Contains(t, output, assert.AnError.Error())
	})

	t.Run("LogError tolerates nil logger and nil error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogError(nil, "ignored", assert.AnError)
		})

		var buf bytes.Buffer
		LogError(NewStructuredLogger(&buf, slog.LevelInfo), "no cause", nil)
		assert.NotContains(t, buf.String(), `"error"`)
	})

	t.Run("LogOperation skips zero durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "carrier data loaded",
			slog.Int("datasets", 4),
			slog.Duration("duration", 0))

		output := buf.String()
		assert.Contains(t, output, `"msg":"carrier data loaded"`)
		assert.Contains(t, output, `"datasets":4`)
		assert.NotContains(t, output, `"duration"`)

		buf.Reset()
		LogOperation(logger, "carrier data loaded", slog.Duration("duration", time.Second))
		assert.Contains(t, buf.String(), `"duration"`)
	})

	t.Run("LogHTTPRequest records request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogHTTPRequest(logger, "GET", "/api/datasets.json", 200, 1.5,
			slog.String("client_ip", "127.0.0.1"))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/datasets.json"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"duration_ms":1.5`)
		assert.Contains(t, output, `"client_ip":"127.0.0.1"`)
	})

	t.Run("LogHTTPRequest logs server errors at error level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogHTTPRequest(logger, "GET", "/api/summaries.xlsx", 500, 3)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("stores and retrieves logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := WithLogger(context.Background(), logger)
		got := FromContext(ctx)
		require.NotNil(t, got)

		got.Info("from context")
		assert.Contains(t, buf.String(), "from context")
	})

	t.Run("falls back to default logger", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})
}
