package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorCloser struct {
	err    error
	closed bool
}

func (c *errorCloser) Close() error {
	c.closed = true
	return c.err
}

func TestSafeClose(t *testing.T) {
	t.Run("closes quietly on success", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		closer := &errorCloser{}
		SafeCloseWithLogging(closer, logger, "export_workbook")

		assert.True(t, closer.closed)
		assert.Empty(t, buf.String())
	})

	t.Run("logs error when close fails", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeCloseWithLogging(&errorCloser{err: assert.AnError}, logger, "export_workbook")

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to close resource"`)
		assert.Contains(t, output, `"operation":"export_workbook"`)
	})

	t.Run("ignores nil closer", func(t *testing.T) {
		assert.NotPanics(t, func() {
			SafeCloseWithLogging(nil, nil, "noop")
		})
	})
}

func TestHandleDeferredError(t *testing.T) {
	t.Run("sets error when none was recorded", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		var err error
		HandleDeferredError(&err, func() error { return assert.AnError }, logger, "close workbook")

		require.Error(t, err)
		assert.True(t, errors.Is(err, assert.AnError))
		assert.Contains(t, err.Error(), "close workbook failed")
		assert.Contains(t, buf.String(), `"msg":"deferred operation failed"`)
	})

	t.Run("keeps the original error", func(t *testing.T) {
		original := errors.New("write failed")
		err := original
		HandleDeferredError(&err, func() error { return assert.AnError }, nil, "close workbook")

		assert.Equal(t, original, err)
	})

	t.Run("leaves error untouched on success", func(t *testing.T) {
		var err error
		HandleDeferredError(&err, func() error { return nil }, nil, "close workbook")
		assert.NoError(t, err)

		HandleDeferredError(&err, nil, nil, "noop")
		assert.NoError(t, err)
	})
}
