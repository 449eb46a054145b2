package carriers

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"carrierdash/internal/logging"
)

const testdataDir = "../../testdata"

// writeFile creates name inside dir with the given content
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newTestLogger returns a JSON logger writing into the returned buffer
func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.NewStructuredLogger(&buf, slog.LevelInfo), &buf
}

func intColumn(t *testing.T, d *Dataset, column string) []int {
	t.Helper()
	values, err := d.Frame.Col(column).Int()
	require.NoError(t, err)
	return values
}

func makeDir(path string) error {
	return os.Mkdir(path, 0o755)
}
