package carriers

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"carrierdash/internal/logging"
)

// FileLoader loads a single tabular file. Unlike DirLoader it isolates
// nothing: every failure is returned to the caller.
type FileLoader struct {
	path    string
	logger  *slog.Logger
	dataset *Dataset
}

// NewFileLoader creates a loader for the file at path
func NewFileLoader(path string, logger *slog.Logger) *FileLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileLoader{
		path:   path,
		logger: logger.With(slog.String("component", "file_loader")),
	}
}

// Load reads the file. It fails with ErrNotFound if the path does not exist
// and with ErrParse if the content is not tabular.
func (l *FileLoader) Load() error {
	logging.LogOperation(l.logger, "loading file", slog.String("path", l.path))

	df, err := ReadFile(l.path, l.logger)
	if err != nil {
		return err
	}

	l.dataset = &Dataset{Name: filepath.Base(l.path), Path: l.path, Frame: df}
	return nil
}

// Clean converts the designated columns to integers without any fallback for
// malformed values. It fails with ErrInvalidState if Load has not succeeded.
// The loaded data is unchanged when cleaning fails.
func (l *FileLoader) Clean() (*Dataset, error) {
	if l.dataset == nil {
		return nil, fmt.Errorf("%w: data has not been loaded", ErrInvalidState)
	}

	df, err := StrictFrame(l.dataset.Frame)
	if err != nil {
		return nil, fmt.Errorf("failed to clean %s: %w", l.dataset.Name, err)
	}
	l.dataset.Frame = df
	return l.dataset, nil
}

// Summary describes the loaded dataset
func (l *FileLoader) Summary() (Summary, error) {
	if l.dataset == nil {
		return Summary{}, fmt.Errorf("%w: data has not been loaded", ErrInvalidState)
	}
	return Describe(l.dataset.Name, l.dataset.Frame)
}

// Dataset returns the loaded dataset, or nil before Load
func (l *FileLoader) Dataset() *Dataset {
	return l.dataset
}

// Datasets wraps the loaded dataset in a one-entry collection
func (l *FileLoader) Datasets() *Collection {
	c := NewCollection()
	if l.dataset != nil {
		c.Put(l.dataset)
	}
	return c
}
