package carriers

import (
	"fmt"
	"log/slog"

	"carrierdash/internal/logging"
)

// DirLoader loads every tabular file of a directory into a Collection.
// Failures on individual files are isolated: they are logged, recorded as
// warnings and the file is left out, while the rest of the batch continues.
type DirLoader struct {
	dir      string
	logger   *slog.Logger
	datasets *Collection
	warnings []Warning
}

// NewDirLoader creates a loader for dir. Nothing is read until Load is called.
func NewDirLoader(dir string, logger *slog.Logger) *DirLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirLoader{
		dir:      dir,
		logger:   logger.With(slog.String("component", "dir_loader")),
		datasets: NewCollection(),
	}
}

// Discover lists the candidate input files of the loader's directory
func (l *DirLoader) Discover() ([]FileInfo, error) {
	return Discover(l.dir)
}

// Load parses every discovered file into the collection, keyed by file name.
// It fails with ErrNotFound when the directory holds no tabular files.
func (l *DirLoader) Load() error {
	files, err := l.Discover()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no tabular files in %s", ErrNotFound, l.dir)
	}

	for _, file := range files {
		df, err := ReadFile(file.Path, l.logger)
		if err != nil {
			l.warn(file.Name, StageLoad, "failed to read file", err)
			continue
		}

		l.datasets.Put(&Dataset{Name: file.Name, Path: file.Path, Frame: df})
		logging.LogOperation(l.logger, "loaded file",
			slog.String("file", file.Name),
			slog.Int("rows", df.Nrow()),
			slog.Int("columns", df.Ncol()))
	}
	return nil
}

// Clean coerces the designated columns of every loaded dataset to integers.
// A dataset that cannot be cleaned is dropped from the collection.
func (l *DirLoader) Clean() {
	for _, name := range l.datasets.Names() {
		d, _ := l.datasets.Get(name)

		df, err := CoerceFrame(d.Frame)
		if err != nil {
			l.warn(name, StageClean, "failed to clean file", err)
			l.datasets.Remove(name)
			continue
		}
		d.Frame = df
	}
}

// Summarize describes every dataset in the collection. Datasets that cannot
// be described are left out of the result.
func (l *DirLoader) Summarize() map[string]Summary {
	summaries := make(map[string]Summary, l.datasets.Len())
	for _, name := range l.datasets.Names() {
		d, _ := l.datasets.Get(name)

		summary, err := Describe(name, d.Frame)
		if err != nil {
			l.warn(name, StageSummarize, "failed to summarize file", err)
			continue
		}
		summaries[name] = summary
	}
	return summaries
}

// Datasets returns the loader's collection
func (l *DirLoader) Datasets() *Collection {
	return l.datasets
}

// Warnings returns the per-file failures recorded so far
func (l *DirLoader) Warnings() []Warning {
	return l.warnings
}

func (l *DirLoader) warn(file string, stage Stage, message string, err error) {
	l.warnings = append(l.warnings, Warning{File: file, Stage: stage, Err: err})
	logging.LogError(l.logger, message, err,
		slog.String("file", file),
		slog.String("stage", string(stage)))
}
