package carriers

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"carrierdash/internal/logging"
)

// DefaultDataset is selected first by the dashboard when it is present
const DefaultDataset = "AllCarriers.csv"

// Manager runs the load, clean and summarize pipeline once and holds the
// results for the presentation layer. Its data is read-only after InitManager
// returns.
type Manager struct {
	source      string
	singleFile  bool
	datasets    *Collection
	summaries   map[string]Summary
	warnings    []Warning
	lastUpdated time.Time
	config      Config
}

// InitManager loads, cleans and summarizes the data at config.DataPath. A
// directory is loaded with a DirLoader and a file with a FileLoader.
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(config.DataPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, config.DataPath)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", config.DataPath, err)
	}

	manager := &Manager{
		source:     config.DataPath,
		singleFile: !info.IsDir(),
		config:     config,
	}

	start := time.Now()
	if manager.singleFile {
		err = manager.loadFile(logger)
	} else {
		err = manager.loadDir(logger)
	}
	if err != nil {
		return nil, err
	}
	manager.lastUpdated = time.Now()

	logging.LogOperation(logger, "carrier data loaded",
		slog.String("source", manager.source),
		slog.Int("datasets", manager.datasets.Len()),
		slog.Int("warnings", len(manager.warnings)),
		slog.Duration("duration", time.Since(start)))

	return manager, nil
}

func (manager *Manager) loadDir(logger *slog.Logger) error {
	loader := NewDirLoader(manager.source, logger)
	if err := loader.Load(); err != nil {
		return err
	}
	loader.Clean()

	manager.datasets = loader.Datasets()
	manager.summaries = loader.Summarize()
	manager.warnings = loader.Warnings()
	return nil
}

func (manager *Manager) loadFile(logger *slog.Logger) error {
	loader := NewFileLoader(manager.source, logger)
	if err := loader.Load(); err != nil {
		return err
	}
	if _, err := loader.Clean(); err != nil {
		return err
	}

	summary, err := loader.Summary()
	if err != nil {
		return err
	}

	manager.datasets = loader.Datasets()
	manager.summaries = map[string]Summary{summary.Dataset: summary}
	return nil
}

// Source is the directory or file the data was loaded from
func (manager *Manager) Source() string {
	return manager.source
}

func (manager *Manager) GetDatasets() *Collection {
	return manager.datasets
}

// FindDataset returns the dataset called name, or nil
func (manager *Manager) FindDataset(name string) *Dataset {
	d, ok := manager.datasets.Get(name)
	if !ok {
		return nil
	}
	return d
}

// DefaultDatasetName returns DefaultDataset when loaded, otherwise the first
// dataset name, or "" for an empty collection.
func (manager *Manager) DefaultDatasetName() string {
	if _, ok := manager.datasets.Get(DefaultDataset); ok {
		return DefaultDataset
	}
	names := manager.datasets.Names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func (manager *Manager) GetSummaries() map[string]Summary {
	return manager.summaries
}

// FindSummary returns the summary of the dataset called name
func (manager *Manager) FindSummary(name string) (Summary, bool) {
	s, ok := manager.summaries[name]
	return s, ok
}

func (manager *Manager) GetWarnings() []Warning {
	return manager.warnings
}

func (manager *Manager) LastUpdated() time.Time {
	return manager.lastUpdated
}

func (manager *Manager) IsSingleFile() bool {
	return manager.singleFile
}

// PrintStatistics writes a short human readable report of the loaded data
func (manager *Manager) PrintStatistics(w io.Writer) {
	fmt.Fprintf(w, "Source: %s (Single File: %v)\n", manager.source, manager.singleFile)
	fmt.Fprintf(w, "Last Updated: %s\n", manager.lastUpdated.Format(time.RFC3339))
	fmt.Fprintln(w, "Datasets Count: ", manager.datasets.Len())
	for _, name := range manager.datasets.Names() {
		d, _ := manager.datasets.Get(name)
		fmt.Fprintf(w, "  %s: %d rows\n", name, d.Rows())
	}
	fmt.Fprintln(w, "Warnings Count: ", len(manager.warnings))
	if manager.config.Verbose {
		for _, warning := range manager.warnings {
			fmt.Fprintf(w, "  %s\n", warning)
		}
	}
}
