package carriers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// TabularExtensions lists the file extensions recognized as tabular input
var TabularExtensions = []string{".csv", ".xlsx"}

// FileInfo describes a discovered input file
type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// IsTabularFile reports whether name ends with a recognized tabular extension
func IsTabularFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range TabularExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Discover lists the tabular files directly inside dir, sorted by name.
// Subdirectories are not searched.
func Discover(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !IsTabularFile(name) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Name:    name,
			Path:    filepath.Join(dir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}
