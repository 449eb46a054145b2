package carriers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	"carrierdash/internal/logging"
)

// nanValues mirrors the missing-value markers commonly found in exported
// spreadsheets. Cells matching one of them load as NaN.
var nanValues = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "#N/A", "<NA>"}

func loadOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(nanValues),
	}
}

// ReadFile parses the tabular file at path into a DataFrame. The format is
// chosen by extension. Short rows are padded with missing values and a file
// holding only a header row loads as an empty frame. A missing file yields
// ErrNotFound and unreadable content yields ErrParse.
func ReadFile(path string, logger *slog.Logger) (dataframe.DataFrame, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dataframe.DataFrame{}, fmt.Errorf("%w: file %s", ErrNotFound, path)
		}
		return dataframe.DataFrame{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path, logger)
	default:
		return readCSV(path, logger)
	}
}

func readCSV(path string, logger *slog.Logger) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer logging.SafeCloseWithLogging(f, logger, "read_csv")

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	if len(rows) > 0 {
		for i, row := range rows[1:] {
			if len(row) > len(rows[0]) {
				return dataframe.DataFrame{}, fmt.Errorf("%w: %s: record on line %d has %d fields, header has %d",
					ErrParse, path, i+2, len(row), len(rows[0]))
			}
		}
	}
	return loadRows(path, rows)
}

func readXLSX(path string, logger *slog.Logger) (dataframe.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	defer logging.SafeCloseWithLogging(f, logger, "read_xlsx")

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: workbook has no sheets", ErrParse, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return loadRows(path, rows)
}

// loadRows builds a frame from a header row followed by data rows
func loadRows(path string, rows [][]string) (dataframe.DataFrame, error) {
	rows = padRows(rows)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: no header row", ErrParse, path)
	}

	var df dataframe.DataFrame
	if len(rows) == 1 {
		df = emptyFrame(rows[0])
	} else {
		df = dataframe.LoadRecords(rows, loadOptions()...)
	}
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %v", ErrParse, path, df.Err)
	}
	return df, nil
}

// emptyFrame is a frame with the given columns and no rows
func emptyFrame(header []string) dataframe.DataFrame {
	columns := make([]series.Series, 0, len(header))
	for _, name := range header {
		columns = append(columns, series.New([]string{}, series.String, name))
	}
	return dataframe.New(columns...)
}

// padRows gives every row the width of the header row and drops blank rows.
// excelize trims trailing empty cells and CSV rows may end early; the missing
// cells load as NaN.
func padRows(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}
	width := len(rows[0])
	out := make([][]string, 0, len(rows))
	for i, row := range rows {
		if i > 0 && len(row) == 0 {
			continue
		}
		if len(row) >= width {
			out = append(out, row[:width])
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		out = append(out, padded)
	}
	return out
}
