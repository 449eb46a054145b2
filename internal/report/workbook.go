package report

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"carrierdash/internal/carriers"
	"carrierdash/internal/logging"
)

// WorkbookContentType is the MIME type of .xlsx files
const WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const maxSheetNameLength = 31

var sheetNameReplacer = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", "\\", "_",
)

// SheetName turns a dataset name into a valid, unique worksheet name
func SheetName(dataset string, used map[string]bool) string {
	base := sheetNameReplacer.Replace(strings.TrimSuffix(dataset, ".csv"))
	base = strings.Trim(base, "'")
	if base == "" {
		base = "Sheet"
	}
	base = truncateRunes(base, maxSheetNameLength)

	name := base
	for i := 2; used[strings.ToLower(name)]; i++ {
		suffix := fmt.Sprintf("~%d", i)
		name = truncateRunes(base, maxSheetNameLength-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

// truncateRunes cuts s to at most n characters without splitting a rune
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// NewWorkbook builds a workbook with one sheet per summary, in dataset name
// order. Undefined statistics are left as empty cells.
func NewWorkbook(summaries map[string]carriers.Summary) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	names := SortedNames(summaries)
	if len(names) == 0 {
		if err := f.SetCellValue(defaultSheet, "A1", "No summaries available"); err != nil {
			_ = f.Close()
			return nil, err
		}
		return f, nil
	}

	used := make(map[string]bool)
	for i, name := range names {
		sheet := SheetName(name, used)
		if i == 0 {
			err = f.SetSheetName(defaultSheet, sheet)
		} else {
			_, err = f.NewSheet(sheet)
		}
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create sheet for %s: %w", name, err)
		}

		if err := writeSummarySheet(f, sheet, summaries[name], headerStyle); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to write sheet for %s: %w", name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSummarySheet(f *excelize.File, sheet string, s carriers.Summary, headerStyle int) error {
	header := []interface{}{"statistic"}
	for _, c := range s.Columns {
		header = append(header, c.Column)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}

	for i, statistic := range carriers.SummaryStatistics {
		row := []interface{}{statistic}
		for _, c := range s.Columns {
			v := c.Values()[i]
			if math.IsNaN(v) {
				row = append(row, nil)
				continue
			}
			row = append(row, v)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "A", 12)
}

// WriteWorkbook streams the summary workbook to w
func WriteWorkbook(w io.Writer, summaries map[string]carriers.Summary, logger *slog.Logger) (err error) {
	f, err := NewWorkbook(summaries)
	if err != nil {
		return err
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "close summary workbook")

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write summary workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the summary workbook to path
func SaveWorkbook(path string, summaries map[string]carriers.Summary, logger *slog.Logger) (err error) {
	f, err := NewWorkbook(summaries)
	if err != nil {
		return err
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "close summary workbook")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save summary workbook %s: %w", path, err)
	}
	logging.LogOperation(logger, "summary workbook saved",
		slog.String("path", path),
		slog.Int("sheets", len(summaries)))
	return nil
}
