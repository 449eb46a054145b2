package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"text/tabwriter"

	"carrierdash/internal/carriers"
)

// FormatStatistic renders one summary cell. Counts are integers, other
// statistics use two decimals and undefined values print as NaN.
func FormatStatistic(statistic string, v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if statistic == "count" {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// WriteSummaryTable prints s with one row per statistic and one column per
// numeric column.
func WriteSummaryTable(w io.Writer, s carriers.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := make([]string, 0, len(s.Columns)+1)
	header = append(header, "")
	for _, c := range s.Columns {
		header = append(header, c.Column)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")+"\t"); err != nil {
		return err
	}

	for i, statistic := range carriers.SummaryStatistics {
		row := make([]string, 0, len(s.Columns)+1)
		row = append(row, statistic)
		for _, c := range s.Columns {
			row = append(row, FormatStatistic(statistic, c.Values()[i]))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")+"\t"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// SortedNames returns the dataset names of summaries in ascending order
func SortedNames(summaries map[string]carriers.Summary) []string {
	names := make([]string, 0, len(summaries))
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteSummaries prints every summary under a heading with its dataset name
func WriteSummaries(w io.Writer, summaries map[string]carriers.Summary) error {
	for i, name := range SortedNames(summaries) {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Summary for %s (%d rows):\n", name, summaries[name].Rows); err != nil {
			return err
		}
		if err := WriteSummaryTable(w, summaries[name]); err != nil {
			return fmt.Errorf("failed to write summary for %s: %w", name, err)
		}
	}
	return nil
}
