package carriers

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// ErrNoNumericColumns is returned by Describe for frames without int or float
// columns.
var ErrNoNumericColumns = errors.New("no numeric columns to describe")

// SummaryStatistics is the fixed order in which summary rows are reported
var SummaryStatistics = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// ColumnSummary holds the descriptive statistics of one numeric column.
// Statistics that are undefined for the column are NaN.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Values returns the statistics in SummaryStatistics order
func (c ColumnSummary) Values() []float64 {
	return []float64{float64(c.Count), c.Mean, c.Std, c.Min, c.Q1, c.Median, c.Q3, c.Max}
}

// Summary is the summary record of one dataset
type Summary struct {
	Dataset string
	Rows    int
	Columns []ColumnSummary
}

// Describe computes descriptive statistics for every numeric column of df, in
// column order. NaN cells are ignored.
func Describe(name string, df dataframe.DataFrame) (Summary, error) {
	if df.Err != nil {
		return Summary{}, df.Err
	}

	summary := Summary{Dataset: name, Rows: df.Nrow()}
	for _, column := range df.Names() {
		s := df.Col(column)
		if s.Type() != series.Int && s.Type() != series.Float {
			continue
		}
		summary.Columns = append(summary.Columns, describeColumn(column, s.Float()))
	}

	if len(summary.Columns) == 0 {
		return Summary{}, fmt.Errorf("%s: %w", name, ErrNoNumericColumns)
	}
	return summary, nil
}

func describeColumn(name string, raw []float64) ColumnSummary {
	values := make([]float64, 0, len(raw))
	for _, v := range raw {
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}

	nan := math.NaN()
	c := ColumnSummary{
		Column: name,
		Count:  len(values),
		Mean:   nan,
		Std:    nan,
		Min:    nan,
		Q1:     nan,
		Median: nan,
		Q3:     nan,
		Max:    nan,
	}
	if len(values) == 0 {
		return c
	}

	sort.Float64s(values)
	mean, std := stat.MeanStdDev(values, nil)
	c.Mean = mean
	if len(values) > 1 {
		c.Std = std
	}
	c.Min = values[0]
	c.Max = values[len(values)-1]
	c.Q1 = quantile(values, 0.25)
	c.Median = quantile(values, 0.5)
	c.Q3 = quantile(values, 0.75)
	return c
}

// quantile interpolates linearly between the closest ranks of sorted.
// stat.Quantile has no estimator of this kind.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := math.Floor(pos)
	hi := math.Ceil(pos)
	frac := pos - lo
	return sorted[int(lo)] + (sorted[int(hi)]-sorted[int(lo)])*frac
}
