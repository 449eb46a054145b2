package carriers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// CoerceCount converts a raw traffic value to an integer. Thousands separators
// are stripped and anything that does not parse as a finite number becomes 0.
// Fractional values are truncated toward zero.
func CoerceCount(raw string) int {
	f, err := strconv.ParseFloat(normalizeCount(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int(f)
}

// ParseCount is the strict form of CoerceCount. It only accepts values that are
// integers once the thousands separators are removed.
func ParseCount(raw string) (int, error) {
	s := normalizeCount(raw)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q is not an integer count", ErrParse, raw)
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, fmt.Errorf("%w: %q is out of range", ErrParse, raw)
	}
	return int(f), nil
}

func normalizeCount(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
}

// presentDesignatedColumns returns the designated columns found in df, in
// designated order.
func presentDesignatedColumns(df dataframe.DataFrame) []string {
	names := make(map[string]bool, df.Ncol())
	for _, n := range df.Names() {
		names[n] = true
	}

	var present []string
	for _, c := range DesignatedColumns {
		if names[c] {
			present = append(present, c)
		}
	}
	return present
}

// CoerceFrame rewrites every designated column present in df as an int column,
// replacing unparseable values with 0. Columns outside the designated set are
// untouched. Applying it twice yields the same frame.
func CoerceFrame(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, df.Err
	}

	for _, column := range presentDesignatedColumns(df) {
		records := df.Col(column).Records()
		values := make([]int, len(records))
		for i, r := range records {
			values[i] = CoerceCount(r)
		}

		df = df.Mutate(series.New(values, series.Int, column))
		if df.Err != nil {
			return df, fmt.Errorf("failed to replace column %s: %w", column, df.Err)
		}
	}
	return df, nil
}

// StrictFrame converts the designated columns of df to int columns. Every
// designated column must exist and every value must be an integer count.
func StrictFrame(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, df.Err
	}

	present := presentDesignatedColumns(df)
	if len(present) != len(DesignatedColumns) {
		return df, fmt.Errorf("%w: expected columns %v, found %v", ErrParse, DesignatedColumns, present)
	}

	for _, column := range DesignatedColumns {
		records := df.Col(column).Records()
		values := make([]int, len(records))
		for i, r := range records {
			v, err := ParseCount(r)
			if err != nil {
				return df, fmt.Errorf("column %s row %d: %w", column, i+1, err)
			}
			values[i] = v
		}

		df = df.Mutate(series.New(values, series.Int, column))
		if df.Err != nil {
			return df, fmt.Errorf("failed to replace column %s: %w", column, df.Err)
		}
	}
	return df, nil
}
