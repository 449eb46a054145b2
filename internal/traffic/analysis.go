package traffic

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"carrierdash/internal/carriers"
)

var (
	// ErrMissingColumn is returned when a dataset lacks a column the analysis needs
	ErrMissingColumn = errors.New("missing column")
	// ErrInvalidQuery is returned for queries outside the supported ranges
	ErrInvalidQuery = errors.New("invalid query")
)

// Query selects the slice of a dataset to analyze
type Query struct {
	// Column is one of the designated traffic columns
	Column string
	// Years restricts the rows to the listed years. Empty means all years.
	Years []int
	// FromMonth and ToMonth bound the month range, inclusive, 0 = Jan
	FromMonth int
	ToMonth   int
}

// DefaultQuery is the dashboard's initial selection
func DefaultQuery() Query {
	return Query{Column: carriers.ColumnTotal, FromMonth: 0, ToMonth: len(Months) - 1}
}

func (q Query) Validate() error {
	if !carriers.IsDesignatedColumn(q.Column) {
		return fmt.Errorf("%w: column %q is not one of %v", ErrInvalidQuery, q.Column, carriers.DesignatedColumns)
	}
	if q.FromMonth < 0 || q.ToMonth >= len(Months) || q.FromMonth > q.ToMonth {
		return fmt.Errorf("%w: month range %d-%d", ErrInvalidQuery, q.FromMonth, q.ToMonth)
	}
	return nil
}

// FullMonthRange reports whether the query covers the whole calendar
func (q Query) FullMonthRange() bool {
	return q.FromMonth == 0 && q.ToMonth == len(Months)-1
}

// Point is one monthly observation
type Point struct {
	Month      string `json:"month"`
	MonthIndex int    `json:"monthIndex"`
	Value      int    `json:"value"`
}

// YearSeries is the ordered observations of one year
type YearSeries struct {
	Year   int     `json:"year"`
	Points []Point `json:"points"`
}

// Extreme is the highest or least month of a year
type Extreme struct {
	Year  int    `json:"year"`
	Month string `json:"month"`
	Value int    `json:"value"`
}

// String formats the extreme as an insight line, e.g. "Year 2020: Jan (1,000)"
func (e Extreme) String() string {
	return fmt.Sprintf("Year %d: %s (%s)", e.Year, e.Month, FormatCount(e.Value))
}

// Analysis is the chart data and textual insights for one dataset and query
type Analysis struct {
	Dataset      string
	Airline      string
	Column       string
	Title        string
	HighestTitle string
	LeastTitle   string
	Series       []YearSeries
	Highest      []Extreme
	Least        []Extreme
}

// MaxValue returns the largest value across every series, or 0
func (a Analysis) MaxValue() int {
	max := 0
	for _, s := range a.Series {
		for _, p := range s.Points {
			if p.Value > max {
				max = p.Value
			}
		}
	}
	return max
}

// Analyze filters d by q, groups the remaining rows by year and finds the
// highest and least month of each year.
func Analyze(d *carriers.Dataset, q Query) (Analysis, error) {
	if err := q.Validate(); err != nil {
		return Analysis{}, err
	}
	for _, column := range []string{carriers.ColumnYear, carriers.ColumnMonth, q.Column} {
		if !d.HasColumn(column) {
			return Analysis{}, fmt.Errorf("%w: %s has no %s column", ErrMissingColumn, d.Name, column)
		}
	}

	airline := AirlineName(d.Name)
	analysis := Analysis{
		Dataset:      d.Name,
		Airline:      airline,
		Column:       q.Column,
		Title:        fmt.Sprintf("%s Trends (%s)", q.Column, airline),
		HighestTitle: fmt.Sprintf("Months with Highest %s Traffic for %s:", q.Column, airline),
		LeastTitle:   fmt.Sprintf("Months with Least %s Traffic for %s:", q.Column, airline),
	}

	df, err := filterYears(d.Frame, q.Years)
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to filter %s: %w", d.Name, err)
	}

	byYear := groupByYear(df, q)
	for _, year := range sortedYears(byYear) {
		points := byYear[year]
		sort.SliceStable(points, func(i, j int) bool {
			return monthOrder(points[i].MonthIndex) < monthOrder(points[j].MonthIndex)
		})

		analysis.Series = append(analysis.Series, YearSeries{Year: year, Points: points})
		highest, least := extremes(points)
		analysis.Highest = append(analysis.Highest, Extreme{Year: year, Month: highest.Month, Value: highest.Value})
		analysis.Least = append(analysis.Least, Extreme{Year: year, Month: least.Month, Value: least.Value})
	}
	return analysis, nil
}

func filterYears(df dataframe.DataFrame, years []int) (dataframe.DataFrame, error) {
	if len(years) == 0 {
		return df, df.Err
	}
	filtered := df.Filter(dataframe.F{
		Colname:    carriers.ColumnYear,
		Comparator: series.In,
		Comparando: years,
	})
	return filtered, filtered.Err
}

func groupByYear(df dataframe.DataFrame, q Query) map[int][]Point {
	years := df.Col(carriers.ColumnYear).Float()
	months := df.Col(carriers.ColumnMonth).Records()
	values := df.Col(q.Column).Float()

	grouped := make(map[int][]Point)
	for i := range years {
		if math.IsNaN(years[i]) || math.IsNaN(values[i]) {
			continue
		}

		idx := MonthIndex(months[i])
		if !q.FullMonthRange() && (idx < q.FromMonth || idx > q.ToMonth) {
			continue
		}

		month := months[i]
		if idx >= 0 {
			month = Months[idx]
		}
		year := int(years[i])
		grouped[year] = append(grouped[year], Point{Month: month, MonthIndex: idx, Value: int(values[i])})
	}
	return grouped
}

func sortedYears(grouped map[int][]Point) []int {
	years := make([]int, 0, len(grouped))
	for y := range grouped {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// monthOrder places unknown months after December
func monthOrder(idx int) int {
	if idx < 0 {
		return len(Months)
	}
	return idx
}

func extremes(points []Point) (highest, least Point) {
	highest, least = points[0], points[0]
	for _, p := range points[1:] {
		if p.Value > highest.Value {
			highest = p
		}
		if p.Value < least.Value {
			least = p
		}
	}
	return highest, least
}

// AvailableYears lists the distinct years of d in ascending order
func AvailableYears(d *carriers.Dataset) []int {
	if d == nil || !d.HasColumn(carriers.ColumnYear) {
		return nil
	}

	seen := make(map[int]bool)
	var years []int
	for _, v := range d.Frame.Col(carriers.ColumnYear).Float() {
		if math.IsNaN(v) || seen[int(v)] {
			continue
		}
		seen[int(v)] = true
		years = append(years, int(v))
	}
	sort.Ints(years)
	return years
}
