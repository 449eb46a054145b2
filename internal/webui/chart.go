package webui

import (
	"fmt"
	"math"
	"strings"

	"carrierdash/internal/traffic"
	"carrierdash/internal/utils"
)

// Chart geometry in SVG user units
const (
	chartWidth   = 900
	chartHeight  = 420
	marginLeft   = 80
	marginRight  = 110
	marginTop    = 30
	marginBottom = 40
	yTickCount   = 5
)

// palette is cycled through by year, in the order the years are plotted
var palette = []string{
	"#636efa", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a",
	"#19d3f3", "#ff6692", "#b6e880", "#ff97ff", "#fecb52",
}

func colorFor(i int) string {
	return palette[i%len(palette)]
}

// Tick is a labelled position on an axis
type Tick struct {
	X     float64
	Y     float64
	Label string
}

// Line is the polyline of one year
type Line struct {
	Year   int
	Color  string
	Points string
}

// Bar is one year's segment of a stacked month column
type Bar struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
	Title  string
}

// LegendItem labels the color used for one year
type LegendItem struct {
	X     float64
	Y     float64
	Color string
	Label string
}

// Chart is a server-rendered SVG line or stacked bar chart of an analysis
type Chart struct {
	Kind   string
	Title  string
	Width  int
	Height int
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	XTicks []Tick
	YTicks []Tick
	Lines  []Line
	Bars   []Bar
	Legend []LegendItem
	Empty  bool
}

// NewChart lays out a for the months of q. kind is utils.ChartBar for stacked bars,
// anything else draws lines. Points whose month is unknown are not plotted.
func NewChart(a traffic.Analysis, q traffic.Query, kind string) Chart {
	c := Chart{
		Kind:   kind,
		Title:  a.Title,
		Width:  chartWidth,
		Height: chartHeight,
		Left:   marginLeft,
		Right:  chartWidth - marginRight,
		Top:    marginTop,
		Bottom: chartHeight - marginBottom,
	}

	months := q.ToMonth - q.FromMonth + 1
	if months < 1 {
		months = 1
	}
	slot := (c.Right - c.Left) / float64(months)
	for i := 0; i < months; i++ {
		c.XTicks = append(c.XTicks, Tick{
			X:     c.Left + slot*(float64(i)+0.5),
			Y:     c.Bottom + 20,
			Label: traffic.MonthLabel(q.FromMonth + i),
		})
	}

	c.Empty = len(a.Series) == 0
	top := niceCeiling(plottedMax(a, q, kind == utils.ChartBar))

	y := func(v float64) float64 {
		return c.Bottom - (v/top)*(c.Bottom-c.Top)
	}
	for i := 0; i <= yTickCount; i++ {
		v := top * float64(i) / yTickCount
		c.YTicks = append(c.YTicks, Tick{X: c.Left - 8, Y: y(v), Label: traffic.FormatCount(int(v))})
	}

	stack := make([]float64, months)
	for i, s := range a.Series {
		color := colorFor(i)
		c.Legend = append(c.Legend, LegendItem{
			X:     c.Right + 20,
			Y:     c.Top + 10 + float64(i)*20,
			Color: color,
			Label: fmt.Sprint(s.Year),
		})

		var coords []string
		for _, p := range s.Points {
			offset := p.MonthIndex - q.FromMonth
			if p.MonthIndex < 0 || offset < 0 || offset >= months {
				continue
			}
			x := c.Left + slot*(float64(offset)+0.5)

			if kind == utils.ChartBar {
				base := stack[offset]
				stack[offset] += float64(p.Value)
				c.Bars = append(c.Bars, Bar{
					X:      x - slot*0.35,
					Y:      y(stack[offset]),
					Width:  slot * 0.7,
					Height: y(base) - y(stack[offset]),
					Color:  color,
					Title:  fmt.Sprintf("%s %d: %s", p.Month, s.Year, traffic.FormatCount(p.Value)),
				})
				continue
			}
			coords = append(coords, fmt.Sprintf("%.1f,%.1f", x, y(float64(p.Value))))
		}

		if kind != utils.ChartBar && len(coords) > 0 {
			c.Lines = append(c.Lines, Line{Year: s.Year, Color: color, Points: strings.Join(coords, " ")})
		}
	}
	return c
}

// plottedMax is the largest value drawn inside the month range. With stacked
// set it is the tallest month column of all years together.
func plottedMax(a traffic.Analysis, q traffic.Query, stacked bool) int {
	totals := make(map[int]int)
	max := 0
	for _, s := range a.Series {
		for _, p := range s.Points {
			if p.MonthIndex < 0 || p.MonthIndex < q.FromMonth || p.MonthIndex > q.ToMonth {
				continue
			}
			v := p.Value
			if stacked {
				totals[p.MonthIndex] += p.Value
				v = totals[p.MonthIndex]
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}

// niceCeiling rounds v up to 1, 2, 2.5 or 5 times a power of ten. Values
// below 1 give 1 so the axis never collapses.
func niceCeiling(v int) float64 {
	if v <= 1 {
		return 1
	}
	f := float64(v)
	exp := math.Pow(10, math.Floor(math.Log10(f)))
	for _, step := range []float64{1, 2, 2.5, 5, 10} {
		if step*exp >= f {
			return step * exp
		}
	}
	return 10 * exp
}
