package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"carrierdash/internal/traffic"
)

// Chart types offered by the dashboard
const (
	ChartLine = "line"
	ChartBar  = "bar"
)

// AllYears is the selector value meaning no year filter
const AllYears = "all"

func addFieldError(fieldErrors map[string][]string, key, message string) {
	fieldErrors[key] = append(fieldErrors[key], message)
}

func invalidField(key string) string {
	return fmt.Sprintf("Invalid field value for field %q.", key)
}

// ParseMonthParam retrieves a month from the query parameters. Both zero-based
// indexes ("0") and month names ("Jan", "january") are accepted. def is
// returned when the key is absent.
func ParseMonthParam(params url.Values, key string, def int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		return def, fieldErrors
	}

	if i, err := strconv.Atoi(val); err == nil {
		return i, fieldErrors
	}
	if i := traffic.MonthIndex(val); i >= 0 {
		return i, fieldErrors
	}

	addFieldError(fieldErrors, key, invalidField(key))
	return def, fieldErrors
}

// ParseYearsParam collects the year filter. Years may be repeated
// (years=2019&years=2020) or comma separated (years=2019,2020). The value
// "all", or no value, selects every year and returns nil.
func ParseYearsParam(params url.Values, key string, fieldErrors map[string][]string) ([]int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	var years []int
	seen := make(map[int]bool)
	for _, raw := range params[key] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if strings.EqualFold(part, AllYears) {
				return nil, fieldErrors
			}

			year, err := strconv.Atoi(part)
			if err != nil {
				addFieldError(fieldErrors, key, invalidField(key))
				continue
			}
			if err := ValidateYear(year); err != nil {
				addFieldError(fieldErrors, key, err.Error())
				continue
			}
			if !seen[year] {
				seen[year] = true
				years = append(years, year)
			}
		}
	}
	return years, fieldErrors
}

// ParseTrafficQuery builds a traffic query from the request parameters
// column, years, from and to. Missing parameters take the dashboard defaults.
func ParseTrafficQuery(params url.Values) (traffic.Query, map[string][]string) {
	fieldErrors := make(map[string][]string)
	q := traffic.DefaultQuery()

	if column := strings.ToUpper(strings.TrimSpace(params.Get("column"))); column != "" {
		if err := ValidateColumn(column); err != nil {
			addFieldError(fieldErrors, "column", err.Error())
		} else {
			q.Column = column
		}
	}

	q.Years, fieldErrors = ParseYearsParam(params, "years", fieldErrors)
	q.FromMonth, fieldErrors = ParseMonthParam(params, "from", q.FromMonth, fieldErrors)
	q.ToMonth, fieldErrors = ParseMonthParam(params, "to", q.ToMonth, fieldErrors)

	if len(fieldErrors["from"]) == 0 && len(fieldErrors["to"]) == 0 {
		if err := ValidateMonthRange(q.FromMonth, q.ToMonth); err != nil {
			addFieldError(fieldErrors, "from", err.Error())
		}
	}

	return q, fieldErrors
}

// ParseChartType returns the requested chart type, defaulting to a line chart
func ParseChartType(params url.Values) (string, map[string][]string) {
	fieldErrors := make(map[string][]string)
	switch chart := strings.ToLower(strings.TrimSpace(params.Get("chart"))); chart {
	case "", ChartLine:
		return ChartLine, fieldErrors
	case ChartBar:
		return ChartBar, fieldErrors
	default:
		addFieldError(fieldErrors, "chart", invalidField("chart"))
		return ChartLine, fieldErrors
	}
}

// DatasetParam returns the dataset selected by the "dataset" parameter, or ""
// when none was given.
func DatasetParam(params url.Values) (string, map[string][]string) {
	fieldErrors := make(map[string][]string)
	name := strings.TrimSpace(params.Get("dataset"))
	if name == "" {
		return "", fieldErrors
	}
	if err := ValidateID(name); err != nil {
		addFieldError(fieldErrors, "dataset", err.Error())
		return "", fieldErrors
	}
	return name, fieldErrors
}

