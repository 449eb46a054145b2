package traffic

import "strings"

// Months is the calendar order used on every chart axis
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var fullMonths = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// MonthIndex returns the zero-based position of a month name. Abbreviations
// and full names are accepted in any case. Unknown names return -1.
func MonthIndex(name string) int {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := range Months {
		if n == strings.ToLower(Months[i]) || n == fullMonths[i] {
			return i
		}
	}
	return -1
}

// MonthLabel returns the abbreviation for a zero-based month index
func MonthLabel(i int) string {
	if i < 0 || i >= len(Months) {
		return ""
	}
	return Months[i]
}
