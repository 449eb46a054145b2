package traffic

import (
	"path/filepath"
	"strings"
	"unicode"
)

// AirlineName strips the file extension from a dataset name:
// "AllCarriers.csv" becomes "AllCarriers".
func AirlineName(dataset string) string {
	return strings.TrimSuffix(dataset, filepath.Ext(dataset))
}

// AirlineLabel turns a dataset name into a display label by splitting the
// camel-cased airline name: "AmericanAirlines.csv" becomes "American Airlines".
func AirlineLabel(dataset string) string {
	name := []rune(AirlineName(dataset))

	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			prev := name[i-1]
			nextLower := i+1 < len(name) && unicode.IsLower(name[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune(' ')
			}
		}
		if r == '_' || r == '-' {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
