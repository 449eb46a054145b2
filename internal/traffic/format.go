package traffic

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 1,000
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
