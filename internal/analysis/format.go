package analysis

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders whole dollars with thousands separators, e.g. "$1,234".
func FormatCurrency(v float64) string {
	return printer.Sprintf("$%.0f", v)
}
