package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// countPrinter renders grouped digits ("2,500,000") for English locales.
var countPrinter = message.NewPrinter(language.English)

// FormatCount renders a raw count with locale digit grouping. Counts that
// are already display strings ("2.5M") pass through ParseCount upstream and
// never reach this function.
func FormatCount(n int64) string {
	return countPrinter.Sprintf("%d", n)
}
