// Package textutil formats values for user-facing output.
package textutil

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// GroupedInt renders n with digit grouping separators (1234567 -> "1,234,567").
func GroupedInt(n int) string {
	return printer.Sprintf("%d", n)
}
