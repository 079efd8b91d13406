// Package wording formats player-facing phrases whose shape depends on
// a count, backed by the x/text plural rules.
package wording

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const triesKey = "%d tries"

func init() {
	message.Set(language.AmericanEnglish, triesKey,
		plural.Selectf(1, "%d",
			plural.One, "%d try",
			plural.Other, "%d tries",
		))
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Tries renders an attempt count with the right singular or plural noun,
// e.g. "1 try" or "5 tries".
func Tries(count int) string {
	return printer.Sprintf(triesKey, count)
}
