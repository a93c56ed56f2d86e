package pkg

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount the way the shop reads it: R$ symbol, dot
// thousands separators, comma decimals, always two decimal places.
//
//	FormatBRL(1234.5) == "R$ 1.234,50"
func FormatBRL(v float64) string {
	return brPrinter.Sprintf("R$ %.2f", v)
}
