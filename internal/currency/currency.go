// Package currency formats prices for display in Brazilian reais.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbol prefixes every formatted amount.
const Symbol = "R$"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format renders value as BRL with pt-BR separators, e.g. "R$ 1.234,50".
// Negative amounts carry a leading minus: "-R$ 2,00".
func Format(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = math.Abs(value)
	}
	return sign + Symbol + " " + printer.Sprint(number.Decimal(value, number.Scale(2)))
}
