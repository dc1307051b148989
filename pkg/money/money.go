// Package money formatea importes para salidas legibles (PDF y CLI).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Format devuelve el importe con separador de miles y dos decimales: "$1,234.50".
func Format(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "$" + Amount(d)
}

// Amount igual que Format pero sin símbolo de moneda: "1,234.50".
func Amount(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// Quantity formatea cantidades sin ceros finales innecesarios: "2", "1.5".
func Quantity(d decimal.Decimal) string {
	return d.Round(2).String()
}
