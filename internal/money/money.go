// Package money handles CLP amounts: integer pesos, no decimals.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// VAT is the Chilean IVA rate applied to all sale prices. Prices are stored
// tax-inclusive; Net and Tax exist for display only.
const VAT = 0.19

var printer = message.NewPrinter(language.MustParse("es-CL"))

// Format renders an amount with es-CL grouping: Format(5990) == "$5.990".
func Format(amount int64) string {
	return printer.Sprintf("$%d", amount)
}

// Net returns the pre-tax portion of a VAT-inclusive amount.
func Net(total int64) int64 {
	return int64(math.Round(float64(total) / (1 + VAT)))
}

// Tax returns the VAT portion of a VAT-inclusive amount.
func Tax(total int64) int64 {
	return total - Net(total)
}
