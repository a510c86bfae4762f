package quote

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencySymbols = map[Currency]string{
	GBP: "£",
	USD: "$",
	EUR: "€",
}

var moneyPrinter = message.NewPrinter(language.BritishEnglish)

// FormatMoney renders v with the currency symbol and grouped thousands,
// e.g. £1,250.00.
func FormatMoney(v float64, c Currency) string {
	sym, ok := currencySymbols[c]
	if !ok {
		sym = string(c) + " "
	}
	return sym + moneyPrinter.Sprintf("%.2f", v)
}
