package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// englishPrinter renders grouped decimal numbers ("1,234.50"). Monetary
// replies always use English grouping regardless of the host locale.
var englishPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount for display as "<CODE> <grouped number>",
// e.g. "SGD 1,234.50". The numeric part always carries two fraction digits.
func FormatMoney(amount decimal.Decimal, code string) string {
	f, _ := amount.Float64()
	n := englishPrinter.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(Scale),
		number.MaxFractionDigits(Scale),
	))
	return fmt.Sprintf("%s %s", strings.ToUpper(code), n)
}

// FlagEmoji returns the flag emoji for a currency code, derived from the
// code's leading two letters when they form a recognized region ("SGD" ->
// the SG flag). Codes without a matching region get a money-bag fallback.
func FlagEmoji(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "💰"
	}
	region := code[:2]
	if _, err := language.ParseRegion(region); err != nil {
		return "💰"
	}
	var b strings.Builder
	for _, r := range region {
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}
