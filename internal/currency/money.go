package currency

import "github.com/shopspring/decimal"

// Scale is the fixed number of fraction digits for converted amounts.
const Scale = 2

// Convert multiplies amount by rate and rounds the product to two fraction
// digits. Rounding is half away from zero, which for the positive amounts
// and rates handled here is exactly round-half-up. The rule is applied in
// decimal arithmetic so results do not vary by platform or locale.
func Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(Scale)
}
