package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func TestConvert_RoundsHalfUpToTwoDigits(t *testing.T) {
	cases := []struct {
		amount, rate, want string
	}{
		{"100.00", "0.123456789", "12.35"},
		{"50", "3.40", "170.00"},
		{"1", "0.125", "0.13"}, // exact half rounds up
		{"1", "0.124", "0.12"},
		{"3", "0.3333333", "1.00"},
	}
	for _, c := range cases {
		got := Convert(dec(t, c.amount), dec(t, c.rate))
		if got.StringFixed(2) != c.want {
			t.Errorf("Convert(%s, %s) = %s, want %s", c.amount, c.rate, got.StringFixed(2), c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount, code, want string
	}{
		{"170", "MYR", "MYR 170.00"},
		{"1234.5", "sgd", "SGD 1,234.50"},
		{"1000000", "USD", "USD 1,000,000.00"},
	}
	for _, c := range cases {
		if got := FormatMoney(dec(t, c.amount), c.code); got != c.want {
			t.Errorf("FormatMoney(%s, %s) = %q, want %q", c.amount, c.code, got, c.want)
		}
	}
}

func TestFlagEmoji(t *testing.T) {
	if got := FlagEmoji("SGD"); got != "🇸🇬" {
		t.Errorf("FlagEmoji(SGD) = %q", got)
	}
	if got := FlagEmoji("USD"); got != "🇺🇸" {
		t.Errorf("FlagEmoji(USD) = %q", got)
	}
	if got := FlagEmoji(""); got != "💰" {
		t.Errorf("FlagEmoji(\"\") = %q, want money bag", got)
	}
}
