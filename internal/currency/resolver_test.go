package currency

import "testing"

func TestResolve_ISOCurrencyCodes(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "SGD", "MYR", "JPY", "GBP"} {
		got, ok := Resolve(code)
		if !ok || got != code {
			t.Errorf("Resolve(%q) = %q, %v; want %q, true", code, got, ok, code)
		}
	}
}

func TestResolve_IsCaseAndSpaceInsensitive(t *testing.T) {
	got, ok := Resolve("  sgd ")
	if !ok || got != "SGD" {
		t.Fatalf("Resolve(\"  sgd \") = %q, %v; want SGD, true", got, ok)
	}
}

func TestResolve_CountryCodes(t *testing.T) {
	cases := map[string]string{
		"US": "USD",
		"SG": "SGD",
		"MY": "MYR",
		"JP": "JPY",
		"GB": "GBP",
	}
	for in, want := range cases {
		got, ok := Resolve(in)
		if !ok || got != want {
			t.Errorf("Resolve(%q) = %q, %v; want %q, true", in, got, ok, want)
		}
	}
}

func TestResolve_CountryNames(t *testing.T) {
	cases := map[string]string{
		"Singapore":      "SGD",
		"malaysia":       "MYR",
		"JAPAN":          "JPY",
		"United Kingdom": "GBP",
	}
	for in, want := range cases {
		got, ok := Resolve(in)
		if !ok || got != want {
			t.Errorf("Resolve(%q) = %q, %v; want %q, true", in, got, ok, want)
		}
	}
}

func TestResolve_NoMatch(t *testing.T) {
	for _, in := range []string{"", "   ", "XX_NOT_A_CODE", "ZZZ", "Atlantis", "123"} {
		if got, ok := Resolve(in); ok {
			t.Errorf("Resolve(%q) = %q, true; want no match", in, got)
		}
	}
}

func TestIsValidCode(t *testing.T) {
	if !IsValidCode("usd") {
		t.Fatal("IsValidCode(usd) = false, want true")
	}
	if IsValidCode("ZZZ") {
		t.Fatal("IsValidCode(ZZZ) = true, want false")
	}
}
