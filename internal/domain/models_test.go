package domain

import (
	"reflect"
	"testing"
)

func TestCurrencyList_ValueScanRoundTrip(t *testing.T) {
	in := CurrencyList{"SGD", "MYR", "EUR"}

	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	s, ok := v.(string)
	if !ok {
		t.Fatalf("Value type = %T, want string", v)
	}

	var out CurrencyList
	if err := out.Scan(s); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip = %v, want %v", out, in)
	}
}

func TestCurrencyList_ScanNilAndBytes(t *testing.T) {
	var l CurrencyList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("Scan(nil) = %v, want empty", l)
	}

	if err := l.Scan([]byte(`["USD"]`)); err != nil {
		t.Fatalf("Scan(bytes): %v", err)
	}
	if len(l) != 1 || l[0] != "USD" {
		t.Fatalf("Scan(bytes) = %v, want [USD]", l)
	}

	if err := l.Scan(42); err == nil {
		t.Fatal("Scan(int): expected error")
	}
}

func TestCurrencyList_NilValueIsEmptyArray(t *testing.T) {
	var l CurrencyList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v.(string) != "[]" {
		t.Fatalf("nil list Value = %q, want %q", v, "[]")
	}
}

func TestCurrencyList_Dedupe(t *testing.T) {
	l := CurrencyList{"SGD", "EUR", "SGD", "MYR", "EUR"}
	got := l.Dedupe()
	want := CurrencyList{"SGD", "EUR", "MYR"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Dedupe = %v, want %v", got, want)
	}
}

func TestCurrencyList_Contains(t *testing.T) {
	l := CurrencyList{"SGD", "EUR"}
	if !l.Contains("EUR") {
		t.Fatal("Contains(EUR) = false, want true")
	}
	if l.Contains("USD") {
		t.Fatal("Contains(USD) = true, want false")
	}
}

func TestTableNames(t *testing.T) {
	if got := (UserPreference{}).TableName(); got != "user_preferences" {
		t.Fatalf("UserPreference table = %q", got)
	}
	if got := (ProcessedUpdate{}).TableName(); got != "processed_updates" {
		t.Fatalf("ProcessedUpdate table = %q", got)
	}
}
