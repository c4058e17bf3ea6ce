package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/649000/currency-coinverter-bot/internal/rates"
)

// ----- Fake rate fetcher -----

type fakeRateFetcher struct {
	base    string
	targets []string
	rates   map[string]decimal.Decimal
	err     error
	calls   int
}

func (f *fakeRateFetcher) FetchRates(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error) {
	f.calls++
	f.base = base
	f.targets = targets
	return f.rates, f.err
}

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return v
}

// ----- Tests -----

func TestConvert_EndToEnd(t *testing.T) {
	f := &fakeRateFetcher{rates: map[string]decimal.Decimal{"MYR": d(t, "3.40")}}
	s := NewConversionService(f)

	got, err := s.Convert(context.Background(), d(t, "50"), "SGD", []string{"MYR"})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got["MYR"].StringFixed(2) != "170.00" {
		t.Fatalf("MYR = %s, want 170.00", got["MYR"].StringFixed(2))
	}
	if f.base != "SGD" {
		t.Fatalf("resolved base = %q, want SGD", f.base)
	}
}

func TestConvert_ResolvesCountryInput(t *testing.T) {
	f := &fakeRateFetcher{rates: map[string]decimal.Decimal{"MYR": d(t, "3.40")}}
	s := NewConversionService(f)

	if _, err := s.Convert(context.Background(), d(t, "1"), "Singapore", []string{"MYR"}); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if f.base != "SGD" {
		t.Fatalf("resolved base = %q, want SGD", f.base)
	}
}

func TestConvert_ValidationOrderAndReasons(t *testing.T) {
	f := &fakeRateFetcher{}
	s := NewConversionService(f)
	ctx := context.Background()

	cases := []struct {
		name   string
		amount string
		from   string
		to     []string
		reason string
	}{
		{"zero amount", "0", "SGD", []string{"MYR"}, "amount must be positive"},
		{"negative amount", "-5", "SGD", []string{"MYR"}, "amount must be positive"},
		{"too large", "1000001", "SGD", []string{"MYR"}, "amount too large (max 1000000)"},
		{"empty from", "10", "  ", []string{"MYR"}, "source currency required"},
		{"unknown from", "10", "Atlantis", []string{"MYR"}, "unknown source currency: Atlantis"},
		{"no targets", "10", "SGD", nil, "target currencies required"},
		{"too many targets", "10", "SGD",
			[]string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"},
			"too many target currencies (max 10)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := s.Convert(ctx, d(t, c.amount), c.from, c.to)
			var ire *InvalidRequestError
			if !errors.As(err, &ire) {
				t.Fatalf("err = %v, want *InvalidRequestError", err)
			}
			if ire.Reason != c.reason {
				t.Fatalf("reason = %q, want %q", ire.Reason, c.reason)
			}
		})
	}
	if f.calls != 0 {
		t.Fatalf("rate fetcher called %d times during validation failures", f.calls)
	}
}

func TestConvert_UpstreamErrorsPassThrough(t *testing.T) {
	f := &fakeRateFetcher{err: rates.ErrUpstreamUnavailable}
	s := NewConversionService(f)

	_, err := s.Convert(context.Background(), d(t, "10"), "SGD", []string{"MYR"})
	if !errors.Is(err, rates.ErrUpstreamUnavailable) {
		t.Fatalf("err = %v, want ErrUpstreamUnavailable", err)
	}

	f.err = rates.ErrRateNotFound
	_, err = s.Convert(context.Background(), d(t, "10"), "SGD", []string{"MYR"})
	if !errors.Is(err, rates.ErrRateNotFound) {
		t.Fatalf("err = %v, want ErrRateNotFound", err)
	}
}

func TestConvert_RoundsEachTarget(t *testing.T) {
	f := &fakeRateFetcher{rates: map[string]decimal.Decimal{
		"MYR": d(t, "3.444444"),
		"EUR": d(t, "0.123456789"),
	}}
	s := NewConversionService(f)

	got, err := s.Convert(context.Background(), d(t, "100"), "SGD", []string{"MYR", "EUR"})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got["MYR"].StringFixed(2) != "344.44" {
		t.Fatalf("MYR = %s", got["MYR"].StringFixed(2))
	}
	if got["EUR"].StringFixed(2) != "12.35" {
		t.Fatalf("EUR = %s", got["EUR"].StringFixed(2))
	}
}
