package rates

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func rateTable(pairs map[string]string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(pairs))
	for k, v := range pairs {
		out[k] = decimal.RequireFromString(v)
	}
	return out
}

func TestCacheKey_NormalizesAndSorts(t *testing.T) {
	a := cacheKey("sgd", []string{"myr", "EUR"})
	b := cacheKey("SGD", []string{"EUR", "MYR"})
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
	if a != "SGD:EUR,MYR" {
		t.Fatalf("key = %q, want SGD:EUR,MYR", a)
	}
}

func TestRateCache_FreshHitAndExpiry(t *testing.T) {
	clock := time.Now()
	c := newRateCache(10*time.Minute, 64)
	c.now = func() time.Time { return clock }

	c.put("SGD:MYR", rateTable(map[string]string{"MYR": "3.40"}))

	if _, ok := c.get("SGD:MYR"); !ok {
		t.Fatal("expected fresh hit")
	}

	clock = clock.Add(10 * time.Minute)
	if _, ok := c.get("SGD:MYR"); ok {
		t.Fatal("expired entry must not be returned")
	}
}

func TestRateCache_PutPurgesExpiredPastThreshold(t *testing.T) {
	clock := time.Now()
	c := newRateCache(time.Minute, 2)
	c.now = func() time.Time { return clock }

	c.put("A:B", rateTable(map[string]string{"B": "1"}))
	c.put("C:D", rateTable(map[string]string{"D": "2"}))

	clock = clock.Add(2 * time.Minute)
	// Third put exceeds maxEntries and triggers the purge of the two
	// expired entries.
	c.put("E:F", rateTable(map[string]string{"F": "3"}))

	if got := c.len(); got != 1 {
		t.Fatalf("entries after purge = %d, want 1", got)
	}
	if _, ok := c.get("E:F"); !ok {
		t.Fatal("fresh entry should survive the purge")
	}
}

func TestRateCache_Clear(t *testing.T) {
	c := newRateCache(time.Minute, 64)
	c.put("A:B", rateTable(map[string]string{"B": "1"}))
	c.clear()
	if got := c.len(); got != 0 {
		t.Fatalf("entries after clear = %d, want 0", got)
	}
}
