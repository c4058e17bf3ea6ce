package rates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Sentinel errors returned by FetchRates. Callers classify with errors.Is.
var (
	// ErrUpstreamUnavailable means the circuit is open or every retry was
	// exhausted; the caller should surface a "temporarily unavailable" reply.
	ErrUpstreamUnavailable = errors.New("exchange rate service unavailable")

	// ErrRateNotFound means the upstream answered but had no data for the
	// requested base currency or for any of the requested targets.
	ErrRateNotFound = errors.New("exchange rate not found")
)

// maxResponseBytes caps the upstream response body read. Full rate tables
// are a few hundred KiB at most.
const maxResponseBytes = 4 << 20

// Options configures a Client. Zero values are replaced with the defaults
// noted per field.
type Options struct {
	BaseURL          string        // upstream root, e.g. "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest"
	Timeout          time.Duration // per-attempt timeout (default 10s)
	Retries          int           // attempts per fetch (default 3)
	RetryDelay       time.Duration // pause between attempts (default 1s)
	CacheTTL         time.Duration // rate table freshness window (default 10m)
	CacheMaxEntries  int           // purge trigger threshold (default 64)
	BreakerThreshold int           // consecutive failures before opening (default 5)
	BreakerCooldown  time.Duration // open duration after the last failure (default 5m)
}

// Client fetches exchange rates for a base currency from the upstream
// provider. Each fetch retrieves the base currency's full rate table so that
// subsequent requests for other targets are served from cache. Safe for
// concurrent use; the cache and breaker carry their own synchronization.
type Client struct {
	http       *http.Client
	baseURL    string
	retries    int
	retryDelay time.Duration
	cache      *rateCache
	breaker    *Breaker
}

// NewClient constructs a Client from opts, applying defaults for zero values.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Retries <= 0 {
		opts.Retries = 3
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 10 * time.Minute
	}
	if opts.BreakerThreshold <= 0 {
		opts.BreakerThreshold = 5
	}
	if opts.BreakerCooldown <= 0 {
		opts.BreakerCooldown = 5 * time.Minute
	}
	return &Client{
		http:       &http.Client{Timeout: opts.Timeout},
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		retries:    opts.Retries,
		retryDelay: opts.RetryDelay,
		cache:      newRateCache(opts.CacheTTL, opts.CacheMaxEntries),
		breaker:    NewBreaker(opts.BreakerThreshold, opts.BreakerCooldown),
	}
}

// FetchRates returns the exchange rate from base to each requested target.
// Targets missing from the upstream table are omitted from the result; the
// call fails with ErrRateNotFound only when every target is missing.
//
// The cache is consulted first (it never holds expired data); a cache miss
// goes through the circuit breaker and then the upstream, with bounded
// retries and a fixed per-attempt timeout, so the call cannot block
// indefinitely.
func (c *Client) FetchRates(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error) {
	key := cacheKey(base, targets)

	if table, ok := c.cache.get(key); ok {
		cacheLookups.WithLabelValues("hit").Inc()
		return subsetRates(table, targets), nil
	}
	cacheLookups.WithLabelValues("miss").Inc()

	if !c.breaker.Allow() {
		breakerRejections.Inc()
		log.Warn().Str("base", base).Msg("circuit breaker open, rejecting rate fetch")
		return nil, fmt.Errorf("circuit open: %w", ErrUpstreamUnavailable)
	}

	table, err := c.fetchTable(ctx, base)
	if err != nil {
		c.breaker.Failure()
		return nil, err
	}

	out := subsetRates(table, targets)
	if len(out) == 0 {
		c.breaker.Failure()
		upstreamCalls.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("no rates from %s to %s: %w",
			strings.ToUpper(base), strings.Join(targets, ","), ErrRateNotFound)
	}

	c.cache.put(key, table)
	c.breaker.Success()
	upstreamCalls.WithLabelValues("success").Inc()
	return out, nil
}

// Clear drops all cached rate tables. Called on shutdown as best-effort
// cleanup.
func (c *Client) Clear() {
	c.cache.clear()
}

// fetchTable retrieves the full rate table for base from the upstream,
// retrying transient failures up to the configured attempt count. A
// definitive "no data for this currency" answer is not retried.
func (c *Client) fetchTable(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/v1/currencies/%s.json", c.baseURL, strings.ToLower(strings.TrimSpace(base)))

	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				upstreamCalls.WithLabelValues("error").Inc()
				return nil, fmt.Errorf("fetch canceled: %v: %w", ctx.Err(), ErrUpstreamUnavailable)
			case <-time.After(c.retryDelay):
			}
		}

		table, err := c.fetchOnce(ctx, url, base)
		if err == nil {
			return table, nil
		}
		if errors.Is(err, ErrRateNotFound) {
			upstreamCalls.WithLabelValues("not_found").Inc()
			return nil, err
		}
		lastErr = err
		log.Warn().Err(err).Str("base", base).Int("attempt", attempt+1).Msg("rate fetch attempt failed")
	}

	upstreamCalls.WithLabelValues("error").Inc()
	return nil, fmt.Errorf("upstream failed after %d attempts: %v: %w", c.retries, lastErr, ErrUpstreamUnavailable)
}

// fetchOnce performs a single upstream request and parses the rate table
// keyed by the lower-cased base currency.
func (c *Client) fetchOnce(ctx context.Context, url, base string) (map[string]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("upstream has no table for %s: %w", strings.ToUpper(base), ErrRateNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	node := gjson.GetBytes(body, strings.ToLower(strings.TrimSpace(base)))
	if !node.Exists() || !node.IsObject() {
		return nil, fmt.Errorf("response missing %s table: %w", strings.ToUpper(base), ErrRateNotFound)
	}

	table := make(map[string]decimal.Decimal, 64)
	node.ForEach(func(k, v gjson.Result) bool {
		rate, err := decimal.NewFromString(v.String())
		if err != nil {
			// Skip malformed entries instead of failing the table.
			return true
		}
		table[strings.ToUpper(k.String())] = rate
		return true
	})
	if len(table) == 0 {
		return nil, fmt.Errorf("empty rate table for %s: %w", strings.ToUpper(base), ErrRateNotFound)
	}
	return table, nil
}

// subsetRates picks the requested targets out of a full table, omitting
// targets the table does not carry.
func subsetRates(table map[string]decimal.Decimal, targets []string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(targets))
	for _, t := range targets {
		code := strings.ToUpper(strings.TrimSpace(t))
		if rate, ok := table[code]; ok {
			out[code] = rate
		}
	}
	return out
}
