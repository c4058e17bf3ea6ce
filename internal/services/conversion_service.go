// Package services – ConversionService
//
// This file implements the ConversionService, which validates a conversion
// request and orchestrates the currency resolver, the resilient rate client,
// and the conversion arithmetic into a result mapping. Validation failures
// are reported as *InvalidRequestError with a specific reason; upstream
// failures pass through unchanged so callers can classify them with
// errors.Is against the rates package sentinels.
package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/649000/currency-coinverter-bot/internal/currency"
)

// RateFetcher is the rate client contract required by ConversionService.
type RateFetcher interface {
	// FetchRates returns the exchange rate from base to each requested
	// target, omitting targets the upstream has no data for.
	FetchRates(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error)
}

// ConversionService validates and executes currency conversions.
type ConversionService struct {
	// Rates is the resilient rate client used for lookups.
	Rates RateFetcher

	// MaxAmount caps the amount a single request may convert.
	MaxAmount decimal.Decimal
	// MaxTargets caps the number of target currencies per request.
	MaxTargets int
}

// NewConversionService constructs a ConversionService with the standard
// request ceilings.
func NewConversionService(rates RateFetcher) *ConversionService {
	return &ConversionService{
		Rates:      rates,
		MaxAmount:  decimal.NewFromInt(1_000_000),
		MaxTargets: 10,
	}
}

// Convert turns amount units of the from currency into each of the to
// currencies, returning a code → converted-amount mapping rounded to two
// fraction digits.
//
// Validation runs in a fixed order and fails with *InvalidRequestError:
// amount must be positive and at most MaxAmount; from must be non-empty and
// resolvable to a currency code; to must be non-empty and hold at most
// MaxTargets entries. Targets the upstream has no rate for are omitted from
// the result.
func (s *ConversionService) Convert(ctx context.Context, amount decimal.Decimal, from string, to []string) (map[string]decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return nil, invalidRequest("amount must be positive")
	}
	if amount.GreaterThan(s.MaxAmount) {
		return nil, invalidRequest("amount too large (max %s)", s.MaxAmount.String())
	}
	if strings.TrimSpace(from) == "" {
		return nil, invalidRequest("source currency required")
	}
	base, ok := currency.Resolve(from)
	if !ok {
		return nil, invalidRequest("unknown source currency: %s", from)
	}
	if len(to) == 0 {
		return nil, invalidRequest("target currencies required")
	}
	if len(to) > s.MaxTargets {
		return nil, invalidRequest("too many target currencies (max %d)", s.MaxTargets)
	}

	rates, err := s.Rates.FetchRates(ctx, base, to)
	if err != nil {
		return nil, err
	}

	out := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		out[code] = currency.Convert(amount, rate)
	}
	return out, nil
}
