package indodax

import (
	"context"
	"fmt"
	"time"

	"github.com/jpillora/backoff"

	"github.com/dresoeta/indoshim/core"
)

// newRetryDelay creates a constant-interval backoff for bootstrap.
// Exponential growth buys nothing here: either the exchange answers
// within a few seconds or the caller proceeds degraded.
func (e *Exchange) newRetryDelay() *backoff.Backoff {
	return &backoff.Backoff{
		Min:    e.retryDelay,
		Max:    e.retryDelay,
		Factor: 1,
	}
}

// loadMarkets fetches the exchange market list and populates the shared
// market map, retrying up to the configured budget with a fixed delay.
// On exhaustion it returns core.ErrMetadataUnavailable; the caller is
// expected to continue with an empty map rather than abort.
func (e *Exchange) loadMarkets(ctx context.Context) error {
	retry := e.newRetryDelay()

	var lastErr error
	for attempt := 1; attempt <= e.maxRetries; attempt++ {
		markets, err := e.client.ListMarkets(ctx)
		if err == nil {
			bySymbol := make(map[string]core.Market, len(markets))
			for _, market := range markets {
				bySymbol[market.Symbol] = market
			}

			e.marketsMu.Lock()
			e.markets = bySymbol
			e.marketsMu.Unlock()

			e.log.WithField("markets", len(bySymbol)).Infof("market metadata loaded on attempt %d", attempt)
			return nil
		}

		lastErr = err
		e.log.WithError(err).Warnf("market listing failed, attempt %d/%d", attempt, e.maxRetries)

		if attempt < e.maxRetries {
			time.Sleep(retry.Duration())
		}
	}

	e.marketsMu.Lock()
	e.markets = make(map[string]core.Market)
	e.marketsMu.Unlock()

	return fmt.Errorf("%w after %d attempts: %v", core.ErrMetadataUnavailable, e.maxRetries, lastErr)
}
