package indodax

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/dresoeta/indoshim/core"
)

// applyOverrides makes every designated pair tradable: missing markets
// are inserted from their synthetic templates and the limit set of each
// designated pair is replaced with the configured override. Idempotent,
// never fails; pairs that are not designated are left bit-for-bit
// untouched. Works against an empty map after a degraded bootstrap.
func (e *Exchange) applyOverrides(ctx context.Context) {
	e.marketsMu.Lock()
	defer e.marketsMu.Unlock()

	if e.markets == nil {
		e.markets = make(map[string]core.Market, e.designated.Length())
	}

	for pair := range e.designated.Iter() {
		fix := e.fixes[pair]

		market, ok := e.markets[pair]
		if !ok {
			market = fix.Synthetic
			market.Symbol = pair
			e.log.WithField("pair", pair).Info("market missing from discovery, inserting synthetic record")
			e.record(ctx, core.EventSyntheticMarket, pair, "inserted synthetic market record", 0)
		}

		before := describeLimits(market.Limits)
		market.Limits = fix.Limits
		market.Active = true
		e.markets[pair] = market

		after := describeLimits(market.Limits)
		if before != after {
			e.log.WithField("pair", pair).Infof("limits relaxed: %s -> %s", before, after)
			e.record(ctx, core.EventLimitOverride, pair, fmt.Sprintf("%s -> %s", before, after), 0)
		}
	}
}

// describeLimits renders the minimums of a limit set for diagnostics.
func describeLimits(limits core.LimitSet) string {
	bounds := []string{
		describeBound("amount.min", limits.Amount.Min),
		describeBound("price.min", limits.Price.Min),
		describeBound("cost.min", limits.Cost.Min),
	}
	return strings.Join(bounds, " ")
}

func describeBound(name string, bound *float64) string {
	if bound == nil {
		return name + "=none"
	}
	return fmt.Sprintf("%s=%v", name, lo.FromPtr(bound))
}
