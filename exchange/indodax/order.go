package indodax

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/dresoeta/indoshim/core"
)

// SubmitOrder forwards an order intent to the exchange. For a designated
// pair carrying a limit price under scale compensation, the price placed
// on the wire is multiplied by the pair's scale factor; the caller's
// intent and the returned order keep the engine-visible price for PnL,
// display and later validation. Submission failures propagate unchanged
// and are never retried, to avoid duplicate fills.
func (e *Exchange) SubmitOrder(ctx context.Context, order core.Order) (core.PlacedOrder, error) {
	fix, designated := e.fixes[order.Pair]
	if !designated || order.Price == nil || fix.ScaleFactor <= 1 {
		return e.client.SubmitOrder(ctx, order)
	}

	enginePrice := *order.Price
	wirePrice := enginePrice * fix.ScaleFactor

	wire := order
	wire.Price = lo.ToPtr(wirePrice)

	e.log.WithField("pair", order.Pair).Infof("scaling order price: %v -> %v", enginePrice, wirePrice)
	e.record(ctx, core.EventPriceScale, order.Pair,
		fmt.Sprintf("price %v scaled by %v for transmission", enginePrice, fix.ScaleFactor), wirePrice)

	placed, err := e.client.SubmitOrder(ctx, wire)
	if err != nil {
		return core.PlacedOrder{}, err
	}

	placed.Price = enginePrice
	return placed, nil
}

// ValidateOrder reports whether an order passes limit validation.
// Designated pairs always pass: the upstream generic check is known to
// reject their legitimately tiny notional values. Other pairs go through
// the configured validator, or the market-map limit check by default.
func (e *Exchange) ValidateOrder(pair string, quantity, price float64, side core.SideType) bool {
	if e.designated.InArray(pair) {
		e.log.WithField("pair", pair).Debugf("bypassing limit check: %v @ %v", quantity, price)
		return true
	}

	if e.validator != nil {
		return e.validator(pair, quantity, price, side)
	}

	if err := e.checkLimits(pair, quantity, price); err != nil {
		e.log.WithError(err).WithField("pair", pair).Debug("order rejected by limit check")
		return false
	}
	return true
}

// checkLimits validates quantity, price and cost against the pair's
// limit set.
func (e *Exchange) checkLimits(pair string, quantity, price float64) error {
	market, ok := e.Market(pair)
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrMarketNotFound, pair)
	}

	if !market.Limits.Amount.Allows(quantity) {
		return fmt.Errorf("%w: %v for %s", core.ErrInvalidQuantity, quantity, pair)
	}
	if !market.Limits.Price.Allows(price) {
		return fmt.Errorf("%w: %v for %s", core.ErrInvalidPrice, price, pair)
	}
	if !market.Limits.Cost.Allows(quantity * price) {
		return fmt.Errorf("%w: %v for %s", core.ErrInvalidCost, quantity*price, pair)
	}

	return nil
}
