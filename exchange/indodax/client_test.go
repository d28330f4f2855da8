package indodax

import (
	"context"
	"errors"

	"github.com/dresoeta/indoshim/core"
)

var errUnavailable = errors.New("exchange unavailable")

// fakeClient is a scriptable core.Client double.
type fakeClient struct {
	markets       []core.Market
	marketsErr    error
	failListTimes int
	listCalls     int

	ticker    core.Ticker
	tickerErr error

	summary    map[string]core.SummaryEntry
	summaryErr error

	placed    core.PlacedOrder
	submitErr error
	submitted []core.Order
}

func (f *fakeClient) ListMarkets(context.Context) ([]core.Market, error) {
	f.listCalls++
	if f.marketsErr != nil {
		return nil, f.marketsErr
	}
	if f.listCalls <= f.failListTimes {
		return nil, errUnavailable
	}
	return f.markets, nil
}

func (f *fakeClient) FetchTicker(context.Context, string) (core.Ticker, error) {
	if f.tickerErr != nil {
		return core.Ticker{}, f.tickerErr
	}
	return f.ticker, nil
}

func (f *fakeClient) FetchSummary(context.Context) (map[string]core.SummaryEntry, error) {
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	return f.summary, nil
}

func (f *fakeClient) SubmitOrder(_ context.Context, order core.Order) (core.PlacedOrder, error) {
	f.submitted = append(f.submitted, order)
	if f.submitErr != nil {
		return core.PlacedOrder{}, f.submitErr
	}
	placed := f.placed
	placed.Pair = order.Pair
	placed.Type = order.Type
	placed.Side = order.Side
	placed.Quantity = order.Quantity
	if order.Price != nil {
		placed.Price = *order.Price
	}
	return placed, nil
}

// btcMarket is an ordinary, correctly listed pair used as a control.
func btcMarket() core.Market {
	market, _ := core.NewMarket("BTC/IDR", "btcidr")
	market.Limits = core.LimitSet{
		Amount: core.Limit{Min: ptr(0.0001)},
		Price:  core.Limit{Min: ptr(10_000.0)},
		Cost:   core.Limit{Min: ptr(10_000.0)},
	}
	return market
}

func ptr(v float64) *float64 { return &v }
