package core

import "context"

// SummaryEntry is the raw per-market field map returned by the exchange's
// public summary endpoint. Volume fields are keyed "vol_<asset id>" and
// hold decimal strings.
type SummaryEntry map[string]string

// Client is the surface of the underlying exchange client consumed by the
// compatibility layer. Implementations own transport, authentication and
// timeouts; the layer treats every kind of failure alike.
type Client interface {
	ListMarkets(ctx context.Context) ([]Market, error)
	FetchTicker(ctx context.Context, pair string) (Ticker, error)
	FetchSummary(ctx context.Context) (map[string]SummaryEntry, error)
	SubmitOrder(ctx context.Context, order Order) (PlacedOrder, error)
}

// Validator decides whether an order's quantity and price are acceptable
// for a pair before it is submitted.
type Validator func(pair string, quantity, price float64, side SideType) bool
