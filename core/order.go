package core

import "time"

// SideType represents the direction of an order (BUY or SELL)
type SideType string

// OrderType represents the type of order (LIMIT, MARKET, etc.)
type OrderType string

// OrderStatusType represents the status of an order (NEW, FILLED, etc.)
type OrderStatusType string

// Order side constants
const (
	SideTypeBuy  SideType = "BUY"
	SideTypeSell SideType = "SELL"
)

// Order type constants
const (
	OrderTypeLimit      OrderType = "LIMIT"
	OrderTypeLimitMaker OrderType = "LIMIT_MAKER"
	OrderTypeMarket     OrderType = "MARKET"
)

// Order status constants
const (
	OrderStatusTypeNew             OrderStatusType = "NEW"
	OrderStatusTypePartiallyFilled OrderStatusType = "PARTIALLY_FILLED"
	OrderStatusTypeFilled          OrderStatusType = "FILLED"
	OrderStatusTypeCanceled        OrderStatusType = "CANCELED"
	OrderStatusTypeRejected        OrderStatusType = "REJECTED"
)

// Order is an order intent produced by the trading engine. Price is nil
// for market orders. Params carries free-form exchange parameters.
type Order struct {
	Pair     string
	Type     OrderType
	Side     SideType
	Quantity float64
	Price    *float64
	Params   map[string]any
}

// PlacedOrder is the exchange's handle for an accepted order. Price holds
// the engine-visible price, which may differ from the value that was put
// on the wire.
type PlacedOrder struct {
	ExchangeID int64
	Pair       string
	Type       OrderType
	Side       SideType
	Status     OrderStatusType
	Quantity   float64
	Price      float64
	CreatedAt  time.Time
}
