package core

import (
	"fmt"
	"strings"
)

// Limit is a single optional bound. A nil side leaves that side
// unconstrained.
type Limit struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// Allows reports whether value satisfies the bound.
func (l Limit) Allows(value float64) bool {
	if l.Min != nil && value < *l.Min {
		return false
	}
	if l.Max != nil && value > *l.Max {
		return false
	}
	return true
}

// LimitSet groups the four bounds governing order acceptance for a market.
type LimitSet struct {
	Amount   Limit `json:"amount"`
	Price    Limit `json:"price"`
	Cost     Limit `json:"cost"`
	Leverage Limit `json:"leverage"`
}

// Precision holds the decimal precision of amount and price for a market.
type Precision struct {
	Amount int `json:"amount"`
	Price  int `json:"price"`
}

// Market describes one tradable pair as reported by the exchange.
type Market struct {
	// Symbol is the engine-side pair name, e.g. "DRX/IDR".
	Symbol string
	// ID is the exchange-internal market identifier, e.g. "drxidr".
	ID      string
	Base    string
	Quote   string
	BaseID  string
	QuoteID string
	Active  bool

	Limits    LimitSet
	Precision Precision

	// Info keeps the raw exchange payload for the market untouched.
	Info map[string]any
}

// NewMarket creates a market record for a slash-separated symbol,
// deriving base and quote asset codes and lower-cased exchange ids.
func NewMarket(symbol, id string) (Market, error) {
	base, quote, err := SplitSymbol(symbol)
	if err != nil {
		return Market{}, err
	}

	return Market{
		Symbol:  symbol,
		ID:      id,
		Base:    base,
		Quote:   quote,
		BaseID:  strings.ToLower(base),
		QuoteID: strings.ToLower(quote),
		Active:  true,
	}, nil
}

// SplitSymbol splits a "BASE/QUOTE" pair symbol into its asset codes.
func SplitSymbol(symbol string) (base, quote string, err error) {
	parts := strings.Split(symbol, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid pair symbol: %q", symbol)
	}
	return parts[0], parts[1], nil
}
