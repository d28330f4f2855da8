package core

import (
	"math"
	"time"
)

// Ticker is a point-in-time market snapshot for one pair. It is built per
// fetch and never persisted.
type Ticker struct {
	Pair string

	// Last is the last traded price.
	Last float64

	// BaseVolume and QuoteVolume are the traded quantities of the base
	// and quote asset in the reference window. Exchanges occasionally
	// report them as zero or NaN; consumers must treat only finite
	// positive values as real data.
	BaseVolume  float64
	QuoteVolume float64

	Timestamp time.Time
}

// IsPositive reports whether v is a finite, strictly positive number.
func IsPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// ValidLast reports whether the snapshot carries a usable last price.
func (t Ticker) ValidLast() bool { return IsPositive(t.Last) }

// ValidBaseVolume reports whether the base volume is usable.
func (t Ticker) ValidBaseVolume() bool { return IsPositive(t.BaseVolume) }

// ValidQuoteVolume reports whether the quote volume is usable.
func (t Ticker) ValidQuoteVolume() bool { return IsPositive(t.QuoteVolume) }
