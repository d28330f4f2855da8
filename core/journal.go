package core

import (
	"context"
	"slices"
	"time"
)

// EventKind classifies an override applied by the compatibility layer.
type EventKind string

const (
	// EventDegradedBootstrap records that market discovery exhausted its
	// retries and the layer continued on synthetic records.
	EventDegradedBootstrap EventKind = "DEGRADED_BOOTSTRAP"

	// EventSyntheticMarket records the insertion of a market the exchange
	// did not list.
	EventSyntheticMarket EventKind = "SYNTHETIC_MARKET"

	// EventLimitOverride records the relaxation of a market's limits.
	EventLimitOverride EventKind = "LIMIT_OVERRIDE"

	// EventPriceScale records a price scaled before wire transmission.
	EventPriceScale EventKind = "PRICE_SCALE"
)

// OverrideEvent is one entry of the diagnostic stream describing the
// corrections applied to exchange data and requests.
type OverrideEvent struct {
	ID         string    `db:"id" json:"id" gorm:"primaryKey"`
	Pair       string    `db:"pair" json:"pair"`
	Kind       EventKind `db:"kind" json:"kind"`
	Detail     string    `db:"detail" json:"detail"`
	Value      float64   `db:"value" json:"value"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
}

// EventFilter defines a function type for filtering journal events
type EventFilter func(event OverrideEvent) bool

// Journal defines the interface for override diagnostics storage
type Journal interface {
	// Record stores a new override event
	Record(ctx context.Context, event *OverrideEvent) error

	// Events retrieves events based on provided filters
	Events(ctx context.Context, filters ...EventFilter) ([]*OverrideEvent, error)
}

func WithPair(pair string) EventFilter {
	return func(event OverrideEvent) bool {
		return event.Pair == pair
	}
}

func WithKindIn(kinds ...EventKind) EventFilter {
	return func(event OverrideEvent) bool {
		return slices.Contains(kinds, event.Kind)
	}
}

func WithRecordedAtBeforeOrEqual(time time.Time) EventFilter {
	return func(event OverrideEvent) bool {
		return !event.RecordedAt.After(time)
	}
}

// NopJournal discards every event. It backs deployments that only want
// the log stream.
type NopJournal struct{}

func (NopJournal) Record(context.Context, *OverrideEvent) error { return nil }

func (NopJournal) Events(context.Context, ...EventFilter) ([]*OverrideEvent, error) {
	return nil, nil
}
