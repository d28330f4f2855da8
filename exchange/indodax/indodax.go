// Package indodax compensates for known data and request defects the
// Indodax exchange exposes for non-standard pairs. It wraps the raw
// exchange client behind the same surface and corrects market metadata,
// ticker volumes and outgoing order prices for a configured set of pairs,
// leaving every other pair untouched.
package indodax

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/StudioSol/set"
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/dresoeta/indoshim/core"
	"github.com/dresoeta/indoshim/pkg/logger"
)

// ---------------------
// Constants and Errors
// ---------------------

var (
	ErrMissingClient = errors.New("missing exchange client")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Defaults applied when options do not say otherwise.
const (
	DefaultMaxRetries  = 3
	DefaultRetryDelay  = time.Second
	DefaultScaleFactor = 100.0

	// Fallback daily volumes for pairs without configured defaults.
	DefaultBaseVolume  = 1_000_000.0
	DefaultQuoteVolume = 150_000_000.0
)

// ---------------------
// Types
// ---------------------

// OverridePolicy selects which numeric regime the limit overrides trust.
// Exactly one policy is active per deployment.
type OverridePolicy string

const (
	// PolicyNearZero relaxes minimums to near-zero values. The engine
	// submits true, unscaled prices.
	PolicyNearZero OverridePolicy = "near-zero"

	// PolicyScaleCompensated keeps limits consistent with prices that are
	// multiplied by a fixed factor before transmission. Used when the true
	// price sits below the exchange's real minimum.
	PolicyScaleCompensated OverridePolicy = "scale-compensated"
)

// PairFix describes the full correction applied to one designated pair.
type PairFix struct {
	// Synthetic is inserted when discovery does not list the pair even
	// though it is tradable.
	Synthetic core.Market

	// Limits replaces the pair's limit set after bootstrap.
	Limits core.LimitSet

	// ScaleFactor multiplies limit prices on the wire. A factor of 1
	// disables scaling; factors above 1 require PolicyScaleCompensated.
	ScaleFactor float64

	// BaseVolumeDefault and QuoteVolumeDefault replace the global volume
	// fallbacks for this pair when set.
	BaseVolumeDefault  float64
	QuoteVolumeDefault float64
}

// Exchange wraps a core.Client and applies the configured pair fixes. It
// satisfies the same call surface the client exposes, so the trading
// engine composes with it transparently.
type Exchange struct {
	client    core.Client
	log       logger.Logger
	journal   core.Journal
	validator core.Validator

	policy     OverridePolicy
	maxRetries int
	retryDelay time.Duration

	defaultBaseVolume  float64
	defaultQuoteVolume float64

	fixes      map[string]PairFix
	designated *set.LinkedHashSetString

	marketsMu sync.RWMutex
	markets   map[string]core.Market
	degraded  bool
}

// Option configures an Exchange during construction.
type Option func(*Exchange) error

// ---------------------
// Constructor
// ---------------------

// NewExchange wraps client, loads market metadata with bounded retries and
// relaxes the limits of every designated pair. A failed bootstrap is not
// fatal: the exchange continues in degraded mode on synthetic records.
func NewExchange(ctx context.Context, client core.Client, options ...Option) (*Exchange, error) {
	if client == nil {
		return nil, ErrMissingClient
	}

	exchange := &Exchange{
		client:             client,
		log:                logger.Nop(),
		journal:            core.NopJournal{},
		policy:             PolicyNearZero,
		maxRetries:         DefaultMaxRetries,
		retryDelay:         DefaultRetryDelay,
		defaultBaseVolume:  DefaultBaseVolume,
		defaultQuoteVolume: DefaultQuoteVolume,
		fixes:              make(map[string]PairFix),
		designated:         set.NewLinkedHashSetString(),
	}

	for _, option := range options {
		if err := option(exchange); err != nil {
			return nil, err
		}
	}

	if err := exchange.validate(); err != nil {
		return nil, err
	}

	if err := exchange.loadMarkets(ctx); err != nil {
		exchange.degraded = true
		exchange.log.WithError(err).Warn("market metadata unavailable, continuing in degraded mode")
		exchange.record(ctx, core.EventDegradedBootstrap, "", err.Error(), float64(exchange.maxRetries))
	}

	exchange.applyOverrides(ctx)

	return exchange, nil
}

// ---------------------
// Options
// ---------------------

// WithLogger sets the logger used for diagnostics.
func WithLogger(log logger.Logger) Option {
	return func(e *Exchange) error {
		e.log = log
		return nil
	}
}

// WithJournal sets the journal receiving applied-override events.
func WithJournal(journal core.Journal) Option {
	return func(e *Exchange) error {
		e.journal = journal
		return nil
	}
}

// WithPolicy selects the limit-override policy for the deployment.
func WithPolicy(policy OverridePolicy) Option {
	return func(e *Exchange) error {
		e.policy = policy
		return nil
	}
}

// WithPairFix registers a designated pair and its correction.
func WithPairFix(pair string, fix PairFix) Option {
	return func(e *Exchange) error {
		if _, _, err := core.SplitSymbol(pair); err != nil {
			return err
		}
		e.fixes[pair] = fix
		e.designated.Add(pair)
		return nil
	}
}

// WithRetry sets the bootstrap retry budget and the fixed delay between
// attempts.
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(e *Exchange) error {
		e.maxRetries = maxRetries
		e.retryDelay = delay
		return nil
	}
}

// WithRetryDelayString sets the bootstrap retry delay from a duration
// string such as "500ms" or "2s".
func WithRetryDelayString(raw string) Option {
	return func(e *Exchange) error {
		delay, err := str2duration.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("failed to parse retry delay %q: %w", raw, err)
		}
		e.retryDelay = delay
		return nil
	}
}

// WithDefaultVolumes sets the global fallback volumes used when every
// backfill tier fails for a pair without configured defaults.
func WithDefaultVolumes(base, quote float64) Option {
	return func(e *Exchange) error {
		e.defaultBaseVolume = base
		e.defaultQuoteVolume = quote
		return nil
	}
}

// WithValidator replaces the default limit check used for pairs that are
// not designated.
func WithValidator(validator core.Validator) Option {
	return func(e *Exchange) error {
		e.validator = validator
		return nil
	}
}

// Exchange exposes the same surface it wraps, so it can stand in for the
// raw client anywhere.
var _ core.Client = (*Exchange)(nil)

// ---------------------
// Client Surface
// ---------------------

// ListMarkets serves the corrected market list from the shared map, so
// callers see synthetic records and relaxed limits instead of the raw
// exchange listing.
func (e *Exchange) ListMarkets(context.Context) ([]core.Market, error) {
	e.marketsMu.RLock()
	defer e.marketsMu.RUnlock()

	markets := make([]core.Market, 0, len(e.markets))
	for _, market := range e.markets {
		markets = append(markets, market)
	}
	return markets, nil
}

// FetchTicker adapts Ticker to the client surface. The error is always
// nil: volume resolution degrades to defaults rather than failing.
func (e *Exchange) FetchTicker(ctx context.Context, pair string) (core.Ticker, error) {
	return e.Ticker(ctx, pair), nil
}

// FetchSummary passes the raw summary through unchanged.
func (e *Exchange) FetchSummary(ctx context.Context) (map[string]core.SummaryEntry, error) {
	return e.client.FetchSummary(ctx)
}

// ---------------------
// Accessors
// ---------------------

// Market returns the record for pair, if known.
func (e *Exchange) Market(pair string) (core.Market, bool) {
	e.marketsMu.RLock()
	defer e.marketsMu.RUnlock()

	market, ok := e.markets[pair]
	return market, ok
}

// Markets returns a copy of the market map.
func (e *Exchange) Markets() map[string]core.Market {
	e.marketsMu.RLock()
	defer e.marketsMu.RUnlock()

	markets := make(map[string]core.Market, len(e.markets))
	for symbol, market := range e.markets {
		markets[symbol] = market
	}
	return markets
}

// Degraded reports whether bootstrap exhausted its retries and the
// exchange is running on synthetic records.
func (e *Exchange) Degraded() bool { return e.degraded }

// ---------------------
// Private Methods
// ---------------------

// validate checks the assembled configuration before any client call.
func (e *Exchange) validate() error {
	if e.maxRetries < 1 {
		return fmt.Errorf("%w: retry budget must be at least 1", ErrInvalidConfig)
	}
	if e.retryDelay < 0 {
		return fmt.Errorf("%w: negative retry delay", ErrInvalidConfig)
	}
	if !core.IsPositive(e.defaultBaseVolume) || !core.IsPositive(e.defaultQuoteVolume) {
		return fmt.Errorf("%w: default volumes must be positive", ErrInvalidConfig)
	}

	switch e.policy {
	case PolicyNearZero, PolicyScaleCompensated:
	default:
		return fmt.Errorf("%w: unsupported override policy %q", ErrInvalidConfig, e.policy)
	}

	for pair, fix := range e.fixes {
		scaled := fix.ScaleFactor > 1
		if scaled && e.policy != PolicyScaleCompensated {
			return fmt.Errorf("%w: scale factor %.0f on %s requires the scale-compensated policy",
				ErrInvalidConfig, fix.ScaleFactor, pair)
		}
		if !scaled && e.policy == PolicyScaleCompensated {
			return fmt.Errorf("%w: %s needs a scale factor above 1 under the scale-compensated policy",
				ErrInvalidConfig, pair)
		}
	}

	return nil
}

// record journals an applied override; failures only affect diagnostics
// and are logged, never surfaced.
func (e *Exchange) record(ctx context.Context, kind core.EventKind, pair, detail string, value float64) {
	event := &core.OverrideEvent{
		Pair:       pair,
		Kind:       kind,
		Detail:     detail,
		Value:      value,
		RecordedAt: time.Now().UTC(),
	}

	if err := e.journal.Record(ctx, event); err != nil {
		e.log.WithError(err).Warn("failed to journal override event")
	}
}
