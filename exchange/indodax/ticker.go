package indodax

import (
	"context"
	"strconv"
	"strings"

	"github.com/dresoeta/indoshim/core"
)

// Ticker returns a market snapshot for pair whose volumes are guaranteed
// present, finite and positive. Missing or invalid fields are resolved in
// tiers: the wrapped ticker fetch, cross-derivation from the last price,
// the public summary endpoint and finally configured defaults. Enrichment
// failures never propagate; they only push resolution to the next tier.
func (e *Exchange) Ticker(ctx context.Context, pair string) core.Ticker {
	ticker, err := e.client.FetchTicker(ctx, pair)
	if err != nil {
		e.log.WithError(err).WithField("pair", pair).Debug("ticker fetch failed, resolving volumes from fallbacks")
		ticker = core.Ticker{}
	}
	ticker.Pair = pair

	if !ticker.ValidQuoteVolume() && ticker.ValidBaseVolume() && ticker.ValidLast() {
		// Quote volume derives from base volume; the reverse does not
		// hold because base volume is the anchor figure.
		ticker.QuoteVolume = ticker.BaseVolume * ticker.Last
		e.log.WithField("pair", pair).Debugf("quote volume derived from base volume: %v", ticker.QuoteVolume)
	}

	if !ticker.ValidBaseVolume() || !ticker.ValidQuoteVolume() {
		e.backfillFromSummary(ctx, &ticker)
	}

	e.applyVolumeDefaults(&ticker)

	return ticker
}

// backfillFromSummary fills still-missing volumes from the exchange's
// public summary endpoint, keyed by the exchange-internal market id.
func (e *Exchange) backfillFromSummary(ctx context.Context, ticker *core.Ticker) {
	market, ok := e.Market(ticker.Pair)
	if !ok {
		e.log.WithField("pair", ticker.Pair).Debug("no market record, skipping summary backfill")
		return
	}

	summary, err := e.client.FetchSummary(ctx)
	if err != nil {
		e.log.WithError(err).Debug("summary fetch failed, falling back to defaults")
		return
	}

	entry, ok := summary[market.ID]
	if !ok {
		e.log.WithField("market_id", market.ID).Debug("market absent from summary, falling back to defaults")
		return
	}

	if !ticker.ValidBaseVolume() {
		if volume, ok := summaryVolume(entry, market.Base); ok {
			ticker.BaseVolume = volume
		}
	}
	if !ticker.ValidQuoteVolume() {
		if volume, ok := summaryVolume(entry, market.Quote); ok {
			ticker.QuoteVolume = volume
		}
	}
}

// summaryVolume reads the per-asset volume field of a summary entry. The
// endpoint reports "0" for markets it has no data on, so zero counts as
// missing rather than as a true zero.
func summaryVolume(entry core.SummaryEntry, asset string) (float64, bool) {
	raw, ok := entry["vol_"+strings.ToLower(asset)]
	if !ok || raw == "" || raw == "0" {
		return 0, false
	}

	volume, err := strconv.ParseFloat(raw, 64)
	if err != nil || !core.IsPositive(volume) {
		return 0, false
	}
	return volume, true
}

// applyVolumeDefaults substitutes configured constants for any volume
// still missing after all data tiers.
func (e *Exchange) applyVolumeDefaults(ticker *core.Ticker) {
	base, quote := e.defaultBaseVolume, e.defaultQuoteVolume
	if fix, ok := e.fixes[ticker.Pair]; ok {
		if core.IsPositive(fix.BaseVolumeDefault) {
			base = fix.BaseVolumeDefault
		}
		if core.IsPositive(fix.QuoteVolumeDefault) {
			quote = fix.QuoteVolumeDefault
		}
	}

	if !ticker.ValidBaseVolume() {
		ticker.BaseVolume = base
		e.log.WithField("pair", ticker.Pair).Debugf("base volume defaulted to %v", base)
	}
	if !ticker.ValidQuoteVolume() {
		ticker.QuoteVolume = quote
		e.log.WithField("pair", ticker.Pair).Debugf("quote volume defaulted to %v", quote)
	}
}
