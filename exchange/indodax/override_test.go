package indodax

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dresoeta/indoshim/core"
	"github.com/dresoeta/indoshim/storage"
)

func TestApplyOverrides_NonDesignatedUntouched(t *testing.T) {
	control := btcMarket()
	client := &fakeClient{markets: []core.Market{control}}

	exchange, err := NewExchange(context.Background(), client,
		WithPairFix(PairDRXIDR, DRXIDRFix(PolicyNearZero)))
	require.NoError(t, err)

	market, ok := exchange.Market("BTC/IDR")
	require.True(t, ok)
	require.Equal(t, control.Limits, market.Limits, "control pair limits must be bit-for-bit unchanged")
}

func TestApplyOverrides_InsertsSyntheticMarket(t *testing.T) {
	client := &fakeClient{markets: []core.Market{btcMarket()}}

	exchange, err := NewExchange(context.Background(), client,
		WithPairFix(PairDRXIDR, DRXIDRFix(PolicyNearZero)))
	require.NoError(t, err)

	market, ok := exchange.Market(PairDRXIDR)
	require.True(t, ok)
	require.Equal(t, "drxidr", market.ID)
	require.Equal(t, "DRX", market.Base)
	require.Equal(t, "IDR", market.Quote)
	require.True(t, market.Active)
	require.Equal(t, core.Precision{Amount: 8, Price: 8}, market.Precision)
}

func TestApplyOverrides_RelaxesListedMarket(t *testing.T) {
	// The exchange lists DRX/IDR but with minimums that reject realistic
	// orders: amount.min ~66.5 and price.min 10000.
	listed := DRXIDRFix(PolicyNearZero).Synthetic
	client := &fakeClient{markets: []core.Market{listed, btcMarket()}}

	exchange, err := NewExchange(context.Background(), client,
		WithPairFix(PairDRXIDR, DRXIDRFix(PolicyNearZero)))
	require.NoError(t, err)

	market, ok := exchange.Market(PairDRXIDR)
	require.True(t, ok)
	require.Equal(t, 0.1, *market.Limits.Amount.Min)
	require.Equal(t, 0.0, *market.Limits.Price.Min)
	require.Equal(t, 0.0, *market.Limits.Cost.Min)

	// An order of amount 2.0 at price 50, rejected before, passes now.
	require.True(t, market.Limits.Amount.Allows(2.0))
	require.True(t, market.Limits.Price.Allows(50))
	require.True(t, market.Limits.Cost.Allows(2.0*50))
}

func TestApplyOverrides_ScaleCompensatedLimits(t *testing.T) {
	client := &fakeClient{markets: []core.Market{}}

	exchange, err := NewExchange(context.Background(), client,
		WithPolicy(PolicyScaleCompensated),
		WithPairFix(PairDRXIDR, DRXIDRFix(PolicyScaleCompensated)))
	require.NoError(t, err)

	market, ok := exchange.Market(PairDRXIDR)
	require.True(t, ok)
	require.Nil(t, market.Limits.Price.Min, "price minimum is dropped under scale compensation")
	require.Equal(t, 1.0, *market.Limits.Amount.Min)
	require.Equal(t, 10_000.0, *market.Limits.Cost.Min)
}

func TestApplyOverrides_Idempotent(t *testing.T) {
	client := &fakeClient{markets: []core.Market{btcMarket()}}
	journal, err := storage.NewBuntFromMemory()
	require.NoError(t, err)

	exchange, err := NewExchange(context.Background(), client,
		WithJournal(journal),
		WithPairFix(PairDRXIDR, DRXIDRFix(PolicyNearZero)))
	require.NoError(t, err)

	first := exchange.Markets()
	exchange.applyOverrides(context.Background())
	require.Equal(t, first, exchange.Markets())

	// The second pass changes nothing, so no extra override events.
	events, err := journal.Events(context.Background(), core.WithKindIn(core.EventLimitOverride))
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestApplyOverrides_JournalsAppliedOverrides(t *testing.T) {
	journal, err := storage.NewBuntFromMemory()
	require.NoError(t, err)

	client := &fakeClient{markets: []core.Market{btcMarket()}}
	_, err = NewExchange(context.Background(), client,
		WithJournal(journal),
		WithPairFix(PairDRXIDR, DRXIDRFix(PolicyNearZero)))
	require.NoError(t, err)

	events, err := journal.Events(context.Background(), core.WithPair(PairDRXIDR))
	require.NoError(t, err)
	require.Len(t, events, 2)

	kinds := []core.EventKind{events[0].Kind, events[1].Kind}
	require.Contains(t, kinds, core.EventSyntheticMarket)
	require.Contains(t, kinds, core.EventLimitOverride)
}
