package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dresoeta/indoshim/core"
)

func newSQLiteJournal(t *testing.T) core.Journal {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "journal.db")
	journal, err := NewSQLFromSQLite(dbPath, DefaultSQLConfig())
	require.NoError(t, err)
	return journal
}

func TestSQLJournal_RecordAndFilter(t *testing.T) {
	journal := newSQLiteJournal(t)

	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, journal.Record(ctx, &core.OverrideEvent{
		Pair: "DRX/IDR", Kind: core.EventLimitOverride, RecordedAt: base,
	}))
	require.NoError(t, journal.Record(ctx, &core.OverrideEvent{
		Pair: "DRX/IDR", Kind: core.EventPriceScale, Value: 5000, RecordedAt: base.Add(time.Second),
	}))
	require.NoError(t, journal.Record(ctx, &core.OverrideEvent{
		Pair: "BTC/IDR", Kind: core.EventLimitOverride, RecordedAt: base.Add(2 * time.Second),
	}))

	all, err := journal.Events(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	drx, err := journal.Events(ctx, core.WithPair("DRX/IDR"), core.WithKindIn(core.EventPriceScale))
	require.NoError(t, err)
	require.Len(t, drx, 1)
	require.Equal(t, 5000.0, drx[0].Value)
}

func TestSQLJournal_GeneratesIDs(t *testing.T) {
	journal := newSQLiteJournal(t)

	event := &core.OverrideEvent{Pair: "DRX/IDR", Kind: core.EventSyntheticMarket}
	require.NoError(t, journal.Record(context.Background(), event))
	require.NotEmpty(t, event.ID)
	require.False(t, event.RecordedAt.IsZero())
}
