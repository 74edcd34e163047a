package violationstore

import (
	"context"
	"database/sql"
	"testing"

	"huur-backend/lib/finders"

	"github.com/stretchr/testify/require"
)

func setup(t testing.TB) Store {
	sqlite, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	store, err := NewStore(sqlite)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	violation := finders.ParkingViolation{
		CitationNumber: "C-1",
		Tag:            "AB123CD",
		State:          "FL",
		Amount:         50,
	}
	require.NoError(t, store.Record(ctx, "Blinkay", violation, true))
	require.NoError(t, store.Record(ctx, "Blinkay", finders.ParkingViolation{NoticeNumber: "N-2"}, false))
	require.NoError(t, store.Record(ctx, "Metropolis", finders.ParkingViolation{NoticeNumber: "N-3"}, true))

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), counts.Total)
	require.Equal(t, int64(2), counts.Submitted)

	byFinder, err := store.ByFinder(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), byFinder["Blinkay"])
	require.Equal(t, int64(1), byFinder["Metropolis"])
}

func TestEmptyStore(t *testing.T) {
	store := setup(t)

	counts, err := store.Counts(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(0), counts.Total)
	require.Equal(t, int64(0), counts.Submitted)
}
