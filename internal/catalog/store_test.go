package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klinika/backend-billing/internal/pricing"
)

func ptr(s string) *string { return &s }

func TestStoreSeedAndVersion(t *testing.T) {
	store := NewStore(sampleItems())
	require.EqualValues(t, 1, store.Version())
	require.Equal(t, 4, store.Len())
}

func TestStoreDedupesSeed(t *testing.T) {
	items := append(sampleItems(), sampleItems()[0])
	store := NewStore(items)
	require.Equal(t, 4, store.Len())
}

func TestStoreSnapshotIsImmutable(t *testing.T) {
	store := NewStore(sampleItems())
	snap := store.Snapshot()

	_, err := store.Update("lab1", Patch{Name: ptr("Renamed")})
	require.NoError(t, err)

	// the earlier snapshot still holds the old name
	require.Equal(t, "Complete Blood Count (CBC)", snap.Items[0].Name)
	require.EqualValues(t, 1, snap.Version)
	require.EqualValues(t, 2, store.Version())
}

func TestStoreCreate(t *testing.T) {
	store := NewStore(nil)
	item := store.Create(CreateInput{Name: " MRI Scan ", Price: 800000, Category: "Radiology", Type: TypeOutpatient})
	require.NotEmpty(t, item.ID)
	require.Equal(t, "MRI Scan", item.Name)
	require.EqualValues(t, 2, store.Version())

	got, err := store.Get(item.ID)
	require.NoError(t, err)
	require.Equal(t, item, got)
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore(sampleItems())
	price := pricing.Money(40000)
	updated, err := store.Update("lab1", Patch{Price: &price})
	require.NoError(t, err)
	require.EqualValues(t, 40000, updated.Price)
	// untouched fields survive
	require.Equal(t, "Complete Blood Count (CBC)", updated.Name)

	_, err = store.Update("missing", Patch{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(sampleItems())
	require.NoError(t, store.Delete("lab1"))
	_, err := store.Get("lab1")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, store.Delete("lab1"), ErrNotFound)
}

func TestStoreResolve(t *testing.T) {
	store := NewStore(sampleItems())
	item, ok := store.Resolve("room1")
	require.True(t, ok)
	require.Equal(t, "Private Room", item.Name)
	require.True(t, item.Daily)

	_, ok = store.Resolve("missing")
	require.False(t, ok)
}
