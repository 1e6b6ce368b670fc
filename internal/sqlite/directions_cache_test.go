package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakay-router/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleEntry() *models.DirectionsCacheEntry {
	return &models.DirectionsCacheEntry{
		Origin:         models.Coordinates{Lat: 14.6741, Lng: 121.0359},
		Destination:    models.Coordinates{Lat: 14.6575, Lng: 121.0580},
		DistanceMeters: 6000,
		DurationSecs:   900,
		Path: []models.Coordinates{
			{Lat: 14.6741, Lng: 121.0359},
			{Lat: 14.6693, Lng: 121.0447},
			{Lat: 14.6575, Lng: 121.0580},
		},
		Legs: []models.RouteLeg{
			{Instruction: "Drive along Maginhawa St", Mode: models.ModeRide, DistanceMeters: 2400, DurationSecs: 360, WaypointFrom: 0, WaypointTo: 1},
			{Instruction: "Continue onto Commonwealth Ave", Mode: models.ModeRide, DistanceMeters: 3600, DurationSecs: 540, WaypointFrom: 1, WaypointTo: 2},
		},
	}
}

func TestDirectionsCacheRoundTrip(t *testing.T) {
	store := newTestStore(t)
	cache := store.DirectionsCache()
	ctx := context.Background()

	entry := sampleEntry()
	require.NoError(t, cache.Set(ctx, entry))

	got, err := cache.Get(ctx, entry.Origin, entry.Destination)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, entry.DistanceMeters, got.DistanceMeters)
	assert.Equal(t, entry.DurationSecs, got.DurationSecs)
	assert.Equal(t, entry.Path, got.Path)
	assert.Equal(t, entry.Legs, got.Legs)
}

func TestDirectionsCacheMissReturnsNil(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	got, err := store.DirectionsCache().Get(ctx,
		models.Coordinates{Lat: 14.0, Lng: 121.0},
		models.Coordinates{Lat: 14.1, Lng: 121.1})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDirectionsCacheKeysRoundedToFiveDecimals(t *testing.T) {
	store := newTestStore(t)
	cache := store.DirectionsCache()
	ctx := context.Background()

	entry := sampleEntry()
	require.NoError(t, cache.Set(ctx, entry))

	// A lookup within rounding tolerance of the stored key hits
	got, err := cache.Get(ctx,
		models.Coordinates{Lat: 14.67410000004, Lng: 121.03590000004},
		entry.Destination)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestDirectionsCacheReplaceOnSamePair(t *testing.T) {
	store := newTestStore(t)
	cache := store.DirectionsCache()
	ctx := context.Background()

	entry := sampleEntry()
	require.NoError(t, cache.Set(ctx, entry))

	entry.DistanceMeters = 6500
	require.NoError(t, cache.Set(ctx, entry))

	got, err := cache.Get(ctx, entry.Origin, entry.Destination)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 6500.0, got.DistanceMeters)
}
