package geocoding

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"

	"sakay-router/internal/models"
)

// DefaultQuietPeriod is how long one logical input field must stay quiet
// before its pending gateway call fires.
const DefaultQuietPeriod = 5 * time.Second

// DebouncedSearch coalesces search-as-you-type events on one input field.
// Each new input cancels the pending call and schedules a new one; only
// the task that survives the quiet period reaches the gateway. A
// monotonically increasing sequence token is checked after the call so a
// stale in-flight response never overwrites a newer one. This layer
// composes with the gateway throttle: debouncing decides whether a call
// happens, the throttle decides how soon after the previous call it may
// fire.
type DebouncedSearch struct {
	gateway   Gateway
	debounced func(func())
	seq       atomic.Uint64
}

// NewDebouncedSearch creates a debounced search entry point for one
// logical input field
func NewDebouncedSearch(gw Gateway, quiet time.Duration) *DebouncedSearch {
	if quiet == 0 {
		quiet = DefaultQuietPeriod
	}
	return &DebouncedSearch{
		gateway:   gw,
		debounced: debounce.New(quiet),
	}
}

// Input records a new keystroke. apply is invoked with the results once
// the field has been quiet and no newer input superseded this one.
func (d *DebouncedSearch) Input(ctx context.Context, query string, apply func([]models.Place)) {
	seq := d.seq.Add(1)
	d.debounced(func() {
		results := d.gateway.SearchPlaces(ctx, query)
		if d.seq.Load() != seq {
			// A newer keystroke arrived while this call was in flight.
			return
		}
		apply(results)
	})
}

// DebouncedReverse coalesces map-pan events resolving the map center.
// Same cancellation and sequencing rules as DebouncedSearch.
type DebouncedReverse struct {
	gateway   Gateway
	debounced func(func())
	seq       atomic.Uint64
}

// NewDebouncedReverse creates a debounced reverse-geocode entry point
func NewDebouncedReverse(gw Gateway, quiet time.Duration) *DebouncedReverse {
	if quiet == 0 {
		quiet = DefaultQuietPeriod
	}
	return &DebouncedReverse{
		gateway:   gw,
		debounced: debounce.New(quiet),
	}
}

// Pan records a new map-center position
func (d *DebouncedReverse) Pan(ctx context.Context, pos models.Coordinates, apply func(*models.ReverseResult)) {
	seq := d.seq.Add(1)
	d.debounced(func() {
		result := d.gateway.ReverseGeocode(ctx, pos)
		if d.seq.Load() != seq {
			return
		}
		apply(result)
	})
}
