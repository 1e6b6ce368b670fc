package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"sakay-router/internal/models"
)

// directionsCacheRepository caches live-directions lookups keyed by
// 5-decimal-rounded origin/destination coordinates. Entries have no TTL;
// live traffic is out of scope, so a stored route stays valid.
type directionsCacheRepository struct {
	store *Store
}

func (r *directionsCacheRepository) Get(ctx context.Context, origin, dest models.Coordinates) (*models.DirectionsCacheEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	query := `SELECT origin_lat, origin_lng, dest_lat, dest_lng, distance_meters, duration_secs, path_json, legs_json
	          FROM directions_cache
	          WHERE origin_lat = ? AND origin_lng = ? AND dest_lat = ? AND dest_lng = ?`

	var entry models.DirectionsCacheEntry
	var pathJSON, legsJSON string
	err := r.store.db.QueryRowContext(ctx, query,
		models.RoundCoordinate(origin.Lat), models.RoundCoordinate(origin.Lng),
		models.RoundCoordinate(dest.Lat), models.RoundCoordinate(dest.Lng),
	).Scan(
		&entry.Origin.Lat, &entry.Origin.Lng,
		&entry.Destination.Lat, &entry.Destination.Lng,
		&entry.DistanceMeters, &entry.DurationSecs,
		&pathJSON, &legsJSON,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get directions cache entry: %w", err)
	}

	if err := json.Unmarshal([]byte(pathJSON), &entry.Path); err != nil {
		return nil, fmt.Errorf("failed to decode cached path: %w", err)
	}
	if err := json.Unmarshal([]byte(legsJSON), &entry.Legs); err != nil {
		return nil, fmt.Errorf("failed to decode cached legs: %w", err)
	}

	return &entry, nil
}

func (r *directionsCacheRepository) Set(ctx context.Context, entry *models.DirectionsCacheEntry) error {
	pathJSON, err := json.Marshal(entry.Path)
	if err != nil {
		return fmt.Errorf("failed to encode path: %w", err)
	}
	legsJSON, err := json.Marshal(entry.Legs)
	if err != nil {
		return fmt.Errorf("failed to encode legs: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	query := `INSERT OR REPLACE INTO directions_cache
	          (origin_lat, origin_lng, dest_lat, dest_lng, distance_meters, duration_secs, path_json, legs_json)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.store.db.ExecContext(ctx, query,
		models.RoundCoordinate(entry.Origin.Lat), models.RoundCoordinate(entry.Origin.Lng),
		models.RoundCoordinate(entry.Destination.Lat), models.RoundCoordinate(entry.Destination.Lng),
		entry.DistanceMeters, entry.DurationSecs,
		string(pathJSON), string(legsJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to set directions cache entry: %w", err)
	}

	return nil
}

// Clear removes all cached directions
func (r *directionsCacheRepository) Clear(ctx context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, err := r.store.db.ExecContext(ctx, "DELETE FROM directions_cache"); err != nil {
		return fmt.Errorf("failed to clear directions cache: %w", err)
	}
	return nil
}
