package sqlite

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"sakay-router/internal/geocoding"
)

// DefaultDBFileName is the on-disk name of the cache database
const DefaultDBFileName = "sakay-cache.db"

// Store is a SQLite-backed cache store for provider lookups
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex

	directionsRepo *directionsCacheRepository
}

// New opens (creating if needed) the cache database at dbPath
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	log.Printf("Opening SQLite cache at: %s", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	store := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	store.directionsRepo = &directionsCacheRepository{store: store}
	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS directions_cache (
		origin_lat      REAL NOT NULL,
		origin_lng      REAL NOT NULL,
		dest_lat        REAL NOT NULL,
		dest_lng        REAL NOT NULL,
		distance_meters REAL NOT NULL,
		duration_secs   REAL NOT NULL,
		path_json       TEXT NOT NULL,
		legs_json       TEXT NOT NULL,
		created_at      TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (origin_lat, origin_lng, dest_lat, dest_lng)
	)`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create directions_cache table: %w", err)
	}
	return nil
}

// DirectionsCache returns the directions cache repository
func (s *Store) DirectionsCache() geocoding.DirectionsCache {
	return s.directionsRepo
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
