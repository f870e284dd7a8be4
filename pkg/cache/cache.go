// Package cache provides a SQLite-backed response cache with a TTL. It spares
// the Notion API on repeated audit runs; it stores raw response bodies keyed
// by request hash and holds no derived metrics or trends.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

CREATE TABLE IF NOT EXISTS responses (
    key        TEXT PRIMARY KEY,
    body       BLOB NOT NULL,
    fetched_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_responses_fetched ON responses(fetched_at);
`

// Cache is a TTL response cache stored in a single SQLite file.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// Open opens or creates the cache database at path. Entries older than ttl
// are treated as misses and evicted lazily.
func Open(path string, ttl time.Duration) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return &Cache{db: db, ttl: ttl, now: time.Now}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached body for key if present and not expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	var body []byte
	var fetchedAt int64
	err := c.db.QueryRow(
		"SELECT body, fetched_at FROM responses WHERE key = ?", key,
	).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		return nil, false
	}

	if c.now().Sub(time.Unix(fetchedAt, 0)) > c.ttl {
		_, _ = c.db.Exec("DELETE FROM responses WHERE key = ?", key)
		return nil, false
	}
	return body, true
}

// Set stores a response body under key, replacing any previous entry.
func (c *Cache) Set(key string, body []byte) error {
	_, err := c.db.Exec(`
		INSERT INTO responses (key, body, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at
	`, key, body, c.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Purge removes every expired entry.
func (c *Cache) Purge() error {
	cutoff := c.now().Add(-c.ttl).Unix()
	_, err := c.db.Exec("DELETE FROM responses WHERE fetched_at < ?", cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}
