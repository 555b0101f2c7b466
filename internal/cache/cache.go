// Package cache stores grammar-check diagnostics keyed by the content
// that produced them, so re-checking an unchanged file with an unchanged
// rule configuration skips the tokenizer and rule engine entirely.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/clearclown/mozuku-go/pkg/diagnostic"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS diagnostics_cache (
	key        TEXT PRIMARY KEY,
	file_type  TEXT NOT NULL,
	payload    TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// Cache is a SQLite-backed store of diagnostic.Diagnostic slices.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and runs
// its migration. path may be ":memory:" for a process-local cache.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: set journal mode: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: migrate: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key fingerprints the inputs that determine a check's output: the file
// content, its FileType (different extraction strategies yield different
// spans for the same bytes), and which rule codes are disabled.
func Key(content []byte, fileType string, disabledCodes []string) string {
	sorted := append([]string(nil), disabledCodes...)
	sort.Strings(sorted)

	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(fileType))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(sorted, ",")))

	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached diagnostics for key, and whether an entry was
// found at all.
func (c *Cache) Get(key string) ([]diagnostic.Diagnostic, bool, error) {
	var payload string
	err := c.db.QueryRow(`SELECT payload FROM diagnostics_cache WHERE key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get %s: %w", key, err)
	}

	var diagnostics []diagnostic.Diagnostic
	if err := json.Unmarshal([]byte(payload), &diagnostics); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return diagnostics, true, nil
}

// Put records diagnostics under key, for fileType, replacing any prior
// entry for the same key.
func (c *Cache) Put(key, fileType string, diagnostics []diagnostic.Diagnostic) error {
	payload, err := json.Marshal(diagnostics)
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}

	_, err = c.db.Exec(
		`INSERT INTO diagnostics_cache (key, file_type, payload) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, file_type = excluded.file_type`,
		key, fileType, string(payload),
	)
	if err != nil {
		return fmt.Errorf("cache: put %s: %w", key, err)
	}
	return nil
}

// Invalidate removes every cached entry. Callers reach for this after a
// rule engine change whose effect Key's fingerprint can't express.
func (c *Cache) Invalidate() error {
	_, err := c.db.Exec(`DELETE FROM diagnostics_cache`)
	return err
}
