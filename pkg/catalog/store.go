// Package catalog reads and maintains the local collection catalog: a
// sqlite database of the wallet's NFT collections and their assets.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nvalla/walletview/pkg/model"
)

// Store handles collection catalog persistence
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at the given path
func Open(dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS collections (
		uid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		image_url TEXT DEFAULT '',
		floor_price REAL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS assets (
		token_id TEXT NOT NULL,
		collection_uid TEXT NOT NULL,
		name TEXT NOT NULL,
		image_url TEXT DEFAULT '',
		last_sale REAL DEFAULT 0,
		acquired_at DATETIME,
		PRIMARY KEY (collection_uid, token_id)
	);

	CREATE INDEX IF NOT EXISTS idx_assets_collection ON assets(collection_uid);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Upsert inserts or replaces a collection and its assets.
func (s *Store) Upsert(c model.Collection) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid collection: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO collections (uid, name, image_url, floor_price)
		VALUES (?, ?, ?, ?)
	`, c.UID, c.Name, c.ImageURL, c.FloorPrice)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM assets WHERE collection_uid = ?`, c.UID); err != nil {
		return err
	}
	for _, a := range c.Assets {
		_, err := tx.Exec(`
			INSERT INTO assets (token_id, collection_uid, name, image_url, last_sale, acquired_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, a.TokenID, c.UID, a.Name, a.ImageURL, a.LastSale, a.AcquiredAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Collections returns all collections with their assets, ordered by name.
func (s *Store) Collections(ctx context.Context) ([]model.Collection, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT uid, name, image_url, floor_price
		FROM collections
		ORDER BY name, uid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []model.Collection
	byUID := make(map[string]int)
	for rows.Next() {
		var c model.Collection
		if err := rows.Scan(&c.UID, &c.Name, &c.ImageURL, &c.FloorPrice); err != nil {
			return nil, err
		}
		byUID[c.UID] = len(collections)
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	assetRows, err := s.db.QueryContext(ctx, `
		SELECT token_id, collection_uid, name, image_url, last_sale, acquired_at
		FROM assets
		ORDER BY collection_uid, token_id
	`)
	if err != nil {
		return nil, err
	}
	defer assetRows.Close()

	for assetRows.Next() {
		var a model.Asset
		var acquired sql.NullTime
		if err := assetRows.Scan(&a.TokenID, &a.CollectionID, &a.Name, &a.ImageURL, &a.LastSale, &acquired); err != nil {
			return nil, err
		}
		if acquired.Valid {
			a.AcquiredAt = acquired.Time
		}
		if i, ok := byUID[a.CollectionID]; ok {
			collections[i].Assets = append(collections[i].Assets, a)
		}
	}
	return collections, assetRows.Err()
}

// Count returns the number of collections in the catalog.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM collections`).Scan(&n)
	return n, err
}

// touchedAt is used by import to stamp assets missing an acquisition time.
func touchedAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
