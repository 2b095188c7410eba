package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/chvotes/chvotes/internal/aggregate"
	"github.com/chvotes/chvotes/internal/canton"
	"github.com/chvotes/chvotes/internal/model"
)

// Cache stores per-referendum aggregation results in a SQLite file.
// The referendum title is the cache key; a stored result is the full
// 26-record set so a hit never needs the dataset at all.
type Cache struct {
	db     *sql.DB
	dbPath string
}

// Options configures Cache behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent reads.
	EnableWAL bool
}

// DefaultOptions returns the default cache options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the result cache in the given directory.
func Open(dir string, opts Options) (*Cache, error) {
	dbPath := filepath.Join(dir, "chvotes.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("cache not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check cache path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	// modernc.org/sqlite connection strings: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	// SQLite supports only one writer; a single pooled connection keeps
	// writes serialized without busy-retry loops.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	c := &Cache{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := c.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return c, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// createTables creates the schema if it doesn't exist.
func (c *Cache) createTables() error {
	schema := `
	-- One row per (referendum, canton); a referendum is cached as a
	-- whole or not at all.
	CREATE TABLE IF NOT EXISTS records (
		title TEXT NOT NULL,
		canton TEXT NOT NULL,
		yes INTEGER NOT NULL,
		no INTEGER NOT NULL,
		source TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (title, canton)
	);

	CREATE INDEX IF NOT EXISTS idx_records_title ON records(title);
	`
	_, err := c.db.ExecContext(context.Background(), schema)
	return err
}

// Put stores the aggregation result for a referendum, replacing any
// previous entry. Warnings are transient log material and are not
// persisted; a cache hit therefore carries no warnings.
func (c *Cache) Put(ctx context.Context, title string, result *aggregate.Result) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM records WHERE title = ?", title); err != nil {
		return fmt.Errorf("failed to clear cache entry: %w", err)
	}
	for _, rec := range result.Records {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO records (title, canton, yes, no, source) VALUES (?, ?, ?, ?, ?)",
			title, rec.Canton.Name(), rec.Yes, rec.No, rec.Source.String())
		if err != nil {
			return fmt.Errorf("failed to store record for %s: %w", rec.Canton, err)
		}
	}
	return tx.Commit()
}

// Get loads a cached result. The second return reports whether the
// referendum was cached; an incomplete record set (schema drift, manual
// edits) is treated as a miss rather than served partially.
func (c *Cache) Get(ctx context.Context, title string) (*aggregate.Result, bool, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT canton, yes, no, source FROM records WHERE title = ?", title)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query cache: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	byCanton := make(map[canton.Canton]model.Record, canton.Count)
	for rows.Next() {
		var name, source string
		var yes, no int
		if err := rows.Scan(&name, &yes, &no, &source); err != nil {
			return nil, false, fmt.Errorf("failed to scan cache row: %w", err)
		}
		ct, ok := canton.Normalize(name)
		if !ok {
			continue
		}
		byCanton[ct] = model.Record{
			Canton: ct,
			Yes:    yes,
			No:     no,
			Total:  yes + no,
			Source: model.ParseSource(source),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read cache rows: %w", err)
	}
	if len(byCanton) != canton.Count {
		return nil, false, nil
	}

	result := &aggregate.Result{Records: make([]model.Record, 0, canton.Count)}
	for _, ct := range canton.All() {
		result.Records = append(result.Records, byCanton[ct])
	}
	return result, true, nil
}

// Invalidate removes the cached result for a referendum. Invalidating
// an uncached title is a no-op.
func (c *Cache) Invalidate(ctx context.Context, title string) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM records WHERE title = ?", title); err != nil {
		return fmt.Errorf("failed to invalidate cache entry: %w", err)
	}
	return nil
}
