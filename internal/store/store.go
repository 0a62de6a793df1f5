// Package store persists the destination dataset in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"wayfare/internal/model"
	"wayfare/internal/query"
)

const (
	// DriverModernc is the pure Go driver and the default.
	DriverModernc = "sqlite"
	// DriverCgo is the mattn/go-sqlite3 driver; it needs a cgo build.
	DriverCgo = "sqlite3"
)

// ErrUnknownDriver is returned by Open for drivers other than sqlite and sqlite3.
var ErrUnknownDriver = errors.New("unknown sqlite driver")

const createTravel = `
CREATE TABLE IF NOT EXISTS travel (
  Country TEXT,
  CostPerDay INTEGER,
  VisaFree TEXT,
  Rating REAL,
  BestMonth TEXT
);`

const selectColumns = `SELECT Country, CostPerDay, VisaFree, Rating, BestMonth FROM travel`

// DB is a handle on the travel database. Callers own it and must Close it.
type DB struct{ sql *sql.DB }

// Open connects with the given driver and ensures the schema exists.
// An empty driver selects DriverModernc.
func Open(driver, path string) (*DB, error) {
	switch driver {
	case "":
		driver = DriverModernc
	case DriverModernc, DriverCgo:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
	d, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if isMemory(path) {
		// each connection to :memory: is a separate database
		d.SetMaxOpenConns(1)
	}
	for _, pragma := range []string{`PRAGMA journal_mode=WAL;`, `PRAGMA synchronous=NORMAL;`} {
		if _, err := d.Exec(pragma); err != nil {
			_ = d.Close()
			return nil, fmt.Errorf("%s: %w", strings.TrimSuffix(pragma, ";"), err)
		}
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

func (d *DB) Close() error { return d.sql.Close() }

// Ping checks that the database is reachable.
func (d *DB) Ping(ctx context.Context) error { return d.sql.PingContext(ctx) }

func (d *DB) migrate() error {
	_, err := d.sql.Exec(createTravel)
	return err
}

// Replace drops the current dataset and loads ds in a single transaction.
func (d *DB) Replace(ctx context.Context, ds []model.Destination) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS travel`); err != nil {
		return fmt.Errorf("drop travel: %w", err)
	}
	if _, err := tx.ExecContext(ctx, createTravel); err != nil {
		return fmt.Errorf("create travel: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO travel VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range ds {
		if _, err := stmt.ExecContext(ctx, r.Country, r.CostPerDay, r.VisaFree, r.Rating, r.BestMonth); err != nil {
			return fmt.Errorf("insert %q: %w", r.Country, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored destinations.
func (d *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := d.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM travel`).Scan(&n)
	return n, err
}

// Query returns the destinations matching p in insertion order.
func (d *DB) Query(ctx context.Context, p query.Predicate) ([]model.Destination, error) {
	where, args := p.Where()
	return d.list(ctx, selectColumns+` WHERE `+where+` ORDER BY rowid`, args...)
}

// CheapestVisaFree returns up to n visa-free destinations, cheapest first.
func (d *DB) CheapestVisaFree(ctx context.Context, n int) ([]model.Destination, error) {
	return d.list(ctx, selectColumns+`
WHERE LOWER(TRIM(VisaFree)) = 'yes'
ORDER BY CostPerDay ASC, rowid
LIMIT ?`, limitOrDefault(n))
}

// TopRated returns up to n destinations, highest rating first.
func (d *DB) TopRated(ctx context.Context, n int) ([]model.Destination, error) {
	return d.list(ctx, selectColumns+`
ORDER BY Rating DESC, rowid
LIMIT ?`, limitOrDefault(n))
}

func limitOrDefault(n int) int {
	if n <= 0 {
		return 3
	}
	return n
}

func (d *DB) list(ctx context.Context, q string, args ...any) ([]model.Destination, error) {
	rows, err := d.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Destination
	for rows.Next() {
		var r model.Destination
		var visa, month sql.NullString
		if err := rows.Scan(&r.Country, &r.CostPerDay, &visa, &r.Rating, &month); err != nil {
			return nil, err
		}
		r.VisaFree, r.BestMonth = visa.String, month.String
		out = append(out, r)
	}
	return out, rows.Err()
}
