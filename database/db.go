package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	_ "github.com/mattn/go-sqlite3"
)

// TimeLayout is how timestamps are stored. Fixed width, so text order is
// time order.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

var schema = []string{`
CREATE TABLE IF NOT EXISTS services (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    key            TEXT UNIQUE,
    title          TEXT,
    description    TEXT,
    starting_price TEXT
)`, `
CREATE TABLE IF NOT EXISTS bookings (
    id          TEXT PRIMARY KEY,
    name        TEXT,
    phone       TEXT,
    address     TEXT,
    pincode     TEXT,
    service_id  INTEGER,
    status      TEXT,
    assigned_to TEXT,
    created_at  TEXT
)`, `
CREATE TABLE IF NOT EXISTS technicians (
    id           TEXT PRIMARY KEY,
    name         TEXT,
    phone        TEXT,
    areas_csv    TEXT,
    services_csv TEXT,
    owner_name   TEXT,
    created_at   TEXT
)`, `
CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings (created_at)`,
}

// Open opens (creating if needed) the SQLite file at path, applies the
// schema and seeds the service catalog when it is empty. The caller owns
// the returned handle and must Close it.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Annotatef(err, "creating database directory %q", dir)
		}
	}

	dsn := "file:" + path + "?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Annotatef(err, "opening %q", path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Annotatef(err, "pinging %q", path)
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, errors.Trace(err)
	}
	if err := seedServices(ctx, db); err != nil {
		_ = db.Close()
		return nil, errors.Trace(err)
	}
	return db, nil
}

// migrate only ever creates what is missing.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Annotate(err, "applying schema")
		}
	}
	return nil
}
