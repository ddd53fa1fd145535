// Package sqlite provides the SQLite-backed persistence layer. The UNIQUE
// constraints declared here are the authoritative uniqueness guarantee for
// usernames and carnets; service-level existence checks are advisory only.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

const defaultTimeout = 10 * time.Second

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	username      TEXT    NOT NULL UNIQUE,
	password_hash TEXT    NOT NULL,
	role          TEXT    NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
	created_at    DATETIME NOT NULL,
	updated_at    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS students (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT     NOT NULL,
	last_name  TEXT     NOT NULL,
	carnet     TEXT     NOT NULL UNIQUE,
	birth_date DATE     NOT NULL,
	is_active  INTEGER  NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// Open establishes the SQLite connection, verifies it with a ping, and
// applies the idempotent schema migration.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	if _, err := db.ExecContext(pingCtx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}

	return db, nil
}

// asConstraintError maps a sqlite unique-constraint violation to the given
// domain sentinel, leaving other errors untouched.
func asConstraintError(err error, sentinel error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return sentinel
	}
	return err
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return err
}
