package database

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// InitDB opens a database connection for the given driver and returns it.
// Supported drivers are "sqlite3" (development and tests) and "pgx"
// (Postgres in production, via the pgx database/sql adapter).
//
// For sqlite the embedded schema is applied on startup so a fresh file (or
// ":memory:") is immediately usable. The Postgres schema is provisioned
// externally; migrations are out of scope here.
func InitDB(driver, dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open(driver, dataSourceName)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite3" {
		// An in-memory sqlite database exists per connection; cap the pool
		// at one so every query sees the same database.
		if dataSourceName == ":memory:" {
			db.SetMaxOpenConns(1)
		}
		if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if driver == "sqlite3" {
		if _, err = db.Exec(schemaSQL); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	return db, nil
}
