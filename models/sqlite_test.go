package models

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// The repositories stick to portable SQL ($n placeholders, RETURNING), so
// the tests run them against an in-memory SQLite store instead of Postgres.
const testSchema = `
CREATE TABLE users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name TEXT NOT NULL CHECK (full_name <> ''),
	username TEXT NOT NULL UNIQUE CHECK (username <> ''),
	email TEXT NOT NULL CHECK (email <> ''),
	password_hash TEXT NOT NULL CHECK (password_hash <> ''),
	jwt_token TEXT
);
CREATE TABLE events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL CHECK (name <> ''),
	description TEXT NOT NULL CHECK (description <> ''),
	location TEXT NOT NULL CHECK (location <> ''),
	start_time DATETIME NOT NULL,
	end_time DATETIME NOT NULL
);
CREATE TABLE registrations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL CHECK (name <> ''),
	phone_number TEXT NOT NULL CHECK (phone_number <> ''),
	email TEXT NOT NULL CHECK (email <> ''),
	event_id INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE
);
`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqldb, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	// each pool connection would get its own :memory: database
	sqldb.SetMaxOpenConns(1)
	if _, err := sqldb.Exec(testSchema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	return sqldb
}
