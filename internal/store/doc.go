// Package store persists demo notes in PostgreSQL (pgx) or SQLite, chosen
// from the DSN, with queries built by squirrel.
package store
