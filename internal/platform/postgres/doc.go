// Package postgres provides PostgreSQL-specific implementations of the
// storage interfaces defined in the internal/store package. Every
// operation is a single statement; the database's own atomicity is the
// only consistency mechanism.
package postgres
