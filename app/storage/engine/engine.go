// Package engine wraps sqlx.DB for the supported database engines, sqlite and postgres.
// Queries are kept per dialect in a QueryMap and written with "?" placeholders, Adopt converts them
// for postgres. Sqlite connections need the lock returned by MakeLock for writes.
package engine

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"   // postgres driver loaded here
	_ "modernc.org/sqlite" // sqlite driver loaded here
)

// Type is a type of database engine
type Type string

// enum of supported database engines
const (
	Unknown  Type = ""
	Sqlite   Type = "sqlite"
	Postgres Type = "postgres"
)

// SQL is a sqlx.DB with the engine type
type SQL struct {
	sqlx.DB
	dbType Type
}

// RWLocker is a read-write locker, satisfied by sync.RWMutex
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// NoopLocker is a locker doing nothing, for engines handling concurrent writes themselves
type NoopLocker struct{}

// Lock does nothing
func (NoopLocker) Lock() {}

// Unlock does nothing
func (NoopLocker) Unlock() {}

// RLock does nothing
func (NoopLocker) RLock() {}

// RUnlock does nothing
func (NoopLocker) RUnlock() {}

// New makes a database connection for the url. Postgres urls start with postgres:// or postgresql://,
// sqlite urls are plain file names, ":memory:" or start with file: or sqlite://.
func New(ctx context.Context, connURL string) (*SQL, error) {
	switch {
	case connURL == "":
		return nil, errors.New("connection URL is empty")
	case strings.HasPrefix(connURL, "postgres://"), strings.HasPrefix(connURL, "postgresql://"):
		return NewPostgres(ctx, connURL)
	case strings.HasPrefix(connURL, "sqlite://"):
		return NewSqlite(strings.TrimPrefix(connURL, "sqlite://"))
	case strings.HasPrefix(connURL, "file://"):
		return NewSqlite(strings.TrimPrefix(connURL, "file://"))
	case strings.HasPrefix(connURL, "file:"):
		return NewSqlite(strings.TrimPrefix(connURL, "file:"))
	case strings.Contains(connURL, "://"):
		return nil, fmt.Errorf("unsupported database type in %q", connURL)
	default:
		return NewSqlite(connURL)
	}
}

// NewSqlite makes a sqlite database in the file, ":memory:" for in-memory one.
// The connection pool is limited to a single connection, so in-memory database is shared by all callers.
func NewSqlite(file string) (*SQL, error) {
	db, err := sqlx.Connect("sqlite", file)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite %s: %w", file, err)
	}
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{"PRAGMA busy_timeout = 5000", "PRAGMA foreign_keys = ON"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set %q: %w", pragma, err)
		}
	}
	return &SQL{DB: *db, dbType: Sqlite}, nil
}

// NewPostgres makes a postgres database connection. The url must contain the database name.
func NewPostgres(ctx context.Context, connURL string) (*SQL, error) {
	u, err := url.Parse(connURL)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres connection url: %w", err)
	}
	if strings.Trim(u.Path, "/") == "" {
		return nil, errors.New("database name not specified in postgres connection url")
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", connURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return &SQL{DB: *db, dbType: Postgres}, nil
}

// Type returns the database engine type
func (e *SQL) Type() Type {
	return e.dbType
}

// MakeLock makes a locker for the engine, sqlite needs a real one
func (e *SQL) MakeLock() RWLocker {
	if e.dbType == Sqlite {
		return new(sync.RWMutex)
	}
	return NoopLocker{}
}

// Adopt converts "?" placeholders to "$N" for postgres. Question marks inside quoted literals are kept.
func (e *SQL) Adopt(query string) string {
	if e.dbType != Postgres {
		return query
	}

	var sb strings.Builder
	sb.Grow(len(query) + 8)
	inQuote := false
	n := 0
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			sb.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			sb.WriteString("$" + strconv.Itoa(n))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
