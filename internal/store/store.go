package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Kind tells which backend a URI resolved to.
type Kind int

const (
	KindFile Kind = iota
	KindCloud
)

// Store resolves a database URI once and hands out one connection per call.
// Supported URIs:
//
//	file:///path/to/local.db   local SQLite file
//	libsql://host/db?authToken=KEY   hosted database
//
// Anything else is treated as a direct local path for backward compatibility.
type Store struct {
	uri  string
	kind Kind
	path string // local file path, empty for cloud
}

var windowsDrive = regexp.MustCompile(`^/[A-Za-z]:`)

func New(uri string) (*Store, error) {
	if uri == "" {
		return nil, fmt.Errorf("database URI is empty")
	}

	u, err := url.Parse(uri)
	if err != nil {
		// Not a URI at all, fall back to a plain path.
		return &Store{uri: uri, kind: KindFile, path: uri}, nil
	}

	switch u.Scheme {
	case "libsql", "wss", "https":
		return &Store{uri: uri, kind: KindCloud}, nil
	case "file":
		path := u.Path
		if u.Host != "" {
			// file://relative/path parses the first segment as a host.
			path = u.Host + path
		}
		// Strip the URI slash in front of Windows drive letters.
		if windowsDrive.MatchString(path) {
			path = path[1:]
		}
		return &Store{uri: uri, kind: KindFile, path: path}, nil
	default:
		return &Store{uri: uri, kind: KindFile, path: uri}, nil
	}
}

func (s *Store) Kind() Kind { return s.kind }

// Path returns the local file path backing the store, empty for cloud stores.
func (s *Store) Path() string { return s.path }

func (s *Store) URI() string { return s.uri }

// Open returns a fresh connection with the schema ensured. The caller owns
// the handle and must close it before returning.
func (s *Store) Open(ctx context.Context) (*sql.DB, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch s.kind {
	case KindCloud:
		db, err = sql.Open("libsql", s.uri)
	default:
		if dir := filepath.Dir(s.path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		db, err = sql.Open("sqlite3", s.path+"?_foreign_keys=on")
	}
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", s.uri, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %q: %w", s.uri, err)
	}
	return db, nil
}

// IsDuplicate reports whether err is a primary-key or unique-constraint
// violation. The local driver returns typed sqlite3 errors; the cloud driver
// only surfaces the engine's message text.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if isSQLiteConstraint(err) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "already exists")
}
