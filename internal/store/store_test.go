package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		wantErr  bool
		wantKind Kind
		wantPath string
	}{
		{
			name:    "empty URI",
			uri:     "",
			wantErr: true,
		},
		{
			name:     "file URI with absolute path",
			uri:      "file:///tmp/team.db",
			wantKind: KindFile,
			wantPath: "/tmp/team.db",
		},
		{
			name:     "file URI with relative path",
			uri:      "file://data/team.db",
			wantKind: KindFile,
			wantPath: "data/team.db",
		},
		{
			name:     "file URI with windows drive",
			uri:      "file:///C:/team/team.db",
			wantKind: KindFile,
			wantPath: "C:/team/team.db",
		},
		{
			name:     "plain path fallback",
			uri:      "local.db",
			wantKind: KindFile,
			wantPath: "local.db",
		},
		{
			name:     "libsql scheme",
			uri:      "libsql://team.turso.io?authToken=secret",
			wantKind: KindCloud,
		},
		{
			name:     "wss scheme",
			uri:      "wss://team.turso.io",
			wantKind: KindCloud,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := New(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, st.Kind())
			assert.Equal(t, tt.wantPath, st.Path())
			assert.Equal(t, tt.uri, st.URI())
		})
	}
}

func TestStoreOpenEnsuresSchema(t *testing.T) {
	ctx := context.Background()
	st, err := New(filepath.Join(t.TempDir(), "team.db"))
	require.NoError(t, err)

	// Opening twice must not fail; every DDL statement is idempotent.
	for i := 0; i < 2; i++ {
		db, err := st.Open(ctx)
		require.NoError(t, err)

		var count int
		err = db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'
			 AND name IN ('players', 'tournaments', 'tournament_players', 'federation_payments')`,
		).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
		require.NoError(t, db.Close())
	}
}

func TestStoreOpenCreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "team.db")
	st, err := New(path)
	require.NoError(t, err)

	db, err := st.Open(ctx)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestIsDuplicate(t *testing.T) {
	ctx := context.Background()
	st, err := New(filepath.Join(t.TempDir(), "team.db"))
	require.NoError(t, err)
	db, err := st.Open(ctx)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT INTO players (name, created, phone, email) VALUES (?, ?, ?, NULL)`,
		"Juan Garcia", time.Now(), "555-0100")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO players (name, created, phone, email) VALUES (?, ?, ?, NULL)`,
		"Juan Garcia", time.Now(), "555-0200")
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))

	assert.False(t, IsDuplicate(nil))
	assert.False(t, IsDuplicate(errors.New("disk I/O error")))
	assert.True(t, IsDuplicate(errors.New("UNIQUE constraint failed: players.name")))
}

func TestStoreBackup(t *testing.T) {
	ctx := context.Background()
	st, err := New(filepath.Join(t.TempDir(), "team.db"))
	require.NoError(t, err)

	db, err := st.Open(ctx)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`INSERT INTO players (name, created, phone, email) VALUES (?, ?, ?, ?)`,
		"Maria Lopez", time.Now(), "555-0300", "maria@example.com")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	dest := filepath.Join(t.TempDir(), "backups", "team-backup.db")
	require.NoError(t, st.Backup(ctx, dest))

	snapshot, err := New(dest)
	require.NoError(t, err)
	cdb, err := snapshot.Open(ctx)
	require.NoError(t, err)
	defer cdb.Close()

	var name string
	require.NoError(t, cdb.QueryRowContext(ctx, `SELECT name FROM players`).Scan(&name))
	assert.Equal(t, "Maria Lopez", name)
}

func TestTimeScan(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   any
		want    time.Time
		wantErr bool
	}{
		{name: "time value", value: now, want: now},
		{name: "date string", value: "2025-06-15", want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 string", value: "2025-06-15T10:30:00Z", want: now},
		{name: "bytes", value: []byte("2025-06-15"), want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "nil", value: nil, want: time.Time{}},
		{name: "unparsable", value: "not a date", wantErr: true},
		{name: "unsupported type", value: 42, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Time
			err := ts.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts.Time))
		})
	}
}

func TestNullTime(t *testing.T) {
	var nt NullTime
	require.NoError(t, nt.Scan(nil))
	assert.False(t, nt.Valid)
	assert.Nil(t, nt.Ptr())

	require.NoError(t, nt.Scan("2025-06-15"))
	assert.True(t, nt.Valid)
	require.NotNil(t, nt.Ptr())
	assert.Equal(t, "2025-06-15", nt.Ptr().Format(DateLayout))
}
