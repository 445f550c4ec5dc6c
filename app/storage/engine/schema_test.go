package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cmdCreateTable DBCmd = iota + 1000
	cmdCreateIndexes
	cmdSelect
)

var testQueries = NewQueryMap().
	Add(cmdCreateTable, Query{
		Sqlite:   `CREATE TABLE IF NOT EXISTS test_table (id INTEGER PRIMARY KEY AUTOINCREMENT, gid TEXT, data TEXT)`,
		Postgres: `CREATE TABLE IF NOT EXISTS test_table (id SERIAL PRIMARY KEY, gid TEXT, data TEXT)`,
	}).
	AddSame(cmdCreateIndexes, `
		CREATE INDEX IF NOT EXISTS idx_test_gid ON test_table(gid);
		CREATE INDEX IF NOT EXISTS idx_test_data ON test_table(data);
	`).
	Add(cmdSelect, Query{Sqlite: "SELECT ?", Postgres: "SELECT $1"})

func TestQueryMap_Pick(t *testing.T) {
	tests := []struct {
		name    string
		dbType  Type
		cmd     DBCmd
		want    string
		wantErr string
	}{
		{name: "sqlite", dbType: Sqlite, cmd: cmdSelect, want: "SELECT ?"},
		{name: "postgres", dbType: Postgres, cmd: cmdSelect, want: "SELECT $1"},
		{name: "same for all", dbType: Postgres, cmd: cmdCreateIndexes,
			want: "\n\t\tCREATE INDEX IF NOT EXISTS idx_test_gid ON test_table(gid);\n\t\tCREATE INDEX IF NOT EXISTS idx_test_data ON test_table(data);\n\t"},
		{name: "unknown type", dbType: Unknown, cmd: cmdSelect, wantErr: "unsupported database type"},
		{name: "unknown command", dbType: Sqlite, cmd: 1, wantErr: "unsupported command type 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := testQueries.Pick(tt.dbType, tt.cmd)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitTable(t *testing.T) {
	cfg := TableConfig{Name: "test_table", CreateTable: cmdCreateTable, CreateIndexes: cmdCreateIndexes,
		QueriesMap: testQueries}

	t.Run("table and indexes created", func(t *testing.T) {
		db, err := NewSqlite(":memory:")
		require.NoError(t, err)
		defer db.Close()

		require.NoError(t, InitTable(context.Background(), db, cfg))
		require.NoError(t, InitTable(context.Background(), db, cfg), "second init is a no-op")

		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='test_table'"))
		assert.Equal(t, 1, count)
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name LIKE 'idx_test_%'"))
		assert.Equal(t, 2, count)
	})

	t.Run("nil db", func(t *testing.T) {
		err := InitTable(context.Background(), nil, cfg)
		require.EqualError(t, err, "db connection is nil")
	})

	t.Run("unknown command", func(t *testing.T) {
		db, err := NewSqlite(":memory:")
		require.NoError(t, err)
		defer db.Close()

		bad := cfg
		bad.CreateTable = 999
		err = InitTable(context.Background(), db, bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get create table query")
	})

	t.Run("bad index rolls back table", func(t *testing.T) {
		db, err := NewSqlite(":memory:")
		require.NoError(t, err)
		defer db.Close()

		bad := cfg
		bad.QueriesMap = NewQueryMap().
			Add(cmdCreateTable, Query{Sqlite: `CREATE TABLE IF NOT EXISTS test_table (id INTEGER PRIMARY KEY)`}).
			AddSame(cmdCreateIndexes, `CREATE INDEX idx_bad ON test_table(no_such_column)`)
		err = InitTable(context.Background(), db, bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create indexes for test_table")

		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='test_table'"))
		assert.Equal(t, 0, count)
	})

	t.Run("cancelled context", func(t *testing.T) {
		db, err := NewSqlite(":memory:")
		require.NoError(t, err)
		defer db.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.Error(t, InitTable(ctx, db, cfg))
	})
}
