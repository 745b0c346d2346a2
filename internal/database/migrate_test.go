package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func tableNames(t *testing.T, db *sql.DB, query string) []string {
	t.Helper()
	rows, err := db.Query(query)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, goose.DialectSQLite3))

	names := tableNames(t, db, "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	assert.Contains(t, names, "accounts")
	assert.Contains(t, names, "inventory")

	// Re-running is a no-op
	require.NoError(t, Migrate(ctx, db, goose.DialectSQLite3))

	_, err = db.Exec("INSERT INTO accounts (user_id, balance) VALUES ('u', -1)")
	assert.Error(t, err, "negative balance must violate the CHECK constraint")

	_, err = db.Exec("INSERT INTO inventory (user_id, item, count) VALUES ('u', 'car', 0)")
	assert.Error(t, err, "zero-count rows must violate the CHECK constraint")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	err := Migrate(context.Background(), nil, goose.DialectMySQL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnsupportedDialect)
}

func TestMigrate_Postgres(t *testing.T) {
	requireLedgerDB(t)

	pool, err := NewPool(ledgerDSN, 4, 1, 0, 0)
	require.NoError(t, err)
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, goose.DialectPostgres))
	require.NoError(t, Migrate(ctx, db, goose.DialectPostgres))

	names := tableNames(t, db, "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name")
	assert.Contains(t, names, "accounts")
	assert.Contains(t, names, "inventory")
}
