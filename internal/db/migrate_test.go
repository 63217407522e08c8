package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}

func TestKV_UpsertRoundTrip(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO kv (namespace, value) VALUES (?, ?)
		ON CONFLICT(namespace) DO UPDATE SET value = excluded.value`, "tasks", `[]`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO kv (namespace, value) VALUES (?, ?)
		ON CONFLICT(namespace) DO UPDATE SET value = excluded.value`, "tasks", `[{"id":"a"}]`)
	require.NoError(t, err)

	var value string
	require.NoError(t, database.QueryRow(`SELECT value FROM kv WHERE namespace = ?`, "tasks").Scan(&value))
	assert.Equal(t, `[{"id":"a"}]`, value)
}
