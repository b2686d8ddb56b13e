//go:build integration

package integration

import (
	"strings"
	"testing"

	"dcn-community/internal/database"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrations_DownAndUp runs against a scratch database so the shared
// schema used by the other tests stays intact.
func TestMigrations_DownAndUp(t *testing.T) {
	_, err := db.Exec(`CREATE DATABASE migrate_check`)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = db.Exec(`DROP DATABASE IF EXISTS migrate_check WITH (FORCE)`) })

	scratch, err := sqlx.Open("pgx", strings.Replace(pgURI, "/dcn?", "/migrate_check?", 1))
	require.NoError(t, err)
	defer scratch.Close()

	require.NoError(t, database.MigrateUp(scratch.DB))
	// Applying again is a no-op.
	require.NoError(t, database.MigrateUp(scratch.DB))

	m, err := database.NewMigrator(scratch.DB)
	require.NoError(t, err)
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	require.NoError(t, database.MigrateDown(scratch.DB, 0))
	var tables int
	require.NoError(t, scratch.Get(&tables, `SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name IN ('quiz', 'kontributor', 'sertifikat')`))
	assert.Zero(t, tables)

	require.NoError(t, database.MigrateUp(scratch.DB))
	require.NoError(t, scratch.Get(&tables, `SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name IN ('quiz', 'kontributor', 'sertifikat')`))
	assert.Equal(t, 3, tables)
}
