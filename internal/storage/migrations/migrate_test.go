package migrations

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestFiles_Embedded(t *testing.T) {
	files, err := Files()
	require.NoError(t, err)

	assert.Equal(t, []string{"00001_init.sql", "00002_default_cost_config.sql"}, files)
}

func TestInitMigration_HasGooseMarkers(t *testing.T) {
	data, err := migrationsFS.ReadFile("sql/00001_init.sql")
	require.NoError(t, err)

	assert.Contains(t, string(data), "-- +goose Up")
	assert.Contains(t, string(data), "-- +goose Down")
	assert.Contains(t, string(data), "production_cost_config")
	assert.Contains(t, string(data), "stretcher_bar_stock")
}
