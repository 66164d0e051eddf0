package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_SortedAndEmbedded(t *testing.T) {
	names, err := Files()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	assert.Equal(t, "0001_init.sql", names[0])
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestInitMigration_CreatesTables(t *testing.T) {
	body, err := files.ReadFile("0001_init.sql")
	require.NoError(t, err)

	sql := string(body)
	assert.True(t, strings.Contains(sql, "CREATE TABLE IF NOT EXISTS parking_slots"))
	assert.True(t, strings.Contains(sql, "CREATE TABLE IF NOT EXISTS transactions"))
	assert.True(t, strings.Contains(sql, "transaction_id TEXT NOT NULL UNIQUE"))
}
