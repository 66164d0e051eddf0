package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "campus-parking", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, StorageDriverPostgres, config.App.StorageDriver)
	assert.True(t, config.App.SeedOnStart)
	assert.Equal(t, "5432", config.Database.Port)
	assert.EqualValues(t, 10, config.Database.MaxConns)
	assert.Equal(t, "http://localhost:8080/simulated-payment.html", config.Payment.GatewayURL)
	assert.Equal(t, 0.99, config.Payment.SuccessRate)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"PORT=9090\nDB_NAME=parking\nSTORAGE_DRIVER=memory\nPAYMENT_SUCCESS_RATE=0.5\n",
	), 0o600))

	// Process environment wins over the file
	t.Setenv("PORT", "7070")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", config.App.Port)
	assert.Equal(t, "parking", config.Database.Name)
	assert.Equal(t, StorageDriverMemory, config.App.StorageDriver)
	assert.Equal(t, 0.5, config.Payment.SuccessRate)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown storage driver", env: map[string]string{"STORAGE_DRIVER": "sqlite"}},
		{name: "success rate above one", env: map[string]string{"PAYMENT_SUCCESS_RATE": "1.5"}},
		{name: "negative success rate", env: map[string]string{"PAYMENT_SUCCESS_RATE": "-0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig("")
			assert.Error(t, err)
		})
	}
}
