package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
redis:
  address: localhost:6379
  cache_ttl_seconds: 120
horarios:
  defaults:
    entrada: "09:00"
    dias_francos: [0, 6]
  empleados:
    "PEREZ JUAN":
      salida: "18:00"
      francos_extra: [3]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, float64(10), cfg.Server.RateLimitRPS) // default
	assert.Equal(t, 120, cfg.Redis.CacheTTLSeconds)

	// Unset schedule fields fall back to stock defaults.
	assert.Equal(t, "09:00", cfg.Horarios.Defaults.Entrada)
	assert.Equal(t, "17:00", cfg.Horarios.Defaults.Salida)
	assert.Equal(t, []int{0, 6}, cfg.Horarios.Defaults.DiasFrancos)

	h := cfg.Horarios.Resolve("PEREZ JUAN")
	assert.Equal(t, "18:00", h.Salida)
}

func TestLoadEnvExpansion(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6379")
	path := writeConfig(t, "redis:\n  address: ${REDIS_ADDR}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
}

func TestLoadInvalidSchedule(t *testing.T) {
	path := writeConfig(t, "horarios:\n  defaults:\n    entrada: \"25:00\"\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
