package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  cors_origins: "https://a.example, https://b.example"
  rate_limit: 5
  rate_burst: 10

log:
  level: "debug"

engine:
  prune: 8
  default_depth: 3
  cache_size: 100

lexicon:
  base_url: "http://localhost:9000"
  timeout: "2s"
  redis_addr: "localhost:6379"
  redis_ttl_secs: 60
`

func TestLoad_ValidYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeYAML(t, validYAML))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.Origins())
	assert.Equal(t, 5.0, cfg.Server.RateLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, EngineConfig{Prune: 8, DefaultDepth: 3, MaxDepth: 3, CacheSize: 100}, cfg.Engine)
	assert.True(t, cfg.Lexicon.Enabled())
	assert.Equal(t, 2*time.Second, cfg.Lexicon.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Lexicon.CacheTTL)
	assert.Equal(t, 60, cfg.Lexicon.RedisTTLSecs)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())
	t.Setenv("ENGINE_DEFAULT_DEPTH", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Engine.DefaultDepth)
	assert.Equal(t, 16, cfg.Engine.Prune)
	assert.Equal(t, 3, cfg.Engine.MaxDepth)
	assert.Equal(t, []string{"*"}, cfg.Server.Origins())
	assert.False(t, cfg.Lexicon.Enabled())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad port", "server:\n  port: 70000\n", "server.port"},
		{"negative depth", "engine:\n  default_depth: -1\n", "default_depth"},
		{"default above max", "engine:\n  default_depth: 5\n  max_depth: 4\n", "exceeds max_depth"},
		{"negative max depth", "engine:\n  max_depth: -2\n", "max_depth"},
		{"redis alone", "lexicon:\n  redis_addr: localhost:6379\n", "redis_addr requires base_url"},
		{"negative rate", "server:\n  rate_limit: -1\n", "server.rate_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeYAML(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
