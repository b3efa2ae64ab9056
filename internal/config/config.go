package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Data    DataConfig    `yaml:"data"`
	Engine  EngineConfig  `yaml:"engine"`
	Lexicon LexiconConfig `yaml:"lexicon"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	CORSOrigins     string        `yaml:"cors_origins"     env:"SERVER_CORS_ORIGINS"     env-default:"*"`
	// RateLimit is the number of requests per second allowed to one
	// client. Zero disables limiting.
	RateLimit float64 `yaml:"rate_limit" env:"SERVER_RATE_LIMIT" env-default:"20"`
	RateBurst int     `yaml:"rate_burst" env:"SERVER_RATE_BURST" env-default:"40"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Origins splits CORSOrigins on commas.
func (s ServerConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(s.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// LogConfig holds logging settings. An empty Path logs to stderr.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Path  string `yaml:"path"  env:"LOG_PATH"`
}

// DataConfig points to a directory overriding the embedded grammar and
// sandhi files.
type DataConfig struct {
	Dir string `yaml:"dir" env:"DATA_DIR"`
}

// EngineConfig tunes the analysis engine.
type EngineConfig struct {
	Prune        int `yaml:"prune"         env:"ENGINE_PRUNE"         env-default:"16"`
	DefaultDepth int `yaml:"default_depth" env:"ENGINE_DEFAULT_DEPTH" env-default:"2"`
	MaxDepth     int `yaml:"max_depth"     env:"ENGINE_MAX_DEPTH"     env-default:"3"`
	CacheSize    int `yaml:"cache_size"    env:"ENGINE_CACHE_SIZE"    env-default:"4096"`
}

// LexiconConfig selects the dictionary. StaticPath wins over BaseURL;
// with neither the engine runs without a dictionary.
type LexiconConfig struct {
	BaseURL      string        `yaml:"base_url"       env:"LEXICON_BASE_URL"`
	Timeout      time.Duration `yaml:"timeout"        env:"LEXICON_TIMEOUT"        env-default:"5s"`
	StaticPath   string        `yaml:"static_path"    env:"LEXICON_STATIC_PATH"`
	CacheSize    int           `yaml:"cache_size"     env:"LEXICON_CACHE_SIZE"     env-default:"10000"`
	CacheTTL     time.Duration `yaml:"cache_ttl"      env:"LEXICON_CACHE_TTL"      env-default:"5m"`
	RedisAddr    string        `yaml:"redis_addr"     env:"LEXICON_REDIS_ADDR"`
	RedisDB      int           `yaml:"redis_db"       env:"LEXICON_REDIS_DB"       env-default:"0"`
	RedisTTLSecs int           `yaml:"redis_ttl_secs" env:"LEXICON_REDIS_TTL_SECS" env-default:"3600"`
}

// Enabled reports whether any dictionary is configured.
func (l LexiconConfig) Enabled() bool {
	return l.BaseURL != "" || l.StaticPath != ""
}
