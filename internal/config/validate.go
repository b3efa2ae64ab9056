package config

import (
	"fmt"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %v)", c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		return fmt.Errorf("server.rate_burst must be >= 1 when rate limiting (got %d)", c.Server.RateBurst)
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if err := c.Engine.validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if err := c.Lexicon.validate(); err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}
	return nil
}

func (e EngineConfig) validate() error {
	if e.Prune < 0 {
		return fmt.Errorf("prune must be >= 0 (got %d)", e.Prune)
	}
	if e.DefaultDepth < 0 {
		return fmt.Errorf("default_depth must be >= 0 (got %d)", e.DefaultDepth)
	}
	if e.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be >= 1 (got %d)", e.MaxDepth)
	}
	if e.DefaultDepth > e.MaxDepth {
		return fmt.Errorf("default_depth %d exceeds max_depth %d", e.DefaultDepth, e.MaxDepth)
	}
	return nil
}

func (l LexiconConfig) validate() error {
	if l.RedisAddr != "" && l.BaseURL == "" {
		return fmt.Errorf("redis_addr requires base_url")
	}
	if l.RedisAddr != "" && l.RedisTTLSecs <= 0 {
		return fmt.Errorf("redis_ttl_secs must be > 0 (got %d)", l.RedisTTLSecs)
	}
	if l.BaseURL != "" && l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", l.Timeout)
	}
	return nil
}
