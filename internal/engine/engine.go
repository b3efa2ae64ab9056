// Package engine builds a pali.Engine from the application configuration.
package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/cours-de-latin/pali"
	"github.com/cours-de-latin/pali/internal/config"
	"github.com/cours-de-latin/pali/lexicon"
)

// Build creates the engine described by cfg. The returned function
// releases the dictionary connections.
func Build(ctx context.Context, cfg *config.Config) (*pali.Engine, func(), error) {
	opts := []pali.Option{
		pali.WithPrune(cfg.Engine.Prune),
		pali.WithDefaultDepth(cfg.Engine.DefaultDepth),
		pali.WithMaxDepth(cfg.Engine.MaxDepth),
		pali.WithCacheSize(cfg.Engine.CacheSize),
		pali.WithLogger(log.Logger),
	}
	if cfg.Data.Dir != "" {
		opts = append(opts, pali.WithDataFS(os.DirFS(cfg.Data.Dir)))
	}
	lookup, closeLexicon, err := NewLexicon(cfg.Lexicon)
	if err != nil {
		return nil, nil, err
	}
	if lookup != nil {
		opts = append(opts, pali.WithLexicon(lookup))
	}
	e, err := pali.New(ctx, opts...)
	if err != nil {
		closeLexicon()
		return nil, nil, fmt.Errorf("build engine: %w", err)
	}
	log.Info().
		Str("dataDir", cfg.Data.Dir).
		Bool("lexicon", lookup != nil).
		Int("defaultDepth", cfg.Engine.DefaultDepth).
		Int("maxDepth", cfg.Engine.MaxDepth).
		Msg("engine loaded")
	return e, closeLexicon, nil
}

// NewLexicon returns the configured dictionary, or nil when there is none.
// A remote dictionary is always fronted by the in-memory cache and, when
// configured, by the shared Redis cache behind it.
func NewLexicon(c config.LexiconConfig) (lexicon.Lookup, func(), error) {
	noop := func() {}
	switch {
	case c.StaticPath != "":
		s, err := lexicon.LoadStaticFile(c.StaticPath)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case c.BaseURL != "":
		var l lexicon.Lookup = lexicon.NewClient(c.BaseURL, c.Timeout)
		closeFn := noop
		if c.RedisAddr != "" {
			rc := lexicon.NewRedisCache(lexicon.RedisConf{
				Addr:    c.RedisAddr,
				DB:      c.RedisDB,
				TTLSecs: c.RedisTTLSecs,
			}, l)
			l = rc
			closeFn = func() {
				if err := rc.Close(); err != nil {
					log.Warn().Err(err).Msg("failed to close redis lexicon cache")
				}
			}
		}
		return lexicon.NewCached(l, c.CacheSize, c.CacheTTL), closeFn, nil
	}
	return nil, noop, nil
}
