// Command server exposes the Pali engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/lemmatize?q=<word>[&pos=<class>][&lexicon=true]
//	GET  /api/analyze?q=<word>[&pos=<class>]
//	GET  /api/generate?q=<lemma>[&pos=<class>][&gender=m|f|n][&declension=<d>][&affixes=true]
//	GET  /api/stem?q=<word>[&pos=<class>]
//	GET  /api/merge?q=<word>&q=<word>[&q=...]
//	GET  /api/split?q=<word>[&depth=<n>]
//	GET  /api/compound?q=<lemma>[&force=true]
//	GET  /health
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/cours-de-latin/pali/internal/config"
	"github.com/cours-de-latin/pali/internal/engine"
	"github.com/cours-de-latin/pali/internal/logging"
)

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default: $CONFIG_PATH or ./config.yaml)")
	addr := flag.String("addr", "", "listen address, overrides the configuration")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := logging.Setup(cfg.Log.Path, cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Send()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng, closeEngine, err := engine.Build(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load data")
	}
	defer closeEngine()

	listen := cfg.Server.Addr()
	if *addr != "" {
		listen = *addr
	}
	srv := &http.Server{
		Addr:         listen,
		Handler:      newHandler(eng, cfg.Server),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("addr", listen).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}
