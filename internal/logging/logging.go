// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var levelMapping = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warning": zerolog.WarnLevel,
	"warn":    zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// Level maps a configured level name to zerolog.
func Level(name string) (zerolog.Level, error) {
	lev, ok := levelMapping[name]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("invalid logging level: %s", name)
	}
	return lev, nil
}

// Setup sets the global level and output. With an empty path a console
// writer on stderr is used, otherwise the file is appended to.
func Setup(path, level string) error {
	lev, err := Level(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lev)
	if path != "" {
		logf, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to initialize log file %s: %w", path, err)
		}
		log.Logger = log.Output(logf)
		return nil
	}
	log.Logger = log.Output(
		zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		},
	)
	return nil
}
