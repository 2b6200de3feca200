package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/nodeadmin/elreasoner/internal/config"
)

// newLogger opens cfg.LogFile in append-on-open mode and wraps it in a
// zerolog.Logger at cfg.LogLevel. The caller must invoke the returned
// closer once done.
func newLogger(cfg *config.Config) (*zerolog.Logger, func(), error) {
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return &log, func() { f.Close() }, nil
}
