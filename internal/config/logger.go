package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg = logrus.New()

// InitLogger configures the shared logger from the log section of the
// configuration. JSON output; file output when a path is given, stdout
// otherwise.
func InitLogger(cfg LogConfig) *logrus.Logger {
	logg.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logg.SetLevel(level)

	logg.SetOutput(os.Stdout)
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			logg.SetOutput(file)
		} else {
			logg.WithError(err).Warn("cannot open log file, using stdout")
		}
	}
	return logg
}

// GetLogger returns the shared logger.
func GetLogger() *logrus.Logger {
	return logg
}
