// Package logger holds the process-wide logrus logger.
//
// Output goes to stderr because stdout carries MCP responses.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// EnvLevel names the environment variable read for the initial log level.
const EnvLevel = "YUV_PULSE_LOG_LEVEL"

// Log is shared by every package; its level comes from EnvLevel until SetLevel
// changes it.
var Log = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level := logrus.InfoLevel
	if parsed, err := logrus.ParseLevel(os.Getenv(EnvLevel)); err == nil {
		level = parsed
	}
	log.SetLevel(level)

	return log
}

// SetLevel changes the level from its textual name ("debug", "info", ...).
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	Log.SetLevel(level)
	return nil
}
