package logger

import (
	"clinic-booking-service/internal/pkg/constvars"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the console logger used by command-line tools and
// process lifecycle messages. Production output is JSON.
func NewLogrusLogger(env, level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	switch env {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}
