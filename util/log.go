package util

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DiscardLogger returns a logger that drops everything written to it.
// Containers use it when the caller doesn't supply one.
func DiscardLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	log.Level = logrus.PanicLevel
	return log
}
