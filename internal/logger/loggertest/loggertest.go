// Package loggertest provides a Logger that writes through testing.TB.
package loggertest

import (
	"testing"

	"github.com/BerylCAtieno/agriguru-agent/internal/logger"
	"go.uber.org/zap/zaptest"
)

func New(t testing.TB) logger.Logger {
	return logger.FromZap(zaptest.NewLogger(t))
}
