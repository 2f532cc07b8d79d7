package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals stop a running batch. Files already converted are kept.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// notifyContext returns a context that is canceled when a shutdown signal
// is received. Call stop() to release resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
