package utils

import (
	"context"

	"github.com/sirupsen/logrus"
)

// WithFallback runs primary and, on any error, logs a diagnostic and serves
// fallback's result instead. The primary error is never surfaced to the
// caller unless the fallback fails too.
func WithFallback[T any](ctx context.Context, log *logrus.Logger, op string, primary, fallback func(ctx context.Context) (T, error)) (T, error) {
	out, err := primary(ctx)
	if err == nil {
		return out, nil
	}

	if log != nil {
		log.WithFields(logrus.Fields{"op": op, "error": err.Error()}).
			Warn("primary data source failed, serving fallback")
	}
	return fallback(ctx)
}
