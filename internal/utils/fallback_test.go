package utils

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestWithFallbackPrefersPrimary(t *testing.T) {
	fallbackCalled := false

	out, err := WithFallback(context.Background(), quietLogger(), "test",
		func(context.Context) ([]string, error) { return []string{"live"}, nil },
		func(context.Context) ([]string, error) { fallbackCalled = true; return []string{"mock"}, nil },
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"live"}, out)
	assert.False(t, fallbackCalled)
}

func TestWithFallbackMasksPrimaryError(t *testing.T) {
	out, err := WithFallback(context.Background(), quietLogger(), "test",
		func(context.Context) (int, error) { return 0, errors.New("connection refused") },
		func(context.Context) (int, error) { return 42, nil },
	)

	require.NoError(t, err)
	assert.Equal(t, 42, out)
}

func TestWithFallbackSurfacesFallbackError(t *testing.T) {
	sentinel := errors.New("fallback broken")

	_, err := WithFallback(context.Background(), nil, "test",
		func(context.Context) (int, error) { return 0, errors.New("primary down") },
		func(context.Context) (int, error) { return 0, sentinel },
	)

	assert.ErrorIs(t, err, sentinel)
}
