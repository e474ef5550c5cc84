package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCommand(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/api/preprocessing/health", jsonResponse(200, `{"status": "healthy"}`))
	setupTestEnv(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"health"})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "preprocessing service is healthy")
}

func TestHealthCommand_Ready(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/api/postprocessing/health/ready", jsonResponse(200, `{"status": "ready"}`))
	setupTestEnv(t, handler)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"health", "--service", "postprocessing", "--ready"})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "postprocessing service is ready")
}

func TestHealthCommand_Down(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/api/preprocessing/health", jsonResponse(503, `{"status": "unavailable"}`))
	setupTestEnv(t, handler)

	// A single attempt keeps the 503 from triggering retry backoff.
	err := Execute(context.Background(), []string{"health", "--max-retries", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preprocessing service is not healthy")
}

func TestHealthCommand_InvalidService(t *testing.T) {
	setupTestEnv(t, newRouteHandler())

	err := Execute(context.Background(), []string{"health", "--service", "frontend"})
	require.Error(t, err)
	assert.Equal(t, exitUsage, ExitCode(err))
}
