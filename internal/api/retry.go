package api

import (
	"context"
	"os"
	"strconv"
	"time"
)

// Default client configuration values.
const (
	DefaultMaxRetries = 3
	DefaultBatchSize  = 1000
	DefaultTimeout    = 30 * time.Second
)

// Backoff bounds for the retry loop. The wait before retry n is
// min(backoffMax, backoffBase << (n-1)).
const (
	backoffBase = 1 * time.Second
	backoffMax  = 10 * time.Second
)

// backoffDelay returns the exponential backoff wait before the next attempt,
// capped at backoffMax.
func (c *Client) backoffDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := c.backoffBase
	if base <= 0 {
		base = backoffBase
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= backoffMax {
			return backoffMax
		}
	}
	if d > backoffMax {
		d = backoffMax
	}
	return d
}

// sleepWithContext waits for the duration or returns early on context cancellation.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// getEnvInt reads an integer from an environment variable with a default fallback.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvDuration reads a duration from an environment variable with a default fallback.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
