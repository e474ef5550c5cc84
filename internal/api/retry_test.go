package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestRetryCeiling(t *testing.T) {
	// P1: a server that always answers with a retryable status is asked
	// exactly MaxRetries times before the client gives up.
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")
	client.MaxRetries = 3

	_, err := client.executeRequest(context.Background(), http.MethodGet, "/runoff/", nil, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var connErr *ConnectivityError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected *ConnectivityError, got %T (%v)", err, err)
	}
	if connErr.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", connErr.Attempts)
	}
	if !strings.Contains(connErr.Error(), server.URL) {
		t.Errorf("error should include the URL, got %q", connErr.Error())
	}
	if got := requests.Load(); got != 3 {
		t.Errorf("observed %d requests, want exactly 3", got)
	}
}

func TestRetryableStatusThenSuccess(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[{"id": 7}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")
	var result []map[string]int
	if err := client.get(context.Background(), "/test", nil, &result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 || result[0]["id"] != 7 {
		t.Errorf("result = %v, want [{id: 7}]", result)
	}
	if got := requests.Load(); got != 3 {
		t.Errorf("observed %d requests, want 3", got)
	}
}

func TestRetry_ConnectionFailure(t *testing.T) {
	// Shut the server down so every attempt fails at the transport level.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(t, url, "")
	client.MaxRetries = 2

	_, err := client.executeRequest(context.Background(), http.MethodGet, "/test", nil, nil)
	if !IsConnectivityError(err) {
		t.Fatalf("expected ConnectivityError, got %T (%v)", err, err)
	}
	var connErr *ConnectivityError
	_ = errors.As(err, &connErr)
	if connErr.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", connErr.Attempts)
	}
	if connErr.Unwrap() == nil {
		t.Error("the triggering transport error should be preserved")
	}
}

func TestRetry_ZeroBudgetMeansSingleAttempt(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")
	client.MaxRetries = 0

	_, err := client.executeRequest(context.Background(), http.MethodGet, "/test", nil, nil)
	if !IsConnectivityError(err) {
		t.Fatalf("expected ConnectivityError, got %v", err)
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("observed %d requests, want 1", got)
	}
}

func TestRetry_ContextCancellationAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")
	client.backoffBase = time.Hour // cancellation must interrupt the sleep

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.executeRequest(ctx, http.MethodGet, "/test", nil, nil)
		done <- err
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("cancellation did not interrupt the backoff sleep")
	}
}

func TestBackoffDelay(t *testing.T) {
	client := newTestClient(t, "https://example.com", "")
	client.backoffBase = backoffBase

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 1 * time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 8 * time.Second},
		{5, 10 * time.Second}, // capped
		{9, 10 * time.Second},
	}
	for _, tt := range tests {
		if got := client.backoffDelay(tt.attempt); got != tt.want {
			t.Errorf("backoffDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("http://localhost:8000")

	if cfg.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", cfg.MaxRetries, DefaultMaxRetries)
	}
	if cfg.BatchSize != DefaultBatchSize {
		t.Errorf("BatchSize = %d, want %d", cfg.BatchSize, DefaultBatchSize)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestDefaultConfig_WithEnvVars(t *testing.T) {
	t.Setenv("SAPPHIRE_MAX_RETRIES", "5")
	t.Setenv("SAPPHIRE_BATCH_SIZE", "250")
	t.Setenv("SAPPHIRE_TIMEOUT", "10s")

	cfg := DefaultConfig("http://localhost:8000")

	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
	if cfg.BatchSize != 250 {
		t.Errorf("BatchSize = %d, want 250", cfg.BatchSize)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
}

func TestDefaultConfig_InvalidEnvVars(t *testing.T) {
	t.Setenv("SAPPHIRE_MAX_RETRIES", "not-a-number")
	t.Setenv("SAPPHIRE_TIMEOUT", "invalid")

	cfg := DefaultConfig("http://localhost:8000")

	if cfg.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want default %d", cfg.MaxRetries, DefaultMaxRetries)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", cfg.Timeout, DefaultTimeout)
	}
}
