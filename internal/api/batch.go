package api

import (
	"context"
	"encoding/json"
	"log/slog"
)

// batchPayload is the bulk-write wire envelope: {"data": [ ...records... ]}.
type batchPayload[T any] struct {
	Data []T `json:"data"`
}

// writeBatched posts records to endpoint in chunks of c.BatchSize, strictly
// in input order and never concurrently. It returns the total number of
// records the server acknowledged, which may differ from len(records) if the
// server deduplicates; no reconciliation is attempted.
//
// The first failing batch aborts the operation: remaining batches are not
// attempted and the classified error comes back wrapped in a *BatchError.
// Records already accepted by earlier batches are not rolled back.
func writeBatched[T any](ctx context.Context, c *Client, endpoint string, records []T) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	totalBatches := (len(records) + c.BatchSize - 1) / c.BatchSize
	totalPosted := 0

	for i := 0; i < len(records); i += c.BatchSize {
		end := i + c.BatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[i:end]
		batchNum := i/c.BatchSize + 1

		slog.Info("posting batch",
			"endpoint", endpoint, "batch", batchNum, "total", totalBatches, "records", len(batch))

		var result []json.RawMessage
		if err := c.post(ctx, endpoint, batchPayload[T]{Data: batch}, &result); err != nil {
			return 0, &BatchError{Batch: batchNum, Total: totalBatches, Err: err}
		}
		totalPosted += len(result)
	}

	slog.Info("posted records", "endpoint", endpoint, "count", totalPosted)
	return totalPosted, nil
}
