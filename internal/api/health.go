package api

import "context"

type healthResponse struct {
	Status string `json:"status"`
}

// HealthCheck reports whether the service answers GET /health with
// status "healthy". Any request failure counts as unhealthy; this method
// never returns an error.
func (c *Client) HealthCheck(ctx context.Context) bool {
	var resp healthResponse
	if err := c.get(ctx, "/health", nil, &resp); err != nil {
		return false
	}
	return resp.Status == "healthy"
}

// ReadinessCheck reports whether the service (including its database
// connection) answers GET /health/ready with status "ready". Like
// HealthCheck it never returns an error.
func (c *Client) ReadinessCheck(ctx context.Context) bool {
	var resp healthResponse
	if err := c.get(ctx, "/health/ready", nil, &resp); err != nil {
		return false
	}
	return resp.Status == "ready"
}
