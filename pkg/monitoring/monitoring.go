// Package monitoring is the client for the monitoring API.
package monitoring

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stackwise/invctl/pkg/client"
	"github.com/stackwise/invctl/pkg/record"
)

// Client reads alert and check state.
type Client struct {
	c *client.Client
}

// New creates a monitoring client on the shared HTTP plumbing.
func New(c *client.Client) *Client {
	return &Client{c: c}
}

// Alerts returns active alerts matching the given filter conditions.
func (c *Client) Alerts(ctx context.Context, conditions []string) ([]record.Record, error) {
	query := url.Values{}
	for _, cond := range conditions {
		query.Add("q", cond)
	}

	var out []record.Record
	if err := c.c.GetJSON(ctx, "/v1/alerts", query, &out); err != nil {
		return nil, fmt.Errorf("alerts query: %w", err)
	}
	return out, nil
}

// Checks returns the check states for one host.
func (c *Client) Checks(ctx context.Context, host string) ([]record.Record, error) {
	query := url.Values{}
	if host != "" {
		query.Set("host", host)
	}

	var out []record.Record
	if err := c.c.GetJSON(ctx, "/v1/checks", query, &out); err != nil {
		return nil, fmt.Errorf("checks query for %s: %w", host, err)
	}
	return out, nil
}
