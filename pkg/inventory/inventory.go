// Package inventory is the client for the CMDB query API.
package inventory

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stackwise/invctl/pkg/client"
	"github.com/stackwise/invctl/pkg/record"
)

// Client queries the CMDB.
type Client struct {
	c *client.Client
}

// New creates an inventory client on the shared HTTP plumbing.
func New(c *client.Client) *Client {
	return &Client{c: c}
}

// Query returns the records of the given kind matching every condition.
// Conditions are passed through verbatim as repeated "q" parameters; their
// syntax belongs to the CMDB, not to this client.
func (c *Client) Query(ctx context.Context, kind record.Kind, conditions []string) ([]record.Record, error) {
	query := url.Values{}
	for _, cond := range conditions {
		query.Add("q", cond)
	}

	var out []record.Record
	if err := c.c.GetJSON(ctx, "/v1/records/"+kind.String(), query, &out); err != nil {
		return nil, fmt.Errorf("cmdb query for %s: %w", kind, err)
	}
	return out, nil
}

// Get returns the single record of the given kind and name.
func (c *Client) Get(ctx context.Context, kind record.Kind, name string) (record.Record, error) {
	var out record.Record
	path := fmt.Sprintf("/v1/records/%s/%s", kind, url.PathEscape(name))
	if err := c.c.GetJSON(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("cmdb get %s/%s: %w", kind, name, err)
	}
	return out, nil
}
