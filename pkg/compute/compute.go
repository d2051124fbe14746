// Package compute is the client for the cloud-instance control API.
package compute

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stackwise/invctl/pkg/client"
	"github.com/stackwise/invctl/pkg/record"
)

// Client drives instance lifecycle operations.
type Client struct {
	c *client.Client
}

// New creates a compute client on the shared HTTP plumbing.
func New(c *client.Client) *Client {
	return &Client{c: c}
}

// List returns all instances matching the given filter conditions.
func (c *Client) List(ctx context.Context, conditions []string) ([]record.Record, error) {
	query := url.Values{}
	for _, cond := range conditions {
		query.Add("q", cond)
	}

	var out []record.Record
	if err := c.c.GetJSON(ctx, "/v1/instances", query, &out); err != nil {
		return nil, fmt.Errorf("instance list: %w", err)
	}
	return out, nil
}

// Get returns one instance by id or name.
func (c *Client) Get(ctx context.Context, id string) (record.Record, error) {
	var out record.Record
	if err := c.c.GetJSON(ctx, "/v1/instances/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("instance get %s: %w", id, err)
	}
	return out, nil
}

// Spec describes a new instance.
type Spec struct {
	Name   string `json:"name"`
	Flavor string `json:"flavor,omitempty"`
	Region string `json:"region,omitempty"`
	Image  string `json:"image,omitempty"`
}

// Create provisions a new instance and returns the created record.
func (c *Client) Create(ctx context.Context, spec Spec) (record.Record, error) {
	var out record.Record
	if err := c.c.PostJSON(ctx, "/v1/instances", spec, &out); err != nil {
		return nil, fmt.Errorf("instance create %s: %w", spec.Name, err)
	}
	return out, nil
}

// Start powers an instance on.
func (c *Client) Start(ctx context.Context, id string) error {
	return c.action(ctx, id, "start")
}

// Stop powers an instance off.
func (c *Client) Stop(ctx context.Context, id string) error {
	return c.action(ctx, id, "stop")
}

func (c *Client) action(ctx context.Context, id, action string) error {
	path := fmt.Sprintf("/v1/instances/%s/%s", url.PathEscape(id), action)
	if err := c.c.PostJSON(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("instance %s %s: %w", action, id, err)
	}
	return nil
}

// Terminate destroys an instance.
func (c *Client) Terminate(ctx context.Context, id string) error {
	if err := c.c.DeleteJSON(ctx, "/v1/instances/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("instance terminate %s: %w", id, err)
	}
	return nil
}
