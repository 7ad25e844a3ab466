package fred

import (
	"context"
	"fmt"
)

// GetSources retrieves all sources of economic data.
func (c *Client) GetSources(ctx context.Context, opts *ListOptions) (*SourcesResponse, error) {
	q := NewQuery()
	opts.apply(q)

	var resp SourcesResponse
	if err := c.getInto(ctx, "sources?", q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}
	return &resp, nil
}

// GetSource retrieves a single source.
func (c *Client) GetSource(ctx context.Context, sourceID int, opts *ListOptions) (*SourcesResponse, error) {
	fragment, err := appendID("source?source_id=", &sourceID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp SourcesResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get source: %w", err)
	}
	return &resp, nil
}

// GetSourceReleases retrieves the releases of a source.
func (c *Client) GetSourceReleases(ctx context.Context, sourceID int, opts *ListOptions) (*ReleasesResponse, error) {
	fragment, err := appendID("source/releases?source_id=", &sourceID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp ReleasesResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get source releases: %w", err)
	}
	return &resp, nil
}
