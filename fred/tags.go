package fred

import (
	"context"
	"fmt"
)

// GetTags retrieves tags, optionally filtered by group or search text.
func (c *Client) GetTags(ctx context.Context, opts *TagOptions) (*TagsResponse, error) {
	q := NewQuery()
	opts.apply(q)

	var resp TagsResponse
	if err := c.getInto(ctx, "tags?", q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	return &resp, nil
}

// GetRelatedTags retrieves the tags related to tagNames. tagNames is
// required by the API; multi-word tags keep their whitespace encoded as "+".
func (c *Client) GetRelatedTags(ctx context.Context, tagNames []string, opts *TagOptions) (*TagsResponse, error) {
	if len(tagNames) == 0 {
		return nil, fmt.Errorf("%w: tag names are required", ErrInvalidArgument)
	}

	q := NewQuery()
	q.Add("tag_names", tagNames)
	opts.apply(q)

	var resp TagsResponse
	if err := c.getInto(ctx, "related_tags?", q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get related tags: %w", err)
	}
	return &resp, nil
}

// GetTagSeries retrieves the series matching all of tagNames.
func (c *Client) GetTagSeries(ctx context.Context, tagNames []string, opts *SeriesListOptions) (*SeriesResponse, error) {
	if len(tagNames) == 0 {
		return nil, fmt.Errorf("%w: tag names are required", ErrInvalidArgument)
	}

	q := NewQuery()
	q.Add("tag_names", tagNames)
	opts.apply(q)

	var resp SeriesResponse
	if err := c.getInto(ctx, "tags/series?", q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get tag series: %w", err)
	}
	return &resp, nil
}
