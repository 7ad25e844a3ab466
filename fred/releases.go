package fred

import (
	"context"
	"fmt"
)

// GetReleases retrieves all releases of economic data.
func (c *Client) GetReleases(ctx context.Context, opts *ListOptions) (*ReleasesResponse, error) {
	q := NewQuery()
	opts.apply(q)

	var resp ReleasesResponse
	if err := c.getInto(ctx, "releases?", q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get releases: %w", err)
	}
	return &resp, nil
}

// GetReleasesDates retrieves release dates for all releases.
func (c *Client) GetReleasesDates(ctx context.Context, opts *ReleaseDatesOptions) (*ReleaseDatesResponse, error) {
	q := NewQuery()
	opts.apply(q)

	var resp ReleaseDatesResponse
	if err := c.getInto(ctx, "releases/dates?", q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get release dates: %w", err)
	}
	return &resp, nil
}

// GetRelease retrieves a single release.
func (c *Client) GetRelease(ctx context.Context, releaseID int, opts *ListOptions) (*ReleasesResponse, error) {
	fragment, err := appendID("release?release_id=", &releaseID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp ReleasesResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get release: %w", err)
	}
	return &resp, nil
}

// GetReleaseDates retrieves the dates a single release was published.
func (c *Client) GetReleaseDates(ctx context.Context, releaseID int, opts *ReleaseDatesOptions) (*ReleaseDatesResponse, error) {
	fragment, err := appendID("release/dates?release_id=", &releaseID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp ReleaseDatesResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get release dates: %w", err)
	}
	return &resp, nil
}

// GetReleaseSeries retrieves the series belonging to a release.
func (c *Client) GetReleaseSeries(ctx context.Context, releaseID int, opts *SeriesListOptions) (*SeriesResponse, error) {
	fragment, err := appendID("release/series?release_id=", &releaseID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp SeriesResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get release series: %w", err)
	}
	return &resp, nil
}

// GetReleaseSources retrieves the sources of a release.
func (c *Client) GetReleaseSources(ctx context.Context, releaseID int) (*SourcesResponse, error) {
	fragment, err := appendID("release/sources?release_id=", &releaseID, "")
	if err != nil {
		return nil, err
	}

	var resp SourcesResponse
	if err := c.getInto(ctx, fragment, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get release sources: %w", err)
	}
	return &resp, nil
}

// GetReleaseTags retrieves the tags of the series in a release.
func (c *Client) GetReleaseTags(ctx context.Context, releaseID int, opts *TagOptions) (*TagsResponse, error) {
	fragment, err := appendID("release/tags?release_id=", &releaseID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp TagsResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get release tags: %w", err)
	}
	return &resp, nil
}

// GetReleaseRelatedTags retrieves the tags related to tagNames within a
// release. tagNames is required by the API.
func (c *Client) GetReleaseRelatedTags(ctx context.Context, releaseID int, tagNames []string, opts *TagOptions) (*TagsResponse, error) {
	if len(tagNames) == 0 {
		return nil, fmt.Errorf("%w: tag names are required", ErrInvalidArgument)
	}
	fragment, err := appendID("release/related_tags?release_id=", &releaseID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	q.Add("tag_names", tagNames)
	opts.apply(q)

	var resp TagsResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get release related tags: %w", err)
	}
	return &resp, nil
}
