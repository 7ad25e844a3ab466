package fred

import (
	"context"
	"fmt"
)

// GetSeries retrieves the metadata of a single series.
func (c *Client) GetSeries(ctx context.Context, seriesID string, opts *ListOptions) (*SeriesResponse, error) {
	fragment, err := appendID("series?series_id=", nil, seriesID)
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp SeriesResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get series: %w", err)
	}
	return &resp, nil
}

// GetSeriesCategories retrieves the categories a series belongs to.
func (c *Client) GetSeriesCategories(ctx context.Context, seriesID string) (*CategoriesResponse, error) {
	fragment, err := appendID("series/categories?series_id=", nil, seriesID)
	if err != nil {
		return nil, err
	}

	var resp CategoriesResponse
	if err := c.getInto(ctx, fragment, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get series categories: %w", err)
	}
	return &resp, nil
}

// GetSeriesObservations retrieves the observations of a series. The result
// can be rendered in tabular form with ObservationsResponse.Table.
func (c *Client) GetSeriesObservations(ctx context.Context, seriesID string, opts *ObservationOptions) (*ObservationsResponse, error) {
	fragment, err := appendID("series/observations?series_id=", nil, seriesID)
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp ObservationsResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get series observations: %w", err)
	}
	return &resp, nil
}

// GetSeriesRelease retrieves the release a series belongs to.
func (c *Client) GetSeriesRelease(ctx context.Context, seriesID string) (*ReleasesResponse, error) {
	fragment, err := appendID("series/release?series_id=", nil, seriesID)
	if err != nil {
		return nil, err
	}

	var resp ReleasesResponse
	if err := c.getInto(ctx, fragment, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get series release: %w", err)
	}
	return &resp, nil
}

// SearchSeries searches for series matching free text. Whitespace in the
// search text is encoded as "+".
func (c *Client) SearchSeries(ctx context.Context, searchText string, opts *SearchOptions) (*SeriesResponse, error) {
	fragment, err := appendID("series/search?search_text=", nil, encodeSpaces(searchText))
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp SeriesResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to search series: %w", err)
	}
	return &resp, nil
}

// GetSeriesSearchTags retrieves the tags of the series matching a search.
func (c *Client) GetSeriesSearchTags(ctx context.Context, searchText string, opts *TagOptions) (*TagsResponse, error) {
	fragment, err := appendID("series/search/tags?series_search_text=", nil, encodeSpaces(searchText))
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp TagsResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get series search tags: %w", err)
	}
	return &resp, nil
}

// GetSeriesSearchRelatedTags retrieves the tags related to tagNames among
// the series matching a search. tagNames is required by the API.
func (c *Client) GetSeriesSearchRelatedTags(ctx context.Context, searchText string, tagNames []string, opts *TagOptions) (*TagsResponse, error) {
	if len(tagNames) == 0 {
		return nil, fmt.Errorf("%w: tag names are required", ErrInvalidArgument)
	}
	fragment, err := appendID("series/search/related_tags?series_search_text=", nil, encodeSpaces(searchText))
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	q.Add("tag_names", tagNames)
	opts.apply(q)

	var resp TagsResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get series search related tags: %w", err)
	}
	return &resp, nil
}

// GetSeriesTags retrieves the tags of a series.
func (c *Client) GetSeriesTags(ctx context.Context, seriesID string, opts *ListOptions) (*TagsResponse, error) {
	fragment, err := appendID("series/tags?series_id=", nil, seriesID)
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp TagsResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get series tags: %w", err)
	}
	return &resp, nil
}

// GetSeriesUpdates retrieves series sorted by when they were last updated.
func (c *Client) GetSeriesUpdates(ctx context.Context, opts *UpdatesOptions) (*SeriesResponse, error) {
	q := NewQuery()
	opts.apply(q)

	var resp SeriesResponse
	if err := c.getInto(ctx, "series/updates?", q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get series updates: %w", err)
	}
	return &resp, nil
}

// GetSeriesVintageDates retrieves the dates on which a series was revised
// or released.
func (c *Client) GetSeriesVintageDates(ctx context.Context, seriesID string, opts *ListOptions) (*VintageDatesResponse, error) {
	fragment, err := appendID("series/vintagedates?series_id=", nil, seriesID)
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp VintageDatesResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get series vintage dates: %w", err)
	}
	return &resp, nil
}
