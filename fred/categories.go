package fred

import (
	"context"
	"fmt"
)

// GetCategory retrieves a single category. Category 0 is the root of the
// category tree.
func (c *Client) GetCategory(ctx context.Context, categoryID int) (*CategoriesResponse, error) {
	fragment, err := appendID("category?category_id=", &categoryID, "")
	if err != nil {
		return nil, err
	}

	var resp CategoriesResponse
	if err := c.getInto(ctx, fragment, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &resp, nil
}

// GetCategoryChildren retrieves the child categories of a category.
func (c *Client) GetCategoryChildren(ctx context.Context, categoryID int, opts *ListOptions) (*CategoriesResponse, error) {
	fragment, err := appendID("category/children?category_id=", &categoryID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp CategoriesResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get category children: %w", err)
	}
	return &resp, nil
}

// GetCategoryRelated retrieves the categories related to a category.
func (c *Client) GetCategoryRelated(ctx context.Context, categoryID int, opts *ListOptions) (*CategoriesResponse, error) {
	fragment, err := appendID("category/related?category_id=", &categoryID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp CategoriesResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get related categories: %w", err)
	}
	return &resp, nil
}

// GetCategorySeries retrieves the series in a category.
func (c *Client) GetCategorySeries(ctx context.Context, categoryID int, opts *SeriesListOptions) (*SeriesResponse, error) {
	fragment, err := appendID("category/series?category_id=", &categoryID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp SeriesResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get category series: %w", err)
	}
	return &resp, nil
}

// GetCategoryTags retrieves the tags of the series in a category.
func (c *Client) GetCategoryTags(ctx context.Context, categoryID int, opts *TagOptions) (*TagsResponse, error) {
	fragment, err := appendID("category/tags?category_id=", &categoryID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	opts.apply(q)

	var resp TagsResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get category tags: %w", err)
	}
	return &resp, nil
}

// GetCategoryRelatedTags retrieves the tags related to tagNames within a
// category. tagNames is required by the API.
func (c *Client) GetCategoryRelatedTags(ctx context.Context, categoryID int, tagNames []string, opts *TagOptions) (*TagsResponse, error) {
	if len(tagNames) == 0 {
		return nil, fmt.Errorf("%w: tag names are required", ErrInvalidArgument)
	}
	fragment, err := appendID("category/related_tags?category_id=", &categoryID, "")
	if err != nil {
		return nil, err
	}

	q := NewQuery()
	q.Add("tag_names", tagNames)
	opts.apply(q)

	var resp TagsResponse
	if err := c.getInto(ctx, fragment, q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get category related tags: %w", err)
	}
	return &resp, nil
}
