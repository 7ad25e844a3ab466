package fred

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRelatedTags(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/related_tags", r.URL.Path)
		assert.True(t, strings.Contains(r.URL.RawQuery, "tag_names=inflation;usa+trade"),
			"raw query %q should carry the joined tag names", r.URL.RawQuery)
		w.Write([]byte(`{
			"count": 1,
			"tags": [{"name": "cpi", "group_id": "gen", "popularity": 80, "series_count": 500}]
		}`))
	})

	resp, err := client.GetRelatedTags(context.Background(), []string{"inflation", "usa trade"}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Tags, 1)
	assert.Equal(t, "cpi", resp.Tags[0].Name)
}

func TestGetRelatedTagsRequiresTagNames(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made without tag names")
	})

	_, err := client.GetRelatedTags(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.GetTagSeries(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetTags(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tags", r.URL.Path)
		assert.Equal(t, "gen", r.URL.Query().Get("tag_group_id"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"count": 0, "tags": []}`))
	})

	resp, err := client.GetTags(context.Background(), &TagOptions{TagGroupID: "gen", Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, resp.Tags)
}
