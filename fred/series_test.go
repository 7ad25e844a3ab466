package fred

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const observationsBody = `{
	"realtime_start": "1776-07-04",
	"realtime_end": "9999-12-31",
	"observation_start": "1949-01-01",
	"observation_end": "9999-12-31",
	"units": "lin",
	"output_type": 1,
	"file_type": "json",
	"order_by": "observation_date",
	"sort_order": "asc",
	"count": 3,
	"offset": 0,
	"limit": 100000,
	"observations": [
		{"realtime_start": "2020-01-01", "realtime_end": "9999-12-31", "date": "1949-01-01", "value": "2103.298"},
		{"realtime_start": "2020-01-01", "realtime_end": "9999-12-31", "date": "1949-04-01", "value": "2130.012"},
		{"realtime_start": "2020-01-01", "realtime_end": "9999-12-31", "date": "1949-07-01", "value": "."}
	]
}`

func TestGetSeriesObservations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/series/observations", r.URL.Path)
		assert.Equal(t, "GDPPOT", r.URL.Query().Get("series_id"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		w.Write([]byte(observationsBody))
	})

	resp, err := client.GetSeriesObservations(context.Background(), "GDPPOT", &ObservationOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Observations, 3)
	assert.Equal(t, "1949-01-01", resp.Observations[0].Date)
	assert.Equal(t, "2103.298", resp.Observations[0].Value)
	// missing values come through as the literal "."
	assert.Equal(t, ".", resp.Observations[2].Value)
}

func TestObservationsTable(t *testing.T) {
	resp := &ObservationsResponse{
		Observations: []Observation{
			{Date: "1949-01-01", Value: "2103.298"},
			{Date: "1949-04-01", Value: "."},
		},
	}

	table := resp.Table()
	require.Len(t, table, 3)
	assert.Equal(t, []string{"date", "value"}, table[0])
	assert.Equal(t, []string{"1949-01-01", "2103.298"}, table[1])
	assert.Equal(t, []string{"1949-04-01", "."}, table[2])
}

func TestGetSeries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/series", r.URL.Path)
		assert.Equal(t, "GDPPOT", r.URL.Query().Get("series_id"))
		w.Write([]byte(`{
			"realtime_start": "2020-01-01",
			"realtime_end": "2020-01-01",
			"seriess": [{
				"id": "GDPPOT",
				"title": "Real Potential Gross Domestic Product",
				"frequency": "Quarterly",
				"units": "Billions of Chained 2017 Dollars"
			}]
		}`))
	})

	resp, err := client.GetSeries(context.Background(), "GDPPOT", nil)
	require.NoError(t, err)
	require.Len(t, resp.Series, 1)
	assert.Equal(t, "GDPPOT", resp.Series[0].ID)
	assert.Equal(t, "Quarterly", resp.Series[0].Frequency)
}

func TestGetSeriesRequiresID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made without a series id")
	})

	_, err := client.GetSeries(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.GetSeriesObservations(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSearchSeries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/series/search", r.URL.Path)
		assert.True(t, strings.Contains(r.URL.RawQuery, "search_text=monetary+service+index"),
			"raw query %q should carry the plus-encoded search text", r.URL.RawQuery)
		w.Write([]byte(`{"seriess": []}`))
	})

	resp, err := client.SearchSeries(context.Background(), "monetary service index", nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Series)
}

func TestGetSeriesVintageDates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/series/vintagedates", r.URL.Path)
		w.Write([]byte(`{"count": 2, "vintage_dates": ["1958-12-21", "1959-02-19"]}`))
	})

	resp, err := client.GetSeriesVintageDates(context.Background(), "GNPCA", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1958-12-21", "1959-02-19"}, resp.VintageDates)
}
