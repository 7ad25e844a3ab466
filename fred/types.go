package fred

// Category is a node in the FRED category tree.
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID int    `json:"parent_id"`
}

// CategoriesResponse wraps category list endpoints.
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// Series describes a data series and its metadata.
type Series struct {
	ID                      string `json:"id"`
	RealtimeStart           string `json:"realtime_start"`
	RealtimeEnd             string `json:"realtime_end"`
	Title                   string `json:"title"`
	ObservationStart        string `json:"observation_start"`
	ObservationEnd          string `json:"observation_end"`
	Frequency               string `json:"frequency"`
	FrequencyShort          string `json:"frequency_short"`
	Units                   string `json:"units"`
	UnitsShort              string `json:"units_short"`
	SeasonalAdjustment      string `json:"seasonal_adjustment"`
	SeasonalAdjustmentShort string `json:"seasonal_adjustment_short"`
	LastUpdated             string `json:"last_updated"`
	Popularity              int    `json:"popularity"`
	GroupPopularity         int    `json:"group_popularity,omitempty"`
	Notes                   string `json:"notes,omitempty"`
}

// SeriesResponse wraps series list endpoints. The upstream field really is
// spelled "seriess".
type SeriesResponse struct {
	RealtimeStart string   `json:"realtime_start"`
	RealtimeEnd   string   `json:"realtime_end"`
	OrderBy       string   `json:"order_by"`
	SortOrder     string   `json:"sort_order"`
	Count         int      `json:"count"`
	Offset        int      `json:"offset"`
	Limit         int      `json:"limit"`
	Series        []Series `json:"seriess"`
}

// Observation is a single dated value of a series. Missing values arrive as
// the literal string "." and are passed through unchanged.
type Observation struct {
	RealtimeStart string `json:"realtime_start"`
	RealtimeEnd   string `json:"realtime_end"`
	Date          string `json:"date"`
	Value         string `json:"value"`
}

// ObservationsResponse wraps the series/observations endpoint.
type ObservationsResponse struct {
	RealtimeStart    string        `json:"realtime_start"`
	RealtimeEnd      string        `json:"realtime_end"`
	ObservationStart string        `json:"observation_start"`
	ObservationEnd   string        `json:"observation_end"`
	Units            string        `json:"units"`
	OutputType       int           `json:"output_type"`
	FileType         string        `json:"file_type"`
	OrderBy          string        `json:"order_by"`
	SortOrder        string        `json:"sort_order"`
	Count            int           `json:"count"`
	Offset           int           `json:"offset"`
	Limit            int           `json:"limit"`
	Observations     []Observation `json:"observations"`
}

// Table renders the observations in tabular form: a header row followed by
// one date/value row per observation.
func (r *ObservationsResponse) Table() [][]string {
	rows := make([][]string, 0, len(r.Observations)+1)
	rows = append(rows, []string{"date", "value"})
	for _, obs := range r.Observations {
		rows = append(rows, []string{obs.Date, obs.Value})
	}
	return rows
}

// Release describes a data release.
type Release struct {
	ID            int    `json:"id"`
	RealtimeStart string `json:"realtime_start"`
	RealtimeEnd   string `json:"realtime_end"`
	Name          string `json:"name"`
	PressRelease  bool   `json:"press_release"`
	Link          string `json:"link,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// ReleasesResponse wraps release list endpoints.
type ReleasesResponse struct {
	RealtimeStart string    `json:"realtime_start"`
	RealtimeEnd   string    `json:"realtime_end"`
	OrderBy       string    `json:"order_by"`
	SortOrder     string    `json:"sort_order"`
	Count         int       `json:"count"`
	Offset        int       `json:"offset"`
	Limit         int       `json:"limit"`
	Releases      []Release `json:"releases"`
}

// ReleaseDate is a single date a release was published.
type ReleaseDate struct {
	ReleaseID   int    `json:"release_id"`
	ReleaseName string `json:"release_name,omitempty"`
	Date        string `json:"date"`
}

// ReleaseDatesResponse wraps the release date endpoints.
type ReleaseDatesResponse struct {
	RealtimeStart string        `json:"realtime_start"`
	RealtimeEnd   string        `json:"realtime_end"`
	OrderBy       string        `json:"order_by"`
	SortOrder     string        `json:"sort_order"`
	Count         int           `json:"count"`
	Offset        int           `json:"offset"`
	Limit         int           `json:"limit"`
	ReleaseDates  []ReleaseDate `json:"release_dates"`
}

// Source describes a data source.
type Source struct {
	ID            int    `json:"id"`
	RealtimeStart string `json:"realtime_start"`
	RealtimeEnd   string `json:"realtime_end"`
	Name          string `json:"name"`
	Link          string `json:"link,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// SourcesResponse wraps source list endpoints.
type SourcesResponse struct {
	RealtimeStart string   `json:"realtime_start"`
	RealtimeEnd   string   `json:"realtime_end"`
	OrderBy       string   `json:"order_by"`
	SortOrder     string   `json:"sort_order"`
	Count         int      `json:"count"`
	Offset        int      `json:"offset"`
	Limit         int      `json:"limit"`
	Sources       []Source `json:"sources"`
}

// Tag is a label attached to series.
type Tag struct {
	Name        string `json:"name"`
	GroupID     string `json:"group_id"`
	Notes       string `json:"notes,omitempty"`
	Created     string `json:"created"`
	Popularity  int    `json:"popularity"`
	SeriesCount int    `json:"series_count"`
}

// TagsResponse wraps tag list endpoints.
type TagsResponse struct {
	RealtimeStart string `json:"realtime_start"`
	RealtimeEnd   string `json:"realtime_end"`
	OrderBy       string `json:"order_by"`
	SortOrder     string `json:"sort_order"`
	Count         int    `json:"count"`
	Offset        int    `json:"offset"`
	Limit         int    `json:"limit"`
	Tags          []Tag  `json:"tags"`
}

// VintageDatesResponse wraps the series/vintagedates endpoint.
type VintageDatesResponse struct {
	RealtimeStart string   `json:"realtime_start"`
	RealtimeEnd   string   `json:"realtime_end"`
	OrderBy       string   `json:"order_by"`
	SortOrder     string   `json:"sort_order"`
	Count         int      `json:"count"`
	Offset        int      `json:"offset"`
	Limit         int      `json:"limit"`
	VintageDates  []string `json:"vintage_dates"`
}
