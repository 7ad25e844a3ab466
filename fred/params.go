package fred

import "strings"

// ListOptions carries the paging, ordering and realtime-period parameters
// shared by most list endpoints. Zero values are omitted from the request.
type ListOptions struct {
	RealtimeStart string
	RealtimeEnd   string
	Limit         int
	Offset        int
	OrderBy       string
	SortOrder     string
}

func (o *ListOptions) apply(q *Query) {
	if o == nil {
		return
	}
	addString(q, "realtime_start", o.RealtimeStart)
	addString(q, "realtime_end", o.RealtimeEnd)
	addInt(q, "limit", o.Limit)
	addInt(q, "offset", o.Offset)
	addString(q, "order_by", o.OrderBy)
	addString(q, "sort_order", o.SortOrder)
}

// SeriesListOptions extends ListOptions with the filter and tag parameters
// accepted by category/series, release/series and tags/series.
type SeriesListOptions struct {
	ListOptions
	FilterVariable  string
	FilterValue     string
	TagNames        []string
	ExcludeTagNames []string
}

func (o *SeriesListOptions) apply(q *Query) {
	if o == nil {
		return
	}
	o.ListOptions.apply(q)
	addString(q, "filter_variable", o.FilterVariable)
	addString(q, "filter_value", o.FilterValue)
	q.Add("tag_names", o.TagNames)
	q.Add("exclude_tag_names", o.ExcludeTagNames)
}

// ObservationOptions carries the parameters of series/observations.
type ObservationOptions struct {
	RealtimeStart     string
	RealtimeEnd       string
	Limit             int
	Offset            int
	SortOrder         string
	ObservationStart  string
	ObservationEnd    string
	Units             string
	Frequency         string
	AggregationMethod string
	OutputType        int
	VintageDates      []string
}

func (o *ObservationOptions) apply(q *Query) {
	if o == nil {
		return
	}
	addString(q, "realtime_start", o.RealtimeStart)
	addString(q, "realtime_end", o.RealtimeEnd)
	addInt(q, "limit", o.Limit)
	addInt(q, "offset", o.Offset)
	addString(q, "sort_order", o.SortOrder)
	addString(q, "observation_start", o.ObservationStart)
	addString(q, "observation_end", o.ObservationEnd)
	addString(q, "units", o.Units)
	addString(q, "frequency", o.Frequency)
	addString(q, "aggregation_method", o.AggregationMethod)
	addInt(q, "output_type", o.OutputType)
	if o.VintageDates != nil {
		q.Add("vintage_dates", strings.Join(o.VintageDates, ","))
	}
}

// SearchOptions carries the parameters of series/search.
type SearchOptions struct {
	SearchType      string
	RealtimeStart   string
	RealtimeEnd     string
	Limit           int
	Offset          int
	OrderBy         string
	SortOrder       string
	FilterVariable  string
	FilterValue     string
	TagNames        []string
	ExcludeTagNames []string
}

func (o *SearchOptions) apply(q *Query) {
	if o == nil {
		return
	}
	addString(q, "search_type", o.SearchType)
	addString(q, "realtime_start", o.RealtimeStart)
	addString(q, "realtime_end", o.RealtimeEnd)
	addInt(q, "limit", o.Limit)
	addInt(q, "offset", o.Offset)
	addString(q, "order_by", o.OrderBy)
	addString(q, "sort_order", o.SortOrder)
	addString(q, "filter_variable", o.FilterVariable)
	addString(q, "filter_value", o.FilterValue)
	q.Add("tag_names", o.TagNames)
	q.Add("exclude_tag_names", o.ExcludeTagNames)
}

// TagOptions carries the parameters of the tag list endpoints.
type TagOptions struct {
	RealtimeStart   string
	RealtimeEnd     string
	TagNames        []string
	ExcludeTagNames []string
	TagGroupID      string
	SearchText      string
	Limit           int
	Offset          int
	OrderBy         string
	SortOrder       string
}

func (o *TagOptions) apply(q *Query) {
	if o == nil {
		return
	}
	addString(q, "realtime_start", o.RealtimeStart)
	addString(q, "realtime_end", o.RealtimeEnd)
	q.Add("tag_names", o.TagNames)
	q.Add("exclude_tag_names", o.ExcludeTagNames)
	addString(q, "tag_group_id", o.TagGroupID)
	if o.SearchText != "" {
		q.Add("tag_search_text", encodeSpaces(o.SearchText))
	}
	addInt(q, "limit", o.Limit)
	addInt(q, "offset", o.Offset)
	addString(q, "order_by", o.OrderBy)
	addString(q, "sort_order", o.SortOrder)
}

// ReleaseDatesOptions carries the parameters of the release date endpoints.
type ReleaseDatesOptions struct {
	RealtimeStart                 string
	RealtimeEnd                   string
	Limit                         int
	Offset                        int
	OrderBy                       string
	SortOrder                     string
	IncludeReleaseDatesWithNoData *bool
}

func (o *ReleaseDatesOptions) apply(q *Query) {
	if o == nil {
		return
	}
	addString(q, "realtime_start", o.RealtimeStart)
	addString(q, "realtime_end", o.RealtimeEnd)
	addInt(q, "limit", o.Limit)
	addInt(q, "offset", o.Offset)
	addString(q, "order_by", o.OrderBy)
	addString(q, "sort_order", o.SortOrder)
	q.Add("include_release_dates_with_no_data", o.IncludeReleaseDatesWithNoData)
}

// UpdatesOptions carries the parameters of series/updates.
type UpdatesOptions struct {
	RealtimeStart string
	RealtimeEnd   string
	Limit         int
	Offset        int
	FilterValue   string
	StartTime     string
	EndTime       string
}

func (o *UpdatesOptions) apply(q *Query) {
	if o == nil {
		return
	}
	addString(q, "realtime_start", o.RealtimeStart)
	addString(q, "realtime_end", o.RealtimeEnd)
	addInt(q, "limit", o.Limit)
	addInt(q, "offset", o.Offset)
	addString(q, "filter_value", o.FilterValue)
	addString(q, "start_time", o.StartTime)
	addString(q, "end_time", o.EndTime)
}

func addString(q *Query, name, value string) {
	if value != "" {
		q.Add(name, value)
	}
}

func addInt(q *Query, name string, value int) {
	if value > 0 {
		q.Add(name, value)
	}
}

// encodeSpaces rewrites interior whitespace as "+" for free-text search
// parameters.
func encodeSpaces(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), " ", "+")
}
