package api

type Property struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Role      string `json:"role"`
}

type PeriodTotals struct {
	Users                  float64 `json:"users"`
	Sessions               float64 `json:"sessions"`
	PageViews              float64 `json:"page_views"`
	EngagedSessions        float64 `json:"engaged_sessions"`
	AvgSessionDuration     float64 `json:"avg_session_duration"`
	BounceRate             float64 `json:"bounce_rate"`
	EventCount             float64 `json:"event_count"`
	UserEngagementDuration float64 `json:"user_engagement_duration"`
	ActiveUsers            float64 `json:"active_users"`
	MobilePageViews        float64 `json:"mobile_page_views"`
	SocialSessions         float64 `json:"social_sessions"`
	AvgMonthlyPageViews    float64 `json:"avg_monthly_page_views"`
	EngagementRate         float64 `json:"engagement_rate"`
	SocialTrafficPercent   float64 `json:"social_traffic_percent"`
	AvgPagesPerSession     float64 `json:"avg_pages_per_session"`
	AvgTimeOnSite          float64 `json:"avg_time_on_site"`
}

type MetricDelta struct {
	Metric        string  `json:"metric"`
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	ChangePercent float64 `json:"change_percent"`
	Direction     string  `json:"direction"`
}

type TrendPoint struct {
	Date  string  `json:"date"`
	Role  string  `json:"role,omitempty"`
	Users float64 `json:"users"`
}

type TableRow struct {
	Date           string  `json:"date"`
	Role           string  `json:"role"`
	Users          float64 `json:"users"`
	Sessions       float64 `json:"sessions"`
	PageViews      float64 `json:"page_views"`
	EngagementRate float64 `json:"engagement_rate"`
}

type TimeComparisonResponse struct {
	PropertyID string        `json:"property_id"`
	Primary    PeriodTotals  `json:"primary"`
	Comparison PeriodTotals  `json:"comparison"`
	Deltas     []MetricDelta `json:"deltas"`
	Trend      []TrendPoint  `json:"trend"`
	Table      []TableRow    `json:"table"`
	NoData     bool          `json:"no_data,omitempty"`
}

type PropertyTotals struct {
	PropertyID   string        `json:"property_id"`
	PropertyName string        `json:"property_name"`
	Totals       PeriodTotals  `json:"totals"`
	Deltas       []MetricDelta `json:"deltas"`
	Trend        []TrendPoint  `json:"trend"`
}

type PropertyComparisonResponse struct {
	Range      DateRange        `json:"range"`
	Properties []PropertyTotals `json:"properties"`
	NoData     bool             `json:"no_data,omitempty"`
}

type ComparisonRequest struct {
	Mode            string   `json:"mode"` // "time" or "property"
	PropertyID      string   `json:"property_id,omitempty"`
	PropertyIDs     []string `json:"property_ids,omitempty"`
	Preset          string   `json:"preset"`
	PrimaryStart    string   `json:"primary_start,omitempty"`
	PrimaryEnd      string   `json:"primary_end,omitempty"`
	ComparisonStart string   `json:"comparison_start,omitempty"`
	ComparisonEnd   string   `json:"comparison_end,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
