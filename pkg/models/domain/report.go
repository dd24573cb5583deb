package domain

// MetricSet holds the full configured metric set in named form. Positions in
// the wire response are resolved by the adapters; nothing past that point
// indexes into raw arrays.
type MetricSet struct {
	Users                  float64
	Sessions               float64
	PageViews              float64
	EngagedSessions        float64
	AvgSessionDuration     float64
	BounceRate             float64
	EventCount             float64
	UserEngagementDuration float64
	ActiveUsers            float64
}

// MainRow is one day of the daily trend report.
type MainRow struct {
	Date    string // YYYY-MM-DD
	Role    PeriodRole
	Metrics MetricSet
}

// DeviceRow is one device-category slice of page views.
type DeviceRow struct {
	Category  string
	Role      PeriodRole
	PageViews float64
}

// ChannelRow is one channel-group slice of sessions and events.
type ChannelRow struct {
	Group      string
	Role       PeriodRole
	Sessions   float64
	EventCount float64
}

// EngagementRow is one page-path slice of engagement duration.
type EngagementRow struct {
	PagePath string
	Role     PeriodRole
	Duration float64 // userEngagementDuration, seconds
}

// SummaryRow is one dimensionless aggregate row. Summary queries return
// exact unique counts, so these rows are authoritative over summed daily
// rows.
type SummaryRow struct {
	Role    PeriodRole
	Metrics MetricSet
}

// PropertyReports bundles the raw typed results of the five report requests
// issued for one property. Any slice may be empty; the reconciler tolerates
// that.
type PropertyReports struct {
	PropertyID   string
	PropertyName string
	Main         []MainRow
	Device       []DeviceRow
	Channel      []ChannelRow
	Engagement   []EngagementRow
	Summary      []SummaryRow
}
