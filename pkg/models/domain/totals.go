package domain

// PeriodTotals is the reconciled, internally consistent set of metrics for
// one (property, period) pair. Derived fields are pure functions of the base
// fields, recomputed on every reconciliation and never carried across calls.
type PeriodTotals struct {
	Role PeriodRole

	// Base metrics, supplied by the summary report when present and by
	// summed daily rows otherwise.
	Users                  float64
	Sessions               float64
	PageViews              float64
	EngagedSessions        float64
	AvgSessionDuration     float64
	BounceRate             float64
	EventCount             float64
	UserEngagementDuration float64
	ActiveUsers            float64

	// Auxiliary-report aggregates.
	MobilePageViews     float64
	SocialSessions      float64
	AvgMonthlyPageViews float64

	// Derived ratios.
	EngagementRate       float64
	SocialTrafficPercent float64
	AvgPagesPerSession   float64
	AvgTimeOnSite        float64
}

// TimeComparison is the output of a single-property, two-period run.
type TimeComparison struct {
	PropertyID string
	Primary    PeriodTotals
	Comparison PeriodTotals
	Deltas     []MetricDelta
	Trend      []TrendPoint
	Table      []TableRow
	NoData     bool
}

// PropertyComparison is the output of a multi-property, single-period run.
type PropertyComparison struct {
	Range      DateRange
	Properties []PropertyTotals
	NoData     bool
}

// PropertyTotals pairs one property with its reconciled totals and its
// deltas against the baseline (first selected) property.
type PropertyTotals struct {
	PropertyID   string
	PropertyName string
	Totals       PeriodTotals
	Deltas       []MetricDelta
	Trend        []TrendPoint
}

// TrendPoint is one day of the users trend series used by chart renderers.
type TrendPoint struct {
	Date  string
	Role  PeriodRole
	Users float64
}

// TableRow is one day of the per-day breakdown table.
type TableRow struct {
	Date           string
	Role           PeriodRole
	Users          float64
	Sessions       float64
	PageViews      float64
	EngagementRate float64
}
