// Package ga holds the wire shapes of the GA4 Data API runReport call.
// Rows are positional: dimension and metric order is defined by the request
// that produced them, so these types never leave the fetch layer. The
// adapters convert them into named domain records immediately.
package ga

// Metric names understood by the reporting API.
const (
	MetricTotalUsers             = "totalUsers"
	MetricSessions               = "sessions"
	MetricScreenPageViews        = "screenPageViews"
	MetricEngagedSessions        = "engagedSessions"
	MetricAvgSessionDuration     = "averageSessionDuration"
	MetricBounceRate             = "bounceRate"
	MetricEventCount             = "eventCount"
	MetricUserEngagementDuration = "userEngagementDuration"
	MetricActiveUsers            = "activeUsers"
)

// Dimension names understood by the reporting API.
const (
	DimensionDate           = "date"
	DimensionDeviceCategory = "deviceCategory"
	DimensionChannelGroup   = "sessionDefaultChannelGroup"
	DimensionPagePath       = "pagePath"
	DimensionDateRange      = "dateRange"
)

// Names given to requested date ranges; the API echoes them back in the
// dateRange dimension so rows can be attributed to a period without relying
// on response ordering.
const (
	RangeNamePrimary    = "primary_period"
	RangeNameComparison = "comparison_period"
)

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Name      string `json:"name,omitempty"`
}

type Metric struct {
	Name string `json:"name"`
}

type Dimension struct {
	Name string `json:"name"`
}

type StringFilter struct {
	MatchType     string `json:"matchType"`
	Value         string `json:"value"`
	CaseSensitive bool   `json:"caseSensitive"`
}

type Filter struct {
	FieldName    string        `json:"fieldName"`
	StringFilter *StringFilter `json:"stringFilter,omitempty"`
}

type FilterExpression struct {
	NotExpression *FilterExpression `json:"notExpression,omitempty"`
	Filter        *Filter           `json:"filter,omitempty"`
}

type RunReportRequest struct {
	Property        string            `json:"property"`
	DateRanges      []DateRange       `json:"dateRanges"`
	Metrics         []Metric          `json:"metrics"`
	Dimensions      []Dimension       `json:"dimensions,omitempty"`
	DimensionFilter *FilterExpression `json:"dimensionFilter,omitempty"`
}

type Value struct {
	Value string `json:"value"`
}

type Row struct {
	DimensionValues []Value `json:"dimensionValues"`
	MetricValues    []Value `json:"metricValues"`
}

type RunReportResponse struct {
	Rows     []Row `json:"rows"`
	RowCount int   `json:"rowCount"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ErrorResponse is the error envelope the reporting API returns on non-2xx.
type ErrorResponse struct {
	Error apiError `json:"error"`
}

// Message extracts the remote error message, if one was provided.
func (e ErrorResponse) Message() string {
	return e.Error.Message
}
