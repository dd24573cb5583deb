// Package adapters converts between wire, domain and API representations.
// The report mappers are the only place positional row arrays are indexed;
// everything downstream works with named fields.
package adapters

import (
	"strconv"

	"github.com/ga-tools/ga-lens/pkg/models/domain"
	"github.com/ga-tools/ga-lens/pkg/models/ga"
)

// MapMainReport converts daily trend rows. Dimension order is [date] with
// the dateRange dimension appended by the API when two ranges were
// requested; metric order matches the full configured metric set.
func MapMainReport(resp *ga.RunReportResponse) []domain.MainRow {
	if resp == nil {
		return nil
	}
	rows := make([]domain.MainRow, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		rows = append(rows, domain.MainRow{
			Date:    FormatReportDate(dimAt(r, 0)),
			Role:    roleFromRangeName(dimAt(r, 1)),
			Metrics: mapMetricSet(r),
		})
	}
	return rows
}

// MapDeviceReport converts device-category rows: dimensions
// [deviceCategory, dateRange?], single pageViews metric.
func MapDeviceReport(resp *ga.RunReportResponse) []domain.DeviceRow {
	if resp == nil {
		return nil
	}
	rows := make([]domain.DeviceRow, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		rows = append(rows, domain.DeviceRow{
			Category:  dimAt(r, 0),
			Role:      roleFromRangeName(dimAt(r, 1)),
			PageViews: metricAt(r, 0),
		})
	}
	return rows
}

// MapChannelReport converts channel-group rows: dimensions
// [channelGroup, dateRange?], metrics [sessions, eventCount].
func MapChannelReport(resp *ga.RunReportResponse) []domain.ChannelRow {
	if resp == nil {
		return nil
	}
	rows := make([]domain.ChannelRow, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		rows = append(rows, domain.ChannelRow{
			Group:      dimAt(r, 0),
			Role:       roleFromRangeName(dimAt(r, 1)),
			Sessions:   metricAt(r, 0),
			EventCount: metricAt(r, 1),
		})
	}
	return rows
}

// MapEngagementReport converts page-path rows: dimensions
// [pagePath, dateRange?], single userEngagementDuration metric.
func MapEngagementReport(resp *ga.RunReportResponse) []domain.EngagementRow {
	if resp == nil {
		return nil
	}
	rows := make([]domain.EngagementRow, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		rows = append(rows, domain.EngagementRow{
			PagePath: dimAt(r, 0),
			Role:     roleFromRangeName(dimAt(r, 1)),
			Duration: metricAt(r, 0),
		})
	}
	return rows
}

// MapSummaryReport converts dimensionless aggregate rows. Rows are
// attributed to a period by the dateRange dimension value when the API
// returns one; only when it does not is request order (primary first,
// comparison second) trusted.
func MapSummaryReport(resp *ga.RunReportResponse) []domain.SummaryRow {
	if resp == nil {
		return nil
	}
	rows := make([]domain.SummaryRow, 0, len(resp.Rows))
	for i, r := range resp.Rows {
		role := roleFromRangeName(dimAt(r, 0))
		if role == domain.RoleUnknown {
			role = roleFromRequestOrder(i)
		}
		rows = append(rows, domain.SummaryRow{
			Role:    role,
			Metrics: mapMetricSet(r),
		})
	}
	return rows
}

// FormatReportDate rewrites the API's YYYYMMDD date strings as YYYY-MM-DD.
// Values in any other shape pass through untouched.
func FormatReportDate(d string) string {
	if len(d) != 8 {
		return d
	}
	for _, c := range d {
		if c < '0' || c > '9' {
			return d
		}
	}
	return d[0:4] + "-" + d[4:6] + "-" + d[6:8]
}

func mapMetricSet(r ga.Row) domain.MetricSet {
	return domain.MetricSet{
		Users:                  metricAt(r, 0),
		Sessions:               metricAt(r, 1),
		PageViews:              metricAt(r, 2),
		EngagedSessions:        metricAt(r, 3),
		AvgSessionDuration:     metricAt(r, 4),
		BounceRate:             metricAt(r, 5),
		EventCount:             metricAt(r, 6),
		UserEngagementDuration: metricAt(r, 7),
		ActiveUsers:            metricAt(r, 8),
	}
}

func roleFromRangeName(name string) domain.PeriodRole {
	switch name {
	case ga.RangeNamePrimary, "date_range_0":
		return domain.RolePrimary
	case ga.RangeNameComparison, "date_range_1":
		return domain.RoleComparison
	default:
		return domain.RoleUnknown
	}
}

func roleFromRequestOrder(i int) domain.PeriodRole {
	if i == 0 {
		return domain.RolePrimary
	}
	return domain.RoleComparison
}

func dimAt(r ga.Row, i int) string {
	if i >= len(r.DimensionValues) {
		return ""
	}
	return r.DimensionValues[i].Value
}

func metricAt(r ga.Row, i int) float64 {
	if i >= len(r.MetricValues) {
		return 0
	}
	v, err := strconv.ParseFloat(r.MetricValues[i].Value, 64)
	if err != nil {
		return 0
	}
	return v
}
