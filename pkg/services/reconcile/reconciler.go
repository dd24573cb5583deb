// Package reconcile merges the independently fetched report shapes for one
// (property, period) pair into a single consistent totals record.
package reconcile

import (
	"strings"

	"github.com/ga-tools/ga-lens/pkg/models/domain"
)

const (
	channelGroupOrganicSocial = "organic social"
	avgDaysPerMonth           = 30.44
)

// Reconcile produces the totals for one period role from the five raw report
// results. It never fails: nil or empty reports degrade to zeros, mismatched
// period rows are skipped, and every ratio guards its divisor.
//
// Base metrics come from the summary report when it has a row for the role:
// dimensionless aggregate queries return exact unique counts, while summing
// a daily breakdown under-counts true unique users. Without a summary row
// the daily rows are summed instead, and the two average metrics are divided
// by the day count, which yields an average of daily averages. That is an
// approximation, but the best available fallback without a summary call.
func Reconcile(
	main []domain.MainRow,
	device []domain.DeviceRow,
	channel []domain.ChannelRow,
	engagement []domain.EngagementRow,
	summary []domain.SummaryRow,
	role domain.PeriodRole,
) domain.PeriodTotals {
	totals := domain.PeriodTotals{Role: role}

	mainRows := mainRowsForRole(main, role)

	if row, ok := summaryRowForRole(summary, role); ok {
		totals.Users = row.Metrics.Users
		totals.Sessions = row.Metrics.Sessions
		totals.PageViews = row.Metrics.PageViews
		totals.EngagedSessions = row.Metrics.EngagedSessions
		totals.AvgSessionDuration = row.Metrics.AvgSessionDuration
		totals.BounceRate = row.Metrics.BounceRate
		totals.EventCount = row.Metrics.EventCount
		totals.UserEngagementDuration = row.Metrics.UserEngagementDuration
		totals.ActiveUsers = row.Metrics.ActiveUsers
	} else {
		for _, r := range mainRows {
			totals.Users += r.Metrics.Users
			totals.Sessions += r.Metrics.Sessions
			totals.PageViews += r.Metrics.PageViews
			totals.EngagedSessions += r.Metrics.EngagedSessions
			totals.AvgSessionDuration += r.Metrics.AvgSessionDuration
			totals.BounceRate += r.Metrics.BounceRate
			totals.EventCount += r.Metrics.EventCount
			totals.UserEngagementDuration += r.Metrics.UserEngagementDuration
			totals.ActiveUsers += r.Metrics.ActiveUsers
		}
		if n := float64(len(mainRows)); n > 0 {
			totals.AvgSessionDuration /= n
			totals.BounceRate /= n
		}
	}

	for _, r := range device {
		if !rowInPeriod(r.Role, role) {
			continue
		}
		switch strings.ToLower(r.Category) {
		case "mobile", "tablet":
			totals.MobilePageViews += r.PageViews
		}
	}

	// Channel-report sums are kept separate from the base sessions and
	// eventCount totals: a dimensioned slicing can diverge slightly from the
	// summary aggregates, and events-per-session must be internally
	// consistent with its own report.
	var channelSessions, channelEvents float64
	for _, r := range channel {
		if !rowInPeriod(r.Role, role) {
			continue
		}
		channelSessions += r.Sessions
		channelEvents += r.EventCount
		if strings.ToLower(r.Group) == channelGroupOrganicSocial {
			totals.SocialSessions += r.Sessions
		}
	}
	var eventsPerSession float64
	if channelSessions > 0 {
		eventsPerSession = channelEvents / channelSessions
	}

	var engagementDuration float64
	for _, r := range engagement {
		if rowInPeriod(r.Role, role) {
			engagementDuration += r.Duration
		}
	}
	var averageEngagementTime float64
	switch {
	case totals.ActiveUsers > 0:
		averageEngagementTime = engagementDuration / totals.ActiveUsers
	case totals.Users > 0:
		averageEngagementTime = engagementDuration / totals.Users
	}

	if totals.Sessions > 0 {
		totals.SocialTrafficPercent = totals.SocialSessions / totals.Sessions * 100
		totals.EngagementRate = totals.EngagedSessions / totals.Sessions * 100
	}
	totals.AvgPagesPerSession = eventsPerSession
	totals.AvgTimeOnSite = averageEngagementTime
	totals.AvgMonthlyPageViews = monthlyPageViews(totals.PageViews, len(mainRows))

	return totals
}

// monthlyPageViews normalizes a period's page views to a per-month figure.
// A day count in the 364-367 band is treated as exactly one year (12
// months), absorbing leap years and fiscal-year windows. With no daily rows
// there is nothing to normalize by, so the raw figure is returned.
func monthlyPageViews(pageViews float64, dayCount int) float64 {
	switch {
	case dayCount == 0:
		return pageViews
	case dayCount >= 364 && dayCount <= 367:
		return pageViews / 12
	default:
		return pageViews / (float64(dayCount) / avgDaysPerMonth)
	}
}

// rowInPeriod reports whether an auxiliary row belongs to the period being
// reconciled. Rows without an explicit role come from single-period calls
// and implicitly belong to whatever period is being built.
func rowInPeriod(rowRole, target domain.PeriodRole) bool {
	return rowRole == domain.RoleUnknown || rowRole == target
}

func mainRowsForRole(rows []domain.MainRow, role domain.PeriodRole) []domain.MainRow {
	out := make([]domain.MainRow, 0, len(rows))
	for _, r := range rows {
		if rowInPeriod(r.Role, role) {
			out = append(out, r)
		}
	}
	return out
}

// summaryRowForRole picks the first summary row attributed to the target
// period. Untagged rows match any role, so a single-range summary response
// still wins the authority order.
func summaryRowForRole(rows []domain.SummaryRow, role domain.PeriodRole) (domain.SummaryRow, bool) {
	for _, r := range rows {
		if rowInPeriod(r.Role, role) {
			return r, true
		}
	}
	return domain.SummaryRow{}, false
}
