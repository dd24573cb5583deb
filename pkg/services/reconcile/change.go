package reconcile

import "github.com/ga-tools/ga-lens/pkg/models/domain"

// Change returns the percent movement from previous to current. A zero
// previous yields zero, never a division.
func Change(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// DirectionOf labels a percent change; flat only at exactly zero.
func DirectionOf(change float64) domain.ChangeDirection {
	switch {
	case change > 0:
		return domain.ChangeUp
	case change < 0:
		return domain.ChangeDown
	default:
		return domain.ChangeFlat
	}
}

// Deltas computes the movement of every presented metric between two totals
// records. Both comparison modes go through here so the rounding and
// labeling rules cannot drift apart.
func Deltas(current, previous domain.PeriodTotals) []domain.MetricDelta {
	pairs := []struct {
		name     string
		cur, prv float64
	}{
		{"users", current.Users, previous.Users},
		{"sessions", current.Sessions, previous.Sessions},
		{"pageViews", current.PageViews, previous.PageViews},
		{"engagedSessions", current.EngagedSessions, previous.EngagedSessions},
		{"avgSessionDuration", current.AvgSessionDuration, previous.AvgSessionDuration},
		{"bounceRate", current.BounceRate, previous.BounceRate},
		{"engagementRate", current.EngagementRate, previous.EngagementRate},
		{"mobilePageViews", current.MobilePageViews, previous.MobilePageViews},
		{"socialSessions", current.SocialSessions, previous.SocialSessions},
		{"socialTrafficPercent", current.SocialTrafficPercent, previous.SocialTrafficPercent},
		{"avgPagesPerSession", current.AvgPagesPerSession, previous.AvgPagesPerSession},
		{"avgTimeOnSite", current.AvgTimeOnSite, previous.AvgTimeOnSite},
		{"avgMonthlyPageViews", current.AvgMonthlyPageViews, previous.AvgMonthlyPageViews},
	}

	deltas := make([]domain.MetricDelta, 0, len(pairs))
	for _, p := range pairs {
		ch := Change(p.cur, p.prv)
		deltas = append(deltas, domain.MetricDelta{
			Metric:        p.name,
			Current:       p.cur,
			Previous:      p.prv,
			ChangePercent: ch,
			Direction:     DirectionOf(ch),
		})
	}
	return deltas
}
