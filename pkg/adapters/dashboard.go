package adapters

import (
	"github.com/ga-tools/ga-lens/pkg/models/api"
	"github.com/ga-tools/ga-lens/pkg/models/domain"
)

func MapPeriodTotalsDomainToApi(t domain.PeriodTotals) api.PeriodTotals {
	return api.PeriodTotals{
		Users:                  t.Users,
		Sessions:               t.Sessions,
		PageViews:              t.PageViews,
		EngagedSessions:        t.EngagedSessions,
		AvgSessionDuration:     t.AvgSessionDuration,
		BounceRate:             t.BounceRate,
		EventCount:             t.EventCount,
		UserEngagementDuration: t.UserEngagementDuration,
		ActiveUsers:            t.ActiveUsers,
		MobilePageViews:        t.MobilePageViews,
		SocialSessions:         t.SocialSessions,
		AvgMonthlyPageViews:    t.AvgMonthlyPageViews,
		EngagementRate:         t.EngagementRate,
		SocialTrafficPercent:   t.SocialTrafficPercent,
		AvgPagesPerSession:     t.AvgPagesPerSession,
		AvgTimeOnSite:          t.AvgTimeOnSite,
	}
}

func MapMetricDeltasDomainToApi(deltas []domain.MetricDelta) []api.MetricDelta {
	out := make([]api.MetricDelta, 0, len(deltas))
	for _, d := range deltas {
		out = append(out, api.MetricDelta{
			Metric:        d.Metric,
			Current:       d.Current,
			Previous:      d.Previous,
			ChangePercent: d.ChangePercent,
			Direction:     string(d.Direction),
		})
	}
	return out
}

func MapTrendDomainToApi(points []domain.TrendPoint) []api.TrendPoint {
	out := make([]api.TrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, api.TrendPoint{
			Date:  p.Date,
			Role:  string(p.Role),
			Users: p.Users,
		})
	}
	return out
}

func MapTableDomainToApi(rows []domain.TableRow) []api.TableRow {
	out := make([]api.TableRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.TableRow{
			Date:           r.Date,
			Role:           string(r.Role),
			Users:          r.Users,
			Sessions:       r.Sessions,
			PageViews:      r.PageViews,
			EngagementRate: r.EngagementRate,
		})
	}
	return out
}

func MapTimeComparisonDomainToApi(c *domain.TimeComparison) api.TimeComparisonResponse {
	return api.TimeComparisonResponse{
		PropertyID: c.PropertyID,
		Primary:    MapPeriodTotalsDomainToApi(c.Primary),
		Comparison: MapPeriodTotalsDomainToApi(c.Comparison),
		Deltas:     MapMetricDeltasDomainToApi(c.Deltas),
		Trend:      MapTrendDomainToApi(c.Trend),
		Table:      MapTableDomainToApi(c.Table),
		NoData:     c.NoData,
	}
}

func MapPropertyComparisonDomainToApi(c *domain.PropertyComparison) api.PropertyComparisonResponse {
	resp := api.PropertyComparisonResponse{
		Range:  MapDateRangeDomainToApi(c.Range),
		NoData: c.NoData,
	}
	for _, p := range c.Properties {
		resp.Properties = append(resp.Properties, api.PropertyTotals{
			PropertyID:   p.PropertyID,
			PropertyName: p.PropertyName,
			Totals:       MapPeriodTotalsDomainToApi(p.Totals),
			Deltas:       MapMetricDeltasDomainToApi(p.Deltas),
			Trend:        MapTrendDomainToApi(p.Trend),
		})
	}
	return resp
}

func MapDateRangeDomainToApi(r domain.DateRange) api.DateRange {
	return api.DateRange{
		StartDate: r.Start.Format("2006-01-02"),
		EndDate:   r.End.Format("2006-01-02"),
		Role:      string(r.Role),
	}
}
