package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/ga-tools/ga-lens/pkg/adapters"
	"github.com/ga-tools/ga-lens/pkg/models/domain"
	"github.com/ga-tools/ga-lens/pkg/models/ga"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// maxPropertyFetches bounds how many properties are fetched at once in
// cross-property mode.
const maxPropertyFetches = 4

var fullMetricSet = []ga.Metric{
	{Name: ga.MetricTotalUsers},
	{Name: ga.MetricSessions},
	{Name: ga.MetricScreenPageViews},
	{Name: ga.MetricEngagedSessions},
	{Name: ga.MetricAvgSessionDuration},
	{Name: ga.MetricBounceRate},
	{Name: ga.MetricEventCount},
	{Name: ga.MetricUserEngagementDuration},
	{Name: ga.MetricActiveUsers},
}

// Fetcher issues the five report requests for a property and returns their
// typed results.
type Fetcher struct {
	client *Client
	filter *ga.FilterExpression
}

func NewFetcher(client *Client, filter *ga.FilterExpression) *Fetcher {
	return &Fetcher{client: client, filter: filter}
}

// FetchProperty runs the five reports concurrently and requires all of them
// to succeed; a single failure fails the property.
func (f *Fetcher) FetchProperty(
	ctx context.Context,
	prop domain.Property,
	ranges []domain.DateRange,
) (*domain.PropertyReports, error) {
	logger := zerolog.Ctx(ctx)
	wireRanges := mapRanges(ranges)

	reports := &domain.PropertyReports{
		PropertyID:   prop.ID,
		PropertyName: prop.Name,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp, err := f.run(gctx, prop.ID, "main", ga.RunReportRequest{
			DateRanges: wireRanges,
			Metrics:    fullMetricSet,
			Dimensions: []ga.Dimension{{Name: ga.DimensionDate}},
		})
		if err != nil {
			return err
		}
		reports.Main = adapters.MapMainReport(resp)
		return nil
	})
	g.Go(func() error {
		resp, err := f.run(gctx, prop.ID, "device", ga.RunReportRequest{
			DateRanges: wireRanges,
			Metrics:    []ga.Metric{{Name: ga.MetricScreenPageViews}},
			Dimensions: []ga.Dimension{{Name: ga.DimensionDeviceCategory}},
		})
		if err != nil {
			return err
		}
		reports.Device = adapters.MapDeviceReport(resp)
		return nil
	})
	g.Go(func() error {
		resp, err := f.run(gctx, prop.ID, "channel", ga.RunReportRequest{
			DateRanges: wireRanges,
			Metrics:    []ga.Metric{{Name: ga.MetricSessions}, {Name: ga.MetricEventCount}},
			Dimensions: []ga.Dimension{{Name: ga.DimensionChannelGroup}},
		})
		if err != nil {
			return err
		}
		reports.Channel = adapters.MapChannelReport(resp)
		return nil
	})
	g.Go(func() error {
		resp, err := f.run(gctx, prop.ID, "engagement", ga.RunReportRequest{
			DateRanges: wireRanges,
			Metrics:    []ga.Metric{{Name: ga.MetricUserEngagementDuration}},
			Dimensions: []ga.Dimension{{Name: ga.DimensionPagePath}},
		})
		if err != nil {
			return err
		}
		reports.Engagement = adapters.MapEngagementReport(resp)
		return nil
	})
	g.Go(func() error {
		resp, err := f.run(gctx, prop.ID, "summary", ga.RunReportRequest{
			DateRanges: wireRanges,
			Metrics:    fullMetricSet,
		})
		if err != nil {
			return err
		}
		reports.Summary = adapters.MapSummaryReport(resp)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("property", prop.ID).
		Int("main_rows", len(reports.Main)).
		Int("summary_rows", len(reports.Summary)).
		Msg("property reports fetched")

	return reports, nil
}

// FetchProperties fetches several properties over one shared range. Fetches
// run with a bounded fan-out; failures are collected per property and
// reported together instead of aborting on the first.
func (f *Fetcher) FetchProperties(
	ctx context.Context,
	props []domain.Property,
	rng domain.DateRange,
) ([]domain.PropertyReports, error) {
	results := make([]*domain.PropertyReports, len(props))
	fetchErrs := make([]error, len(props))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPropertyFetches)

	for i, prop := range props {
		i, prop := i, prop
		g.Go(func() error {
			reports, err := f.FetchProperty(gctx, prop, []domain.DateRange{rng})
			if err != nil {
				fetchErrs[i] = err
				return nil
			}
			results[i] = reports
			return nil
		})
	}
	_ = g.Wait()

	var failed []string
	for i, err := range fetchErrs {
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s (%v)", props[i].ID, err))
		}
	}
	if len(failed) > 0 {
		return nil, fmt.Errorf("failed to fetch %d of %d properties: %s",
			len(failed), len(props), strings.Join(failed, "; "))
	}

	out := make([]domain.PropertyReports, 0, len(results))
	for _, r := range results {
		out = append(out, *r)
	}
	return out, nil
}

func (f *Fetcher) run(
	ctx context.Context,
	propertyID, report string,
	req ga.RunReportRequest,
) (*ga.RunReportResponse, error) {
	req.DimensionFilter = f.filter
	resp, err := f.client.RunReport(ctx, propertyID, req)
	if err != nil {
		return nil, &RemoteFetchError{PropertyID: propertyID, Report: report, Err: err}
	}
	return resp, nil
}

func mapRanges(ranges []domain.DateRange) []ga.DateRange {
	out := make([]ga.DateRange, 0, len(ranges))
	for _, r := range ranges {
		name := ga.RangeNamePrimary
		if r.Role == domain.RoleComparison {
			name = ga.RangeNameComparison
		}
		out = append(out, ga.DateRange{
			StartDate: r.Start.Format("2006-01-02"),
			EndDate:   r.End.Format("2006-01-02"),
			Name:      name,
		})
	}
	return out
}
