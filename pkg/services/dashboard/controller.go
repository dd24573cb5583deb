// Package dashboard orchestrates a comparison run: validate input, resolve
// the date windows, fetch the raw reports, reconcile totals, and keep the
// last raw snapshot around for re-rendering without a refetch.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ga-tools/ga-lens/pkg/models/domain"
	"github.com/ga-tools/ga-lens/pkg/services/period"
	"github.com/ga-tools/ga-lens/pkg/services/reconcile"
	"github.com/rs/zerolog"
)

// ErrFetchInProgress rejects a comparison request while another one is
// still writing into the snapshot slot.
var ErrFetchInProgress = errors.New("a fetch is already in progress")

// Mode selects what is being compared.
type Mode string

const (
	ModeTime     Mode = "time"
	ModeProperty Mode = "property"
)

// Fetcher is the remote collaborator boundary the controller depends on.
type Fetcher interface {
	FetchProperty(ctx context.Context, prop domain.Property, ranges []domain.DateRange) (*domain.PropertyReports, error)
	FetchProperties(ctx context.Context, props []domain.Property, rng domain.DateRange) ([]domain.PropertyReports, error)
}

// TimeRequest is a single-property, two-period comparison.
type TimeRequest struct {
	PropertyID string
	Preset     domain.RangePreset
	Custom     *domain.CustomDates
}

// PropertyRequest is a multi-property, single-period comparison.
type PropertyRequest struct {
	PropertyIDs []string
	Preset      domain.RangePreset
	Custom      *domain.CustomDates
}

// Result is what the last run produced, in either mode.
type Result struct {
	Mode     Mode
	Time     *domain.TimeComparison
	Property *domain.PropertyComparison
}

// snapshot retains the raw reports of the most recent fetch. Single slot,
// overwritten on every fetch; derived values are always recomputed from it.
type snapshot struct {
	mode       Mode
	ranges     []domain.DateRange
	reports    []domain.PropertyReports
	propertyID string
}

// Controller owns the comparison pipeline and the snapshot slot.
type Controller struct {
	fetcher Fetcher
	catalog []domain.Property
	now     func() time.Time

	mu       sync.Mutex
	fetching bool
	last     *snapshot
}

func NewController(fetcher Fetcher, catalog []domain.Property) *Controller {
	return &Controller{
		fetcher: fetcher,
		catalog: catalog,
		now:     time.Now,
	}
}

// Properties returns the configured property catalog.
func (c *Controller) Properties() []domain.Property {
	return c.catalog
}

// CompareTime runs the time-comparison mode: one property, primary and
// comparison windows resolved from the preset.
func (c *Controller) CompareTime(ctx context.Context, req TimeRequest) (*domain.TimeComparison, error) {
	logger := zerolog.Ctx(ctx)

	if req.PropertyID == "" {
		return nil, domain.NewValidationError("no property selected")
	}
	prop, err := c.lookupProperty(req.PropertyID)
	if err != nil {
		return nil, err
	}

	primary, comparison, err := period.ResolveComparisonRanges(req.Preset, c.now(), req.Custom)
	if err != nil {
		return nil, err
	}

	if !c.beginFetch() {
		return nil, ErrFetchInProgress
	}
	defer c.endFetch()

	ranges := []domain.DateRange{primary, comparison}
	reports, err := c.fetcher.FetchProperty(ctx, prop, ranges)
	if err != nil {
		return nil, err
	}

	c.storeSnapshot(&snapshot{
		mode:       ModeTime,
		ranges:     ranges,
		reports:    []domain.PropertyReports{*reports},
		propertyID: prop.ID,
	})

	result := buildTimeComparison(prop.ID, *reports)
	logger.Info().
		Str("property", prop.ID).
		Str("preset", string(req.Preset)).
		Bool("no_data", result.NoData).
		Msg("time comparison completed")

	return result, nil
}

// CompareProperties runs the cross-property mode: at least two properties
// over one shared window, with the first selected property as baseline.
func (c *Controller) CompareProperties(ctx context.Context, req PropertyRequest) (*domain.PropertyComparison, error) {
	logger := zerolog.Ctx(ctx)

	if len(req.PropertyIDs) < 2 {
		return nil, domain.NewValidationError("select at least 2 properties to compare")
	}
	props := make([]domain.Property, 0, len(req.PropertyIDs))
	for _, id := range req.PropertyIDs {
		prop, err := c.lookupProperty(id)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}

	rng, err := period.ResolveSingleRange(req.Preset, c.now(), req.Custom)
	if err != nil {
		return nil, err
	}

	if !c.beginFetch() {
		return nil, ErrFetchInProgress
	}
	defer c.endFetch()

	reports, err := c.fetcher.FetchProperties(ctx, props, rng)
	if err != nil {
		return nil, err
	}

	c.storeSnapshot(&snapshot{
		mode:    ModeProperty,
		ranges:  []domain.DateRange{rng},
		reports: reports,
	})

	result := buildPropertyComparison(rng, reports)
	logger.Info().
		Int("properties", len(props)).
		Str("preset", string(req.Preset)).
		Bool("no_data", result.NoData).
		Msg("property comparison completed")

	return result, nil
}

// RebuildLast recomputes the most recent result from the cached raw
// reports. Lets a renderer change axis scale or formatting without going
// back to the remote API.
func (c *Controller) RebuildLast() (*Result, error) {
	c.mu.Lock()
	snap := c.last
	c.mu.Unlock()

	if snap == nil {
		return nil, domain.NewValidationError("no data has been fetched yet")
	}

	switch snap.mode {
	case ModeTime:
		return &Result{
			Mode: ModeTime,
			Time: buildTimeComparison(snap.propertyID, snap.reports[0]),
		}, nil
	case ModeProperty:
		return &Result{
			Mode:     ModeProperty,
			Property: buildPropertyComparison(snap.ranges[0], snap.reports),
		}, nil
	default:
		return nil, fmt.Errorf("unknown snapshot mode %q", snap.mode)
	}
}

func buildTimeComparison(propertyID string, reports domain.PropertyReports) *domain.TimeComparison {
	primary := reconcile.Reconcile(
		reports.Main, reports.Device, reports.Channel, reports.Engagement, reports.Summary,
		domain.RolePrimary)
	comparison := reconcile.Reconcile(
		reports.Main, reports.Device, reports.Channel, reports.Engagement, reports.Summary,
		domain.RoleComparison)

	return &domain.TimeComparison{
		PropertyID: propertyID,
		Primary:    primary,
		Comparison: comparison,
		Deltas:     reconcile.Deltas(primary, comparison),
		Trend:      trendSeries(reports.Main),
		Table:      tableRows(reports.Main),
		NoData:     len(reports.Main) == 0,
	}
}

func buildPropertyComparison(rng domain.DateRange, reports []domain.PropertyReports) *domain.PropertyComparison {
	result := &domain.PropertyComparison{Range: rng, NoData: true}

	totals := make([]domain.PeriodTotals, len(reports))
	for i, r := range reports {
		totals[i] = reconcile.Reconcile(
			r.Main, r.Device, r.Channel, r.Engagement, r.Summary, domain.RolePrimary)
		if len(r.Main) > 0 {
			result.NoData = false
		}
	}

	// The first selected property is the baseline the rest are measured
	// against.
	baseline := totals[0]
	for i, r := range reports {
		result.Properties = append(result.Properties, domain.PropertyTotals{
			PropertyID:   r.PropertyID,
			PropertyName: r.PropertyName,
			Totals:       totals[i],
			Deltas:       reconcile.Deltas(totals[i], baseline),
			Trend:        trendSeries(r.Main),
		})
	}
	return result
}

func trendSeries(main []domain.MainRow) []domain.TrendPoint {
	points := make([]domain.TrendPoint, 0, len(main))
	for _, r := range main {
		points = append(points, domain.TrendPoint{
			Date:  r.Date,
			Role:  r.Role,
			Users: r.Metrics.Users,
		})
	}
	return points
}

func tableRows(main []domain.MainRow) []domain.TableRow {
	rows := make([]domain.TableRow, 0, len(main))
	for _, r := range main {
		var engagementRate float64
		if r.Metrics.Sessions > 0 {
			engagementRate = r.Metrics.EngagedSessions / r.Metrics.Sessions * 100
		}
		rows = append(rows, domain.TableRow{
			Date:           r.Date,
			Role:           r.Role,
			Users:          r.Metrics.Users,
			Sessions:       r.Metrics.Sessions,
			PageViews:      r.Metrics.PageViews,
			EngagementRate: engagementRate,
		})
	}
	return rows
}

func (c *Controller) lookupProperty(id string) (domain.Property, error) {
	for _, p := range c.catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Property{}, domain.NewValidationError(fmt.Sprintf("unknown property %q", id))
}

func (c *Controller) beginFetch() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetching {
		return false
	}
	c.fetching = true
	return true
}

func (c *Controller) endFetch() {
	c.mu.Lock()
	c.fetching = false
	c.mu.Unlock()
}

func (c *Controller) storeSnapshot(s *snapshot) {
	c.mu.Lock()
	c.last = s
	c.mu.Unlock()
}
