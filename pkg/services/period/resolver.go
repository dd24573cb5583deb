// Package period converts date-range presets into concrete calendar
// intervals. Everything here is plain date arithmetic against a caller
// supplied "today"; no remote lookups.
package period

import (
	"time"

	"github.com/ga-tools/ga-lens/pkg/models/domain"
)

// ResolveComparisonRanges turns a preset into a primary window ending at
// today plus the immediately preceding window of equal (or calendar
// equivalent) length. Unrecognized presets fall back to last7days rather
// than erroring.
func ResolveComparisonRanges(
	preset domain.RangePreset,
	today time.Time,
	custom *domain.CustomDates,
) (domain.DateRange, domain.DateRange, error) {
	today = truncateToDay(today)

	if preset == domain.PresetCustom {
		if custom == nil ||
			custom.PrimaryStart.IsZero() || custom.PrimaryEnd.IsZero() ||
			custom.ComparisonStart.IsZero() || custom.ComparisonEnd.IsZero() {
			return domain.DateRange{}, domain.DateRange{},
				domain.NewValidationError("custom preset requires both primary and comparison dates")
		}
		primary := domain.DateRange{
			Start: truncateToDay(custom.PrimaryStart),
			End:   truncateToDay(custom.PrimaryEnd),
			Role:  domain.RolePrimary,
		}
		comparison := domain.DateRange{
			Start: truncateToDay(custom.ComparisonStart),
			End:   truncateToDay(custom.ComparisonEnd),
			Role:  domain.RoleComparison,
		}
		return primary, comparison, nil
	}

	var primary, comparison domain.DateRange

	switch preset {
	case domain.PresetLast30Days:
		primary, comparison = trailingWindows(today, 30)
	case domain.PresetLast90Days:
		primary, comparison = trailingWindows(today, 90)
	case domain.PresetMonthToDate:
		primaryStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		comparisonEnd := primaryStart.AddDate(0, 0, -1)
		comparisonStart := time.Date(comparisonEnd.Year(), comparisonEnd.Month(), 1, 0, 0, 0, 0, time.UTC)
		primary = domain.DateRange{Start: primaryStart, End: today, Role: domain.RolePrimary}
		comparison = domain.DateRange{Start: comparisonStart, End: comparisonEnd, Role: domain.RoleComparison}
	case domain.PresetYearToDate:
		primaryStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		comparisonEnd := primaryStart.AddDate(0, 0, -1)
		comparisonStart := time.Date(comparisonEnd.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		primary = domain.DateRange{Start: primaryStart, End: today, Role: domain.RolePrimary}
		comparison = domain.DateRange{Start: comparisonStart, End: comparisonEnd, Role: domain.RoleComparison}
	case domain.PresetFiscalYearToDate:
		fyEnd := fiscalYearEnd(today)
		primary = fiscalYearRange(fyEnd, domain.RolePrimary)
		comparison = fiscalYearRange(fyEnd-1, domain.RoleComparison)
	default:
		// last7days, and the documented fallback for anything unknown.
		primary, comparison = trailingWindows(today, 7)
	}

	return primary, comparison, nil
}

// ResolveSingleRange returns one primary window with the same preset
// semantics and no comparison window. Used by cross-property comparison,
// which compares properties within one shared time window.
func ResolveSingleRange(
	preset domain.RangePreset,
	today time.Time,
	custom *domain.CustomDates,
) (domain.DateRange, error) {
	today = truncateToDay(today)

	if preset == domain.PresetCustom {
		if custom == nil || custom.PrimaryStart.IsZero() || custom.PrimaryEnd.IsZero() {
			return domain.DateRange{},
				domain.NewValidationError("custom preset requires start and end dates")
		}
		return domain.DateRange{
			Start: truncateToDay(custom.PrimaryStart),
			End:   truncateToDay(custom.PrimaryEnd),
			Role:  domain.RolePrimary,
		}, nil
	}

	switch preset {
	case domain.PresetLast30Days:
		return trailingWindow(today, 30), nil
	case domain.PresetLast90Days:
		return trailingWindow(today, 90), nil
	case domain.PresetMonthToDate:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return domain.DateRange{Start: start, End: today, Role: domain.RolePrimary}, nil
	case domain.PresetYearToDate:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return domain.DateRange{Start: start, End: today, Role: domain.RolePrimary}, nil
	case domain.PresetFiscalYearToDate:
		return fiscalYearRange(fiscalYearEnd(today), domain.RolePrimary), nil
	default:
		return trailingWindow(today, 7), nil
	}
}

// fiscalYearEnd returns the calendar year in which the most recently
// completed fiscal year (Jul 1 - Jun 30) ends. The check is strictly before
// June 30: on June 30 itself the fiscal year ending that day counts as
// completed.
func fiscalYearEnd(today time.Time) int {
	june30 := time.Date(today.Year(), time.June, 30, 0, 0, 0, 0, time.UTC)
	if today.Before(june30) {
		return today.Year() - 1
	}
	return today.Year()
}

func fiscalYearRange(endYear int, role domain.PeriodRole) domain.DateRange {
	return domain.DateRange{
		Start: time.Date(endYear-1, time.July, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(endYear, time.June, 30, 0, 0, 0, 0, time.UTC),
		Role:  role,
	}
}

func trailingWindow(today time.Time, days int) domain.DateRange {
	return domain.DateRange{
		Start: today.AddDate(0, 0, -days),
		End:   today,
		Role:  domain.RolePrimary,
	}
}

func trailingWindows(today time.Time, days int) (domain.DateRange, domain.DateRange) {
	primary := trailingWindow(today, days)
	comparison := domain.DateRange{
		Start: primary.Start.AddDate(0, 0, -days),
		End:   primary.Start,
		Role:  domain.RoleComparison,
	}
	return primary, comparison
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
