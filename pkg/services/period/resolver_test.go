package period

import (
	"testing"
	"time"

	"github.com/ga-tools/ga-lens/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveComparisonRanges_Last7Days(t *testing.T) {
	today := date(2025, 3, 20)

	primary, comparison, err := ResolveComparisonRanges(domain.PresetLast7Days, today, nil)
	require.NoError(t, err)

	assert.Equal(t, date(2025, 3, 13), primary.Start)
	assert.Equal(t, today, primary.End)
	assert.Equal(t, domain.RolePrimary, primary.Role)

	assert.Equal(t, date(2025, 3, 6), comparison.Start)
	assert.Equal(t, date(2025, 3, 13), comparison.End)
	assert.Equal(t, domain.RoleComparison, comparison.Role)
}

func TestResolveComparisonRanges_TrailingWindows(t *testing.T) {
	today := date(2025, 6, 1)

	tests := []struct {
		preset domain.RangePreset
		days   int
	}{
		{domain.PresetLast30Days, 30},
		{domain.PresetLast90Days, 90},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			primary, comparison, err := ResolveComparisonRanges(tt.preset, today, nil)
			require.NoError(t, err)

			assert.Equal(t, today.AddDate(0, 0, -tt.days), primary.Start)
			assert.Equal(t, today, primary.End)
			assert.Equal(t, primary.Start, comparison.End)
			assert.Equal(t, primary.Start.AddDate(0, 0, -tt.days), comparison.Start)
		})
	}
}

func TestResolveComparisonRanges_MonthToDate(t *testing.T) {
	today := date(2025, 3, 15)

	primary, comparison, err := ResolveComparisonRanges(domain.PresetMonthToDate, today, nil)
	require.NoError(t, err)

	assert.Equal(t, date(2025, 3, 1), primary.Start)
	assert.Equal(t, today, primary.End)
	assert.Equal(t, date(2025, 2, 1), comparison.Start)
	assert.Equal(t, date(2025, 2, 28), comparison.End)
}

func TestResolveComparisonRanges_YearToDate(t *testing.T) {
	today := date(2025, 3, 15)

	primary, comparison, err := ResolveComparisonRanges(domain.PresetYearToDate, today, nil)
	require.NoError(t, err)

	assert.Equal(t, date(2025, 1, 1), primary.Start)
	assert.Equal(t, today, primary.End)
	assert.Equal(t, date(2024, 1, 1), comparison.Start)
	assert.Equal(t, date(2024, 12, 31), comparison.End)
}

func TestResolveComparisonRanges_FiscalYearToDate(t *testing.T) {
	tests := []struct {
		name         string
		today        time.Time
		primaryStart time.Time
		primaryEnd   time.Time
	}{
		{
			// Strictly before June 30: last completed fiscal year ended the
			// previous calendar year.
			name:         "june 29 uses prior fiscal year",
			today:        date(2025, 6, 29),
			primaryStart: date(2023, 7, 1),
			primaryEnd:   date(2024, 6, 30),
		},
		{
			name:         "june 30 counts the year ending that day",
			today:        date(2025, 6, 30),
			primaryStart: date(2024, 7, 1),
			primaryEnd:   date(2025, 6, 30),
		},
		{
			name:         "july 1 keeps the just-ended fiscal year",
			today:        date(2025, 7, 1),
			primaryStart: date(2024, 7, 1),
			primaryEnd:   date(2025, 6, 30),
		},
		{
			name:         "january is still the prior fiscal year",
			today:        date(2025, 1, 15),
			primaryStart: date(2023, 7, 1),
			primaryEnd:   date(2024, 6, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, comparison, err := ResolveComparisonRanges(domain.PresetFiscalYearToDate, tt.today, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.primaryStart, primary.Start)
			assert.Equal(t, tt.primaryEnd, primary.End)

			// Comparison is always the immediately preceding Jul 1 - Jun 30
			// year.
			assert.Equal(t, tt.primaryStart.AddDate(-1, 0, 0), comparison.Start)
			assert.Equal(t, tt.primaryEnd.AddDate(-1, 0, 0), comparison.End)
		})
	}
}

func TestResolveComparisonRanges_FiscalYearInvariant(t *testing.T) {
	// Primary always spans exactly one Jul 1 - Jun 30 year no matter the
	// day it is resolved on.
	for _, today := range []time.Time{
		date(2024, 2, 29), date(2025, 6, 29), date(2025, 6, 30),
		date(2025, 7, 1), date(2025, 12, 31),
	} {
		primary, comparison, err := ResolveComparisonRanges(domain.PresetFiscalYearToDate, today, nil)
		require.NoError(t, err)

		assert.Equal(t, time.July, primary.Start.Month())
		assert.Equal(t, 1, primary.Start.Day())
		assert.Equal(t, time.June, primary.End.Month())
		assert.Equal(t, 30, primary.End.Day())
		assert.Equal(t, primary.Start.Year()+1, primary.End.Year())
		assert.Equal(t, primary.Start.AddDate(-1, 0, 0), comparison.Start)
	}
}

func TestResolveComparisonRanges_CustomRequiresAllFields(t *testing.T) {
	_, _, err := ResolveComparisonRanges(domain.PresetCustom, date(2025, 3, 1), nil)

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)

	_, _, err = ResolveComparisonRanges(domain.PresetCustom, date(2025, 3, 1), &domain.CustomDates{
		PrimaryStart: date(2025, 2, 1),
		PrimaryEnd:   date(2025, 2, 28),
	})
	require.ErrorAs(t, err, &validation)
}

func TestResolveComparisonRanges_CustomPassesDatesVerbatim(t *testing.T) {
	custom := &domain.CustomDates{
		PrimaryStart:    date(2025, 2, 1),
		PrimaryEnd:      date(2025, 2, 28),
		ComparisonStart: date(2025, 1, 1),
		ComparisonEnd:   date(2025, 1, 31),
	}

	primary, comparison, err := ResolveComparisonRanges(domain.PresetCustom, date(2025, 3, 1), custom)
	require.NoError(t, err)

	assert.Equal(t, custom.PrimaryStart, primary.Start)
	assert.Equal(t, custom.PrimaryEnd, primary.End)
	assert.Equal(t, custom.ComparisonStart, comparison.Start)
	assert.Equal(t, custom.ComparisonEnd, comparison.End)
}

func TestResolveComparisonRanges_UnknownPresetFallsBackToLast7Days(t *testing.T) {
	today := date(2025, 3, 20)

	primary, comparison, err := ResolveComparisonRanges("bogus", today, nil)
	require.NoError(t, err)

	expectedPrimary, expectedComparison, err := ResolveComparisonRanges(domain.PresetLast7Days, today, nil)
	require.NoError(t, err)

	assert.Equal(t, expectedPrimary, primary)
	assert.Equal(t, expectedComparison, comparison)
}

func TestResolveSingleRange(t *testing.T) {
	today := date(2025, 3, 20)

	t.Run("last30days", func(t *testing.T) {
		rng, err := ResolveSingleRange(domain.PresetLast30Days, today, nil)
		require.NoError(t, err)
		assert.Equal(t, today.AddDate(0, 0, -30), rng.Start)
		assert.Equal(t, today, rng.End)
		assert.Equal(t, domain.RolePrimary, rng.Role)
	})

	t.Run("monthToDate", func(t *testing.T) {
		rng, err := ResolveSingleRange(domain.PresetMonthToDate, today, nil)
		require.NoError(t, err)
		assert.Equal(t, date(2025, 3, 1), rng.Start)
		assert.Equal(t, today, rng.End)
	})

	t.Run("fiscal year matches comparison preset rule", func(t *testing.T) {
		rng, err := ResolveSingleRange(domain.PresetFiscalYearToDate, date(2025, 6, 29), nil)
		require.NoError(t, err)
		assert.Equal(t, date(2023, 7, 1), rng.Start)
		assert.Equal(t, date(2024, 6, 30), rng.End)
	})

	t.Run("custom requires start and end", func(t *testing.T) {
		_, err := ResolveSingleRange(domain.PresetCustom, today, &domain.CustomDates{
			PrimaryStart: date(2025, 2, 1),
		})
		var validation *domain.ValidationError
		require.ErrorAs(t, err, &validation)
	})

	t.Run("unknown preset falls back to last7days", func(t *testing.T) {
		rng, err := ResolveSingleRange("whatever", today, nil)
		require.NoError(t, err)
		assert.Equal(t, today.AddDate(0, 0, -7), rng.Start)
	})
}

func TestDateRangeDays(t *testing.T) {
	rng := domain.DateRange{Start: date(2025, 3, 1), End: date(2025, 3, 7)}
	assert.Equal(t, 7, rng.Days())
}
