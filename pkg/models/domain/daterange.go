package domain

import "time"

// PeriodRole tags a date range or report row as belonging to the current
// interval or the prior one it is compared against.
type PeriodRole string

const (
	// RoleUnknown marks rows whose period could not be identified; they are
	// treated as belonging to whichever period is being reconciled.
	RoleUnknown    PeriodRole = ""
	RolePrimary    PeriodRole = "primary"
	RoleComparison PeriodRole = "comparison"
)

// RangePreset selects how a concrete date window is derived from "today".
type RangePreset string

const (
	PresetLast7Days        RangePreset = "last7days"
	PresetLast30Days       RangePreset = "last30days"
	PresetLast90Days       RangePreset = "last90days"
	PresetMonthToDate      RangePreset = "monthToDate"
	PresetYearToDate       RangePreset = "yearToDate"
	PresetFiscalYearToDate RangePreset = "fiscalYearToDate"
	PresetCustom           RangePreset = "custom"
)

// DateRange is a closed interval of calendar days. Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
	Role  PeriodRole
}

// Days returns the number of calendar days the range spans, inclusive.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// CustomDates carries verbatim user-entered dates for the custom preset.
type CustomDates struct {
	PrimaryStart    time.Time
	PrimaryEnd      time.Time
	ComparisonStart time.Time
	ComparisonEnd   time.Time
}
