package analytics

import "github.com/ga-tools/ga-lens/pkg/models/ga"

// NewExclusionFilter builds the case-insensitive CONTAINS exclusion applied
// identically to every report request, so all five shapes see the same
// population. An empty value means no filtering.
func NewExclusionFilter(field, value string) *ga.FilterExpression {
	if value == "" {
		return nil
	}
	if field == "" {
		field = ga.DimensionPagePath
	}
	return &ga.FilterExpression{
		NotExpression: &ga.FilterExpression{
			Filter: &ga.Filter{
				FieldName: field,
				StringFilter: &ga.StringFilter{
					MatchType:     "CONTAINS",
					Value:         value,
					CaseSensitive: false,
				},
			},
		},
	}
}
