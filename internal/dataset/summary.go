package dataset

import (
	"sort"

	"homicide-insights-go/internal/types"
)

// Summary is a compact description of the loaded dataset, logged at startup
// and served on the summary endpoint.
type Summary struct {
	TotalRecords int   `json:"total_records"`
	Years        []int `json:"years"`
	Provinces    int   `json:"provinces"`
	Cantons      int   `json:"cantons"`
	GeoLocated   int   `json:"geo_located"`
}

// Summarize walks the record set once and reports its coverage.
func Summarize(records []types.Record) Summary {
	yearSet := map[int]struct{}{}
	provinceSet := map[string]struct{}{}
	cantonSet := map[string]struct{}{}
	geoLocated := 0

	for _, r := range records {
		if r.Year > 0 {
			yearSet[r.Year] = struct{}{}
		}
		if r.Province != types.Unknown {
			provinceSet[r.Province] = struct{}{}
		}
		if r.Canton != types.Unknown {
			cantonSet[r.Canton] = struct{}{}
		}
		if r.HasCoordinates() {
			geoLocated++
		}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	return Summary{
		TotalRecords: len(records),
		Years:        years,
		Provinces:    len(provinceSet),
		Cantons:      len(cantonSet),
		GeoLocated:   geoLocated,
	}
}
