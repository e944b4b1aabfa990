package aggregator

import (
	"homicide-insights-go/internal/types"
)

// Pyramid is the age/sex demographic view output: unsigned male and female
// counts per band, youngest band first. The renderer mirrors the female
// side negative and flips to oldest-first; neither is a data semantic here.
type Pyramid struct {
	Bands   []string `json:"bands"`
	Males   []int    `json:"males"`
	Females []int    `json:"females"`
}

// BuildPyramid accumulates male and female counts across the 17 fixed age
// bands. Records with an unresolvable sex or age band are excluded — unlike
// general filtering, they are not counted under an unknown bucket.
func BuildPyramid(records []types.Record) Pyramid {
	males := make([]int, types.AgeBandCount)
	females := make([]int, types.AgeBandCount)

	for _, r := range records {
		years, ok := r.AgeYears()
		if !ok {
			continue
		}
		idx := types.AgeBandIndex(years)
		if idx < 0 {
			continue
		}
		switch r.Sex {
		case types.SexMale:
			males[idx]++
		case types.SexFemale:
			females[idx]++
		}
	}

	return Pyramid{
		Bands:   types.AgeBandLabels(),
		Males:   males,
		Females: females,
	}
}
