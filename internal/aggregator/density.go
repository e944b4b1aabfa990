package aggregator

import (
	"homicide-insights-go/internal/types"
)

// DensityCell is one cell of the hour-by-day grid. Intensity is the cell's
// count normalized against the grid maximum; a zero count is the "no data"
// state and renders distinctly rather than as an interpolated color.
type DensityCell struct {
	Day       int     `json:"day"`
	Range     int     `json:"range"`
	Count     int     `json:"count"`
	Intensity float64 `json:"intensity"`
}

// DensityGrid is the fixed 7x6 hour-by-day density view output. All 42
// cells are always present, zeros included.
type DensityGrid struct {
	Days     []string      `json:"days"`
	Ranges   []string      `json:"ranges"`
	Cells    []DensityCell `json:"cells"`
	MaxCount int           `json:"max_count"`
}

// BuildDensityGrid counts each record with a resolvable weekday and hour
// into exactly one cell of the 7-weekday by 6-range grid.
func BuildDensityGrid(records []types.Record) DensityGrid {
	var counts [types.WeekdayCount][types.HourRangeCount]int
	maxCount := 0

	for _, r := range records {
		if r.Weekday == types.WeekdayUnknown || r.Hour == nil {
			continue
		}
		rangeIdx := types.HourRangeIndex(*r.Hour)
		if rangeIdx < 0 {
			continue
		}
		counts[r.Weekday][rangeIdx]++
		if counts[r.Weekday][rangeIdx] > maxCount {
			maxCount = counts[r.Weekday][rangeIdx]
		}
	}

	cells := make([]DensityCell, 0, types.WeekdayCount*types.HourRangeCount)
	for day := 0; day < types.WeekdayCount; day++ {
		for rng := 0; rng < types.HourRangeCount; rng++ {
			c := DensityCell{Day: day, Range: rng, Count: counts[day][rng]}
			if maxCount > 0 && c.Count > 0 {
				c.Intensity = float64(c.Count) / float64(maxCount)
			}
			cells = append(cells, c)
		}
	}

	return DensityGrid{
		Days:     types.WeekdayLabels(),
		Ranges:   types.HourRangeLabels(),
		Cells:    cells,
		MaxCount: maxCount,
	}
}
