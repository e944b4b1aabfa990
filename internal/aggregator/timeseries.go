// Package aggregator derives the renderer-agnostic structures each
// dashboard view consumes from a filtered record set. Every function is a
// pure pass over its input: same records, same selection, same output.
package aggregator

import (
	"strconv"

	"homicide-insights-go/internal/compare"
	"homicide-insights-go/internal/types"
)

// FloorYear is the first year the dataset covers; multi-year buckets run
// from here through the current calendar year with no gaps.
const FloorYear = 2014

// Series is one line of the time series chart.
type Series struct {
	Label  string `json:"label"`
	Values []int  `json:"values"`
}

// TimeSeries is the time series view output: one ordered label per bucket
// and one or more equally long series.
type TimeSeries struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// TotalSeriesLabel names the single aggregate series produced when no
// dimension is in comparison mode.
const TotalSeriesLabel = "Total"

// BuildTimeSeries buckets the filtered records by month (single-year mode)
// or by year (multi-year mode). When the comparison selector identifies a
// driving dimension, one series is computed per explicit selected value, in
// selection order; otherwise a single total series. Zero-count buckets are
// always present.
func BuildTimeSeries(records []types.Record, sel types.Selection) TimeSeries {
	_, singleYear := sel.SingleYear()
	ts := TimeSeries{Labels: bucketLabels(singleYear)}

	dim := compare.Driving(sel)
	if dim == compare.None {
		ts.Series = []Series{{
			Label:  TotalSeriesLabel,
			Values: bucketCounts(records, singleYear),
		}}
		return ts
	}

	values := compare.Values(sel, dim)
	ts.Series = make([]Series, 0, len(values))
	for _, v := range values {
		subset := make([]types.Record, 0, len(records))
		for _, r := range records {
			if compare.MatchesValue(r, dim, v) {
				subset = append(subset, r)
			}
		}
		ts.Series = append(ts.Series, Series{
			Label:  seriesLabel(dim, v),
			Values: bucketCounts(subset, singleYear),
		})
	}
	return ts
}

func bucketLabels(singleYear bool) []string {
	if singleYear {
		labels := make([]string, 12)
		for m := 1; m <= 12; m++ {
			labels[m-1] = types.MonthAbbrev(m)
		}
		return labels
	}
	maxYear := clock.Now().Year()
	labels := make([]string, 0, maxYear-FloorYear+1)
	for y := FloorYear; y <= maxYear; y++ {
		labels = append(labels, strconv.Itoa(y))
	}
	return labels
}

func bucketCounts(records []types.Record, singleYear bool) []int {
	if singleYear {
		counts := make([]int, 12)
		for _, r := range records {
			if r.Month >= 1 && r.Month <= 12 {
				counts[r.Month-1]++
			}
		}
		return counts
	}

	maxYear := clock.Now().Year()
	counts := make([]int, maxYear-FloorYear+1)
	for _, r := range records {
		if r.Year >= FloorYear && r.Year <= maxYear {
			counts[r.Year-FloorYear]++
		}
	}
	return counts
}

// seriesLabel formats a selected value for display: geographic names are
// title-cased, band and sex labels kept verbatim.
func seriesLabel(dim compare.Dimension, value string) string {
	switch dim {
	case compare.Province, compare.Canton:
		return types.TitleCase(value)
	default:
		return value
	}
}
