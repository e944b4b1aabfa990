// Package compare decides which filter dimension, if any, splits the time
// series into one line per selected value.
package compare

import (
	"homicide-insights-go/internal/types"
)

// Dimension identifies one of the four multi-select filter dimensions.
type Dimension string

const (
	None     Dimension = ""
	Province Dimension = "province"
	Canton   Dimension = "canton"
	AgeBand  Dimension = "age_band"
	Sex      Dimension = "sex"
)

// IsComparing reports whether a dimension's selection is in comparison
// mode: the sentinel excluded and at least one explicit value named. A
// single explicit value still counts — it narrows the chart to one named
// series rather than the aggregate total.
func IsComparing(values []string) bool {
	return !types.HasAll(values) && len(types.Explicit(values)) > 0
}

// Driving returns the highest-priority comparing dimension, in the fixed
// order province > canton > age band > sex. Lower-priority comparing
// dimensions still filter but do not split the series.
func Driving(s types.Selection) Dimension {
	switch {
	case IsComparing(s.Provinces):
		return Province
	case IsComparing(s.Cantons):
		return Canton
	case IsComparing(s.AgeBands):
		return AgeBand
	case IsComparing(s.Sexes):
		return Sex
	default:
		return None
	}
}

// Values returns the explicit selected values of the driving dimension, in
// selection order. Series order follows this order, unsorted.
func Values(s types.Selection, d Dimension) []string {
	switch d {
	case Province:
		return types.Explicit(s.Provinces)
	case Canton:
		return types.Explicit(s.Cantons)
	case AgeBand:
		return types.Explicit(s.AgeBands)
	case Sex:
		return types.Explicit(s.Sexes)
	default:
		return nil
	}
}

// MatchesValue reports whether a record belongs to one explicit value of
// the given dimension, for per-series filtering.
func MatchesValue(r types.Record, d Dimension, value string) bool {
	switch d {
	case Province:
		return r.Province == value
	case Canton:
		return r.Canton == value
	case AgeBand:
		return r.AgeBandLabel() == value
	case Sex:
		return string(r.Sex) == value
	default:
		return false
	}
}
