// Package filter evaluates incident records against the dashboard's
// multi-dimensional filter selection.
package filter

import (
	"homicide-insights-go/internal/types"
)

// Matches reports whether a record passes every rule of the selection, as a
// short-circuiting conjunction. Malformed record fields never raise: they
// were normalized to the Unknown bucket at ingestion and are compared
// literally against it here.
func Matches(r types.Record, s types.Selection) bool {
	if year, ok := s.SingleYear(); ok && r.Year != year {
		return false
	}
	if month, ok := s.SingleMonth(); ok && r.Month != month {
		return false
	}
	// Province and canton are independent rules: a canton outside the
	// selected provinces still passes when explicitly selected.
	if !types.HasAll(s.Provinces) && !types.Contains(s.Provinces, r.Province) {
		return false
	}
	if !types.HasAll(s.Cantons) && !types.Contains(s.Cantons, r.Canton) {
		return false
	}
	if !types.HasAll(s.AgeBands) && !types.Contains(s.AgeBands, r.AgeBandLabel()) {
		return false
	}
	if !types.HasAll(s.Sexes) && !types.Contains(s.Sexes, string(r.Sex)) {
		return false
	}
	return true
}

// Apply returns the records matching the selection, in dataset order.
func Apply(records []types.Record, s types.Selection) []types.Record {
	out := make([]types.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, s) {
			out = append(out, r)
		}
	}
	return out
}
