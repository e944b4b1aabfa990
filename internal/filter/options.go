package filter

import (
	"sort"

	"homicide-insights-go/internal/types"
)

// CantonOptions recomputes the selectable cantons after a province change:
// the union of cantons among records whose province is selected, or every
// canton when the province selection is unrestricted.
func CantonOptions(records []types.Record, provinces []string) []string {
	unrestricted := types.HasAll(provinces)
	seen := map[string]struct{}{}
	for _, r := range records {
		if r.Canton == types.Unknown {
			continue
		}
		if unrestricted || types.Contains(provinces, r.Province) {
			seen[r.Canton] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ReconcileCantons keeps previously-selected cantons that remain valid in
// the new option list. When none survive, the selection falls back to the
// unrestricted sentinel.
func ReconcileCantons(selected, available []string) []string {
	keepAll := types.Contains(selected, types.All)
	kept := make([]string, 0, len(selected))
	if keepAll {
		kept = append(kept, types.All)
	}
	for _, c := range types.Explicit(selected) {
		if types.Contains(available, c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return []string{types.All}
	}
	return kept
}

// ProvinceOptions lists every province observed in the dataset, sorted.
func ProvinceOptions(records []types.Record) []string {
	seen := map[string]struct{}{}
	for _, r := range records {
		if r.Province != types.Unknown {
			seen[r.Province] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// YearOptions lists every year observed in the dataset, newest first, the
// order the year widget renders them in.
func YearOptions(records []types.Record) []int {
	seen := map[int]struct{}{}
	for _, r := range records {
		if r.Year > 0 {
			seen[r.Year] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
