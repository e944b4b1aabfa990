package dataset

import (
	"homicide-insights-go/internal/types"
)

// CantonProvinceIndex maps each canton to the province of the first record
// carrying it. The geographic ranking uses it to resolve a canton's region
// through its province.
func CantonProvinceIndex(records []types.Record) map[string]string {
	idx := make(map[string]string)
	for _, r := range records {
		if r.Canton == types.Unknown {
			continue
		}
		if _, seen := idx[r.Canton]; !seen {
			idx[r.Canton] = r.Province
		}
	}
	return idx
}
