package dashboard

import (
	"homicide-insights-go/internal/filter"
	"homicide-insights-go/internal/types"
)

// FilterOptions feeds the filter widgets: every selectable value per
// dimension, plus the canton selection reconciled against the current
// province choice.
type FilterOptions struct {
	Years           []int    `json:"years"`
	Provinces       []string `json:"provinces"`
	Cantons         []string `json:"cantons"`
	SelectedCantons []string `json:"selected_cantons"`
	AgeBands        []string `json:"age_bands"`
	Sexes           []string `json:"sexes"`
}

// Options derives the widget option lists for the current selection. The
// canton list is the union of cantons under the selected provinces;
// previously-selected cantons that survive the recompute stay selected.
func (c *Controller) Options(sel types.Selection) FilterOptions {
	cantons := filter.CantonOptions(c.records, sel.Provinces)
	return FilterOptions{
		Years:           filter.YearOptions(c.records),
		Provinces:       filter.ProvinceOptions(c.records),
		Cantons:         cantons,
		SelectedCantons: filter.ReconcileCantons(sel.Cantons, cantons),
		AgeBands:        types.AgeBandLabels(),
		Sexes: []string{
			string(types.SexMale),
			string(types.SexFemale),
			string(types.SexUnknown),
		},
	}
}
