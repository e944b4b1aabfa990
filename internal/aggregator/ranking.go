package aggregator

import (
	"sort"

	"homicide-insights-go/internal/types"
)

const (
	// TopWeapons is the ranking depth of the weapon chart.
	TopWeapons = 8
	// TopGeo is the ranking depth of the geographic ranking chart.
	TopGeo = 15
)

// RankingEntry is one bar of a categorical ranking chart.
type RankingEntry struct {
	Label  string       `json:"label"`
	Count  int          `json:"count"`
	Region types.Region `json:"region,omitempty"`

	// rawLabel keeps the canonical uppercase name for region resolution.
	rawLabel string
}

// GeoRankMode selects the geographic ranking's grouping field.
type GeoRankMode string

const (
	GeoRankProvince GeoRankMode = "province"
	GeoRankCanton   GeoRankMode = "canton"
)

// WeaponRanking counts incidents per weapon type and returns the top
// entries, most frequent first. Missing weapons were bucketed as Unknown at
// ingestion and rank like any other category.
func WeaponRanking(records []types.Record) []RankingEntry {
	return rank(records, TopWeapons, func(r types.Record) string { return r.Weapon })
}

// GeoRanking counts incidents per province or canton and returns the top
// entries, each resolved to a region for display coloring. Cantons resolve
// through the canton-to-province index built from the full dataset.
func GeoRanking(records []types.Record, mode GeoRankMode, cantonProvince map[string]string) []RankingEntry {
	key := func(r types.Record) string { return r.Province }
	if mode == GeoRankCanton {
		key = func(r types.Record) string { return r.Canton }
	}

	entries := rank(records, TopGeo, key)
	for i := range entries {
		province := entries[i].rawLabel
		if mode == GeoRankCanton {
			province = cantonProvince[entries[i].rawLabel]
		}
		entries[i].Region = types.RegionOf(province)
	}
	return entries
}

// rank counts occurrences of a categorical field, sorts descending by count
// with ties kept in first-encountered order, and truncates to the top n.
func rank(records []types.Record, n int, key func(types.Record) string) []RankingEntry {
	counts := map[string]int{}
	order := []string{}
	for _, r := range records {
		k := key(r)
		if k == "" {
			k = types.Unknown
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	entries := make([]RankingEntry, 0, len(order))
	for _, k := range order {
		entries = append(entries, RankingEntry{
			Label:    types.TitleCase(k),
			Count:    counts[k],
			rawLabel: k,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
