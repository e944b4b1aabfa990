package aggregator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homicide-insights-go/internal/types"
)

func weaponRec(weapon string) types.Record {
	return types.Record{Province: "GUAYAS", Canton: types.Unknown, Sex: types.SexUnknown,
		Weapon: weapon, Weekday: types.WeekdayUnknown}
}

func TestWeaponRankingSortsDescending(t *testing.T) {
	records := []types.Record{
		weaponRec("ARMA BLANCA"),
		weaponRec("ARMA DE FUEGO"),
		weaponRec("ARMA DE FUEGO"),
		weaponRec("ARMA DE FUEGO"),
		weaponRec("ESTRANGULAMIENTO"),
		weaponRec("ARMA BLANCA"),
	}

	got := WeaponRanking(records)
	require.Len(t, got, 3)
	assert.Equal(t, RankingEntry{Label: "Arma De Fuego", Count: 3, rawLabel: "ARMA DE FUEGO"}, got[0])
	assert.Equal(t, "Arma Blanca", got[1].Label)
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, 1, got[2].Count)
}

func TestWeaponRankingTiesKeepFirstSeenOrder(t *testing.T) {
	records := []types.Record{
		weaponRec("VENENO"),
		weaponRec("ASFIXIA"),
		weaponRec("VENENO"),
		weaponRec("ASFIXIA"),
	}

	got := WeaponRanking(records)
	require.Len(t, got, 2)
	assert.Equal(t, "Veneno", got[0].Label, "tie broken by first-encountered order")
	assert.Equal(t, "Asfixia", got[1].Label)
}

func TestWeaponRankingTruncatesToTopN(t *testing.T) {
	var records []types.Record
	for i := 0; i < TopWeapons+5; i++ {
		records = append(records, weaponRec(fmt.Sprintf("WEAPON %d", i)))
	}

	got := WeaponRanking(records)
	assert.Len(t, got, TopWeapons)
}

func TestWeaponRankingUnknownBucket(t *testing.T) {
	records := []types.Record{
		weaponRec(types.Unknown),
		weaponRec(types.Unknown),
		weaponRec("ARMA DE FUEGO"),
	}

	got := WeaponRanking(records)
	require.Len(t, got, 2)
	assert.Equal(t, "Unknown", got[0].Label, "missing weapons rank like any other category")
	assert.Equal(t, 2, got[0].Count)
}

func TestWeaponRankingEmptyInput(t *testing.T) {
	assert.Empty(t, WeaponRanking(nil))
}

func TestGeoRankingByProvince(t *testing.T) {
	records := []types.Record{
		{Province: "GUAYAS", Canton: "GUAYAQUIL"},
		{Province: "GUAYAS", Canton: "DURAN"},
		{Province: "PICHINCHA", Canton: "QUITO"},
		{Province: "NAPO", Canton: "TENA"},
	}

	got := GeoRanking(records, GeoRankProvince, nil)
	require.Len(t, got, 3)
	assert.Equal(t, "Guayas", got[0].Label)
	assert.Equal(t, types.RegionCoastal, got[0].Region)
	assert.Equal(t, types.RegionHighland, got[1].Region)
	assert.Equal(t, types.RegionAmazon, got[2].Region)
}

func TestGeoRankingByCantonResolvesRegionThroughIndex(t *testing.T) {
	records := []types.Record{
		{Province: "GUAYAS", Canton: "GUAYAQUIL"},
		{Province: "GUAYAS", Canton: "GUAYAQUIL"},
		{Province: "PICHINCHA", Canton: "QUITO"},
	}
	index := map[string]string{"GUAYAQUIL": "GUAYAS", "QUITO": "PICHINCHA"}

	got := GeoRanking(records, GeoRankCanton, index)
	require.Len(t, got, 2)
	assert.Equal(t, "Guayaquil", got[0].Label)
	assert.Equal(t, types.RegionCoastal, got[0].Region)
	assert.Equal(t, "Quito", got[1].Label)
	assert.Equal(t, types.RegionHighland, got[1].Region)
}

func TestGeoRankingUnindexedCantonIsUnknownRegion(t *testing.T) {
	records := []types.Record{{Province: "GUAYAS", Canton: "NUEVO"}}

	got := GeoRanking(records, GeoRankCanton, map[string]string{})
	require.Len(t, got, 1)
	assert.Equal(t, types.RegionUnknown, got[0].Region)
}
