package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homicide-insights-go/internal/types"
)

const sampleCSV = `anio,mes,provincia,canton,edad,medida_edad,sexo,arma,dia_semana,hora_infraccion,coordenada_x,coordenada_y,fecha_infraccion
2023,1,Guayas,Guayaquil,30,años,HOMBRE,ARMA DE FUEGO,LUNES,14:30,-79.88,-2.19,2023-01-16
2023,2,Guayas,Duran,5,años,MUJER,ARMA BLANCA,MARTES,23,-79.83,-2.17,
2024,3,Pichincha,Quito,,,,,feriado,not a time,,NaN,2024-03-09
`

func TestLoadCSV(t *testing.T) {
	records, err := LoadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	t.Run("fully populated row", func(t *testing.T) {
		r := records[0]
		assert.Equal(t, 2023, r.Year)
		assert.Equal(t, 1, r.Month)
		assert.Equal(t, "GUAYAS", r.Province, "names canonicalized uppercase")
		assert.Equal(t, "GUAYAQUIL", r.Canton)
		require.NotNil(t, r.Age)
		assert.Equal(t, 30, *r.Age)
		assert.Equal(t, types.AgeUnitYears, r.AgeUnit)
		assert.Equal(t, types.SexMale, r.Sex)
		assert.Equal(t, "ARMA DE FUEGO", r.Weapon)
		assert.Equal(t, types.Monday, r.Weekday)
		require.NotNil(t, r.Hour)
		assert.Equal(t, 14, *r.Hour, "HH:MM text parses to the hour")
		require.NotNil(t, r.Latitude)
		assert.Equal(t, -2.19, *r.Latitude)
		require.NotNil(t, r.Longitude)
		assert.Equal(t, -79.88, *r.Longitude)
		require.NotNil(t, r.Date)
		assert.Equal(t, "2023-01-16", r.Date.Format("2006-01-02"))
	})

	t.Run("numeric hour", func(t *testing.T) {
		require.NotNil(t, records[1].Hour)
		assert.Equal(t, 23, *records[1].Hour)
	})

	t.Run("malformed row degrades, never drops", func(t *testing.T) {
		r := records[2]
		assert.Equal(t, "PICHINCHA", r.Province)
		assert.Nil(t, r.Age)
		assert.Equal(t, types.SexUnknown, r.Sex)
		assert.Equal(t, types.Unknown, r.Weapon)
		assert.Equal(t, types.WeekdayUnknown, r.Weekday)
		assert.Nil(t, r.Hour, "unparsable hour excluded, not zeroed")
		assert.Nil(t, r.Longitude, "empty cell is absent")
		assert.Nil(t, r.Latitude, "NaN coordinate rejected")
	})
}

func TestLoadCSVHeaderAliases(t *testing.T) {
	csv := "year,month,province,canton,age,sex,weapon\n2024,7,Azuay,Cuenca,41,MUJER,ARMA BLANCA\n"
	records, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "AZUAY", records[0].Province)
	assert.Equal(t, types.SexFemale, records[0].Sex)
}

func TestLoadCSVRejectsUnrecognizableHeader(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("a,b,c\n1,2,3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestLoadCSVSkipsBlankRows(t *testing.T) {
	csv := "anio,provincia\n2023,Guayas\n,\n2024,Pichincha\n"
	records, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSummarize(t *testing.T) {
	records, err := LoadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	s := Summarize(records)
	assert.Equal(t, 3, s.TotalRecords)
	assert.Equal(t, []int{2023, 2024}, s.Years)
	assert.Equal(t, 2, s.Provinces)
	assert.Equal(t, 3, s.Cantons)
	assert.Equal(t, 2, s.GeoLocated)
}

func TestCantonProvinceIndex(t *testing.T) {
	records := []types.Record{
		{Province: "GUAYAS", Canton: "GUAYAQUIL"},
		{Province: "PICHINCHA", Canton: "QUITO"},
		{Province: "OTRA", Canton: "GUAYAQUIL"}, // first occurrence wins
		{Province: "GUAYAS", Canton: types.Unknown},
	}

	idx := CantonProvinceIndex(records)
	assert.Equal(t, "GUAYAS", idx["GUAYAQUIL"])
	assert.Equal(t, "PICHINCHA", idx["QUITO"])
	_, hasUnknown := idx[types.Unknown]
	assert.False(t, hasUnknown)
}
