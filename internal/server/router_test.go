package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homicide-insights-go/internal/dashboard"
	"homicide-insights-go/internal/dataset"
	"homicide-insights-go/internal/logger"
	"homicide-insights-go/internal/observability"
	"homicide-insights-go/internal/types"
)

func intPtr(v int) *int { return &v }

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	records := []types.Record{
		{Year: 2023, Month: 1, Province: "GUAYAS", Canton: "GUAYAQUIL", Sex: types.SexMale,
			Age: intPtr(30), AgeUnit: types.AgeUnitYears, Weapon: "ARMA DE FUEGO",
			Weekday: types.Monday, Hour: intPtr(22)},
		{Year: 2023, Month: 2, Province: "GUAYAS", Canton: "DURAN", Sex: types.SexFemale,
			Age: intPtr(5), AgeUnit: types.AgeUnitYears, Weapon: "ARMA BLANCA",
			Weekday: types.Saturday, Hour: intPtr(3)},
		{Year: 2024, Month: 3, Province: "PICHINCHA", Canton: "QUITO", Sex: types.SexMale,
			Age: intPtr(30), AgeUnit: types.AgeUnitYears, Weapon: types.Unknown,
			Weekday: types.WeekdayUnknown},
	}

	ctrl := dashboard.New(records, dataset.CantonProvinceIndex(records), 0, nil,
		logger.New(), observability.NewUnregisteredMetrics())
	return SetupRouter(ctrl, dataset.Summarize(records), logger.New())
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := get(t, testRouter(t), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestMetricsRoute(t *testing.T) {
	w := get(t, testRouter(t), "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSummaryEndpoint(t *testing.T) {
	w := get(t, testRouter(t), "/api/homicides/summary")
	require.Equal(t, http.StatusOK, w.Code)

	var s dataset.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, 3, s.TotalRecords)
	assert.Equal(t, []int{2023, 2024}, s.Years)
}

func TestDashboardEndpoint(t *testing.T) {
	router := testRouter(t)

	t.Run("province filter", func(t *testing.T) {
		w := get(t, router, "/api/homicides/dashboard?view=timeline&provinces=guayas")
		require.Equal(t, http.StatusOK, w.Code)

		var res dashboard.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 2, res.Total, "lowercase query values canonicalized")
		require.NotNil(t, res.TimeSeries)
		assert.Len(t, res.TimeSeries.Series, 1, "single explicit province names one series")
		assert.Equal(t, "Guayas", res.TimeSeries.Series[0].Label)
	})

	t.Run("comparing provinces", func(t *testing.T) {
		w := get(t, router, "/api/homicides/dashboard?provinces=GUAYAS,PICHINCHA")
		require.Equal(t, http.StatusOK, w.Code)

		var res dashboard.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.NotNil(t, res.TimeSeries)
		require.Len(t, res.TimeSeries.Series, 2)
		assert.Equal(t, "Guayas", res.TimeSeries.Series[0].Label)
		assert.Equal(t, "Pichincha", res.TimeSeries.Series[1].Label)
	})

	t.Run("ranking view", func(t *testing.T) {
		w := get(t, router, "/api/homicides/dashboard?view=ranking&geo_rank=canton")
		require.Equal(t, http.StatusOK, w.Code)

		var res dashboard.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.NotNil(t, res.Pyramid)
		assert.NotEmpty(t, res.GeoRanking)
	})

	t.Run("defaults to timeline with no restriction", func(t *testing.T) {
		w := get(t, router, "/api/homicides/dashboard")
		require.Equal(t, http.StatusOK, w.Code)

		var res dashboard.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, dashboard.ViewTimeline, res.View)
		assert.Equal(t, 3, res.Total)
	})

	t.Run("unknown view rejected", func(t *testing.T) {
		w := get(t, router, "/api/homicides/dashboard?view=sideways")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown geo_rank rejected", func(t *testing.T) {
		w := get(t, router, "/api/homicides/dashboard?view=ranking&geo_rank=region")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOptionsEndpoint(t *testing.T) {
	w := get(t, testRouter(t), "/api/homicides/options?provinces=GUAYAS&cantons=GUAYAQUIL,QUITO")
	require.Equal(t, http.StatusOK, w.Code)

	var opts dashboard.FilterOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opts))
	assert.Equal(t, []string{"DURAN", "GUAYAQUIL"}, opts.Cantons)
	assert.Equal(t, []string{"GUAYAQUIL"}, opts.SelectedCantons)
	assert.Equal(t, []int{2024, 2023}, opts.Years)
}
