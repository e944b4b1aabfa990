// Package server is the HTTP boundary: it turns query parameters into a
// filter selection, invokes the dashboard controller, and returns the
// renderer-agnostic aggregation JSON.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"homicide-insights-go/internal/aggregator"
	"homicide-insights-go/internal/dashboard"
	"homicide-insights-go/internal/dataset"
	"homicide-insights-go/internal/logger"
	"homicide-insights-go/internal/types"
)

// SetupRouter wires all routes onto a gin engine.
func SetupRouter(ctrl *dashboard.Controller, summary dataset.Summary, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "homicide-insights", "status": "ok"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/homicides")
	{
		api.GET("/summary", func(c *gin.Context) {
			c.JSON(http.StatusOK, summary)
		})
		api.GET("/dashboard", handleDashboard(ctrl, log))
		api.GET("/options", handleOptions(ctrl, log))
	}

	return r
}

func handleDashboard(ctrl *dashboard.Controller, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := log.WithRequest(c.Request).WithField("handler", "dashboard")

		view, ok := parseView(c.DefaultQuery("view", string(dashboard.ViewTimeline)))
		if !ok {
			reqLog.Warn("unknown view requested")
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view"})
			return
		}
		geoMode, ok := parseGeoMode(c.DefaultQuery("geo_rank", string(aggregator.GeoRankProvince)))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown geo_rank mode"})
			return
		}

		sel := selectionFromQuery(c)
		res := ctrl.Refresh(view, sel, geoMode)
		reqLog.WithField("view", string(view)).WithField("total", res.Total).Info("dashboard refreshed")
		c.JSON(http.StatusOK, res)
	}
}

func handleOptions(ctrl *dashboard.Controller, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log.WithRequest(c.Request).WithField("handler", "options").Info("options requested")
		c.JSON(http.StatusOK, ctrl.Options(selectionFromQuery(c)))
	}
}

// selectionFromQuery builds the filter selection the core consumes. Absent
// parameters mean no restriction, so each dimension defaults to the
// sentinel and the resulting selection is never empty.
func selectionFromQuery(c *gin.Context) types.Selection {
	return types.Selection{
		Year:      c.DefaultQuery("year", types.All),
		Month:     c.DefaultQuery("month", types.All),
		Provinces: multiParam(c.Query("provinces")),
		Cantons:   multiParam(c.Query("cantons")),
		AgeBands:  multiParam(c.Query("ages")),
		Sexes:     multiParam(c.Query("sexes")),
	}
}

// multiParam splits a comma-separated multi-select parameter, uppercasing
// values to the dataset's canonical form. The sentinel stays lowercase.
func multiParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{types.All}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.EqualFold(p, types.All) {
			out = append(out, types.All)
			continue
		}
		out = append(out, strings.ToUpper(p))
	}
	if len(out) == 0 {
		return []string{types.All}
	}
	return out
}

func parseView(raw string) (dashboard.View, bool) {
	switch dashboard.View(raw) {
	case dashboard.ViewTimeline, dashboard.ViewRanking, dashboard.ViewMap:
		return dashboard.View(raw), true
	default:
		return "", false
	}
}

func parseGeoMode(raw string) (aggregator.GeoRankMode, bool) {
	switch aggregator.GeoRankMode(raw) {
	case aggregator.GeoRankProvince, aggregator.GeoRankCanton:
		return aggregator.GeoRankMode(raw), true
	default:
		return "", false
	}
}
