// Package dashboard orchestrates aggregation passes: which aggregations run
// for the active view, fault isolation between them, and the debounce that
// lets display updates settle after a view switch.
package dashboard

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"homicide-insights-go/internal/aggregator"
	"homicide-insights-go/internal/filter"
	"homicide-insights-go/internal/logger"
	"homicide-insights-go/internal/observability"
	"homicide-insights-go/internal/types"
)

// View identifies the active dashboard view.
type View string

const (
	ViewTimeline View = "timeline"
	ViewRanking  View = "ranking"
	ViewMap      View = "map"
)

// Result carries the aggregations of one pass. Only the active view's
// fields are populated; a faulted aggregation leaves its field nil and its
// name in Faults so the client keeps that component's previous state.
type Result struct {
	View       View                      `json:"view"`
	Total      int                       `json:"total"`
	Selection  types.Selection           `json:"selection"`
	TimeSeries *aggregator.TimeSeries    `json:"time_series,omitempty"`
	Weapons    []aggregator.RankingEntry `json:"weapons,omitempty"`
	Density    *aggregator.DensityGrid   `json:"density,omitempty"`
	Pyramid    *aggregator.Pyramid       `json:"pyramid,omitempty"`
	GeoRanking []aggregator.RankingEntry `json:"geo_ranking,omitempty"`
	Map        *aggregator.GeoPoints     `json:"map,omitempty"`
	Faults     []string                  `json:"faults,omitempty"`
}

// Controller holds the session state: the immutable record set, the canton
// index, and the last active view. One aggregation pass runs at a time.
type Controller struct {
	mu             sync.Mutex
	records        []types.Record
	cantonProvince map[string]string
	clock          clockwork.Clock
	debounce       time.Duration
	lastView       View
	log            *logger.Logger
	metrics        *observability.Metrics
}

// New builds a controller over a loaded record set. The record set is
// treated as immutable for the controller's lifetime.
func New(records []types.Record, cantonProvince map[string]string, debounce time.Duration,
	clk clockwork.Clock, log *logger.Logger, metrics *observability.Metrics) *Controller {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &Controller{
		records:        records,
		cantonProvince: cantonProvince,
		clock:          clk,
		debounce:       debounce,
		log:            log.WithComponent("dashboard"),
		metrics:        metrics,
	}
}

// Refresh runs a full filter-and-aggregate pass for the given view and
// selection. Passes are serialized: a new trigger waits for the running one
// and then re-runs over the full record set.
func (c *Controller) Refresh(view View, sel types.Selection, geoMode aggregator.GeoRankMode) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if view != c.lastView && c.lastView != "" && c.debounce > 0 {
		c.clock.Sleep(c.debounce)
	}
	c.lastView = view

	if view == ViewMap {
		sel = c.clampMapYear(sel)
	}

	start := time.Now()
	data := filter.Apply(c.records, sel)

	res := Result{View: view, Total: len(data), Selection: sel}

	switch view {
	case ViewRanking:
		c.runIsolated(&res, "pyramid", func() {
			p := aggregator.BuildPyramid(data)
			res.Pyramid = &p
		})
		c.runIsolated(&res, "geo_ranking", func() {
			res.GeoRanking = aggregator.GeoRanking(data, geoMode, c.cantonProvince)
		})
	case ViewMap:
		c.runIsolated(&res, "map", func() {
			points := aggregator.ExtractGeoPoints(data)
			res.Map = &points
		})
	default:
		c.runIsolated(&res, "time_series", func() {
			ts := aggregator.BuildTimeSeries(data, sel)
			res.TimeSeries = &ts
		})
		c.runIsolated(&res, "weapons", func() {
			res.Weapons = aggregator.WeaponRanking(data)
		})
		c.runIsolated(&res, "density", func() {
			grid := aggregator.BuildDensityGrid(data)
			res.Density = &grid
		})
	}

	c.metrics.PassesTotal.Inc()
	c.metrics.FilteredRecords.Observe(float64(len(data)))
	c.metrics.PassDuration.Observe(time.Since(start).Seconds())
	c.log.WithFields(map[string]interface{}{
		"view":     string(view),
		"filtered": len(data),
		"faults":   len(res.Faults),
	}).Debug("aggregation pass complete")

	return res
}

// runIsolated runs one aggregation so that a fault in it cannot take down
// the rest of the pass. The fault is logged, counted, and reported.
func (c *Controller) runIsolated(res *Result, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.log.WithError(fmt.Errorf("%v", r)).WithField("aggregation", name).Error("aggregation fault")
			c.metrics.AggregationErrors.WithLabelValues(name).Inc()
			res.Faults = append(res.Faults, name)
		}
	}()
	fn()
}

// mapYearSpan is how many recent years the map view accepts; older years
// carry too many uncoded coordinates to render honestly.
const mapYearSpan = 3

// clampMapYear forces the map view onto a recent single year, defaulting to
// the current one when the selection is unrestricted or too old.
func (c *Controller) clampMapYear(sel types.Selection) types.Selection {
	current := c.clock.Now().Year()
	if y, ok := sel.SingleYear(); ok && y > current-mapYearSpan && y <= current {
		return sel
	}
	sel.Year = strconv.Itoa(current)
	return sel
}
