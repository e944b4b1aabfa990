package aggregator

import (
	"time"

	"github.com/golang/geo/s2"

	"homicide-insights-go/internal/types"
)

// fitBoundsLimit caps how many points still get an auto-fit bounding box;
// beyond it the map keeps its default country-wide view.
const fitBoundsLimit = 5000

// GeoPoint is one map marker: coordinates plus the display fields the point
// annotation needs. One point per qualifying record, no clustering.
type GeoPoint struct {
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lon"`
	Date      string    `json:"date,omitempty"`
	Age       *int      `json:"age,omitempty"`
	Weapon    string    `json:"weapon"`
	Sex       types.Sex `json:"sex"`
}

// Bounds is the lat/lng rectangle enclosing the point set, for map auto-fit.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// GeoPoints is the map view output.
type GeoPoints struct {
	Points []GeoPoint `json:"points"`
	Bounds *Bounds    `json:"bounds,omitempty"`
}

// ExtractGeoPoints keeps the records with both coordinates present and
// numeric. Bounds are computed when the set is small enough for auto-fit.
func ExtractGeoPoints(records []types.Record) GeoPoints {
	points := make([]GeoPoint, 0, len(records))
	rect := s2.EmptyRect()

	for _, r := range records {
		if !r.HasCoordinates() {
			continue
		}
		points = append(points, GeoPoint{
			Latitude:  *r.Latitude,
			Longitude: *r.Longitude,
			Date:      displayDate(r.Date),
			Age:       r.Age,
			Weapon:    r.Weapon,
			Sex:       r.Sex,
		})
		rect = rect.AddPoint(s2.LatLngFromDegrees(*r.Latitude, *r.Longitude))
	}

	out := GeoPoints{Points: points}
	if n := len(points); n > 0 && n < fitBoundsLimit {
		out.Bounds = &Bounds{
			MinLat: rect.Lo().Lat.Degrees(),
			MinLng: rect.Lo().Lng.Degrees(),
			MaxLat: rect.Hi().Lat.Degrees(),
			MaxLng: rect.Hi().Lng.Degrees(),
		}
	}
	return out
}

func displayDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
