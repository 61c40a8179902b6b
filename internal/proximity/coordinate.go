// Package proximity filters, ranks and paginates location-bearing records around a center point.
// It performs no I/O: callers fetch candidates and hand them in.
package proximity

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Coordinate is a latitude/longitude pair in signed degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point returns the coordinate as an orb point (lng, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// String renders the coordinate in the "lat,lng" form it is stored in.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

func (c Coordinate) isFinite() bool {
	return isFinite(c.Lat) && isFinite(c.Lng)
}

// ParseCoordinate parses a "lat,lng" string.
// Malformed input is reported through ok=false, never as an error: a record without a
// usable location is a normal case. Numeric values outside the valid degree ranges are accepted.
func ParseCoordinate(raw string) (Coordinate, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Coordinate{}, false
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return Coordinate{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || !isFinite(lat) {
		return Coordinate{}, false
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || !isFinite(lng) {
		return Coordinate{}, false
	}

	return Coordinate{Lat: lat, Lng: lng}, true
}

// DistanceKm returns the great-circle distance between a and b using the haversine formula.
// Inputs are expected to be finite.
func DistanceKm(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	deltaLat := toRadians(b.Lat - a.Lat)
	deltaLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	// Rounding can push h marginally past 1 for antipodal points.
	h = math.Min(1, math.Max(0, h))

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
