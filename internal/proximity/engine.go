package proximity

import (
	"math"
	"slices"

	"lostfound/internal/errors"

	"github.com/paulmach/orb"
)

var (
	// ErrInvalidCenterCoordinate is returned when the search center is not a finite coordinate.
	ErrInvalidCenterCoordinate = errors.New("invalid center coordinate")
	// ErrInvalidRadius is returned for a negative or NaN radius.
	ErrInvalidRadius = errors.New("invalid radius")
)

// kmPerDegree is the length of one degree of latitude on the haversine sphere.
const kmPerDegree = EarthRadiusKm * math.Pi / 180

// Candidate is any record that can be placed on the map.
type Candidate interface {
	// CandidateID returns the record identity used for self-exclusion.
	CandidateID() string
	// CandidateGPS returns the raw "lat,lng" location, or "" when unknown.
	CandidateGPS() string
}

// Result is a candidate annotated with its distance from the search center.
type Result[T Candidate] struct {
	Item       T       `json:"item"`
	DistanceKm float64 `json:"distanceKm"`
}

// CandidateID delegates to the wrapped item so results can be filtered like candidates.
func (r Result[T]) CandidateID() string {
	return r.Item.CandidateID()
}

// CandidateGPS delegates to the wrapped item.
func (r Result[T]) CandidateGPS() string {
	return r.Item.CandidateGPS()
}

type searchOptions struct {
	prefilterMultiplier float64
}

// Option tunes a radius search.
type Option func(*searchOptions)

// WithBoundingBoxPrefilter rejects candidates outside a lat/lng box of radius*multiplier
// before running haversine. Multipliers below 1 are ignored.
func WithBoundingBoxPrefilter(multiplier float64) Option {
	return func(o *searchOptions) {
		if multiplier >= 1 && isFinite(multiplier) {
			o.prefilterMultiplier = multiplier
		}
	}
}

// FindWithinRadius returns every candidate whose location is within radiusKm of center,
// sorted by ascending distance. Ties keep input order.
// Candidates with a missing or malformed location are skipped.
func FindWithinRadius[T Candidate](candidates []T, center Coordinate, radiusKm float64, opts ...Option) ([]Result[T], error) {
	if !center.isFinite() {
		return nil, errors.WithStack(ErrInvalidCenterCoordinate)
	}
	if math.IsNaN(radiusKm) || radiusKm < 0 {
		return nil, errors.WithStack(ErrInvalidRadius)
	}

	options := searchOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	bound, useBound := prefilterBound(center, radiusKm, options.prefilterMultiplier)

	results := make([]Result[T], 0)
	for _, candidate := range candidates {
		coord, ok := ParseCoordinate(candidate.CandidateGPS())
		if !ok {
			continue
		}

		if useBound && inValidRange(coord) && !bound.Contains(coord.Point()) {
			continue
		}

		distance := DistanceKm(center, coord)
		if !isFinite(distance) || distance > radiusKm {
			continue
		}

		results = append(results, Result[T]{Item: candidate, DistanceKm: distance})
	}

	slices.SortStableFunc(results, func(a, b Result[T]) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	return results, nil
}

// ExcludeSelf drops the candidates whose id equals selfID. An empty selfID keeps everything.
func ExcludeSelf[T Candidate](candidates []T, selfID string) []T {
	if selfID == "" {
		return candidates
	}

	kept := make([]T, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.CandidateID() == selfID {
			continue
		}
		kept = append(kept, candidate)
	}

	return kept
}

// prefilterBound builds the lat/lng box used to skip far-away candidates.
// No box is used near the poles, across the antimeridian or for infinite radii.
func prefilterBound(center Coordinate, radiusKm, multiplier float64) (orb.Bound, bool) {
	if multiplier < 1 || !isFinite(radiusKm) || !inValidRange(center) {
		return orb.Bound{}, false
	}

	latDelta := radiusKm * multiplier / kmPerDegree
	minLat, maxLat := center.Lat-latDelta, center.Lat+latDelta
	if minLat <= -90 || maxLat >= 90 {
		return orb.Bound{}, false
	}

	// The widest longitude span of the circle is reached at the latitude farthest from the equator.
	widest := math.Max(math.Abs(minLat), math.Abs(maxLat))
	lngDelta := latDelta / math.Cos(toRadians(widest))
	minLng, maxLng := center.Lng-lngDelta, center.Lng+lngDelta
	if minLng < -180 || maxLng > 180 {
		return orb.Bound{}, false
	}

	return orb.Bound{
		Min: orb.Point{minLng, minLat},
		Max: orb.Point{maxLng, maxLat},
	}, true
}

func inValidRange(c Coordinate) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
