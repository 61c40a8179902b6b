package proximity

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoordinate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		want   Coordinate
		wantOK bool
	}{
		{name: "valid pair", raw: "7.487718,80.364272", want: Coordinate{Lat: 7.487718, Lng: 80.364272}, wantOK: true},
		{name: "spaces around tokens", raw: " 7.5 , 80.4 ", want: Coordinate{Lat: 7.5, Lng: 80.4}, wantOK: true},
		{name: "negative values", raw: "-33.8688,151.2093", want: Coordinate{Lat: -33.8688, Lng: 151.2093}, wantOK: true},
		{name: "out of range is accepted", raw: "91,0", want: Coordinate{Lat: 91, Lng: 0}, wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "blank", raw: "   ", wantOK: false},
		{name: "non numeric", raw: "abc,def", wantOK: false},
		{name: "single token", raw: "7.5", wantOK: false},
		{name: "three tokens", raw: "7.5,80.4,1", wantOK: false},
		{name: "missing longitude", raw: "7.5,", wantOK: false},
		{name: "NaN", raw: "NaN,80.4", wantOK: false},
		{name: "infinite", raw: "7.5,+Inf", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseCoordinate(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCoordinate_StringRoundTrip(t *testing.T) {
	c := Coordinate{Lat: 7.487718, Lng: 80.364272}

	parsed, ok := ParseCoordinate(c.String())
	assert.True(t, ok)
	assert.Equal(t, c, parsed)
	assert.Equal(t, 80.364272, c.Point().Lon())
	assert.Equal(t, 7.487718, c.Point().Lat())
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinate
		want float64
		tol  float64
	}{
		{
			name: "one degree of latitude",
			a:    Coordinate{Lat: 0, Lng: 0},
			b:    Coordinate{Lat: 1, Lng: 0},
			want: EarthRadiusKm * math.Pi / 180,
			tol:  1e-9,
		},
		{
			name: "antipodal points",
			a:    Coordinate{Lat: 0, Lng: 0},
			b:    Coordinate{Lat: 0, Lng: 180},
			want: EarthRadiusKm * math.Pi,
			tol:  1e-6,
		},
		{
			name: "Kurunegala to Colombo",
			a:    Coordinate{Lat: 7.487718, Lng: 80.364272},
			b:    Coordinate{Lat: 6.927079, Lng: 79.861244},
			want: 83.5,
			tol:  1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DistanceKm(tt.a, tt.b), tt.tol)
		})
	}
}

func randomCoordinate(r *rand.Rand) Coordinate {
	return Coordinate{
		Lat: r.Float64()*180 - 90,
		Lng: r.Float64()*360 - 180,
	}
}

func TestDistanceKm_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))

	for range 500 {
		a, b, c := randomCoordinate(r), randomCoordinate(r), randomCoordinate(r)

		ab := DistanceKm(a, b)
		ba := DistanceKm(b, a)

		assert.InEpsilon(t, ab+1, ba+1, 1e-9, "symmetry")
		assert.Zero(t, DistanceKm(a, a), "identity")
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, DistanceKm(a, c)+DistanceKm(c, b)+1e-6, "triangle inequality")
	}
}
