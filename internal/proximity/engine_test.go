package proximity

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type place struct {
	id  string
	gps string
}

func (p place) CandidateID() string  { return p.id }
func (p place) CandidateGPS() string { return p.gps }

var kurunegala = Coordinate{Lat: 7.487718, Lng: 80.364272}

func ids[T Candidate](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.CandidateID())
	}

	return out
}

func TestFindWithinRadius_KurunegalaScenario(t *testing.T) {
	candidates := []place{
		{id: "C", gps: "6.9,79.9"},
		{id: "B", gps: "7.5,80.4"},
		{id: "D", gps: ""},
		{id: "A", gps: "7.487718,80.364272"},
	}

	results, err := FindWithinRadius(candidates, kurunegala, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, ids(results))
	assert.Zero(t, results[0].DistanceKm)
	assert.Greater(t, results[1].DistanceKm, 0.0)
	assert.LessOrEqual(t, results[1].DistanceKm, 10.0)

	page := Paginate(results, 1, 20)
	assert.Equal(t, []string{"A", "B"}, ids(page.Items))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
}

func TestFindWithinRadius_ExcludesUnusableCoordinates(t *testing.T) {
	candidates := []place{
		{id: "empty", gps: ""},
		{id: "text", gps: "abc,def"},
		{id: "partial", gps: "7.48"},
		{id: "out-of-range", gps: "91,0"},
		{id: "ok", gps: "7.49,80.36"},
	}

	results, err := FindWithinRadius(candidates, kurunegala, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, ids(results))
}

func TestFindWithinRadius_BoundaryIsInclusive(t *testing.T) {
	target := Coordinate{Lat: 7.5, Lng: 80.4}
	exact := DistanceKm(kurunegala, target)

	results, err := FindWithinRadius([]place{{id: "edge", gps: target.String()}}, kurunegala, exact)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestFindWithinRadius_StableOnTies(t *testing.T) {
	candidates := []place{
		{id: "first", gps: "7.5,80.4"},
		{id: "second", gps: "7.5,80.4"},
		{id: "center", gps: "7.487718,80.364272"},
		{id: "third", gps: "7.5,80.4"},
	}

	results, err := FindWithinRadius(candidates, kurunegala, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"center", "first", "second", "third"}, ids(results))
}

func TestFindWithinRadius_InvalidInput(t *testing.T) {
	candidates := []place{{id: "A", gps: "7.5,80.4"}}

	_, err := FindWithinRadius(candidates, Coordinate{Lat: math.NaN(), Lng: 80}, 10)
	require.ErrorIs(t, err, ErrInvalidCenterCoordinate)

	_, err = FindWithinRadius(candidates, Coordinate{Lat: 7, Lng: math.Inf(1)}, 10)
	require.ErrorIs(t, err, ErrInvalidCenterCoordinate)

	_, err = FindWithinRadius(candidates, kurunegala, -1)
	require.ErrorIs(t, err, ErrInvalidRadius)

	_, err = FindWithinRadius(candidates, kurunegala, math.NaN())
	require.ErrorIs(t, err, ErrInvalidRadius)
}

func TestFindWithinRadius_EmptyInput(t *testing.T) {
	results, err := FindWithinRadius([]place{}, kurunegala, 10)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func randomPlaces(r *rand.Rand, n int, center Coordinate, spreadDeg float64) []place {
	out := make([]place, 0, n)
	for i := range n {
		switch r.IntN(10) {
		case 0:
			out = append(out, place{id: fmt.Sprintf("p%d", i), gps: ""})
		case 1:
			out = append(out, place{id: fmt.Sprintf("p%d", i), gps: "not,gps"})
		default:
			c := Coordinate{
				Lat: center.Lat + (r.Float64()*2-1)*spreadDeg,
				Lng: center.Lng + (r.Float64()*2-1)*spreadDeg,
			}
			out = append(out, place{id: fmt.Sprintf("p%d", i), gps: c.String()})
		}
	}

	return out
}

func TestFindWithinRadius_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	candidates := randomPlaces(r, 400, kurunegala, 0.5)

	radii := []float64{0, 1, 5, 10, 25, 60}
	var previous map[string]bool
	for _, radius := range radii {
		results, err := FindWithinRadius(candidates, kurunegala, radius)
		require.NoError(t, err)

		current := make(map[string]bool, len(results))
		for i, res := range results {
			_, ok := ParseCoordinate(res.Item.gps)
			assert.True(t, ok, "result %s has no usable coordinate", res.Item.id)
			assert.LessOrEqual(t, res.DistanceKm, radius)
			if i > 0 {
				assert.LessOrEqual(t, results[i-1].DistanceKm, res.DistanceKm, "sorted ascending")
			}
			current[res.Item.id] = true
		}

		for id := range previous {
			assert.True(t, current[id], "radius %.0f lost %s found at a smaller radius", radius, id)
		}
		previous = current
	}
}

func TestFindWithinRadius_PrefilterKeepsResults(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))

	centers := []Coordinate{
		kurunegala,
		{Lat: 64.1466, Lng: -21.9426},
		{Lat: -54.8019, Lng: -68.303},
		{Lat: 0.1, Lng: 179.95},
		{Lat: 89.5, Lng: 10},
	}

	for _, center := range centers {
		candidates := randomPlaces(r, 300, center, 1.5)
		for _, radius := range []float64{2, 20, 80, 200} {
			plain, err := FindWithinRadius(candidates, center, radius)
			require.NoError(t, err)

			filtered, err := FindWithinRadius(candidates, center, radius, WithBoundingBoxPrefilter(1.3))
			require.NoError(t, err)

			assert.Equal(t, ids(plain), ids(filtered), "center %v radius %.0f", center, radius)
		}
	}
}

func TestExcludeSelf(t *testing.T) {
	candidates := []place{
		{id: "author", gps: "7.5,80.4"},
		{id: "u1", gps: "7.5,80.4"},
		{id: "u2", gps: ""},
	}

	t.Run("removes only the matching id", func(t *testing.T) {
		kept := ExcludeSelf(candidates, "author")
		assert.Equal(t, []string{"u1", "u2"}, ids(kept))
	})

	t.Run("matches by value", func(t *testing.T) {
		selfID := string([]byte("author"))
		assert.Len(t, ExcludeSelf(candidates, selfID), 2)
	})

	t.Run("empty id is a no-op", func(t *testing.T) {
		assert.Equal(t, ids(candidates), ids(ExcludeSelf(candidates, "")))
	})

	t.Run("works on results", func(t *testing.T) {
		results, err := FindWithinRadius(candidates, kurunegala, 10)
		require.NoError(t, err)

		kept := ExcludeSelf(results, "author")
		assert.Equal(t, []string{"u1"}, ids(kept))
	})
}
