package geohilbert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWGS84DistanceZeroForSamePoint(t *testing.T) {
	geo := WGS84Geodesy{}
	c := Coordinate{Lon: 18, Lat: 57}
	d := geo.Distance(c, c)
	assert.InDelta(t, 0, d, 1e-6)
}

func TestWGS84DistanceSymmetric(t *testing.T) {
	geo := WGS84Geodesy{}
	a := Coordinate{Lon: 18, Lat: 57}
	b := Coordinate{Lon: 18.5, Lat: 57.3}
	require.InDelta(t, geo.Distance(a, b), geo.Distance(b, a), 1e-6)
}

func TestWGS84MoveThenDistanceMatchesRequestedRange(t *testing.T) {
	geo := WGS84Geodesy{}
	origin := Coordinate{Lon: 0, Lat: 0}
	for _, bearing := range []float64{0, 45, 90, 135, 180, 225, 270, 315} {
		moved := geo.Move(origin, 10000, bearing)
		d := geo.Distance(origin, moved)
		assert.InDelta(t, 10000, d, 1.0, "bearing %g", bearing)
	}
}

func TestWGS84BufferContainsMovedPoints(t *testing.T) {
	geo := WGS84Geodesy{}
	origin := Coordinate{Lon: 20, Lat: 10}
	env := geo.Buffer(origin, 50000)
	for _, bearing := range []float64{0, 45, 90, 180, 270} {
		moved := geo.Move(origin, 50000, bearing)
		if moved.Lon < env.MinX-1e-6 || moved.Lon > env.MaxX+1e-6 {
			t.Errorf("bearing %g: lon %g outside envelope [%g,%g]", bearing, moved.Lon, env.MinX, env.MaxX)
		}
		if moved.Lat < env.MinY-1e-6 || moved.Lat > env.MaxY+1e-6 {
			t.Errorf("bearing %g: lat %g outside envelope [%g,%g]", bearing, moved.Lat, env.MinY, env.MaxY)
		}
	}
}

func TestWGS84MoveClampsNearPole(t *testing.T) {
	geo := WGS84Geodesy{}
	near := Coordinate{Lon: 0, Lat: 89.999}
	moved := geo.Move(near, 5000, 0)
	if math.Abs(moved.Lat) > 90 {
		t.Errorf("latitude %g outside [-90,90] after move near pole", moved.Lat)
	}
}
