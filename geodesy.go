package geohilbert

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean radius used for all great-circle
// distance and bearing math, matching the constant geocollection uses
// for its own Haversine distance helper.
const EarthRadiusMeters = 6371008.8

// Geodesy is the external geodesic contract an Index relies on to turn
// a metric radius into a lon/lat Envelope and to score candidate
// distances (spec §6 "External interfaces"). It is supplied by the
// caller so the core grid/range machinery never depends on a specific
// ellipsoid model.
type Geodesy interface {
	// Buffer returns the smallest axis-aligned Envelope guaranteed to
	// contain every point within meters of c.
	Buffer(c Coordinate, meters float64) Envelope
	// Distance returns the geodesic distance between a and b, in meters.
	Distance(a, b Coordinate) float64
	// Move returns the coordinate meters away from c along bearingDeg
	// (degrees clockwise from north).
	Move(c Coordinate, meters, bearingDeg float64) Coordinate
}

// WGS84Geodesy implements Geodesy against a spherical approximation of
// WGS84 using golang/geo's s1/s2 angle and point types, the same
// dependency geocollection reaches for when it needs spherical
// distance rather than planar distance.
type WGS84Geodesy struct{}

func (WGS84Geodesy) Distance(a, b Coordinate) float64 {
	aPt := s2.LatLngFromDegrees(a.Lat, a.Lon)
	bPt := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return aPt.Distance(bPt).Radians() * EarthRadiusMeters
}

// Buffer returns the envelope of the circle of radius meters around c.
// Its latitude extent comes from walking due north and due south; its
// longitude half-width is asin(sin(d)/cos(lat)) for the angular radius
// d, the widest longitude offset on the circle. Where the circle reaches
// a pole, or its longitude extent crosses the antimeridian, the envelope
// spans every longitude.
func (WGS84Geodesy) Buffer(c Coordinate, meters float64) Envelope {
	geo := WGS84Geodesy{}
	ad := meters / EarthRadiusMeters
	dLat := ad * 180 / math.Pi
	if c.Lat+dLat >= 90 || c.Lat-dLat <= -90 {
		return Envelope{MinX: -180, MaxX: 180, MinY: math.Max(c.Lat-dLat, -90), MaxY: math.Min(c.Lat+dLat, 90)}
	}
	north := geo.Move(c, meters, 0)
	south := geo.Move(c, meters, 180)
	dLon := math.Asin(math.Sin(ad)/math.Cos(c.Lat*math.Pi/180)) * 180 / math.Pi
	if c.Lon-dLon < -180 || c.Lon+dLon > 180 {
		return Envelope{MinX: -180, MaxX: 180, MinY: south.Lat, MaxY: north.Lat}
	}

	env := NewEnvelope(north, south)
	env = env.Expand(Coordinate{Lon: c.Lon + dLon, Lat: c.Lat})
	env = env.Expand(Coordinate{Lon: c.Lon - dLon, Lat: c.Lat})
	return env
}

// Move follows the direct geodesic problem on a sphere: rotate c's
// point on the unit sphere by the angular distance meters/R around the
// axis implied by bearingDeg, then read back lon/lat.
func (WGS84Geodesy) Move(c Coordinate, meters, bearingDeg float64) Coordinate {
	angularDist := s1.Angle(meters / EarthRadiusMeters)
	bearing := bearingDeg * math.Pi / 180

	lat1 := c.Lat * math.Pi / 180
	lon1 := c.Lon * math.Pi / 180
	ad := float64(angularDist)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(ad) + math.Cos(lat1)*math.Sin(ad)*math.Cos(bearing))
	lon2 := lon1 + math.Atan2(
		math.Sin(bearing)*math.Sin(ad)*math.Cos(lat1),
		math.Cos(ad)-math.Sin(lat1)*math.Sin(lat2),
	)

	coord, err := NewCoordinate(lon2*180/math.Pi, lat2*180/math.Pi)
	if err != nil {
		// Asin's range keeps lat2 within [-90,90]; the only failure mode
		// NewCoordinate guards against is out-of-range latitude, which
		// cannot happen here.
		return Coordinate{Lon: lon2 * 180 / math.Pi, Lat: clampLat(lat2 * 180 / math.Pi)}
	}
	return coord
}

func clampLat(lat float64) float64 {
	if lat > 90 {
		return 90
	}
	if lat < -90 {
		return -90
	}
	return lat
}
