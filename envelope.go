package geohilbert

import "math"

// Coordinate is a (longitude, latitude) pair in degrees. Longitude is
// normalized modulo 360 into [-180,180]; latitude outside [-90,90] is
// rejected by callers that validate (see NewCoordinate).
type Coordinate struct {
	Lon float64
	Lat float64
}

// NewCoordinate normalizes lon into [-180,180] and validates lat.
func NewCoordinate(lon, lat float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, NewInvalidCoordinateError(lon, lat)
	}
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return Coordinate{Lon: lon - 180, Lat: lat}, nil
}

// GridPoint is an integer coordinate on the N x N Hilbert grid, lower-left
// origin.
type GridPoint struct {
	X int
	Y int
}

// Envelope is a closed, axis-aligned, immutable box in coordinate space.
// The zero value is not a valid envelope; build one with NewEnvelope or
// Expand.
type Envelope struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewEnvelope builds the smallest envelope containing both corners.
func NewEnvelope(a, b Coordinate) Envelope {
	return Envelope{
		MinX: math.Min(a.Lon, b.Lon),
		MaxX: math.Max(a.Lon, b.Lon),
		MinY: math.Min(a.Lat, b.Lat),
		MaxY: math.Max(a.Lat, b.Lat),
	}
}

// Expand returns a new envelope that is the smallest box enclosing e and c.
// Envelopes are value types; this never mutates e.
func (e Envelope) Expand(c Coordinate) Envelope {
	return Envelope{
		MinX: math.Min(e.MinX, c.Lon),
		MaxX: math.Max(e.MaxX, c.Lon),
		MinY: math.Min(e.MinY, c.Lat),
		MaxY: math.Max(e.MaxY, c.Lat),
	}
}

// Width returns MaxX - MinX.
func (e Envelope) Width() float64 { return e.MaxX - e.MinX }

// Height returns MaxY - MinY.
func (e Envelope) Height() float64 { return e.MaxY - e.MinY }

// GridRectangle is an axis-aligned integer rectangle on the Hilbert grid,
// lower-left corner (X,Y), width Q, height P. It may temporarily carry a
// negative origin or an over-size extent during world-wrap processing
// (see splitWorldWrap); by the time it reaches the decomposer it has
// been clipped into [0,N) x [0,N).
type GridRectangle struct {
	X, Y int
	P, Q int // height, width
}

func clampDim(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// NewGridRectangle clamps P and Q to a minimum of 1, per the data model.
func NewGridRectangle(x, y, p, q int) GridRectangle {
	return GridRectangle{X: x, Y: y, P: clampDim(p), Q: clampDim(q)}
}
