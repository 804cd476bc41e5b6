package geohilbert

// Orientation is one of the four rotations/reflections of the base unit
// Hilbert curve. A splits a square into child orientations B, A, A, D
// (in curve order); B into A, B, B, C; C into D, C, C, B; D into
// C, D, D, A. The four orientations are the identity, the transpose, the
// half-turn and the transposed half-turn of a square; the curveOrder and
// childOrientation tables below are written out by hand, and only their
// inverse, orderIndex, is built at package init.
type Orientation uint8

const (
	OrientationA Orientation = iota
	OrientationB
	OrientationC
	OrientationD
)

// quadrant identifies one of the four sub-squares of a square split at
// its midlines, independent of orientation.
type quadrant uint8

const (
	quadLL quadrant = iota
	quadUL
	quadUR
	quadLR
)

// curveOrder[o] lists the physical quadrants visited by orientation o, in
// ascending Hilbert-index order. childOrientation[o] lists the
// orientation to recurse with for the quadrant at the same position.
var curveOrder = [4][4]quadrant{
	OrientationA: {quadLL, quadUL, quadUR, quadLR},
	OrientationB: {quadLL, quadLR, quadUR, quadUL},
	OrientationC: {quadUR, quadLR, quadLL, quadUL},
	OrientationD: {quadUR, quadUL, quadLL, quadLR},
}

var childOrientation = [4][4]Orientation{
	OrientationA: {OrientationB, OrientationA, OrientationA, OrientationD},
	OrientationB: {OrientationA, OrientationB, OrientationB, OrientationC},
	OrientationC: {OrientationD, OrientationC, OrientationC, OrientationB},
	OrientationD: {OrientationC, OrientationD, OrientationD, OrientationA},
}

// orderIndex[o][q] is the inverse of curveOrder: the position (0..3) at
// which orientation o visits physical quadrant q.
var orderIndex [4][4]int

func init() {
	for o := Orientation(0); o < 4; o++ {
		for i, q := range curveOrder[o] {
			orderIndex[o][q] = i
		}
	}
}

// Codec maps points on an order-k Hilbert curve (N = 2^order) to and from
// a single curve index, and geographic coordinates to and from the same
// index via a Projection.
type Codec struct {
	order int
	n     int // 2^order
	proj  Projection
}

const maxOrder = 30

// NewCodec constructs a codec for curve order in [1,30] using proj to
// convert between coordinates and grid points. proj defaults to
// LinearProjection{} if nil.
func NewCodec(order int, proj Projection) (*Codec, error) {
	if order < 1 || order > maxOrder {
		return nil, NewInvalidResolutionError(order)
	}
	if proj == nil {
		proj = LinearProjection{}
	}
	return &Codec{order: order, n: 1 << uint(order), proj: proj}, nil
}

// Order returns the curve order this codec was constructed with.
func (c *Codec) Order() int { return c.order }

// N returns the grid side length, 2^order.
func (c *Codec) N() int { return c.n }

// EncodePoint maps a grid point to its Hilbert curve index. Defined only
// for 0 <= x,y < N; out-of-range inputs silently corrupt the result, per
// the codec's hot-path contract — callers are responsible for clamping.
func (c *Codec) EncodePoint(p GridPoint) uint64 {
	x, y := uint64(p.X), uint64(p.Y)
	var d uint64
	for s := uint64(c.n) / 2; s > 0; s /= 2 {
		var rx, ry uint64
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		if ry == 0 {
			if rx == 1 {
				x = uint64(c.n) - 1 - x
				y = uint64(c.n) - 1 - y
			}
			x, y = y, x
		}
	}
	return d
}

// DecodePoint reverses EncodePoint.
func (c *Codec) DecodePoint(h uint64) GridPoint {
	var x, y uint64
	for s := uint64(1); s < uint64(c.n); s *= 2 {
		rx := 1 & (h / 2)
		ry := 1 & (h ^ rx)
		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
		x += s * rx
		y += s * ry
		h /= 4
	}
	return GridPoint{X: int(x), Y: int(y)}
}

// Encode maps a geographic coordinate to its Hilbert curve index.
func (c *Codec) Encode(coord Coordinate) uint64 {
	return c.EncodePoint(c.proj.ToGrid(coord, c.n))
}

// Decode reverses Encode, recovering an approximate coordinate at the
// resolution of the grid cell.
func (c *Codec) Decode(h uint64) Coordinate {
	return c.proj.ToCoordinate(c.DecodePoint(h), c.n)
}
