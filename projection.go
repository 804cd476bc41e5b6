package geohilbert

import (
	"math"

	"github.com/owlpinetech/flatsphere"
)

// Projection maps a geographic Coordinate to an integer GridPoint on an
// N x N grid and back. It must be pure and allocation-free; the codec
// calls it once per encode/decode and once per rectangle corner, so it
// sits on the hot path.
type Projection interface {
	ToGrid(c Coordinate, n int) GridPoint
	ToCoordinate(p GridPoint, n int) Coordinate
}

// LinearProjection is the default projection (spec C1): a linear map of
// longitude/latitude onto the grid, with no spherical correction.
type LinearProjection struct{}

func (LinearProjection) ToGrid(c Coordinate, n int) GridPoint {
	x := int(math.Trunc((180 + c.Lon) * float64(n) / 360))
	y := int(math.Trunc((90 + c.Lat) * float64(n) / 180))
	return GridPoint{X: clampGrid(x, n), Y: clampGrid(y, n)}
}

func (LinearProjection) ToCoordinate(p GridPoint, n int) Coordinate {
	x := clampGrid(p.X, n)
	y := clampGrid(p.Y, n)
	lon := float64(x)/(float64(n)/360) - 180
	lat := float64(y)/(float64(n)/180) - 90
	return Coordinate{Lon: lon, Lat: lat}
}

func clampGrid(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n-1 {
		return n - 1
	}
	return v
}

// MercatorProjection adapts flatsphere's Mercator projection to the
// Projection interface, the same wrapping shape as pixidb's
// MercatorCutoffIndexer but without the polar cutoff (the grid simply
// clamps at the projection's own planar bounds).
type MercatorProjection struct {
	proj flatsphere.Mercator
}

func NewMercatorProjection() MercatorProjection {
	return MercatorProjection{proj: flatsphere.NewMercator()}
}

func (m MercatorProjection) ToGrid(c Coordinate, n int) GridPoint {
	px, py := m.proj.Project(c.Lat, c.Lon)
	bounds := m.proj.PlanarBounds()
	xPix := ((px - bounds.XMin) / bounds.Width()) * float64(n-1)
	yPix := ((py - bounds.YMin) / bounds.Height()) * float64(n-1)
	return GridPoint{X: clampGrid(int(xPix), n), Y: clampGrid(int(yPix), n)}
}

func (m MercatorProjection) ToCoordinate(p GridPoint, n int) Coordinate {
	bounds := m.proj.PlanarBounds()
	px := bounds.XMin + (float64(p.X)/float64(n-1))*bounds.Width()
	py := bounds.YMin + (float64(p.Y)/float64(n-1))*bounds.Height()
	lat, lon := m.proj.Unproject(px, py)
	return Coordinate{Lon: lon, Lat: lat}
}

// EquirectangularProjection adapts flatsphere's cylindrical
// equirectangular projection, focused at the given standard parallel —
// the same role as pixidb's CylindricalEquirectangularIndexer.
type EquirectangularProjection struct {
	proj flatsphere.Equirectangular
}

func NewEquirectangularProjection(parallel float64) EquirectangularProjection {
	return EquirectangularProjection{proj: flatsphere.NewEquirectangular(parallel)}
}

func (e EquirectangularProjection) ToGrid(c Coordinate, n int) GridPoint {
	px, py := e.proj.Project(c.Lat, c.Lon)
	bounds := e.proj.PlanarBounds()
	xPix := ((px - bounds.XMin) / bounds.Width()) * float64(n-1)
	yPix := ((py - bounds.YMin) / bounds.Height()) * float64(n-1)
	return GridPoint{X: clampGrid(int(xPix), n), Y: clampGrid(int(yPix), n)}
}

func (e EquirectangularProjection) ToCoordinate(p GridPoint, n int) Coordinate {
	bounds := e.proj.PlanarBounds()
	px := bounds.XMin + (float64(p.X)/float64(n-1))*bounds.Width()
	py := bounds.YMin + (float64(p.Y)/float64(n-1))*bounds.Height()
	lat, lon := e.proj.Unproject(px, py)
	return Coordinate{Lon: lon, Lat: lat}
}
