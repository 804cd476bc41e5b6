// Package geohilbert is an in-memory spatial index for point data, keyed
// by position along a Hilbert space-filling curve. Points that are close
// in two dimensions tend to land close together on the curve, so a
// rectangle or a radius around a query point can usually be answered by
// scanning a handful of contiguous ranges of the sorted index rather
// than every point.
//
// A Codec fixes the curve order and the Projection used to map
// longitude/latitude onto the curve's integer grid. An Index[T] holds a
// caller-supplied, HID-sorted slice of items and answers radius and
// nearest-neighbor queries against it; MutableIndex[T] adds Add/Remove
// under a reader/writer lock for callers that need to mutate the set
// between queries.
package geohilbert
