package geohilbert

// splitWorldWrap normalizes a grid rectangle that may have a negative
// origin or extend past N-1 into one or more in-world pieces (spec
// §4.4 "World wrap"):
//   - a negative MinX wraps around the antimeridian to the east edge;
//     likewise a MaxX beyond N-1 wraps to the west edge.
//   - a negative MinY or a MaxY beyond N-1 is clipped at the pole —
//     latitude is never wrapped, since wrapping past a pole lands at
//     the opposite longitude, which is not the same place.
//
// Returns ErrOutOfWorld if every candidate piece clips away to nothing.
func splitWorldWrap(rect GridRectangle, n int) ([]GridRectangle, error) {
	xPieces := splitX(rect.X, rect.Q, n)
	if len(xPieces) == 0 {
		return nil, ErrOutOfWorld
	}

	y0, y1 := clipLatitude(rect.Y, rect.P, n)
	if y1 <= y0 {
		return nil, ErrOutOfWorld
	}

	pieces := make([]GridRectangle, 0, len(xPieces))
	for _, xp := range xPieces {
		pieces = append(pieces, NewGridRectangle(xp.x0, y0, y1-y0, xp.x1-xp.x0))
	}
	return pieces, nil
}

type xSpan struct{ x0, x1 int }

// splitX returns one or two east-west spans (exclusive end x1) covering
// [x, x+q) after resolving any wrap around the antimeridian, clipped to
// [0,n).
func splitX(x, q, n int) []xSpan {
	x1 := x + q
	if x >= 0 && x1 <= n {
		return []xSpan{{x, x1}}
	}

	var spans []xSpan
	if x < 0 {
		// Eastern remainder in [0, x1) plus the wrapped western sliver
		// at the far side of the world.
		if x1 > 0 {
			spans = append(spans, xSpan{0, min(x1, n)})
		}
		wrapStart := n + x
		if wrapStart < n {
			if wrapStart < 0 {
				wrapStart = 0
			}
			spans = append(spans, xSpan{wrapStart, n})
		}
		return spans
	}

	// x1 > n: western remainder in [x,n) plus the wrapped eastern
	// sliver starting at 0.
	if x < n {
		spans = append(spans, xSpan{x, n})
	}
	overflow := x1 - n
	if overflow > 0 {
		spans = append(spans, xSpan{0, min(overflow, n)})
	}
	return spans
}

// clipLatitude clips [y, y+p) to [0,n), truncating at the pole rather
// than wrapping.
func clipLatitude(y, p, n int) (int, int) {
	y0, y1 := y, y+p
	if y0 < 0 {
		y0 = 0
	}
	if y1 > n {
		y1 = n
	}
	return y0, y1
}
