package geohilbert

import "testing"

// inRanges reports whether h falls in any of ranges.
func inRanges(ranges []Range, h uint64) bool {
	for _, r := range ranges {
		if h >= r.Lo && h <= r.Hi {
			return true
		}
	}
	return false
}

func TestRangesForRectExactCoverage(t *testing.T) {
	c, err := NewCodec(4, nil) // N=16
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	rects := []GridRectangle{
		NewGridRectangle(0, 0, 16, 16),
		NewGridRectangle(3, 5, 4, 6),
		NewGridRectangle(0, 0, 1, 1),
		NewGridRectangle(7, 7, 2, 2),
		NewGridRectangle(10, 1, 5, 5),
	}
	for _, rect := range rects {
		result, err := c.rangesForRect(rect, 0) // maxRanges<=0: no compaction
		if err != nil {
			t.Fatalf("rangesForRect(%+v): %v", rect, err)
		}
		for x := rect.X; x < rect.X+rect.Q; x++ {
			for y := rect.Y; y < rect.Y+rect.P; y++ {
				h := c.EncodePoint(GridPoint{X: x, Y: y})
				if !inRanges(result.Ranges, h) {
					t.Errorf("rect %+v: cell (%d,%d) hid %d not covered by any range", rect, x, y, h)
				}
			}
		}
		var covered uint64
		for _, r := range result.Ranges {
			covered += r.Hi - r.Lo + 1
		}
		if want := uint64(rect.P * rect.Q); covered != want {
			t.Errorf("rect %+v: ranges cover %d cells, want exactly %d", rect, covered, want)
		}
	}
}

func TestRangesForRectOrderedNonOverlapping(t *testing.T) {
	c, err := NewCodec(5, nil)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	rect := NewGridRectangle(2, 2, 10, 12)
	result, err := c.rangesForRect(rect, 0)
	if err != nil {
		t.Fatalf("rangesForRect: %v", err)
	}
	for i := 1; i < len(result.Ranges); i++ {
		prev, cur := result.Ranges[i-1], result.Ranges[i]
		if cur.Lo <= prev.Lo {
			t.Errorf("ranges not strictly ascending at %d: %+v then %+v", i, prev, cur)
		}
		if prev.Hi+1 >= cur.Lo {
			t.Errorf("ranges %+v and %+v should have merged (adjacent or overlapping)", prev, cur)
		}
	}
}

func TestWorldWrapNegativeX(t *testing.T) {
	c, err := NewCodec(4, nil) // N=16
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	rect := GridRectangle{X: -2, Y: 3, P: 3, Q: 5} // wraps to the east edge
	result, err := c.rangesForRect(rect, 0)
	if err != nil {
		t.Fatalf("rangesForRect wrap: %v", err)
	}
	if len(result.Rectangles) < 2 {
		t.Errorf("expected the wrap to produce at least two pieces, got %d", len(result.Rectangles))
	}
	// cell (-1,3) wraps to (15,3)
	h := c.EncodePoint(GridPoint{X: 15, Y: 3})
	if !inRanges(result.Ranges, h) {
		t.Errorf("wrapped cell (15,3) hid %d not covered", h)
	}
}

func TestWorldWrapPoleClipsNotWraps(t *testing.T) {
	c, err := NewCodec(4, nil)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	rect := GridRectangle{X: 1, Y: -2, P: 5, Q: 3}
	pieces, err := splitWorldWrap(rect, c.N())
	if err != nil {
		t.Fatalf("splitWorldWrap: %v", err)
	}
	for _, p := range pieces {
		if p.Y < 0 {
			t.Errorf("piece %+v has negative Y after pole clip", p)
		}
	}
}

func TestOutOfWorldEntirelyBeyondPole(t *testing.T) {
	c, err := NewCodec(4, nil)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	rect := GridRectangle{X: 0, Y: -10, P: 5, Q: 3}
	_, err = c.rangesForRect(rect, 0)
	if err != ErrOutOfWorld {
		t.Errorf("expected ErrOutOfWorld, got %v", err)
	}
}

func TestCompactRejectsEmptyList(t *testing.T) {
	_, err := Compact(nil, 8)
	if err != ErrEmptyRanges {
		t.Errorf("Compact(nil, 8) error = %v, want ErrEmptyRanges", err)
	}
	_, err = Compact([]Range{}, 8)
	if err != ErrEmptyRanges {
		t.Errorf("Compact([]Range{}, 8) error = %v, want ErrEmptyRanges", err)
	}
}

func TestCompactReducesCountAndStaysSuperset(t *testing.T) {
	c, err := NewCodec(6, nil) // N=64
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	rect := NewGridRectangle(3, 3, 40, 50)
	uncompacted, err := c.rangesForRect(rect, 0)
	if err != nil {
		t.Fatalf("rangesForRect: %v", err)
	}
	compacted, err := c.rangesForRect(rect, 8)
	if err != nil {
		t.Fatalf("rangesForRect compacted: %v", err)
	}
	if len(compacted.Ranges) >= len(uncompacted.Ranges) {
		t.Errorf("compaction did not reduce range count: %d vs %d", len(compacted.Ranges), len(uncompacted.Ranges))
	}
	for _, r := range uncompacted.Ranges {
		if !inRanges(compacted.Ranges, r.Lo) || !inRanges(compacted.Ranges, r.Hi) {
			t.Errorf("compacted ranges lost coverage of original range %+v", r)
		}
	}
}
