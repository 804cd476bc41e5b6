package geohilbert

import "sort"

// IndexedItem is the read-only capability an externally owned record
// must expose to be stored in an Index: its Hilbert index and the grid
// point it was computed from. Items are immutable from the index's
// point of view after construction (spec §3).
type IndexedItem interface {
	HID() uint64
	X() int
	Y() int
}

// Hit pairs an indexed item with its metric distance from a query point.
type Hit[T IndexedItem] struct {
	Item     T
	Distance float64
}

// Index is an ordered, sorted-by-hid collection of items (spec C5). It
// is built once and is safe for concurrent read-only queries without
// external synchronization: each query allocates its own range buffer
// and cursor.
type Index[T IndexedItem] struct {
	items []T
	codec *Codec
	geo   Geodesy
}

// Build constructs an index from items that the caller promises are
// already sorted ascending by HID(). The constructor copies the slice
// but does not sort or validate the order — with hundreds of millions
// of points the sort is the dominant build cost, and the feeder already
// produces sorted output (spec §4.5).
func Build[T IndexedItem](items []T, codec *Codec, geo Geodesy) *Index[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &Index[T]{items: cp, codec: codec, geo: geo}
}

// BuildChecked is the opt-in checking variant of Build that verifies
// the pre-sorted contract, returning a *DuplicateIndexInputNotSortedError
// at the first violation instead of silently trusting it (spec §7,
// supplemented feature — see SPEC_FULL.md §D.3).
func BuildChecked[T IndexedItem](items []T, codec *Codec, geo Geodesy) (*Index[T], error) {
	for i := 1; i < len(items); i++ {
		if items[i].HID() < items[i-1].HID() {
			return nil, NewDuplicateIndexInputNotSortedError(i, items[i-1].HID(), items[i].HID())
		}
	}
	return Build(items, codec, geo), nil
}

// Len returns the number of items in the index.
func (idx *Index[T]) Len() int { return len(idx.items) }

// Within returns every item within meters of coord, ordered ascending
// by distance (spec §4.5 "Radius search").
func (idx *Index[T]) Within(coord Coordinate, meters float64) ([]Hit[T], error) {
	if len(idx.items) == 0 {
		return nil, nil
	}
	env := idx.geo.Buffer(coord, meters)
	result, err := idx.codec.RangesFor(env, DefaultMaxRanges)
	if err != nil {
		return nil, err
	}

	hits := make([]Hit[T], 0)
	cursor := 0
	for _, r := range result.Ranges {
		cursor = idx.scanRange(r, cursor, func(item T) {
			d := idx.geo.Distance(itemCoordinate(idx.codec, item), coord)
			if d <= meters {
				hits = append(hits, Hit[T]{Item: item, Distance: d})
			}
		})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits, nil
}

// Nearest returns every item in a square grid window around coord, sized
// from the grid distance to the Hilbert-neighbor item, ordered ascending
// by distance so the first result is the nearest item in that window
// (spec §4.5 "Nearest-neighbor search"). The window is not widened
// further to check for a closer item outside it (see DESIGN.md).
func (idx *Index[T]) Nearest(coord Coordinate) ([]Hit[T], error) {
	if len(idx.items) == 0 {
		return nil, nil
	}
	q := idx.codec.Encode(coord)
	pivotHID := idx.pivotHID(q)

	result, err := idx.codec.RangesForNeighbor(q, pivotHID, DefaultMaxRanges)
	if err != nil {
		return nil, err
	}

	hits := make([]Hit[T], 0)
	cursor := 0
	for _, r := range result.Ranges {
		cursor = idx.scanRange(r, cursor, func(item T) {
			d := idx.geo.Distance(itemCoordinate(idx.codec, item), coord)
			hits = append(hits, Hit[T]{Item: item, Distance: d})
		})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits, nil
}

// pivotHID picks the Hilbert-neighbor hid to build the NN search window
// around (spec §4.5 step 3).
func (idx *Index[T]) pivotHID(q uint64) uint64 {
	ip := sort.Search(len(idx.items), func(i int) bool { return idx.items[i].HID() >= q })
	if ip < len(idx.items) && idx.items[ip].HID() == q {
		return idx.items[ip].HID()
	}
	if ip >= len(idx.items) {
		return idx.items[len(idx.items)-1].HID()
	}
	if ip == 0 {
		return idx.items[0].HID()
	}
	before := idx.items[ip-1].HID()
	after := idx.items[ip].HID()
	dBefore := diffU64(q, before)
	dAfter := diffU64(q, after)
	if dAfter <= dBefore {
		return after
	}
	return before
}

func diffU64(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// scanRange locates r.Lo by binary search starting from cursor (the
// scan never rewinds across ranges, since ranges are sorted and
// disjoint — spec §4.5 "Cursor monotonicity"), walks back to the first
// of any run sharing the same hid (duplicate support), then walks
// forward yielding items until hid > r.Hi. Returns the index of the
// first item with hid > r.Hi, to seed the next range's search.
func (idx *Index[T]) scanRange(r Range, cursor int, yield func(T)) int {
	n := len(idx.items)
	start := cursor + sort.Search(n-cursor, func(i int) bool {
		return idx.items[cursor+i].HID() >= r.Lo
	})
	for start > 0 && start < n && idx.items[start-1].HID() == idx.items[start].HID() && start-1 >= cursor {
		start--
	}
	// The walk-back above should not cross below cursor in a monotone
	// scan, but guards it explicitly for safety against malformed
	// range lists.
	if start < cursor {
		start = cursor
	}
	// Duplicate-hid items preceding the cursor but sharing r.Lo were
	// already yielded by the previous range; only walk back while still
	// within hid == items[start].HID() and not already consumed.
	i := start
	for i < n && idx.items[i].HID() <= r.Hi {
		if idx.items[i].HID() >= r.Lo {
			yield(idx.items[i])
		}
		i++
	}
	return i
}

// itemCoordinate returns the centre of the grid cell item's hid decodes
// to; query distances are measured from there.
func itemCoordinate(c *Codec, item IndexedItem) Coordinate {
	p := c.DecodePoint(item.HID())
	lo := c.proj.ToCoordinate(p, c.n)
	hi := c.proj.ToCoordinate(GridPoint{X: p.X + 1, Y: p.Y + 1}, c.n)
	return Coordinate{Lon: (lo.Lon + hi.Lon) / 2, Lat: (lo.Lat + hi.Lat) / 2}
}
