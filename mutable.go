package geohilbert

import (
	"sort"
	"sync"
)

// MutableIndex wraps an Index with Add/Remove under a reader/writer
// discipline: many readers or one writer, never both (spec §5). Readers
// hold the read lock for the whole query — binary search, monotone scan,
// distance filter and sort — so the scan sees a consistent ordered
// array. Writers hold the lock for the duration of one insertion or
// removal.
//
// Grounded on pixidb's Database (sync.RWMutex embedded directly in the
// struct, zero-value usable) and on the laura-db geo.Index2D pattern of
// an RWMutex guarding a slice/map with RLock readers, Lock writers.
type MutableIndex[T IndexedItem] struct {
	lock  sync.RWMutex
	items []T
	codec *Codec
	geo   Geodesy
}

// NewMutableIndex builds a mutable index from items the caller promises
// are pre-sorted by HID ascending, same contract as Build.
func NewMutableIndex[T IndexedItem](items []T, codec *Codec, geo Geodesy) *MutableIndex[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &MutableIndex[T]{items: cp, codec: codec, geo: geo}
}

// Add inserts item at its sorted position. Holds the write lease for the
// binary-search placement and the in-array insertion.
func (m *MutableIndex[T]) Add(item T) {
	m.lock.Lock()
	defer m.lock.Unlock()
	hid := item.HID()
	i := sort.Search(len(m.items), func(i int) bool { return m.items[i].HID() >= hid })
	m.items = append(m.items, item)
	copy(m.items[i+1:], m.items[i:len(m.items)-1])
	m.items[i] = item
}

// Remove deletes the first item matching hid exactly (by HID equality)
// whose X/Y also match, if present. Holds the write lease for the
// binary-search placement and the in-array removal.
func (m *MutableIndex[T]) Remove(item T) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	hid := item.HID()
	lo := sort.Search(len(m.items), func(i int) bool { return m.items[i].HID() >= hid })
	for i := lo; i < len(m.items) && m.items[i].HID() == hid; i++ {
		if m.items[i].X() == item.X() && m.items[i].Y() == item.Y() {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// Within performs a radius search under the read lease.
func (m *MutableIndex[T]) Within(coord Coordinate, meters float64) ([]Hit[T], error) {
	candidates, err := m.extract(func(snap *Index[T]) ([]Hit[T], error) {
		return snap.Within(coord, meters)
	})
	return candidates, err
}

// Nearest performs a nearest-neighbor search under the read lease.
func (m *MutableIndex[T]) Nearest(coord Coordinate) ([]Hit[T], error) {
	return m.extract(func(snap *Index[T]) ([]Hit[T], error) {
		return snap.Nearest(coord)
	})
}

// extract runs query under the read lease, over a borrowed (not copied)
// Index view, and releases the lease when query returns. The
// distance-filter and sort inside query therefore also run under the
// lease; writers are excluded for all of it.
func (m *MutableIndex[T]) extract(query func(*Index[T]) ([]Hit[T], error)) ([]Hit[T], error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	snap := &Index[T]{items: m.items, codec: m.codec, geo: m.geo}
	return query(snap)
}

// Len returns the current item count, under a read lease.
func (m *MutableIndex[T]) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.items)
}
