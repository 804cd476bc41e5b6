package geohilbert

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfWorld is returned when a rectangle cannot be reconciled to
	// any in-world piece after wrap and clip.
	ErrOutOfWorld = errors.New("geohilbert: rectangle is entirely outside the world after wrap")

	// ErrEmptyRanges is returned by Compact when called on an empty
	// range list; this is a programming error, not a data error.
	ErrEmptyRanges = errors.New("geohilbert: compaction requires a non-empty range list")
)

// InvalidResolutionError reports a curve order outside [1,30].
type InvalidResolutionError struct {
	Order int
}

func NewInvalidResolutionError(order int) *InvalidResolutionError {
	return &InvalidResolutionError{Order: order}
}

func (e *InvalidResolutionError) Error() string {
	return fmt.Sprintf("geohilbert: resolution order %d outside [1,30]", e.Order)
}

// InvalidCoordinateError reports a latitude outside [-90,90].
type InvalidCoordinateError struct {
	Lon, Lat float64
}

func NewInvalidCoordinateError(lon, lat float64) *InvalidCoordinateError {
	return &InvalidCoordinateError{Lon: lon, Lat: lat}
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("geohilbert: latitude %g outside [-90,90] (lon %g)", e.Lat, e.Lon)
}

// DuplicateIndexInputNotSortedError is returned by the opt-in
// construction check (see BuildChecked) when the pre-sorted contract
// was violated at the given position.
type DuplicateIndexInputNotSortedError struct {
	Index        int
	Previous, At uint64
}

func NewDuplicateIndexInputNotSortedError(index int, previous, at uint64) *DuplicateIndexInputNotSortedError {
	return &DuplicateIndexInputNotSortedError{Index: index, Previous: previous, At: at}
}

func (e *DuplicateIndexInputNotSortedError) Error() string {
	return fmt.Sprintf("geohilbert: input not sorted by hid at index %d (%d before %d)", e.Index, e.Previous, e.At)
}
