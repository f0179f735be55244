package core

import (
	"fmt"
	"slices"
)

// Position addresses one cell of an N-dimensional grid. Coordinates are
// listed slowest-varying axis first, so a 2D position reads (row, col).
type Position []int

// Space maps between flat cell indices and N-dimensional positions.
//
// Axis sizes are stored fastest-varying axis first, which makes a 2D space
// built from (w, h) row-major: index = row*w + col. Positions run the other
// way, slowest axis first; the reversal between the two orders is part of
// the contract, and coordinate d of a position always pairs with axis
// D-1-d of the size list.
type Space struct {
	dims    []int
	strides []int
}

// NewSpace builds a mapper over the given axis sizes, fastest-varying
// first. Sizes below 1 clamp to 1, and no sizes at all yields a single
// cell.
func NewSpace(dims ...int) *Space {
	if len(dims) == 0 {
		dims = []int{1}
	}
	ds := make([]int, len(dims))
	strides := make([]int, len(dims))
	stride := 1
	for k, d := range dims {
		if d < 1 {
			d = 1
		}
		ds[k] = d
		strides[k] = stride
		stride *= d
	}
	return &Space{dims: ds, strides: strides}
}

// NDim returns the number of axes.
func (s *Space) NDim() int { return len(s.dims) }

// Len returns the total cell count.
func (s *Space) Len() int {
	last := len(s.dims) - 1
	return s.strides[last] * s.dims[last]
}

// Dims returns a copy of the axis sizes, fastest-varying first.
func (s *Space) Dims() []int { return slices.Clone(s.dims) }

// IndexOf flattens a position into a cell index. The position must carry
// exactly one coordinate per axis and every coordinate must sit inside its
// axis.
func (s *Space) IndexOf(p Position) (int, error) {
	n := len(s.dims)
	if len(p) != n {
		return 0, fmt.Errorf("%w: %d coordinates for %d axes", ErrDimensionMismatch, len(p), n)
	}
	idx := 0
	for d, c := range p {
		k := n - 1 - d
		if c < 0 || c >= s.dims[k] {
			return 0, fmt.Errorf("%w: coordinate %d is %d, axis size %d", ErrIndexOutOfBounds, d, c, s.dims[k])
		}
		idx += c * s.strides[k]
	}
	return idx, nil
}

// PositionOf expands a flat index into a freshly allocated position.
func (s *Space) PositionOf(i int) (Position, error) {
	p := make(Position, len(s.dims))
	if err := s.PositionInto(i, p); err != nil {
		return nil, err
	}
	return p, nil
}

// PositionInto expands a flat index into dst without allocating. dst must
// carry one slot per axis.
func (s *Space) PositionInto(i int, dst Position) error {
	if len(dst) != len(s.dims) {
		return fmt.Errorf("%w: %d slots for %d axes", ErrDimensionMismatch, len(dst), len(s.dims))
	}
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("%w: index %d, cell count %d", ErrIndexOutOfBounds, i, s.Len())
	}
	s.positionInto(i, dst)
	return nil
}

// Valid reports whether p addresses a cell: one coordinate per axis, each
// inside its axis.
func (s *Space) Valid(p Position) bool {
	n := len(s.dims)
	if len(p) != n {
		return false
	}
	for d, c := range p {
		if c < 0 || c >= s.dims[n-1-d] {
			return false
		}
	}
	return true
}

// index flattens a position already known to be valid.
func (s *Space) index(p Position) int {
	n := len(s.dims)
	idx := 0
	for d, c := range p {
		idx += c * s.strides[n-1-d]
	}
	return idx
}

// positionInto decomposes an in-range index, largest stride first.
func (s *Space) positionInto(i int, dst Position) {
	n := len(s.dims)
	rem := i
	for k := n - 1; k >= 0; k-- {
		dst[n-1-k] = rem / s.strides[k]
		rem %= s.strides[k]
	}
}
