/*
 *	Copyright 2024 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package shapes implements a mutable, dimensions-only array shape and its
// row-major index arithmetic.
//
// A Shape is an ordered sequence of non-negative dimension sizes, outermost
// axis first, describing the rank and extents of a multidimensional array
// whose elements live in a single contiguous buffer. It is the piece shared
// by every array-oriented runtime that has to translate between logical
// multi-axis indices and flat linear offsets, and to change an array's rank
// cheaply (adding or removing axes, flattening, taking rows).
//
// Shapes of rank up to 3 -- the overwhelmingly common case -- are stored
// inline, with no separate heap allocation; higher ranks transparently
// spill to a heap-backed slice. No operation behaves differently between
// the two storage modes.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of an array.
//   - Axis: the index of a dimension. We refer to a dimension index as
//     "axis" (plural axes), and to its size as its dimension.
//   - Dimension: the size of an array in one of its axes. A dimension of 0
//     is legal and denotes an axis with no elements.
//   - Scalar: a shape with no axes (rank 0); it holds exactly one element.
//   - Row: one cross-section of the array along axis 0. A scalar is its own
//     single row.
//   - Flat offset: the linear index into a contiguous element buffer that
//     corresponds to a multi-axis index, in row-major order (the last axis
//     varies fastest).
//
// Example: the multi-dimensional value `[][]int32{{0, 1, 2}, {3, 4, 5}}`
// has shape `[2 × 3]`: rank 2, axis 0 has dimension 2 and axis 1 has
// dimension 3. It could be created with `shapes.Make(2, 3)`.
//
// A Shape is exclusively owned by its hosting array value and is mutated in
// place by the same operations that reshape that array. It provides no
// internal synchronization: clone before sharing across goroutines.
package shapes

import (
	"encoding/gob"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/shapes/xslices"
	"github.com/pkg/errors"
)

// numInlineDims is the rank up to which dimensions are stored inline,
// without a separate allocation.
const numInlineDims = 3

// Shape is a growable ordered sequence of non-negative dimensions,
// outermost axis first.
//
// The zero value is the scalar shape (rank 0) and is ready to use. Use Make
// or FromSlice to create non-scalar shapes.
//
// Mutating methods use pointer receivers. Assigning a Shape copies it for
// ranks up to 3 but aliases the dimensions of higher-rank shapes -- use
// Clone when an independent copy is needed.
type Shape struct {
	inline    [numInlineDims]int
	inlineLen int

	// spilled holds the dimensions once the rank exceeds numInlineDims.
	// While it is nil the dimensions are inline[:inlineLen]; once non-nil
	// it stays authoritative, inline and inlineLen are no longer used.
	spilled []int
}

// Make returns a Shape with the given dimensions, outermost first.
// Make() is the scalar shape, Make(n) a rank-1 shape of n elements.
func Make(dims ...int) Shape {
	return FromSlice(dims)
}

// FromSlice returns a Shape with a copy of the given dimensions.
func FromSlice(dims []int) (s Shape) {
	if len(dims) <= numInlineDims {
		s.inlineLen = copy(s.inline[:], dims)
		return
	}
	s.spilled = xslices.Copy(dims)
	return
}

// ScalarShape returns the canonical rank-0 shape. It has exactly 1 element.
func ScalarShape() Shape { return Shape{} }

// EmptyList returns the canonical rank-1 shape [0]. It has 0 elements and
// is distinct from the scalar shape.
func EmptyList() Shape { return Make(0) }

// WithCapacity returns a scalar shape with room for the given rank before
// the dimensions need to be reallocated.
func WithCapacity(capacity int) (s Shape) {
	if capacity > numInlineDims {
		s.spilled = make([]int, 0, capacity)
	}
	return
}

// dims returns the current dimensions as a slice, in either storage mode.
// The slice aliases the Shape's storage.
func (s *Shape) dims() []int {
	if s.spilled != nil {
		return s.spilled
	}
	return s.inline[:s.inlineLen]
}

// spill moves the dimensions to heap storage, reserving room for extra
// additional dimensions.
func (s *Shape) spill(extra int) {
	s.spilled = make([]int, s.inlineLen, s.inlineLen+extra)
	copy(s.spilled, s.inline[:s.inlineLen])
	s.inlineLen = 0
}

// Rank of the shape, that is, the number of axes.
func (s Shape) Rank() int {
	if s.spilled != nil {
		return len(s.spilled)
	}
	return s.inlineLen
}

// IsScalar returns whether the shape has rank 0. A scalar has exactly one
// element.
func (s Shape) IsScalar() bool { return s.Rank() == 0 }

// Shape returns a shallow copy of itself. It implements the HasShape
// interface.
func (s Shape) Shape() Shape { return s }

// Dims returns the dimensions as a slice, outermost axis first. The slice
// aliases the Shape's storage: entries may be read and assigned in place,
// but it must not be appended to or retained across mutations of the Shape.
func (s *Shape) Dims() []int { return s.dims() }

// Dim returns the dimension of the given axis. Axis can take negative
// values, in which case it counts from the end -- axis=-1 is the last axis.
// Like slice indexing, it panics for an out-of-bounds axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return xslices.At(s.dims(), axis)
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() Shape {
	if s.spilled == nil {
		return s
	}
	return Shape{spilled: xslices.Copy(s.spilled)}
}

// Push appends a trailing dimension, increasing the rank by 1.
func (s *Shape) Push(dim int) {
	if s.spilled == nil {
		if s.inlineLen < numInlineDims {
			s.inline[s.inlineLen] = dim
			s.inlineLen++
			return
		}
		s.spill(1)
	}
	s.spilled = append(s.spilled, dim)
}

// Pop removes and returns the last dimension. It returns ok=false on a
// scalar shape, which has no dimensions to remove.
func (s *Shape) Pop() (dim int, ok bool) {
	rank := s.Rank()
	if rank == 0 {
		return 0, false
	}
	dims := s.dims()
	dim = dims[rank-1]
	s.Truncate(rank - 1)
	return dim, true
}

// Insert inserts a dimension at the given axis, shifting later axes right.
// Axis must be in [0, rank]; out-of-bounds is a bug in the caller and
// panics.
func (s *Shape) Insert(axis, dim int) {
	rank := s.Rank()
	if axis < 0 || axis > rank {
		exceptions.Panicf("Shape.Insert(%d, %d) out-of-bounds for rank %d (shape=%s)", axis, dim, rank, s)
	}
	s.Push(0) // Grows storage, spilling if needed.
	dims := s.dims()
	copy(dims[axis+1:], dims[axis:rank])
	dims[axis] = dim
}

// Remove removes and returns the dimension at the given axis, shifting
// later axes left. Axis must be < rank; out-of-bounds is a bug in the
// caller and panics.
func (s *Shape) Remove(axis int) int {
	rank := s.Rank()
	if axis < 0 || axis >= rank {
		exceptions.Panicf("Shape.Remove(%d) out-of-bounds for rank %d (shape=%s)", axis, rank, s)
	}
	dims := s.dims()
	dim := dims[axis]
	copy(dims[axis:], dims[axis+1:])
	s.Truncate(rank - 1)
	return dim
}

// Drain removes and discards the dimensions in the half-open axis range
// [from, to). The range must satisfy 0 <= from <= to <= rank; anything else
// is a bug in the caller and panics.
func (s *Shape) Drain(from, to int) {
	rank := s.Rank()
	if from < 0 || from > to || to > rank {
		exceptions.Panicf("Shape.Drain(%d, %d) invalid range for rank %d (shape=%s)", from, to, rank, s)
	}
	dims := s.dims()
	n := copy(dims[from:], dims[to:])
	s.Truncate(from + n)
}

// Truncate drops all dimensions beyond axis length. It is a no-op if the
// rank is already <= length.
func (s *Shape) Truncate(length int) {
	if length >= s.Rank() {
		return
	}
	if s.spilled != nil {
		s.spilled = s.spilled[:length]
		return
	}
	s.inlineLen = length
}

// SplitOff removes the dimensions from axis at onwards and returns them as
// a new Shape. The receiver keeps axes [0, at). At must be <= rank.
func (s *Shape) SplitOff(at int) Shape {
	rank := s.Rank()
	if at < 0 || at > rank {
		exceptions.Panicf("Shape.SplitOff(%d) out-of-bounds for rank %d (shape=%s)", at, rank, s)
	}
	tail := FromSlice(s.dims()[at:])
	s.Truncate(at)
	return tail
}

// Extend appends the given dimensions in order.
func (s *Shape) Extend(dims ...int) {
	s.ExtendFromSlice(dims)
}

// ExtendFromSlice appends the given dimensions in order.
func (s *Shape) ExtendFromSlice(dims []int) {
	if s.spilled == nil && s.inlineLen+len(dims) > numInlineDims {
		s.spill(len(dims))
	}
	if s.spilled != nil {
		s.spilled = append(s.spilled, dims...)
		return
	}
	s.inlineLen += copy(s.inline[s.inlineLen:], dims)
}

// String implements fmt.Stringer: dimensions joined by a multiplication
// sign, e.g. `[2 × 3 × 4]`. The scalar shape prints as `[]`.
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, dim := range s.dims() {
		if i > 0 {
			b.WriteString(" × ")
		}
		b.WriteString(strconv.Itoa(dim))
	}
	b.WriteByte(']')
	return b.String()
}

// GobSerialize shape in binary format.
func (s Shape) GobSerialize(encoder *gob.Encoder) (err error) {
	dims := s.dims()
	err = encoder.Encode(dims)
	if err != nil {
		err = errors.Wrapf(err, "failed to serialize Shape %s", s)
	}
	return
}

// GobDeserialize a Shape. Returns new Shape or an error.
func GobDeserialize(decoder *gob.Decoder) (s Shape, err error) {
	var dims []int
	err = decoder.Decode(&dims)
	if err != nil {
		err = errors.Wrapf(err, "failed to deserialize Shape")
		return
	}
	return FromSlice(dims), nil
}

// MarshalJSON renders the shape as a bare array of dimensions, e.g. [2,3].
func (s Shape) MarshalJSON() ([]byte, error) {
	dims := s.dims()
	if dims == nil {
		dims = []int{}
	}
	return json.Marshal(dims)
}

// UnmarshalJSON parses a bare array of dimensions.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var dims []int
	if err := json.Unmarshal(data, &dims); err != nil {
		return errors.Wrapf(err, "failed to unmarshal Shape")
	}
	*s = FromSlice(dims)
	return nil
}
