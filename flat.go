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

package shapes

import "slices"

// Row-major flat-offset arithmetic: the bidirectional mapping between a
// multi-axis index and the linear offset into a contiguous element buffer.
// FlatFromIndices and IndicesFromFlat are exact inverses for any index
// vector whose every component is in [0, dim).

// FlatFromIndices returns the row-major flat offset of the given per-axis
// indices, consumed pairwise with the dimensions in order: if indices is
// shorter than the rank, only the leading axes are checked and contribute.
// It returns ok=false as soon as an index reaches or exceeds its axis's
// dimension.
//
// Indices must be non-negative; resolve any negative-indexing convention
// before calling. See FlatFromSignedIndices for the checked variant.
func (s Shape) FlatFromIndices(indices []int) (flat int, ok bool) {
	dims := s.dims()
	for i, dim := range dims {
		if i >= len(indices) {
			break
		}
		index := indices[i]
		if index >= dim {
			return 0, false
		}
		flat = flat*dim + index
	}
	return flat, true
}

// FlatFromSignedIndices is FlatFromIndices for indices that may be
// negative: it returns ok=false for any index outside [0, dim). It applies
// no wraparound -- negative-indexing semantics belong to the caller.
func (s Shape) FlatFromSignedIndices(indices []int) (flat int, ok bool) {
	dims := s.dims()
	for i, dim := range dims {
		if i >= len(indices) {
			break
		}
		index := indices[i]
		if index < 0 || index >= dim {
			return 0, false
		}
		flat = flat*dim + index
	}
	return flat, true
}

// IndicesFromFlat decomposes a row-major flat offset into per-axis indices,
// outermost axis first. It reuses the caller's buffer append-style: the
// buffer is cleared first and the filled slice returned.
//
// The caller must guarantee flat < Size() and all dimensions positive;
// otherwise the result is meaningless (and a zero dimension divides by
// zero).
func (s Shape) IndicesFromFlat(flat int, indices []int) []int {
	indices = indices[:0]
	dims := s.dims()
	for i := len(dims) - 1; i >= 0; i-- {
		dim := dims[i]
		indices = append(indices, flat%dim)
		flat /= dim
	}
	slices.Reverse(indices)
	return indices
}

// Strides returns the row-major stride of each axis: how many elements one
// step along that axis spans in the flat buffer. The innermost axis has
// stride 1. Scalars return an empty slice.
func (s Shape) Strides() []int {
	dims := s.dims()
	strides := make([]int, len(dims))
	stride := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= dims[i]
	}
	return strides
}
