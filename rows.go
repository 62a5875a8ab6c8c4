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

// Size returns the total number of elements of an array with this shape:
// the product of all dimensions. A scalar has size 1 (empty product); any
// zero dimension makes the size 0.
func (s Shape) Size() (size int) {
	size = 1
	for _, dim := range s.dims() {
		size *= dim
	}
	return
}

// RowCount returns the number of rows: the dimension of axis 0, or 1 for a
// scalar, which counts as its own single row.
func (s Shape) RowCount() int {
	dims := s.dims()
	if len(dims) == 0 {
		return 1
	}
	return dims[0]
}

// RowLen returns the number of elements in one row: the product of all
// dimensions but the first (1 if rank <= 1).
func (s Shape) RowLen() (length int) {
	length = 1
	for _, dim := range s.RowSlice() {
		length *= dim
	}
	return
}

// Row returns a new Shape with the leading axis removed: the shape of one
// cross-section along axis 0. The row of a scalar is the scalar itself.
func (s Shape) Row() Shape {
	row := s.Clone()
	row.MakeRow()
	return row
}

// RowSlice returns the dimensions after axis 0 (all dimensions for a
// scalar). The slice aliases the Shape's storage.
func (s *Shape) RowSlice() []int {
	dims := s.dims()
	return dims[min(len(dims), 1):]
}

// MakeRow removes axis 0 in place, making the shape its own row shape.
// No-op on a scalar.
func (s *Shape) MakeRow() {
	if s.Rank() > 0 {
		s.Remove(0)
	}
}

// RowCountMut returns a pointer to the dimension of axis 0, so the caller
// can resize the row dimension in place. On a scalar it first pushes a unit
// axis, promoting the shape to rank 1. The pointer is invalidated by any
// later mutation of the shape.
func (s *Shape) RowCountMut() *int {
	if s.IsScalar() {
		s.Push(1)
	}
	return &s.dims()[0]
}
