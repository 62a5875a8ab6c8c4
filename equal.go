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

// Shapes compare as their dimension sequences, whatever the storage mode.
// A rank-1 shape [n] additionally compares equal to the bare dimension n,
// so call sites can treat "a list of n elements" and "the number n"
// interchangeably.

// Equal compares two shapes for equality: same rank and same dimensions.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s.dims(), other.dims())
}

// EqualSlice compares the shape against a raw dimension sequence.
func (s Shape) EqualSlice(dims []int) bool {
	return slices.Equal(s.dims(), dims)
}

// EqualDim returns whether the shape is the rank-1 shape [n].
func (s Shape) EqualDim(n int) bool {
	dims := s.dims()
	return len(dims) == 1 && dims[0] == n
}

// Compare orders shapes lexicographically over their dimension sequences,
// returning -1, 0 or 1. Suitable for sorting and for use as a sort key.
func (s Shape) Compare(other Shape) int {
	return slices.Compare(s.dims(), other.dims())
}

// Equal compares two values as dimension sequences, in either operand
// order. Accepted operand types are Shape, *Shape, []int, and int -- an int
// n stands for the rank-1 shape [n]. It returns false for any other type.
func Equal(a, b any) bool {
	aDims, ok := dimsOf(a)
	if !ok {
		return false
	}
	bDims, ok := dimsOf(b)
	if !ok {
		return false
	}
	return slices.Equal(aDims, bDims)
}

// dimsOf views any accepted operand type as a dimension sequence.
func dimsOf(value any) ([]int, bool) {
	switch v := value.(type) {
	case Shape:
		return v.dims(), true
	case *Shape:
		return v.dims(), true
	case []int:
		return v, true
	case int:
		return []int{v}, true
	}
	return nil, false
}
