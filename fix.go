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

import (
	"fmt"

	"github.com/pkg/errors"
)

// Unfix failures. WrongUnitLengthError carries the leading dimension that
// was merged away; the sentinels cover the cases where the shape was left
// untouched.
var (
	// ErrUnfixEmpty is returned by Unfix when the shape contains a zero
	// dimension and has no leading axis to remove or merge.
	ErrUnfixEmpty = errors.New("cannot unfix empty array")

	// ErrUnfixScalar is returned by Unfix on a rank-0 shape.
	ErrUnfixScalar = errors.New("cannot unfix scalar")
)

// WrongUnitLengthError reports an Unfix on a shape whose leading axis had
// length != 1. The two leading axes were merged anyway -- see Unfix.
type WrongUnitLengthError struct {
	// Length is the leading dimension that was merged into the next axis.
	Length int
}

func (e WrongUnitLengthError) Error() string {
	return fmt.Sprintf("cannot unfix array with length %d", e.Length)
}

// Fix inserts a unit dimension at axis 0, increasing the rank by 1 without
// changing Size. It returns the insertion position (always 0).
//
// Fixing is typically used to align the ranks of two arrays before a
// broadcasting operation.
func (s *Shape) Fix() int {
	return s.FixDepth(0)
}

// FixDepth inserts a unit dimension at axis min(depth, rank) and returns
// the position actually used.
func (s *Shape) FixDepth(depth int) int {
	depth = min(depth, s.Rank())
	s.Insert(depth, 1)
	return depth
}

// Unfix removes a unit dimension from the front of the shape, undoing a
// Fix.
//
// If the leading dimension is not 1 but the rank is at least 2, the two
// leading axes are merged (their dimensions multiplied) and Unfix still
// returns a WrongUnitLengthError naming the merged leading dimension: the
// unit axis was lost to a reshape and cannot be exactly undone, but the
// shape is left in the merged state so the caller can keep going after
// surfacing the error. Otherwise the shape is unchanged and Unfix returns
// ErrUnfixEmpty, ErrUnfixScalar, or an error naming the shape.
func (s *Shape) Unfix() error {
	if first, ok := s.unfix(); ok {
		if first == 1 {
			return nil
		}
		return WrongUnitLengthError{Length: first}
	}
	switch {
	case s.ContainsZeroDim():
		return ErrUnfixEmpty
	case s.IsScalar():
		return ErrUnfixScalar
	default:
		return errors.Errorf("cannot unfix array with shape %s", s)
	}
}

// UndoFix collapses the two leading axes like Unfix, but discards the
// success/failure distinction. No-op on shapes of rank < 2 whose leading
// dimension is not 1.
func (s *Shape) UndoFix() {
	s.unfix()
}

// unfix removes the leading axis, merging it into the next axis when its
// dimension is not 1. It returns the removed leading dimension, or ok=false
// if the shape has no removable leading axis.
func (s *Shape) unfix() (first int, ok bool) {
	dims := s.dims()
	switch {
	case len(dims) > 0 && dims[0] == 1:
		return s.Remove(0), true
	case len(dims) >= 2:
		dims[1] *= dims[0]
		return s.Remove(0), true
	default:
		return 0, false
	}
}

// Deshape flattens the shape in place to the rank-1 shape [Size()], unless
// the rank is already exactly 1, in which case it is a no-op.
func (s *Shape) Deshape() {
	if s.Rank() != 1 {
		*s = Make(s.Size())
	}
}

// ContainsZeroDim returns whether any axis has dimension 0, meaning the
// array has no elements.
func (s Shape) ContainsZeroDim() bool {
	for _, dim := range s.dims() {
		if dim == 0 {
			return true
		}
	}
	return false
}
